package cart

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodbot-miniapp/internal/platform/storage"
)

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewStore(storage.NewMemory())

	c := New()
	c.Add(doroWat())
	c.Add(Item{ID: "macchiato", Name: "Macchiato", UnitPrice: price("60.00"), Quantity: 2})
	require.NoError(t, store.Save(ctx, c))

	restored := store.Load(ctx)
	require.Equal(t, 2, restored.Len())
	for i, item := range restored.Items() {
		want := c.Items()[i]
		assert.Equal(t, want.ID, item.ID)
		assert.Equal(t, want.Quantity, item.Quantity)
		// Decimal equality, not representation equality: "320.00" and "320"
		// are the same money.
		assert.True(t, item.UnitPrice.Equal(want.UnitPrice))
	}
	assert.True(t, restored.Total().Equal(c.Total()))
}

func TestStoreWireFormat(t *testing.T) {
	ctx := context.Background()
	backing := storage.NewMemory()
	store := NewStore(backing)

	c := New()
	c.Add(doroWat())
	require.NoError(t, store.Save(ctx, c))

	// The persisted value is a bare JSON array, interchangeable with the
	// browser build's localStorage entry.
	raw, err := backing.Get(ctx, "cart")
	require.NoError(t, err)

	var generic []map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &generic))
	require.Len(t, generic, 1)
	assert.Equal(t, "doro-wat", generic[0]["id"])
	assert.Contains(t, generic[0], "price")
	assert.Contains(t, generic[0], "quantity")
}

func TestStoreLoadAbsent(t *testing.T) {
	store := NewStore(storage.NewMemory())
	c := store.Load(context.Background())
	assert.True(t, c.Empty())
}

func TestStoreLoadCorrupted(t *testing.T) {
	ctx := context.Background()
	backing := storage.NewMemory()
	require.NoError(t, backing.Set(ctx, "cart", `{"not": "an array"}`))

	store := NewStore(backing)
	c := store.Load(ctx)
	assert.True(t, c.Empty())

	// The corrupted entry is dropped so the next load starts clean.
	_, err := backing.Get(ctx, "cart")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStoreLoadDropsInvalidQuantities(t *testing.T) {
	ctx := context.Background()
	backing := storage.NewMemory()
	require.NoError(t, backing.Set(ctx, "cart",
		`[{"id":"shiro","price":"180.00","quantity":0},{"id":"doro-wat","price":"320.00","quantity":2}]`))

	c := NewStore(backing).Load(ctx)
	require.Equal(t, 1, c.Len())
	assert.Equal(t, "doro-wat", c.Items()[0].ID)
}

func TestStoreClear(t *testing.T) {
	ctx := context.Background()
	backing := storage.NewMemory()
	store := NewStore(backing)

	c := New()
	c.Add(doroWat())
	require.NoError(t, store.Save(ctx, c))
	require.NoError(t, store.Clear(ctx))

	assert.True(t, store.Load(ctx).Empty())
}
