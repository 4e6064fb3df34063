package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Set(ctx, "auth_token", "tok"))
	value, err := store.Get(ctx, "auth_token")
	require.NoError(t, err)
	assert.Equal(t, "tok", value)

	require.NoError(t, store.Delete(ctx, "auth_token"))
	_, err = store.Get(ctx, "auth_token")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting a missing key is a no-op.
	assert.NoError(t, store.Delete(ctx, "auth_token"))
}

func TestFileRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state", "session.json")

	store, err := NewFile(path)
	require.NoError(t, err)

	require.NoError(t, store.Set(ctx, "auth_token", "tok"))
	require.NoError(t, store.Set(ctx, "cart", `[{"id":"shiro"}]`))

	// A fresh instance reads the flushed state back from disk.
	reopened, err := NewFile(path)
	require.NoError(t, err)

	value, err := reopened.Get(ctx, "auth_token")
	require.NoError(t, err)
	assert.Equal(t, "tok", value)

	require.NoError(t, reopened.Delete(ctx, "auth_token"))
	again, err := NewFile(path)
	require.NoError(t, err)
	_, err = again.Get(ctx, "auth_token")
	assert.ErrorIs(t, err, ErrNotFound)

	cart, err := again.Get(ctx, "cart")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"shiro"}]`, cart)
}

func TestFilePermissions(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")

	store, err := NewFile(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "auth_token", "secret"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestFileMangledState(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("not json at all"), 0600))

	store, err := NewFile(path)
	require.NoError(t, err)

	_, err = store.Get(ctx, "auth_token")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Set(ctx, "auth_token", "tok"))
	value, err := store.Get(ctx, "auth_token")
	require.NoError(t, err)
	assert.Equal(t, "tok", value)
}
