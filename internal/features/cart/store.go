package cart

import (
	"context"
	"encoding/json"
	"fmt"

	"foodbot-miniapp/internal/common/logger"
	"foodbot-miniapp/internal/platform/storage"
)

const cartKey = "cart"

// Store persists the cart on every mutation and restores it on app load.
// The wire form is a bare JSON array of items, same as the browser build's
// localStorage entry.
type Store struct {
	store storage.Storage
}

func NewStore(store storage.Storage) *Store {
	return &Store{store: store}
}

func (s *Store) Save(ctx context.Context, c *Cart) error {
	encoded, err := json.Marshal(c.Items())
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.store.Set(ctx, cartKey, string(encoded)); err != nil {
		return fmt.Errorf("persist cart: %w", err)
	}
	return nil
}

// Load restores the persisted cart. Anything that is not a JSON array of
// items is discarded and replaced with an empty cart; a corrupted entry must
// never take the app down.
func (s *Store) Load(ctx context.Context) *Cart {
	raw, err := s.store.Get(ctx, cartKey)
	if err != nil {
		return New()
	}

	var items []Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		logger.Warn().Err(err).Msg("stored cart corrupted, resetting")
		_ = s.store.Delete(ctx, cartKey)
		return New()
	}

	restored := New()
	for _, item := range items {
		if item.Quantity < 1 {
			continue
		}
		restored.items = append(restored.items, item)
	}
	return restored
}

func (s *Store) Clear(ctx context.Context) error {
	if err := s.store.Delete(ctx, cartKey); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
