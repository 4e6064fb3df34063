package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("storage: key not found")

// Storage is the key-value persistence boundary used for sessions and carts.
// The browser frontends keep this state in localStorage; here it is pluggable
// so tests can use memory, the CLI a file and deployments Redis.
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
