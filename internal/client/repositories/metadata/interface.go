package metadata

import (
	"context"
)

// Repository reads and writes raw values by key. Get returns (nil, nil)
// when the key is absent.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
}
