package cache

import (
	"context"
	"time"
)

// Cache stores derived, idempotent results keyed by serialized query
// strings. Implementations are injected at bootstrap so the lifecycle and
// eviction policy stay explicit.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
