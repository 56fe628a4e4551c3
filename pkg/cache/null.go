package cache

import "context"

// NullCache is a no-op cache that never stores anything.
// Used when caching is disabled with --no-cache.
type NullCache struct{}

// NewNullCache creates a null cache.
func NewNullCache() *NullCache { return &NullCache{} }

// Get always returns a cache miss.
func (*NullCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set does nothing.
func (*NullCache) Set(ctx context.Context, key string, data []byte) error { return nil }

// Close does nothing.
func (*NullCache) Close() error { return nil }

var _ Cache = (*NullCache)(nil)
