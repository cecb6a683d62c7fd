// Package cache provides byte-oriented caches for fetched registry documents.
//
// All implementations satisfy [Cache]:
//   - [FileCache]: entries as JSON files under a directory (CLI default)
//   - [MemoryCache]: in-process cache backed by patrickmn/go-cache (server default)
//   - [RedisCache]: shared cache backed by go-redis
//   - [NullCache]: never stores anything
//
// [Namespaced] scopes any Cache under a key prefix so unrelated data can
// share one backend.
//
// A TTL of zero means the entry never expires. Every implementation is
// safe for concurrent use.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values under string keys.
type Cache interface {
	// Get returns the value for key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key for ttl.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}
