package cache

import (
	"context"
	"time"
)

// Namespaced wraps a Cache and prefixes every key.
//
// Example usage:
//
//	fetches := NewNamespaced(backend, "registry:")
//	fetches.Set(ctx, url, entry, ttl) // stored as "registry:<url>"
type Namespaced struct {
	inner  Cache
	prefix string
}

// NewNamespaced creates a cache view whose keys are prefixed with prefix.
// A nil inner cache is replaced by a [NullCache].
func NewNamespaced(inner Cache, prefix string) *Namespaced {
	if inner == nil {
		inner = NewNullCache()
	}
	return &Namespaced{inner: inner, prefix: prefix}
}

// Prefix returns the key prefix.
func (n *Namespaced) Prefix() string { return n.prefix }

// Get retrieves a prefixed value from the wrapped cache.
func (n *Namespaced) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return n.inner.Get(ctx, n.prefix+key)
}

// Set stores a prefixed value in the wrapped cache.
func (n *Namespaced) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return n.inner.Set(ctx, n.prefix+key, data, ttl)
}

// Delete removes a prefixed value from the wrapped cache.
func (n *Namespaced) Delete(ctx context.Context, key string) error {
	return n.inner.Delete(ctx, n.prefix+key)
}

// Close closes the wrapped cache.
func (n *Namespaced) Close() error {
	return n.inner.Close()
}

// Namespace returns a nested view; prefixes accumulate.
func (n *Namespaced) Namespace(prefix string) *Namespaced {
	return &Namespaced{inner: n.inner, prefix: n.prefix + prefix}
}

var _ Cache = (*Namespaced)(nil)
