package cache

import (
	"context"
	"time"
)

// NullCache stores nothing. It stands in for the fetch cache under
// --no-cache or when no cache directory can be opened, so every registry
// fetch is a full download with no If-None-Match.
type NullCache struct{}

var _ Cache = (*NullCache)(nil)

// NewNullCache returns a NullCache.
func NewNullCache() *NullCache { return &NullCache{} }

// Get reports a miss for every key.
func (*NullCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

// Set discards data.
func (*NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (*NullCache) Delete(context.Context, string) error { return nil }

func (*NullCache) Close() error { return nil }
