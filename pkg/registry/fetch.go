package registry

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/inshell-art/glyphtable/pkg/cache"
	"github.com/inshell-art/glyphtable/pkg/httputil"
	"github.com/inshell-art/glyphtable/pkg/observability"
)

// cacheKeyType labels fetch entries in cache hooks.
const cacheKeyType = "registry"

// Fetcher downloads registry documents over HTTP.
type Fetcher struct {
	client *httputil.Client
	cache  cache.Cache
	ttl    time.Duration
	logger *log.Logger
	hooks  observability.CacheHooks
}

// fetchEntry is the cached form of a successful response.
type fetchEntry struct {
	ETag string `json:"etag"`
	Body []byte `json:"body"`
}

// NewFetcher creates a Fetcher. A nil cache disables conditional requests;
// a nil logger uses log.Default().
func NewFetcher(client *httputil.Client, c cache.Cache, ttl time.Duration, logger *log.Logger, hooks observability.Hooks) *Fetcher {
	if client == nil {
		client = httputil.NewClient()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Fetcher{
		client: client,
		cache:  cache.NewNamespaced(c, "fetch:"),
		ttl:    ttl,
		logger: logger,
		hooks:  hooks.WithDefaults().Cache,
	}
}

// Fetch returns the document at url. When a cached ETag is still current
// the cached body is returned without downloading it again.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	key := cache.Key("url", url)

	var cached fetchEntry
	if data, ok, err := f.cache.Get(ctx, key); err != nil {
		f.logger.Warn("registry cache read failed", "err", err)
	} else if ok && json.Unmarshal(data, &cached) == nil && cached.ETag != "" {
		f.hooks.OnCacheHit(ctx, cacheKeyType)
	} else {
		cached = fetchEntry{}
		f.hooks.OnCacheMiss(ctx, cacheKeyType)
	}

	resp, err := f.client.Get(ctx, url, cached.ETag)
	if err != nil {
		return nil, err
	}
	if resp.NotModified {
		f.logger.Debug("registry not modified", "url", url, "etag", cached.ETag)
		return cached.Body, nil
	}

	f.logger.Debug("fetched registry", "url", url, "bytes", len(resp.Body))
	if resp.ETag != "" {
		f.store(ctx, key, fetchEntry{ETag: resp.ETag, Body: resp.Body})
	}
	return resp.Body, nil
}

func (f *Fetcher) store(ctx context.Context, key string, e fetchEntry) {
	data, err := json.Marshal(e)
	if err != nil {
		return
	}
	if err := f.cache.Set(ctx, key, data, f.ttl); err != nil {
		f.logger.Warn("registry cache write failed", "err", err)
		return
	}
	f.hooks.OnCacheSet(ctx, cacheKeyType, len(data))
}
