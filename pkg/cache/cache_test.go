package cache

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}

	if _, hit, _ := c.Get(ctx, "missing"); hit {
		t.Error("Get on empty cache should miss")
	}

	if err := c.Set(ctx, "registry:a", []byte("body"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "registry:a")
	if err != nil || !hit {
		t.Fatalf("Get = (%v, %v), want hit", hit, err)
	}
	if string(data) != "body" {
		t.Errorf("Get data = %q, want %q", data, "body")
	}

	if err := c.Delete(ctx, "registry:a"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "registry:a"); hit {
		t.Error("Get after Delete should miss")
	}
	if err := c.Delete(ctx, "registry:a"); err != nil {
		t.Errorf("Delete of missing key should not fail: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	if err := c.Set(ctx, "k", []byte("v"), time.Nanosecond); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("expired entry should miss")
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	path := c.path("k")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, hit, err := c.Get(ctx, "k"); hit || err != nil {
		t.Errorf("corrupt entry: Get = (%v, %v), want miss without error", hit, err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("corrupt entry should be removed")
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	for _, k := range []string{"a", "b", "c"} {
		if err := c.Set(ctx, k, []byte(k), 0); err != nil {
			t.Fatal(err)
		}
	}

	n, err := c.Clear()
	if err != nil {
		t.Fatalf("Clear error: %v", err)
	}
	if n != 3 {
		t.Errorf("Clear() = %d, want 3", n)
	}
	entries, _ := os.ReadDir(c.Dir())
	if len(entries) != 0 {
		t.Errorf("cache dir should be empty, has %d entries", len(entries))
	}
}

func TestDefaultDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")
	dir, err := DefaultDir()
	if err != nil {
		t.Fatalf("DefaultDir() error: %v", err)
	}

	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".cache", "glyphtable")
	if dir != expected {
		t.Errorf("DefaultDir() = %q, want %q", dir, expected)
	}
}

func TestDefaultDirXDG(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", xdg)

	dir, err := DefaultDir()
	if err != nil {
		t.Fatalf("DefaultDir() error: %v", err)
	}
	if want := filepath.Join(xdg, "glyphtable"); dir != want {
		t.Errorf("DefaultDir() = %q, want %q", dir, want)
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// SHA-256 produces 64 hex chars
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestKey(t *testing.T) {
	k1 := Key("fetch", "https://x/glyphs.yml")
	k2 := Key("fetch", "https://x/other.yml")
	if k1 == k2 {
		t.Error("Different parts should produce different keys")
	}
	if !strings.HasPrefix(k1, "fetch:") {
		t.Errorf("Key should start with prefix: %s", k1)
	}
	if k1 != Key("fetch", "https://x/glyphs.yml") {
		t.Error("Key should be deterministic")
	}
	if Key("url", "a", "bc") == Key("url", "ab", "c") {
		t.Error("Key should keep part boundaries")
	}
	if Key("url", "x") == Key("etag", "x") {
		t.Error("Key should differ by kind")
	}
}

func TestNamespaced(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryCache(time.Minute)
	ns := NewNamespaced(backend, "registry:")

	if err := ns.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatal(err)
	}

	if _, hit, _ := backend.Get(ctx, "registry:k"); !hit {
		t.Error("key should be stored with prefix in backend")
	}
	if _, hit, _ := backend.Get(ctx, "k"); hit {
		t.Error("unprefixed key should not exist in backend")
	}

	nested := ns.Namespace("v2:")
	if nested.Prefix() != "registry:v2:" {
		t.Errorf("nested prefix = %q", nested.Prefix())
	}
	if _, hit, _ := nested.Get(ctx, "k"); hit {
		t.Error("nested namespace should not see parent keys")
	}

	if err := ns.Delete(ctx, "k"); err != nil {
		t.Fatal(err)
	}
	if _, hit, _ := backend.Get(ctx, "registry:k"); hit {
		t.Error("Delete should remove prefixed key")
	}
}

func TestNamespacedNilInner(t *testing.T) {
	ns := NewNamespaced(nil, "p:")
	ctx := context.Background()
	if err := ns.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatal(err)
	}
	if _, hit, _ := ns.Get(ctx, "k"); hit {
		t.Error("nil inner should behave as NullCache")
	}
}
