package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gterrors "github.com/inshell-art/glyphtable/pkg/errors"
)

// chdir switches to a fresh directory so DefaultFile and .env lookups are isolated.
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, wdErr := os.Getwd()
	if wdErr != nil {
		t.Fatal(wdErr)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() error: %v", err)
	}
	if cfg.RegistryFile != "glyph.yml" || cfg.ReadmeFile != "README.md" {
		t.Errorf("files = %q, %q", cfg.RegistryFile, cfg.ReadmeFile)
	}
	if cfg.RegistryURL != DefaultRegistryURL {
		t.Errorf("RegistryURL = %q", cfg.RegistryURL)
	}
	if cfg.StartMarker != "<!-- GLYPH_TABLE_START -->" || cfg.EndMarker != "<!-- GLYPH_TABLE_END -->" {
		t.Errorf("markers = %q, %q", cfg.StartMarker, cfg.EndMarker)
	}
}

func TestLoadWithoutFile(t *testing.T) {
	chdir(t)
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoadDefaultFile(t *testing.T) {
	dir := chdir(t)
	content := `
registry_file = "registry/glyphs.yml"
listen_addr = "127.0.0.1:9000"
cache_ttl = "5m"
`
	if err := os.WriteFile(filepath.Join(dir, DefaultFile), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.RegistryFile != "registry/glyphs.yml" {
		t.Errorf("RegistryFile = %q", cfg.RegistryFile)
	}
	if cfg.ListenAddr != "127.0.0.1:9000" {
		t.Errorf("ListenAddr = %q", cfg.ListenAddr)
	}
	if cfg.CacheTTL != 5*time.Minute {
		t.Errorf("CacheTTL = %v, want 5m", cfg.CacheTTL)
	}
	if cfg.ReadmeFile != "README.md" {
		t.Errorf("unset keys should keep defaults, ReadmeFile = %q", cfg.ReadmeFile)
	}
}

func TestLoadExplicitFileErrors(t *testing.T) {
	dir := chdir(t)

	_, err := Load(filepath.Join(dir, "missing.toml"))
	if !gterrors.Is(err, gterrors.ErrCodeFileNotFound) {
		t.Errorf("missing file: error = %v, want FILE_NOT_FOUND", err)
	}

	bad := filepath.Join(dir, "bad.toml")
	os.WriteFile(bad, []byte("registry_file = [\n"), 0644)
	_, err = Load(bad)
	if !gterrors.Is(err, gterrors.ErrCodeInvalidConfig) {
		t.Errorf("bad file: error = %v, want INVALID_CONFIG", err)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	dir := chdir(t)
	os.WriteFile(filepath.Join(dir, DefaultFile), []byte(`registry_url = "https://file.example/glyphs.yml"`), 0644)

	t.Setenv("GLYPH_REGISTRY_URL", "https://env.example/glyphs.yml")
	t.Setenv("GLYPH_README_FILE", "docs/README.md")
	t.Setenv("GLYPH_REDIS_ADDR", "localhost:6379")
	t.Setenv("GLYPH_FETCH_TIMEOUT", "3s")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.RegistryURL != "https://env.example/glyphs.yml" {
		t.Errorf("env should override file: RegistryURL = %q", cfg.RegistryURL)
	}
	if cfg.ReadmeFile != "docs/README.md" || cfg.RedisAddr != "localhost:6379" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.FetchTimeout != 3*time.Second {
		t.Errorf("FetchTimeout = %v, want 3s", cfg.FetchTimeout)
	}
}

func TestLoadEnvBadDuration(t *testing.T) {
	chdir(t)
	t.Setenv("GLYPH_CACHE_TTL", "forever")

	_, err := Load("")
	if !gterrors.Is(err, gterrors.ErrCodeInvalidConfig) {
		t.Errorf("Load() error = %v, want INVALID_CONFIG", err)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := chdir(t)
	os.WriteFile(filepath.Join(dir, ".env"), []byte("GLYPH_LISTEN_ADDR=:7070\nGLYPH_README_FILE=FROM_DOTENV.md\n"), 0644)

	t.Setenv("GLYPH_README_FILE", "REAL.md")
	// Registered with t.Setenv so the value is restored after the test.
	t.Setenv("GLYPH_LISTEN_ADDR", "")
	os.Unsetenv("GLYPH_LISTEN_ADDR")

	LoadDotEnv()
	LoadDotEnv("does-not-exist.env")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.ListenAddr != ":7070" {
		t.Errorf("ListenAddr = %q, want value from .env", cfg.ListenAddr)
	}
	if cfg.ReadmeFile != "REAL.md" {
		t.Errorf(".env must not override real env vars, ReadmeFile = %q", cfg.ReadmeFile)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty registry file", func(c *Config) { c.RegistryFile = "" }},
		{"empty readme file", func(c *Config) { c.ReadmeFile = "" }},
		{"ftp url", func(c *Config) { c.RegistryURL = "ftp://x/glyphs.yml" }},
		{"empty start marker", func(c *Config) { c.StartMarker = "" }},
		{"identical markers", func(c *Config) { c.EndMarker = c.StartMarker }},
		{"empty listen addr", func(c *Config) { c.ListenAddr = "" }},
		{"negative ttl", func(c *Config) { c.CacheTTL = -time.Second }},
		{"zero timeout", func(c *Config) { c.FetchTimeout = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !gterrors.Is(err, gterrors.ErrCodeInvalidConfig) {
				t.Errorf("Validate() error = %v, want INVALID_CONFIG", err)
			}
		})
	}
}
