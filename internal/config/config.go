// Package config loads glyphtable settings.
//
// Sources are applied in order, later ones winning:
//
//  1. built-in defaults
//  2. a TOML file (.glyphtable.toml, or the path given with --config)
//  3. a .env file in the working directory (never overrides real env vars)
//  4. GLYPH_* environment variables
package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	gterrors "github.com/inshell-art/glyphtable/pkg/errors"
)

// DefaultFile is the config file picked up from the working directory.
const DefaultFile = ".glyphtable.toml"

// DefaultRegistryURL is the published glyph registry.
const DefaultRegistryURL = "https://raw.githubusercontent.com/inshell-art/glyph-registry/main/glyphs.yml"

// Config holds all settings.
type Config struct {
	RegistryFile string        `toml:"registry_file"`
	ReadmeFile   string        `toml:"readme_file"`
	RegistryURL  string        `toml:"registry_url"`
	StartMarker  string        `toml:"start_marker"`
	EndMarker    string        `toml:"end_marker"`
	ListenAddr   string        `toml:"listen_addr"`
	RedisAddr    string        `toml:"redis_addr"`
	CacheTTL     time.Duration `toml:"cache_ttl"`
	FetchTimeout time.Duration `toml:"fetch_timeout"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		RegistryFile: "glyph.yml",
		ReadmeFile:   "README.md",
		RegistryURL:  DefaultRegistryURL,
		StartMarker:  "<!-- GLYPH_TABLE_START -->",
		EndMarker:    "<!-- GLYPH_TABLE_END -->",
		ListenAddr:   ":8080",
		CacheTTL:     time.Hour,
		FetchTimeout: 10 * time.Second,
	}
}

// Load builds the configuration. An empty path means DefaultFile if it
// exists; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	file := path
	if file == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			file = DefaultFile
		}
	}
	if file != "" {
		if _, err := toml.DecodeFile(file, &cfg); err != nil {
			if os.IsNotExist(err) {
				return cfg, gterrors.Wrap(gterrors.ErrCodeFileNotFound, err, "config file %s not found", file)
			}
			return cfg, gterrors.Wrap(gterrors.ErrCodeInvalidConfig, err, "parse config file %s", file)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// LoadDotEnv loads variables from .env files (default ".env") into the
// process environment. Missing files are ignored.
func LoadDotEnv(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		_ = godotenv.Load(f)
	}
}

func applyEnv(cfg *Config) error {
	cfg.RegistryFile = get("GLYPH_REGISTRY_FILE", cfg.RegistryFile)
	cfg.ReadmeFile = get("GLYPH_README_FILE", cfg.ReadmeFile)
	cfg.RegistryURL = get("GLYPH_REGISTRY_URL", cfg.RegistryURL)
	cfg.ListenAddr = get("GLYPH_LISTEN_ADDR", cfg.ListenAddr)
	cfg.RedisAddr = get("GLYPH_REDIS_ADDR", cfg.RedisAddr)

	var err error
	if cfg.CacheTTL, err = getd("GLYPH_CACHE_TTL", cfg.CacheTTL); err != nil {
		return err
	}
	if cfg.FetchTimeout, err = getd("GLYPH_FETCH_TIMEOUT", cfg.FetchTimeout); err != nil {
		return err
	}
	return nil
}

func get(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

func getd(name string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(name)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def, gterrors.Wrap(gterrors.ErrCodeInvalidConfig, err, "%s must be a duration like 30s or 1h", name)
	}
	return d, nil
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if err := gterrors.ValidatePath(c.RegistryFile); err != nil {
		return gterrors.Wrap(gterrors.ErrCodeInvalidConfig, err, "registry_file")
	}
	if err := gterrors.ValidatePath(c.ReadmeFile); err != nil {
		return gterrors.Wrap(gterrors.ErrCodeInvalidConfig, err, "readme_file")
	}
	if err := gterrors.ValidateURL(c.RegistryURL); err != nil {
		return gterrors.Wrap(gterrors.ErrCodeInvalidConfig, err, "registry_url")
	}
	if err := gterrors.ValidateMarkers(c.StartMarker, c.EndMarker); err != nil {
		return err
	}
	if c.ListenAddr == "" {
		return gterrors.New(gterrors.ErrCodeInvalidConfig, "listen_addr cannot be empty")
	}
	if c.CacheTTL < 0 {
		return gterrors.New(gterrors.ErrCodeInvalidConfig, "cache_ttl cannot be negative")
	}
	if c.FetchTimeout <= 0 {
		return gterrors.New(gterrors.ErrCodeInvalidConfig, "fetch_timeout must be positive")
	}
	return nil
}
