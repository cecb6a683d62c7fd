package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/inshell-art/glyphtable/internal/config"
	"github.com/inshell-art/glyphtable/pkg/buildinfo"
	"github.com/inshell-art/glyphtable/pkg/cache"
	"github.com/inshell-art/glyphtable/pkg/httputil"
	"github.com/inshell-art/glyphtable/pkg/pipeline"
	"github.com/inshell-art/glyphtable/pkg/readme"
	"github.com/inshell-art/glyphtable/pkg/registry"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "glyphtable"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Config is loaded before any subcommand runs.
	Config config.Config

	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Glyphtable renders the glyph registry as HTML and README tables",
		Long: `Glyphtable validates a glyph registry (a YAML list of glyph records),
groups it by kind and renders it either as an HTML viewer page or as the
Markdown glyph table embedded in a README between marker comments.`,
		Version:      buildinfo.Resolve().Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadDotEnv()
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			c.Config = cfg
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			c.Logger.Debug("loaded config", "registry", cfg.RegistryFile, "readme", cfg.ReadmeFile, "url", cfg.RegistryURL)
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default "+config.DefaultFile+" if present)")

	root.AddCommand(c.readmeCommand())
	root.AddCommand(c.htmlCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Component Factories
// =============================================================================

// newRunner creates a pipeline runner reporting to the CLI logger.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger, c.hooks())
}

// newUpdater creates a README updater from the loaded config.
func (c *CLI) newUpdater() *readme.Updater {
	u := readme.NewUpdater(c.Config.RegistryFile, c.Config.ReadmeFile, c.newRunner(), c.Logger)
	u.Markers = readme.Markers{Start: c.Config.StartMarker, End: c.Config.EndMarker}
	return u
}

// newFetcher creates a registry fetcher backed by store.
func (c *CLI) newFetcher(store cache.Cache) *registry.Fetcher {
	hooks := c.hooks()
	client := httputil.NewClient(
		httputil.WithTimeout(c.Config.FetchTimeout),
		httputil.WithHooks(hooks.HTTP),
	)
	return registry.NewFetcher(client, store, c.Config.CacheTTL, c.Logger, hooks)
}

// newFileCache opens the per-user fetch cache. Failing to open it is not
// fatal; fetches then run uncached.
func (c *CLI) newFileCache(noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	dir, err := cache.DefaultDir()
	if err != nil {
		c.Logger.Debug("no cache directory", "err", err)
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Warn("cache disabled", "dir", dir, "err", err)
		return cache.NewNullCache()
	}
	return fc
}
