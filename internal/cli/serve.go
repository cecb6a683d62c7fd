package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/inshell-art/glyphtable/internal/server"
	"github.com/inshell-art/glyphtable/pkg/cache"
	gterrors "github.com/inshell-art/glyphtable/pkg/errors"
	"github.com/inshell-art/glyphtable/pkg/viewer"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var addr, url string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the glyph viewer over HTTP",
		Long: `Serve the glyph viewer page, rendered from the registry on every request.

Fetches are revalidated with ETags against an in-memory cache, or against
Redis when redis_addr is configured.

Endpoints:
  /             HTML viewer page
  /glyphs.json  grouped glyphs as JSON
  /glyphs.yml   the raw registry document
  /healthz      health and version`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if addr == "" {
				addr = c.Config.ListenAddr
			}
			if url == "" {
				url = c.Config.RegistryURL
			}
			if err := gterrors.ValidateURL(url); err != nil {
				return err
			}

			store, err := c.serverCache(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			v := viewer.New(c.newFetcher(store), url, c.newRunner(), c.Logger)
			srv := server.New(v, c.Logger)

			printInfo("Serving glyph viewer on %s", StyleValue.Render(addr))
			printKeyValue("registry", url)

			err = srv.ListenAndServe(ctx, addr)
			if errors.Is(err, context.Canceled) {
				printDetail("Server stopped")
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, \":8080\")")
	cmd.Flags().StringVar(&url, "url", "", "registry URL (default from config)")

	return cmd
}

// serverCache returns the Redis cache when one is configured and an
// in-memory cache otherwise.
func (c *CLI) serverCache(ctx context.Context) (cache.Cache, error) {
	if c.Config.RedisAddr == "" {
		return cache.NewMemoryCache(cache.DefaultCleanupInterval), nil
	}
	rc, err := cache.NewRedisCache(ctx, c.Config.RedisAddr)
	if err != nil {
		return nil, gterrors.Wrap(gterrors.ErrCodeInvalidConfig, err, "connect to redis at %s", c.Config.RedisAddr)
	}
	c.Logger.Info("using redis cache", "addr", c.Config.RedisAddr)
	return cache.NewNamespaced(rc, appName+":"), nil
}
