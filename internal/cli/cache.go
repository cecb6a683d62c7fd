package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inshell-art/glyphtable/pkg/cache"
	gterrors "github.com/inshell-art/glyphtable/pkg/errors"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the registry fetch cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached registry responses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cache.DefaultDir()
			if err != nil {
				return gterrors.Wrap(gterrors.ErrCodeInternal, err, "get cache dir")
			}

			fc, err := cache.NewFileCache(dir)
			if err != nil {
				return gterrors.Wrap(gterrors.ErrCodeInternal, err, "open cache dir %s", dir)
			}
			count, err := fc.Clear()
			if err != nil {
				return gterrors.Wrap(gterrors.ErrCodeInternal, err, "clear cache dir %s", dir)
			}

			if count == 0 {
				printInfo("Cache is empty")
				return nil
			}
			printSuccess("Cleared %d cached entries", count)
			printDetail("Directory: %s", dir)
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cache.DefaultDir()
			if err != nil {
				return gterrors.Wrap(gterrors.ErrCodeInternal, err, "get cache dir")
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}
}
