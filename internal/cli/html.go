package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	gterrors "github.com/inshell-art/glyphtable/pkg/errors"
	"github.com/inshell-art/glyphtable/pkg/registry"
	"github.com/inshell-art/glyphtable/pkg/viewer"
)

// htmlCommand creates the html command.
func (c *CLI) htmlCommand() *cobra.Command {
	var (
		output  string
		file    string
		url     string
		title   string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "html",
		Short: "Render the glyph registry as an HTML viewer page",
		Long: `Render the glyph registry as a standalone HTML page.

Invalid entries are skipped with a warning. If the registry cannot be loaded
the page still gets written, showing the load failure message, and the
command exits non-zero.`,
		Example: `  # Render the published registry to stdout
  glyphtable html > glyphs.html

  # Render a local file
  glyphtable html --file glyph.yml -o glyphs.html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var src viewer.Source
			location := url
			if file != "" {
				src = viewer.SourceFunc(func(_ context.Context, path string) ([]byte, error) {
					return registry.LoadFile(path)
				})
				location = file
			} else {
				if location == "" {
					location = c.Config.RegistryURL
				}
				if err := gterrors.ValidateURL(location); err != nil {
					return err
				}
				store := c.newFileCache(noCache)
				defer store.Close()
				src = c.newFetcher(store)
			}

			v := viewer.New(src, location, c.newRunner(), c.Logger)
			if title != "" {
				v.Title = title
			}

			var spinner *Spinner
			if file == "" {
				spinner = newSpinner(ctx, "Fetching "+location)
				spinner.Start()
			}
			page, err := v.Render(ctx)
			if spinner != nil {
				spinner.Stop()
			}
			if err != nil {
				return err
			}

			if output == "" {
				if _, err := cmd.OutOrStdout().Write(page.HTML); err != nil {
					return err
				}
			} else {
				if err := os.WriteFile(output, page.HTML, 0o644); err != nil {
					return gterrors.Wrap(gterrors.ErrCodeInternal, err, "write %s", output)
				}
			}

			if page.Err != nil {
				printWarning("Wrote failure page: %s", gterrors.UserMessage(page.Err))
				return page.Err
			}

			printSuccess("Rendered glyph viewer")
			printCounts(page.Result.Stats.Valid, len(page.Result.Groups), page.Result.Stats.Skipped)
			if output != "" {
				printFile(output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "read a local registry file instead of fetching")
	cmd.Flags().StringVar(&url, "url", "", "registry URL (default from config)")
	cmd.Flags().StringVar(&title, "title", "", "page title (default \""+viewer.DefaultTitle+"\")")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the fetch cache")
	cmd.MarkFlagsMutuallyExclusive("file", "url")

	return cmd
}
