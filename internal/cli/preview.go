package cli

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	gterrors "github.com/inshell-art/glyphtable/pkg/errors"
	"github.com/inshell-art/glyphtable/pkg/pipeline"
	"github.com/inshell-art/glyphtable/pkg/registry"
	"github.com/inshell-art/glyphtable/pkg/render"
)

const defaultPreviewWidth = 100

// previewCommand creates the preview command.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		file  string
		width int
		raw   bool
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show the README glyph table in the terminal",
		Long: `Render the glyph table that "readme" would write and display it in the
terminal. The registry is validated the same way, so an invalid entry fails
the preview too.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if file == "" {
				file = c.Config.RegistryFile
			}

			data, err := registry.LoadFile(file)
			if err != nil {
				return err
			}
			records, err := registry.Decode(data)
			if err != nil {
				return err
			}
			result, err := c.newRunner().Execute(ctx, records, render.NewMarkdown(), pipeline.Strict)
			if err != nil {
				return err
			}

			out := string(result.Output)
			if !raw {
				if out, err = renderTerminal(out, width); err != nil {
					return err
				}
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "registry file (default from config)")
	cmd.Flags().IntVar(&width, "width", defaultPreviewWidth, "word wrap width")
	cmd.Flags().BoolVar(&raw, "raw", false, "print the Markdown source instead of rendering it")

	return cmd
}

// renderTerminal styles Markdown for the terminal.
func renderTerminal(md string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", gterrors.Wrap(gterrors.ErrCodeInternal, err, "create terminal renderer")
	}
	out, err := r.Render(md)
	if err != nil {
		return "", gterrors.Wrap(gterrors.ErrCodeInternal, err, "render markdown")
	}
	return out, nil
}
