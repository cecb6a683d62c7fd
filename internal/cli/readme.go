package cli

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/inshell-art/glyphtable/internal/watcher"
	gterrors "github.com/inshell-art/glyphtable/pkg/errors"
	"github.com/inshell-art/glyphtable/pkg/readme"
)

// readmeCommand creates the readme command.
func (c *CLI) readmeCommand() *cobra.Command {
	var check, diff, watch bool

	cmd := &cobra.Command{
		Use:   "readme",
		Short: "Regenerate the glyph table in the README",
		Long: `Regenerate the Markdown glyph table between the table markers of the README.

The registry must validate completely: any invalid entry aborts the update
and the README is left untouched.`,
		Example: `  # Update README.md from glyph.yml
  glyphtable readme

  # Fail in CI when the table is out of date
  glyphtable readme --check --diff

  # Regenerate whenever glyph.yml changes
  glyphtable readme --watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			u := c.newUpdater()
			switch {
			case check:
				return runReadmeCheck(ctx, u, diff)
			case watch:
				return c.runReadmeWatch(ctx, u, diff)
			}
			return runReadmeUpdate(ctx, u, diff)
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "fail if the README table is out of date instead of writing it")
	cmd.Flags().BoolVar(&diff, "diff", false, "print the changes to the README")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "regenerate whenever the registry file changes")
	cmd.MarkFlagsMutuallyExclusive("check", "watch")

	return cmd
}

func runReadmeUpdate(ctx context.Context, u *readme.Updater, diff bool) error {
	prog := newProgress(loggerFromContext(ctx))

	if diff {
		plan, err := u.Plan(ctx)
		if err != nil {
			return err
		}
		if plan.Changed() {
			printDiff(plan.Diff())
		}
	}

	changed, err := u.Update(ctx)
	if err != nil {
		return err
	}

	printSuccess("Updated README glyph table from %s", filepath.Base(u.RegistryPath))
	if !changed {
		printDetail("%s already up to date", filepath.Base(u.ReadmePath))
	}
	prog.done("README update finished")
	return nil
}

func runReadmeCheck(ctx context.Context, u *readme.Updater, diff bool) error {
	plan, err := u.Check(ctx)
	if gterrors.Is(err, gterrors.ErrCodeStaleOutput) {
		if diff {
			printDiff(plan.Diff())
		}
		printNextStep("Regenerate it with", appName+" readme")
		return err
	}
	if err != nil {
		return err
	}

	printSuccess("%s glyph table is up to date", filepath.Base(u.ReadmePath))
	printCounts(plan.Result.Stats.Valid, len(plan.Result.Groups), 0)
	return nil
}

// runReadmeWatch updates the README once and then after every change to
// the registry file. Failed updates are reported and watching continues.
// The README itself is not watched since every update writes it.
func (c *CLI) runReadmeWatch(ctx context.Context, u *readme.Updater, diff bool) error {
	cfg := watcher.DefaultConfig(u.RegistryPath)
	cfg.Logger = c.Logger
	w, err := watcher.New(cfg)
	if err != nil {
		return gterrors.Wrap(gterrors.ErrCodeInternal, err, "watch %s", u.RegistryPath)
	}
	defer w.Stop()
	changes, err := w.Start()
	if err != nil {
		return gterrors.Wrap(gterrors.ErrCodeInternal, err, "watch %s", u.RegistryPath)
	}

	update := func() {
		if err := runReadmeUpdate(ctx, u, diff); err != nil {
			printError("%s", gterrors.UserMessage(err))
		}
	}

	update()
	printInfo("Watching %s for changes (Ctrl+C to stop)", u.RegistryPath)
	for {
		select {
		case <-ctx.Done():
			printDetail("Stopped watching")
			return nil
		case _, ok := <-changes:
			if !ok {
				return nil
			}
			update()
		}
	}
}
