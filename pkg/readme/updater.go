package readme

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	gterrors "github.com/inshell-art/glyphtable/pkg/errors"
	"github.com/inshell-art/glyphtable/pkg/observability"
	"github.com/inshell-art/glyphtable/pkg/pipeline"
	"github.com/inshell-art/glyphtable/pkg/registry"
	"github.com/inshell-art/glyphtable/pkg/render"
)

// Updater regenerates the glyph table of a README from a local registry.
type Updater struct {
	RegistryPath string
	ReadmePath   string
	Markers      Markers
	Runner       *pipeline.Runner
	Logger       *log.Logger
}

// Plan is a computed README update that has not been written yet.
type Plan struct {
	Current string
	Updated string
	Result  *pipeline.Result
}

// Changed reports whether writing the plan would modify the README.
func (p *Plan) Changed() bool { return p.Current != p.Updated }

// Diff returns the line diff between the current and updated README.
func (p *Plan) Diff() string { return LineDiff(p.Current, p.Updated) }

// NewUpdater creates an Updater with DefaultMarkers. A nil runner gets a
// default Runner logging to logger.
func NewUpdater(registryPath, readmePath string, runner *pipeline.Runner, logger *log.Logger) *Updater {
	if logger == nil {
		logger = log.Default()
	}
	if runner == nil {
		runner = pipeline.NewRunner(logger, observability.Hooks{})
	}
	return &Updater{
		RegistryPath: registryPath,
		ReadmePath:   readmePath,
		Markers:      DefaultMarkers,
		Runner:       runner,
		Logger:       logger,
	}
}

// Plan loads the registry and README and computes the updated README.
// The registry must validate in strict mode.
func (u *Updater) Plan(ctx context.Context) (*Plan, error) {
	data, err := registry.LoadFile(u.RegistryPath)
	if err != nil {
		return nil, err
	}
	records, err := registry.Decode(data)
	if err != nil {
		return nil, err
	}

	result, err := u.Runner.Execute(ctx, records, render.NewMarkdown(), pipeline.Strict)
	if err != nil {
		return nil, err
	}

	current, err := os.ReadFile(u.ReadmePath)
	if os.IsNotExist(err) {
		return nil, gterrors.Wrap(gterrors.ErrCodeFileNotFound, err, "README %s not found", u.ReadmePath)
	}
	if err != nil {
		return nil, gterrors.Wrap(gterrors.ErrCodeInvalidInput, err, "read README %s", u.ReadmePath)
	}

	updated, err := Splice(string(current), string(result.Output), u.Markers)
	if err != nil {
		return nil, err
	}
	return &Plan{Current: string(current), Updated: updated, Result: result}, nil
}

// Update rewrites the README glyph table. It returns whether the file
// content changed; an unchanged README is not rewritten.
func (u *Updater) Update(ctx context.Context) (bool, error) {
	plan, err := u.Plan(ctx)
	if err != nil {
		return false, err
	}
	if !plan.Changed() {
		u.Logger.Debug("README already up to date", "path", u.ReadmePath)
		return false, nil
	}
	if err := writeFileAtomic(u.ReadmePath, []byte(plan.Updated)); err != nil {
		return false, gterrors.Wrap(gterrors.ErrCodeInternal, err, "write README %s", u.ReadmePath)
	}
	u.Logger.Info("updated README", "path", u.ReadmePath, "glyphs", plan.Result.Stats.Valid)
	return true, nil
}

// Check returns a STALE_OUTPUT error if the README differs from what
// Update would write. It never writes.
func (u *Updater) Check(ctx context.Context) (*Plan, error) {
	plan, err := u.Plan(ctx)
	if err != nil {
		return nil, err
	}
	if plan.Changed() {
		return plan, gterrors.New(gterrors.ErrCodeStaleOutput,
			"%s glyph table is out of date with %s", filepath.Base(u.ReadmePath), filepath.Base(u.RegistryPath))
	}
	return plan, nil
}

// writeFileAtomic replaces path with data, keeping its permissions.
func writeFileAtomic(path string, data []byte) error {
	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
