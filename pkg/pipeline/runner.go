package pipeline

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	gterrors "github.com/inshell-art/glyphtable/pkg/errors"
	"github.com/inshell-art/glyphtable/pkg/glyph"
	"github.com/inshell-art/glyphtable/pkg/observability"
	"github.com/inshell-art/glyphtable/pkg/render"
)

// SkipMessage is logged for every record dropped in lenient mode.
const SkipMessage = "Skipping invalid glyph entry"

// InvalidEntriesHeader starts the aggregated strict-mode error.
const InvalidEntriesHeader = "Invalid glyph entries:"

// Runner executes the pipeline.
//
// The Runner is stateless except for the logger and hooks - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner.
type Runner struct {
	Logger *log.Logger
	Hooks  observability.Hooks
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger, hooks observability.Hooks) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Logger: logger,
		Hooks:  hooks.WithDefaults(),
	}
}

// Execute runs validate → normalize → group → render on records.
// The renderer's policy drives normalization.
func (r *Runner) Execute(ctx context.Context, records []any, renderer render.Renderer, mode Mode) (*Result, error) {
	result := &Result{}

	start := time.Now()
	groups, skipped, err := r.Prepare(ctx, records, renderer.Policy(), mode)
	if err != nil {
		return nil, err
	}
	result.Groups = groups
	result.Skipped = skipped
	result.Stats.Total = len(records)
	result.Stats.Valid = result.Count()
	result.Stats.Skipped = len(records) - result.Stats.Valid
	result.Stats.ValidateTime = time.Since(start)

	r.Logger.Debug("validated registry",
		"mode", mode,
		"entries", result.Stats.Total,
		"valid", result.Stats.Valid,
		"groups", len(groups))

	renderStart := time.Now()
	out, err := renderer.Render(groups)
	result.Stats.RenderTime = time.Since(renderStart)
	r.Hooks.Pipeline.OnRender(ctx, renderer.Format(), len(groups), len(out), result.Stats.RenderTime, err)
	if err != nil {
		return nil, gterrors.Wrap(gterrors.ErrCodeInternal, err, "render %s", renderer.Format())
	}
	result.Output = out

	r.Logger.Debug("rendered output",
		"format", renderer.Format(),
		"bytes", len(out),
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Prepare validates, normalizes and groups records without rendering.
// In lenient mode it returns the problems of the skipped records.
func (r *Runner) Prepare(ctx context.Context, records []any, policy glyph.Policy, mode Mode) ([]glyph.Group, []glyph.Problem, error) {
	var (
		valid    []glyph.Glyph
		problems []glyph.Problem
	)

	for i, raw := range records {
		if raw == nil && mode == Strict {
			continue
		}
		g, err := glyph.Normalize(raw, policy)
		if err != nil {
			p := glyph.Diagnose(i+1, raw)
			problems = append(problems, p)
			if mode == Lenient {
				r.Logger.Warn(SkipMessage, "index", p.Index, "problem", p.String())
			}
			continue
		}
		valid = append(valid, g)
	}

	r.Hooks.Pipeline.OnValidate(ctx, mode.String(), len(records), len(valid), len(problems))

	if mode == Strict && len(problems) > 0 {
		return nil, nil, invalidEntries(problems)
	}
	return glyph.GroupByKind(valid), problems, nil
}

// invalidEntries builds the aggregated strict-mode error.
func invalidEntries(problems []glyph.Problem) error {
	lines := make([]string, len(problems))
	for i, p := range problems {
		lines[i] = p.String()
	}
	return gterrors.New(gterrors.ErrCodeInvalidEntry, "%s\n- %s", InvalidEntriesHeader, strings.Join(lines, "\n- "))
}
