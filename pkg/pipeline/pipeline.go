// Package pipeline turns raw registry records into rendered output.
//
// Both entry points (the HTML viewer and the README generator) run the same
// stages:
//
//  1. Validate: check every record for the required fields
//  2. Normalize: trim, lowercase kind, tidy description (per renderer policy)
//  3. Group: partition by kind, order groups, order members by name
//  4. Render: hand the groups to a [render.Renderer]
//
// The stages are pure; I/O (fetching, file writes) lives in the callers.
//
// # Modes
//
// Invalid records are handled according to [Mode]:
//
//   - [Lenient]: every invalid record, including null elements, is skipped
//     with a "Skipping invalid glyph entry" warning and rendering continues
//   - [Strict]: null elements are skipped silently; any other invalid record
//     aborts the run with an INVALID_ENTRY error listing every problem
//
// # Usage
//
//	runner := pipeline.NewRunner(logger, hooks)
//	result, err := runner.Execute(ctx, records, render.NewMarkdown(), pipeline.Strict)
//	if err != nil {
//	    return err
//	}
//	os.Stdout.Write(result.Output)
package pipeline

import (
	"time"

	"github.com/inshell-art/glyphtable/pkg/glyph"
)

// Mode selects how invalid records are treated.
type Mode int

const (
	// Lenient skips invalid records with a warning.
	Lenient Mode = iota
	// Strict aborts on the first pass if any non-null record is invalid.
	Strict
)

// String returns the mode name used in logs and hooks.
func (m Mode) String() string {
	switch m {
	case Lenient:
		return "lenient"
	case Strict:
		return "strict"
	default:
		return "unknown"
	}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Groups are the ordered glyph groups that were rendered.
	Groups []glyph.Group

	// Skipped lists records dropped in lenient mode.
	Skipped []glyph.Problem

	// Output is the rendered document.
	Output []byte

	// Stats contains counts and timing.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Total        int           // records in the registry sequence
	Valid        int           // records that passed validation
	Skipped      int           // records dropped (lenient) or ignored nulls (strict)
	ValidateTime time.Duration // validate + normalize + group
	RenderTime   time.Duration
}

// Count returns the number of glyphs across all groups.
func (r *Result) Count() int {
	n := 0
	for _, g := range r.Groups {
		n += len(g.Glyphs)
	}
	return n
}
