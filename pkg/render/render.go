package render

import (
	"fmt"
	"sort"

	"github.com/inshell-art/glyphtable/pkg/glyph"
)

// Format names accepted by New.
const (
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// Renderer produces one output format from ordered glyph groups.
type Renderer interface {
	// Format returns the format name (e.g. "html").
	Format() string

	// Policy returns the normalization rules records must be processed
	// with before they are handed to Render.
	Policy() glyph.Policy

	// Render assembles the output for groups, already in display order.
	Render(groups []glyph.Group) ([]byte, error)
}

var constructors = map[string]func() Renderer{
	FormatHTML:     func() Renderer { return NewHTML() },
	FormatMarkdown: func() Renderer { return NewMarkdown() },
	FormatJSON:     func() Renderer { return NewJSON(glyph.HTMLPolicy) },
}

// New returns the renderer registered for format.
func New(format string) (Renderer, error) {
	ctor, ok := constructors[format]
	if !ok {
		return nil, fmt.Errorf("invalid format: %q (must be one of: %v)", format, Formats())
	}
	return ctor(), nil
}

// Formats lists the registered format names in sorted order.
func Formats() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
