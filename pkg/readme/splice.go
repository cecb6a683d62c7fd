// Package readme keeps a generated glyph table inside a Markdown document.
//
// The document owns everything outside a marker span; the generator owns
// everything between the first start marker and the first end marker after
// it. [Splice] replaces that span, and [Updater] drives the whole README
// path: load registry, run the strict pipeline, splice, then write, check,
// or diff.
//
// Nothing is written unless every step succeeded.
package readme

import (
	"strings"

	gterrors "github.com/inshell-art/glyphtable/pkg/errors"
)

// Markers delimit the generated span.
type Markers struct {
	Start string
	End   string
}

// DefaultMarkers are the HTML comments used in the README.
var DefaultMarkers = Markers{
	Start: "<!-- GLYPH_TABLE_START -->",
	End:   "<!-- GLYPH_TABLE_END -->",
}

// Splice replaces the span between the markers (inclusive) with
// start + "\n\n" + block + "\n" + end. Text before the first start marker
// and after the matching end marker is preserved byte for byte.
func Splice(content, block string, m Markers) (string, error) {
	i := strings.Index(content, m.Start)
	if i < 0 {
		return "", missingMarkers(m)
	}
	afterStart := i + len(m.Start)
	j := strings.Index(content[afterStart:], m.End)
	if j < 0 {
		return "", missingMarkers(m)
	}
	suffix := content[afterStart+j+len(m.End):]

	var b strings.Builder
	b.Grow(len(content) + len(block))
	b.WriteString(content[:i])
	b.WriteString(m.Start)
	b.WriteString("\n\n")
	b.WriteString(block)
	b.WriteString("\n")
	b.WriteString(m.End)
	b.WriteString(suffix)
	return b.String(), nil
}

func missingMarkers(m Markers) error {
	return gterrors.New(gterrors.ErrCodeMissingMarkers,
		"Could not find table markers in README (%s/%s)", m.Start, m.End)
}
