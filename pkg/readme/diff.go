package readme

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// diffContext is the number of unchanged lines shown around each change.
const diffContext = 2

// LineDiff returns a line-oriented diff of old and updated: removed lines start
// with "-", added lines with "+", context lines with a space. Runs of
// unchanged lines beyond the context are elided as "...". Identical inputs
// yield the empty string.
func LineDiff(old, updated string) string {
	if old == updated {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(old, updated)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var out strings.Builder
	for i, d := range diffs {
		text := splitLines(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			writeLines(&out, "-", text)
		case diffmatchpatch.DiffInsert:
			writeLines(&out, "+", text)
		case diffmatchpatch.DiffEqual:
			writeContext(&out, text, i > 0, i < len(diffs)-1)
		}
	}
	return out.String()
}

// writeContext emits the tail of an equal run after a change and the head
// of it before the next change.
func writeContext(out *strings.Builder, lines []string, afterChange, beforeChange bool) {
	if len(lines) <= 2*diffContext && afterChange && beforeChange {
		writeLines(out, " ", lines)
		return
	}
	var head, tail []string
	if afterChange {
		head = lines[:min(diffContext, len(lines))]
	}
	if beforeChange {
		tail = lines[max(len(lines)-diffContext, len(head)):]
	}
	writeLines(out, " ", head)
	if len(head)+len(tail) < len(lines) {
		out.WriteString("...\n")
	}
	writeLines(out, " ", tail)
}

func writeLines(out *strings.Builder, prefix string, lines []string) {
	for _, l := range lines {
		out.WriteString(prefix)
		out.WriteString(l)
		out.WriteString("\n")
	}
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
