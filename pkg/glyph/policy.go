package glyph

import "strings"

// DescriptionMax is the maximum description length, in characters, for both
// output formats.
const DescriptionMax = 140

// Policy bundles the display rules of one output format.
type Policy struct {
	Name        string
	Contract    ShortenPolicy
	Description DescriptionPolicy
}

// ShortenPolicy abbreviates contract addresses for display.
//
// A value is left unchanged when it lacks Prefix (if Prefix is set) or when
// its length is at most MaxLen. Otherwise it becomes the first Head
// characters, Ellipsis, and the last Tail characters.
type ShortenPolicy struct {
	Prefix   string
	MaxLen   int
	Head     int
	Tail     int
	Ellipsis string
}

// Apply shortens addr according to the policy.
func (p ShortenPolicy) Apply(addr string) string {
	s := strings.TrimSpace(addr)
	if p.Prefix != "" && !strings.HasPrefix(s, p.Prefix) {
		return s
	}
	r := []rune(s)
	if len(r) <= p.MaxLen || len(r) < p.Head+p.Tail {
		return s
	}
	return string(r[:p.Head]) + p.Ellipsis + string(r[len(r)-p.Tail:])
}

// DescriptionPolicy collapses whitespace and truncates long descriptions.
//
// Truncated output is exactly Max characters long unless TrimRight removes
// whitespace before the ellipsis.
type DescriptionPolicy struct {
	Max       int
	Ellipsis  string
	TrimRight bool
}

// Apply collapses every whitespace run in desc to a single space, trims the
// ends and truncates the result.
func (p DescriptionPolicy) Apply(desc string) string {
	clean := strings.Join(strings.Fields(desc), " ")
	r := []rune(clean)
	if len(r) <= p.Max {
		return clean
	}
	keep := max(p.Max-len([]rune(p.Ellipsis)), 0)
	cut := string(r[:keep])
	if p.TrimRight {
		cut = strings.TrimRight(cut, " ")
	}
	return cut + p.Ellipsis
}

// HTMLPolicy is the rule set of the browser viewer.
var HTMLPolicy = Policy{
	Name: "html",
	Contract: ShortenPolicy{
		Prefix:   "0x",
		MaxLen:   12,
		Head:     8,
		Tail:     6,
		Ellipsis: "…",
	},
	Description: DescriptionPolicy{
		Max:      DescriptionMax,
		Ellipsis: "…",
	},
}

// MarkdownPolicy is the rule set of the README table generator.
var MarkdownPolicy = Policy{
	Name: "markdown",
	Contract: ShortenPolicy{
		MaxLen:   13,
		Head:     6,
		Tail:     5,
		Ellipsis: "...",
	},
	Description: DescriptionPolicy{
		Max:       DescriptionMax,
		Ellipsis:  "...",
		TrimRight: true,
	},
}
