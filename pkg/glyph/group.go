package glyph

import (
	"slices"
	"sort"
	"strings"
)

// KindOrder is the display priority of well-known kinds. Kinds not listed
// here follow in alphabetical order.
var KindOrder = []string{"svg", "utility", "palette", "layout", "other"}

// Group is the set of glyphs sharing one kind.
type Group struct {
	Kind   string
	Glyphs []Glyph
}

// GroupByKind partitions glyphs by kind and returns the groups in display
// order, each sorted by name. The input slice is not modified.
func GroupByKind(glyphs []Glyph) []Group {
	byKind := make(map[string][]Glyph)
	for _, g := range glyphs {
		byKind[g.Kind] = append(byKind[g.Kind], g)
	}

	kinds := make([]string, 0, len(byKind))
	for k := range byKind {
		kinds = append(kinds, k)
	}

	groups := make([]Group, 0, len(kinds))
	for _, k := range OrderKinds(kinds) {
		members := byKind[k]
		SortByName(members)
		groups = append(groups, Group{Kind: k, Glyphs: members})
	}
	return groups
}

// OrderKinds returns kinds sorted for display: entries of KindOrder first,
// in that order, then the rest by byte-wise comparison.
func OrderKinds(kinds []string) []string {
	out := slices.Clone(kinds)
	rank := func(k string) int {
		if i := slices.Index(KindOrder, k); i >= 0 {
			return i
		}
		return len(KindOrder)
	}
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := rank(out[i]), rank(out[j])
		if ri != rj {
			return ri < rj
		}
		return out[i] < out[j]
	})
	return out
}

// SortByName sorts glyphs in place by lowercased name. Equal names keep
// their relative order.
func SortByName(glyphs []Glyph) {
	sort.SliceStable(glyphs, func(i, j int) bool {
		return strings.ToLower(glyphs[i].Name) < strings.ToLower(glyphs[j].Name)
	})
}
