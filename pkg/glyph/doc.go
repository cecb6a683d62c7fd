// Package glyph defines the glyph registry record and the pure validation,
// normalization and grouping rules shared by every output format.
//
// # Records
//
// A registry document decodes into loosely typed values ([]any). Each element
// is a raw record; it is valid when it is a mapping whose required keys
// ([RequiredKeys]) are all present and non-empty after string conversion and
// whitespace trimming. Valid records normalize into [Glyph] values.
//
// # Policies
//
// The HTML viewer and the README generator historically disagree on how to
// shorten contract addresses and truncate descriptions. Both behaviors are
// kept as named policies, [HTMLPolicy] and [MarkdownPolicy]:
//
//	g, err := glyph.Normalize(raw, glyph.MarkdownPolicy)
//	short := glyph.MarkdownPolicy.Contract.Apply(g.Contract)
//
// # Grouping
//
// [GroupByKind] partitions glyphs by kind, orders groups by [KindOrder]
// followed by unknown kinds alphabetically, and sorts each group by name
// without regard to case.
package glyph
