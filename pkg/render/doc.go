// Package render turns ordered glyph groups into output documents.
//
// # Overview
//
// Every output format implements [Renderer]. A renderer also owns the
// normalization [glyph.Policy] of its format, so the pipeline normalizes
// records with the rules of the format it is about to produce:
//
//   - [HTML]: sections and tables for the viewer page, escaped with
//     html/template; [Page] wraps a fragment in a full document
//   - [Markdown]: README table blocks with pipe-escaped cells
//   - [JSON]: machine-readable export of the same groups
//
// # Usage
//
//	r := render.NewMarkdown()
//	groups := glyph.GroupByKind(glyphs)
//	block, err := r.Render(groups)
//
// Renderers are stateless and safe for concurrent use.
package render
