package render

import (
	"encoding/json"

	"github.com/inshell-art/glyphtable/pkg/glyph"
)

// JSON renders glyph groups as a JSON document for programmatic consumers.
type JSON struct {
	policy glyph.Policy
}

// NewJSON creates a JSON renderer that normalizes with p.
func NewJSON(p glyph.Policy) *JSON {
	return &JSON{policy: p}
}

// Format returns "json".
func (r *JSON) Format() string { return FormatJSON }

// Policy returns the policy the renderer was created with.
func (r *JSON) Policy() glyph.Policy { return r.policy }

type jsonOutput struct {
	Count  int         `json:"count"`
	Groups []jsonGroup `json:"groups"`
}

type jsonGroup struct {
	Kind   string      `json:"kind"`
	Glyphs []jsonGlyph `json:"glyphs"`
}

type jsonGlyph struct {
	glyph.Glyph
	ContractShort string `json:"contract_short"`
}

// Render returns the indented JSON document for groups.
func (r *JSON) Render(groups []glyph.Group) ([]byte, error) {
	out := jsonOutput{Groups: make([]jsonGroup, 0, len(groups))}
	for _, g := range groups {
		jg := jsonGroup{Kind: g.Kind, Glyphs: make([]jsonGlyph, 0, len(g.Glyphs))}
		for _, gl := range g.Glyphs {
			jg.Glyphs = append(jg.Glyphs, jsonGlyph{
				Glyph:         gl,
				ContractShort: r.policy.Contract.Apply(gl.Contract),
			})
		}
		out.Count += len(g.Glyphs)
		out.Groups = append(out.Groups, jg)
	}
	return json.MarshalIndent(out, "", "  ")
}
