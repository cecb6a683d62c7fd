package glyph

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func validRecord() map[string]any {
	return map[string]any{
		"name":        "Orb",
		"kind":        "SVG",
		"contract":    "0xabc123def4567890",
		"network":     "main",
		"repo":        "https://x/y",
		"description": "a glyph",
	}
}

func TestCheck(t *testing.T) {
	with := func(key string, v any) map[string]any {
		r := validRecord()
		r[key] = v
		return r
	}
	without := func(key string) map[string]any {
		r := validRecord()
		delete(r, key)
		return r
	}

	tests := []struct {
		name        string
		raw         any
		wantOK      bool
		wantMissing []string
	}{
		{"valid", validRecord(), true, nil},
		{"nil", nil, false, nil},
		{"string", "orb", false, nil},
		{"number", 42, false, nil},
		{"list", []any{"a"}, false, nil},
		{"missing network", without("network"), false, []string{"network"}},
		{"null network", with("network", nil), false, []string{"network"}},
		{"empty description", with("description", ""), false, []string{"description"}},
		{"whitespace repo", with("repo", "  \t\n"), false, []string{"repo"}},
		{"numeric name is fine", with("name", 7), true, nil},
		{"boolean network is fine", with("network", false), true, nil},
		{"empty mapping", map[string]any{}, false, RequiredKeys},
		{"any-keyed mapping", map[any]any{
			"name": "a", "kind": "b", "contract": "c",
			"network": "d", "repo": "e", "description": "f",
		}, true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			missing, ok := Check(tt.raw)
			if ok != tt.wantOK {
				t.Errorf("Check() ok = %v, want %v", ok, tt.wantOK)
			}
			if !reflect.DeepEqual(missing, tt.wantMissing) {
				t.Errorf("Check() missing = %v, want %v", missing, tt.wantMissing)
			}
		})
	}
}

func TestDiagnose(t *testing.T) {
	t.Run("named", func(t *testing.T) {
		r := validRecord()
		r["name"] = "  Orb "
		delete(r, "network")
		delete(r, "repo")
		p := Diagnose(3, r)
		if got, want := p.String(), "Orb: missing required keys: network, repo"; got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	})

	t.Run("unnamed", func(t *testing.T) {
		r := validRecord()
		r["name"] = " "
		p := Diagnose(2, r)
		if got, want := p.String(), "entry 2: missing required keys: name"; got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	})

	t.Run("not a mapping", func(t *testing.T) {
		p := Diagnose(5, "scalar")
		if !p.NotMapping {
			t.Error("NotMapping = false, want true")
		}
		if got, want := p.String(), "Entry 5 is not a mapping"; got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	})
}

func TestNormalize(t *testing.T) {
	raw := map[string]any{
		"name":        "  Orb  ",
		"kind":        " SVG\t",
		"contract":    " 0xabc ",
		"network":     " main ",
		"repo":        " https://x/y ",
		"description": "  a \n\n glyph   with   gaps ",
	}

	g, err := Normalize(raw, HTMLPolicy)
	if err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}
	want := Glyph{
		Name:        "Orb",
		Kind:        "svg",
		Contract:    "0xabc",
		Network:     "main",
		Repo:        "https://x/y",
		Description: "a glyph with gaps",
	}
	if g != want {
		t.Errorf("Normalize() = %+v, want %+v", g, want)
	}
}

func TestNormalizeInvalid(t *testing.T) {
	for _, raw := range []any{nil, "x", map[string]any{"name": "a"}} {
		if _, err := Normalize(raw, MarkdownPolicy); !errors.Is(err, ErrInvalid) {
			t.Errorf("Normalize(%v) error = %v, want ErrInvalid", raw, err)
		}
	}
}

func TestNormalizeDescriptionPolicies(t *testing.T) {
	r := validRecord()
	r["description"] = strings.Repeat("x", 200)

	h, _ := Normalize(r, HTMLPolicy)
	if n := len([]rune(h.Description)); n != DescriptionMax {
		t.Errorf("html description length = %d, want %d", n, DescriptionMax)
	}
	if !strings.HasSuffix(h.Description, "…") {
		t.Errorf("html description = %q, want single-character ellipsis", h.Description)
	}

	m, _ := Normalize(r, MarkdownPolicy)
	if want := strings.Repeat("x", 137) + "..."; m.Description != want {
		t.Errorf("markdown description = %q, want %q", m.Description, want)
	}
}

func TestToString(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"abc", "abc"},
		{12, "12"},
		{1.5, "1.5"},
		{true, "true"},
		{[]any{1}, "[1]"},
	}
	for _, tt := range tests {
		if got := ToString(tt.in); got != tt.want {
			t.Errorf("ToString(%#v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
