package glyph

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// RequiredKeys lists the fields every registry record must carry, in the
// order they are reported when missing.
var RequiredKeys = []string{"name", "kind", "contract", "network", "repo", "description"}

// ErrInvalid is returned by Normalize for records that fail Check.
var ErrInvalid = errors.New("invalid glyph entry")

// Glyph is a validated, normalized registry entry. All fields are non-empty.
type Glyph struct {
	Name        string `json:"name" yaml:"name"`
	Kind        string `json:"kind" yaml:"kind"`
	Contract    string `json:"contract" yaml:"contract"`
	Network     string `json:"network" yaml:"network"`
	Repo        string `json:"repo" yaml:"repo"`
	Description string `json:"description" yaml:"description"`
}

// Problem describes why a raw record was rejected.
type Problem struct {
	Index      int      // 1-based position in the registry sequence
	Label      string   // trimmed name, or "entry N" when the name is missing
	Missing    []string // required keys that are absent or blank
	NotMapping bool     // the record is not a mapping at all
}

// String formats the problem the way it appears in aggregated errors.
func (p Problem) String() string {
	if p.NotMapping {
		return fmt.Sprintf("Entry %d is not a mapping", p.Index)
	}
	return fmt.Sprintf("%s: missing required keys: %s", p.Label, strings.Join(p.Missing, ", "))
}

// Check reports whether raw is a valid record. For mappings it also returns
// the required keys that are missing; for anything else missing is nil.
func Check(raw any) (missing []string, ok bool) {
	m, isMap := asMap(raw)
	if !isMap {
		return nil, false
	}
	for _, key := range RequiredKeys {
		if field(m, key) == "" {
			missing = append(missing, key)
		}
	}
	return missing, len(missing) == 0
}

// Diagnose builds the Problem for the record at the given 1-based index.
// It should only be called for records that fail Check.
func Diagnose(index int, raw any) Problem {
	m, isMap := asMap(raw)
	if !isMap {
		return Problem{Index: index, NotMapping: true}
	}
	missing, _ := Check(raw)
	label := field(m, "name")
	if label == "" {
		label = fmt.Sprintf("entry %d", index)
	}
	return Problem{Index: index, Label: label, Missing: missing}
}

// Normalize converts a valid raw record into a Glyph, applying the
// description rule of the given policy.
func Normalize(raw any, p Policy) (Glyph, error) {
	if missing, ok := Check(raw); !ok {
		if missing == nil {
			return Glyph{}, fmt.Errorf("%w: not a mapping", ErrInvalid)
		}
		return Glyph{}, fmt.Errorf("%w: missing %s", ErrInvalid, strings.Join(missing, ", "))
	}
	m, _ := asMap(raw)
	return Glyph{
		Name:        field(m, "name"),
		Kind:        strings.ToLower(field(m, "kind")),
		Contract:    field(m, "contract"),
		Network:     field(m, "network"),
		Repo:        field(m, "repo"),
		Description: p.Description.Apply(ToString(m["description"])),
	}, nil
}

// ToString converts a loosely typed YAML value to its string form.
// nil converts to the empty string.
func ToString(v any) string {
	if v == nil {
		return ""
	}
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	return fmt.Sprint(v)
}

func field(m map[string]any, key string) string {
	return strings.TrimSpace(ToString(m[key]))
}

// asMap accepts both decoded mapping shapes. yaml.v3 produces map[any]any
// when a mapping has non-string keys.
func asMap(raw any) (map[string]any, bool) {
	switch m := raw.(type) {
	case map[string]any:
		return m, m != nil
	case map[any]any:
		if m == nil {
			return nil, false
		}
		out := make(map[string]any, len(m))
		for k, v := range m {
			out[ToString(k)] = v
		}
		return out, true
	default:
		return nil, false
	}
}
