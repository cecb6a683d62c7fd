package glyph

import (
	"strings"
	"testing"
)

func TestHTMLContractShortening(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"long address", "0xabc123def4567890", "0xabc123…567890"},
		{"exactly 12", "0x1234567890", "0x1234567890"},
		{"13 chars", "0x12345678901", "0x123456…678901"},
		{"no prefix", "abcdefghijklmnopqrstuvwxyz", "abcdefghijklmnopqrstuvwxyz"},
		{"trimmed", "  0xabc  ", "0xabc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTMLPolicy.Contract.Apply(tt.in); got != tt.want {
				t.Errorf("Apply(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMarkdownContractShortening(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"long address", "0xabc123def4567890", "0xabc1...67890"},
		{"exactly 13", "0x12345678901", "0x12345678901"},
		{"14 chars", "0x123456789012", "0x1234...89012"},
		{"no prefix still shortened", "abcdefghijklmnopqrstuvwxyz", "abcdef...vwxyz"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MarkdownPolicy.Contract.Apply(tt.in); got != tt.want {
				t.Errorf("Apply(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDescriptionPolicy(t *testing.T) {
	long := strings.Repeat("word ", 40) // 200 chars

	tests := []struct {
		name   string
		policy DescriptionPolicy
		in     string
		want   string
	}{
		{"short passes through", HTMLPolicy.Description, "a  b\tc", "a b c"},
		{"exactly max", HTMLPolicy.Description, strings.Repeat("a", 140), strings.Repeat("a", 140)},
		{"html cut", HTMLPolicy.Description, strings.Repeat("a", 141), strings.Repeat("a", 139) + "…"},
		{"markdown cut", MarkdownPolicy.Description, strings.Repeat("a", 141), strings.Repeat("a", 137) + "..."},
		// The first 137 characters end in "wo", so nothing is trimmed.
		{"markdown words", MarkdownPolicy.Description, long, strings.Repeat("word ", 27) + "wo..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.policy.Apply(tt.in); got != tt.want {
				t.Errorf("Apply() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMarkdownTrimsBeforeEllipsis(t *testing.T) {
	// Position 137 falls right after a space.
	in := strings.Repeat("a", 136) + " " + strings.Repeat("b", 10)
	got := MarkdownPolicy.Description.Apply(in)
	want := strings.Repeat("a", 136) + "..."
	if got != want {
		t.Errorf("Apply() = %q, want %q", got, want)
	}
}

func TestPoliciesDiffer(t *testing.T) {
	if HTMLPolicy.Contract == MarkdownPolicy.Contract {
		t.Error("contract policies should differ between formats")
	}
	if HTMLPolicy.Description == MarkdownPolicy.Description {
		t.Error("description policies should differ between formats")
	}
}
