package render

import (
	"strings"

	"github.com/inshell-art/glyphtable/pkg/glyph"
)

const (
	markdownHeader    = "| name | network | contract | repo | description |"
	markdownSeparator = "| ---- | ------- | -------- | ---- | ----------- |"
)

// Markdown renders glyph groups as README table blocks: a level-3 heading
// per kind followed by a five-column pipe table.
type Markdown struct {
	policy glyph.Policy
}

// NewMarkdown creates a Markdown renderer using glyph.MarkdownPolicy.
func NewMarkdown() *Markdown {
	return &Markdown{policy: glyph.MarkdownPolicy}
}

// Format returns "markdown".
func (r *Markdown) Format() string { return FormatMarkdown }

// Policy returns the README normalization rules.
func (r *Markdown) Policy() glyph.Policy { return r.policy }

// Render returns the table blocks for groups, separated by blank lines.
// Each block ends with a newline. Empty groups are skipped and an empty
// group list renders nothing.
func (r *Markdown) Render(groups []glyph.Group) ([]byte, error) {
	blocks := make([]string, 0, len(groups))
	for _, g := range groups {
		if len(g.Glyphs) == 0 {
			continue
		}

		lines := []string{
			"### " + g.Kind,
			"",
			markdownHeader,
			markdownSeparator,
		}
		for _, gl := range g.Glyphs {
			lines = append(lines, r.row(gl))
		}
		lines = append(lines, "")
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	return []byte(strings.Join(blocks, "\n")), nil
}

func (r *Markdown) row(g glyph.Glyph) string {
	contract := codeSpan(EscapeCell(r.policy.Contract.Apply(g.Contract)))
	repo := "[repo](" + linkDestination(EscapeCell(g.Repo)) + ")"
	return "| " + strings.Join([]string{
		EscapeCell(g.Name),
		EscapeCell(g.Network),
		contract,
		repo,
		EscapeCell(g.Description),
	}, " | ") + " |"
}

var cellEscaper = strings.NewReplacer(
	"|", `\|`,
	"\r\n", " ",
	"\n", " ",
	"\r", " ",
)

// EscapeCell makes s safe inside a Markdown table cell: pipes are
// backslash-escaped and line breaks become spaces.
func EscapeCell(s string) string {
	return cellEscaper.Replace(s)
}

// codeSpan wraps s in a backtick fence one longer than the longest
// backtick run inside it. Content that starts or ends with a backtick is
// padded with a space, which Markdown strips again when rendering.
func codeSpan(s string) string {
	longest, run := 0, 0
	for i := 0; i < len(s); i++ {
		if s[i] != '`' {
			run = 0
			continue
		}
		run++
		longest = max(longest, run)
	}
	fence := strings.Repeat("`", longest+1)
	if strings.HasPrefix(s, "`") || strings.HasSuffix(s, "`") {
		s = " " + s + " "
	}
	return fence + s + fence
}

var angleEscaper = strings.NewReplacer("<", "%3C", ">", "%3E")

// linkDestination returns url as an inline link destination. URLs with
// spaces, parentheses or angle brackets use the <...> form.
func linkDestination(url string) string {
	if !strings.ContainsAny(url, " ()<>") {
		return url
	}
	return "<" + angleEscaper.Replace(url) + ">"
}
