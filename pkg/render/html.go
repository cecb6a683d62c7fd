package render

import (
	"bytes"
	"html/template"

	"github.com/inshell-art/glyphtable/pkg/glyph"
)

// ContainerID is the id of the element that holds the rendered glyph tables.
const ContainerID = "glyph-viewer"

// User-visible messages of the viewer.
const (
	NoEntriesMessage  = "No valid glyph entries found in glyphs.yml."
	LoadFailedMessage = "Failed to load glyphs.yml. Check the logs for details."
)

// HTML renders glyph groups as viewer sections. All values pass through
// html/template, so markup in registry fields is escaped and unsafe link
// schemes are neutralized.
type HTML struct {
	policy glyph.Policy
}

// NewHTML creates an HTML renderer using glyph.HTMLPolicy.
func NewHTML() *HTML {
	return &HTML{policy: glyph.HTMLPolicy}
}

// Format returns "html".
func (r *HTML) Format() string { return FormatHTML }

// Policy returns the viewer normalization rules.
func (r *HTML) Policy() glyph.Policy { return r.policy }

type htmlRow struct {
	Name        string
	Network     string
	Contract    string
	Repo        string
	Description string
}

type htmlSection struct {
	Kind string
	Rows []htmlRow
}

// Render returns the HTML fragment for groups. An empty group list renders
// only the "no valid entries" message.
func (r *HTML) Render(groups []glyph.Group) ([]byte, error) {
	if len(groups) == 0 {
		return ErrorFragment(NoEntriesMessage)
	}

	sections := make([]htmlSection, 0, len(groups))
	for _, g := range groups {
		s := htmlSection{Kind: g.Kind, Rows: make([]htmlRow, 0, len(g.Glyphs))}
		for _, gl := range g.Glyphs {
			s.Rows = append(s.Rows, htmlRow{
				Name:        gl.Name,
				Network:     gl.Network,
				Contract:    r.policy.Contract.Apply(gl.Contract),
				Repo:        gl.Repo,
				Description: gl.Description,
			})
		}
		sections = append(sections, s)
	}

	var buf bytes.Buffer
	if err := sectionsTmpl.Execute(&buf, sections); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ErrorFragment renders msg as the viewer's error paragraph.
func ErrorFragment(msg string) ([]byte, error) {
	var buf bytes.Buffer
	if err := errorTmpl.Execute(&buf, msg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Page wraps a fragment produced by HTML.Render or ErrorFragment into a
// complete document. The fragment is inserted verbatim.
func Page(title string, fragment []byte) ([]byte, error) {
	var buf bytes.Buffer
	err := pageTmpl.Execute(&buf, struct {
		Title       string
		ContainerID string
		Body        template.HTML
	}{
		Title:       title,
		ContainerID: ContainerID,
		Body:        template.HTML(fragment),
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var errorTmpl = template.Must(template.New("error").Parse(`<p class="error">{{.}}</p>
`))

var sectionsTmpl = template.Must(template.New("sections").Parse(`
{{- range .}}<section class="kind">
  <h2>{{.Kind}}<span class="kind-label">glyphs</span></h2>
  <table>
    <thead>
      <tr>
        <th>name</th>
        <th>network</th>
        <th>contract</th>
        <th>repo</th>
        <th>description</th>
      </tr>
    </thead>
    <tbody>
{{- range .Rows}}
      <tr>
        <td>{{.Name}}</td>
        <td>{{.Network}}</td>
        <td><code>{{.Contract}}</code></td>
        <td><a href="{{.Repo}}" target="_blank" rel="noopener noreferrer">repo</a></td>
        <td>{{.Description}}</td>
      </tr>
{{- end}}
    </tbody>
  </table>
</section>
{{end}}`))

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}}</title>
  <style>
    body { font-family: ui-monospace, monospace; margin: 2rem; }
    section.kind { margin-bottom: 2rem; }
    .kind-label { margin-left: 0.5rem; font-size: 0.6em; opacity: 0.6; }
    table { border-collapse: collapse; width: 100%; }
    th, td { text-align: left; padding: 0.25rem 0.75rem; border-bottom: 1px solid #ddd; }
    .error { color: #b00020; }
  </style>
</head>
<body>
  <div id="{{.ContainerID}}">
{{.Body}}  </div>
</body>
</html>
`))
