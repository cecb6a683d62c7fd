// Package viewer produces the HTML glyph viewer page.
//
// The viewer fetches the registry, runs the lenient pipeline and wraps the
// result in a page whose glyph-viewer container holds either the glyph
// sections, the "no valid entries" message, or the load-failure message.
// A page is produced in every case; failures are logged and returned
// alongside it so callers can pick an exit code or HTTP status.
package viewer

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/inshell-art/glyphtable/pkg/observability"
	"github.com/inshell-art/glyphtable/pkg/pipeline"
	"github.com/inshell-art/glyphtable/pkg/registry"
	"github.com/inshell-art/glyphtable/pkg/render"
)

// DefaultTitle is the document title of the viewer page.
const DefaultTitle = "Glyph registry"

// Source supplies the raw registry document. [registry.Fetcher] is the
// production implementation.
type Source interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context, url string) ([]byte, error)

// Fetch calls f.
func (f SourceFunc) Fetch(ctx context.Context, url string) ([]byte, error) { return f(ctx, url) }

// Viewer renders the registry at URL as an HTML page.
type Viewer struct {
	Source Source
	URL    string
	Title  string
	Runner *pipeline.Runner
	Logger *log.Logger
}

// Page is one rendered viewer page.
type Page struct {
	HTML   []byte
	Result *pipeline.Result // nil when loading failed
	Err    error            // load failure shown on the page, if any
}

// New creates a Viewer with DefaultTitle.
func New(source Source, url string, runner *pipeline.Runner, logger *log.Logger) *Viewer {
	if logger == nil {
		logger = log.Default()
	}
	if runner == nil {
		runner = pipeline.NewRunner(logger, observability.Hooks{})
	}
	return &Viewer{
		Source: source,
		URL:    url,
		Title:  DefaultTitle,
		Runner: runner,
		Logger: logger,
	}
}

// Render fetches and renders the registry. The returned error is only
// non-nil if the page itself could not be produced.
func (v *Viewer) Render(ctx context.Context) (*Page, error) {
	page := &Page{}

	fragment, result, err := v.fragment(ctx)
	if err != nil {
		v.Logger.Error("failed to load glyph registry", "url", v.URL, "err", err)
		page.Err = err
		if fragment, err = render.ErrorFragment(render.LoadFailedMessage); err != nil {
			return nil, err
		}
	}
	page.Result = result

	html, err := render.Page(v.Title, fragment)
	if err != nil {
		return nil, err
	}
	page.HTML = html
	return page, nil
}

// Records fetches and decodes the registry without validating entries.
func (v *Viewer) Records(ctx context.Context) ([]any, error) {
	data, err := v.Source.Fetch(ctx, v.URL)
	if err != nil {
		return nil, err
	}
	return registry.DecodeLenient(data)
}

func (v *Viewer) fragment(ctx context.Context) ([]byte, *pipeline.Result, error) {
	records, err := v.Records(ctx)
	if err != nil {
		return nil, nil, err
	}
	result, err := v.Runner.Execute(ctx, records, render.NewHTML(), pipeline.Lenient)
	if err != nil {
		return nil, nil, err
	}
	return result.Output, result, nil
}
