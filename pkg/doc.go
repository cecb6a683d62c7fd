// Package pkg holds the glyphtable libraries.
//
// # Overview
//
// A glyph registry is a YAML list of glyph records. The libraries validate
// it, group it by kind and render it for two consumers:
//
//	registry YAML
//	     ↓
//	[registry] decode (strict or lenient)
//	     ↓
//	[pipeline] validate → normalize ([glyph.Policy]) → group and order
//	     ↓
//	[render] HTML page fragment  |  Markdown table blocks  |  JSON
//	     ↓
//	[viewer] page with failure fallback  |  [readme] spliced README
//
// Supporting packages:
//
//   - [errors]: coded errors shared by the CLI and the server
//   - [cache]: memory, Redis and file caches for registry fetches
//   - [httputil]: HTTP client with conditional GET
//   - [observability]: hooks for pipeline, cache and HTTP events
//   - [buildinfo]: version metadata
//
// # Quick Start
//
//	data, _ := registry.LoadFile("glyph.yml")
//	records, _ := registry.Decode(data)
//	runner := pipeline.NewRunner(log.Default(), observability.Hooks{})
//	result, err := runner.Execute(ctx, records, render.NewMarkdown(), pipeline.Strict)
//	if err != nil {
//	    // every invalid entry is listed in err
//	}
//	fmt.Print(string(result.Output))
package pkg
