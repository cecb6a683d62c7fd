// Package registry loads glyph registry documents.
//
// A registry is a YAML document whose root is a sequence. Each element is a
// mapping describing one glyph, or null. [Decode] turns the document into
// raw records for the pipeline; it performs no per-record validation.
//
// Documents come from two places:
//   - [LoadFile] reads a local file (the README path)
//   - [Fetcher] performs a conditional HTTP GET (the viewer path), keeping
//     {etag, body} pairs in a [cache.Cache] so unchanged registries are not
//     downloaded twice
//
// The fetcher never serves a cached body when the request itself fails.
package registry
