// Package httputil provides the HTTP client used to fetch glyph registries.
//
// # Overview
//
// [Client] wraps net/http with the behavior every registry fetch needs:
//
//   - a bounded timeout on every request
//   - default headers (User-Agent)
//   - conditional GET via If-None-Match / ETag
//   - status classification into [github.com/inshell-art/glyphtable/pkg/errors] codes
//   - request/response events reported through injected HTTP hooks
//
// # Conditional requests
//
// Pass the ETag from a previous response to [Client.Get]. A 304 response
// comes back as a [Response] with NotModified set and no body; the caller
// is expected to reuse its stored copy:
//
//	resp, err := client.Get(ctx, url, cachedETag)
//	if err != nil {
//	    return err
//	}
//	if resp.NotModified {
//	    body = cachedBody
//	}
//
// # Failures
//
// Requests are never retried. A network failure, a timeout, or any non-2xx
// status other than 304 is returned as an error:
//
//   - 404: NOT_FOUND
//   - timeout or cancelled deadline: TIMEOUT
//   - everything else: NETWORK_ERROR
package httputil
