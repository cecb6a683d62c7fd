package httputil

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	gterrors "github.com/inshell-art/glyphtable/pkg/errors"
	"github.com/inshell-art/glyphtable/pkg/observability"
)

// DefaultTimeout bounds a single request when no timeout is configured.
const DefaultTimeout = 10 * time.Second

// DefaultUserAgent is sent with every request unless overridden.
const DefaultUserAgent = "glyphtable"

// maxBodySize caps how much of a response body is read.
const maxBodySize = 8 << 20

// Response is the outcome of a successful GET.
type Response struct {
	StatusCode  int
	Body        []byte
	ETag        string
	NotModified bool
}

// Client provides shared HTTP functionality for registry fetches.
type Client struct {
	http    *http.Client
	headers map[string]string
	hooks   observability.HTTPHooks
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithHeader adds a default header applied to all requests.
func WithHeader(key, value string) Option {
	return func(c *Client) { c.headers[key] = value }
}

// WithHooks sets the hooks that receive request events.
func WithHooks(h observability.HTTPHooks) Option {
	return func(c *Client) {
		if h != nil {
			c.hooks = h
		}
	}
}

// WithHTTPClient replaces the underlying http.Client (tests use httptest clients).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// NewClient creates a Client with DefaultTimeout and DefaultUserAgent.
func NewClient(opts ...Option) *Client {
	c := &Client{
		http:    &http.Client{Timeout: DefaultTimeout},
		headers: map[string]string{"User-Agent": DefaultUserAgent},
		hooks:   observability.NoopHTTPHooks{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get performs a GET request. If etag is non-empty it is sent as
// If-None-Match and a 304 yields a Response with NotModified set.
func (c *Client) Get(ctx context.Context, url, etag string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, gterrors.Wrap(gterrors.ErrCodeInvalidInput, err, "build request for %s", url)
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	if etag != "" {
		req.Header.Set("If-None-Match", etag)
	}

	host, path := req.URL.Host, req.URL.Path
	c.hooks.OnRequest(ctx, req.Method, host, path)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		c.hooks.OnError(ctx, req.Method, host, path, err)
		return nil, classifyError(err, url)
	}
	defer resp.Body.Close()
	c.hooks.OnResponse(ctx, req.Method, host, path, resp.StatusCode, time.Since(start))

	if resp.StatusCode == http.StatusNotModified && etag != "" {
		return &Response{StatusCode: resp.StatusCode, ETag: etag, NotModified: true}, nil
	}
	if err := checkStatus(resp.StatusCode, url); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		c.hooks.OnError(ctx, req.Method, host, path, err)
		return nil, classifyError(err, url)
	}
	if len(body) > maxBodySize {
		err := gterrors.New(gterrors.ErrCodeNetwork, "%s: response exceeds %d bytes", url, maxBodySize)
		c.hooks.OnError(ctx, req.Method, host, path, err)
		return nil, err
	}
	return &Response{
		StatusCode: resp.StatusCode,
		Body:       body,
		ETag:       resp.Header.Get("ETag"),
	}, nil
}

func checkStatus(code int, url string) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusNotFound:
		return gterrors.New(gterrors.ErrCodeNotFound, "%s: status %d", url, code)
	default:
		return gterrors.New(gterrors.ErrCodeNetwork, "%s: status %d", url, code)
	}
}

func classifyError(err error, url string) error {
	var ne net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout()) {
		return gterrors.Wrap(gterrors.ErrCodeTimeout, err, "fetch %s timed out", url)
	}
	return gterrors.Wrap(gterrors.ErrCodeNetwork, err, "fetch %s", url)
}
