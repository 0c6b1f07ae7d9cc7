// Package httpx is the outbound HTTP adapter shared by the tools:
// a single GET per call, a default browser User-Agent, a 10s timeout,
// and classification of transport failures.
package httpx

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/agentools/tools"
)

// DefaultTimeout bounds a single fetch, including reading the body.
const DefaultTimeout = 10 * time.Second

// DefaultUserAgent is a realistic browser User-Agent;
// search and rate endpoints reject obvious bot agents.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

// Response is the raw outcome of a single fetch.
// Non-2xx statuses are returned to the caller, not converted to errors,
// so tools can differentiate 404 from 5xx.
type Response struct {
	StatusCode int
	Body       []byte
}

func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Client issues independent single-attempt GET requests.
// It keeps no per-call state and is safe for concurrent use.
type Client struct {
	hc      *http.Client
	headers map[string]string
}

func New() *Client {
	return &Client{
		hc: &http.Client{Timeout: DefaultTimeout},
		headers: map[string]string{
			"User-Agent": DefaultUserAgent,
		},
	}
}

func (c *Client) WithTimeout(timeout time.Duration) *Client {
	c.hc.Timeout = timeout
	return c
}

func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.hc = hc
	return c
}

func (c *Client) WithHeader(key, value string) *Client {
	c.headers[key] = value
	return c
}

// Fetch issues a single GET to an absolute http(s) URL.
// There is no retry; timeouts and connection failures are returned as
// classified network errors.
func (c *Client) Fetch(ctx context.Context, rawURL string) (*Response, error) {
	u, err := url.Parse(rawURL)
	if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, errors.WithStack(tools.NewErrorf(tools.KindInvalidInput,
			"not an absolute http(s) URL: %q", rawURL))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, errors.WithStack(classify(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WithStack(classify(err))
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}

// classify converts a transport fault to a network error with
// a "timeout" or "connection" reason.
func classify(err error) error {
	reason := "connection"
	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		reason = "timeout"
	} else if errors.Is(err, context.DeadlineExceeded) {
		reason = "timeout"
	}
	return tools.WrapError(tools.KindNetworkError, err, reason)
}
