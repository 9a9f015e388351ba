// Package fetch performs the single unauthenticated GET behind every
// extraction. It does not retry, cache or rate limit.
package fetch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/net/html/charset"
)

// NetworkError reports a failed GET: a transport error, a non-2xx status
// or a body that could not be decoded as text.
type NetworkError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e == nil {
		return "network error"
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("GET %s: HTTP %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("GET %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

type Options struct {
	// HTTPClient carries the shared transport (user agent, cookies). A
	// plain client is used when nil.
	HTTPClient *http.Client
	Timeout    time.Duration
	Logger     *slog.Logger
}

type Client struct {
	http *resty.Client
	log  *slog.Logger
}

func New(opts Options) *Client {
	var rc *resty.Client
	if opts.HTTPClient != nil {
		rc = resty.NewWithClient(opts.HTTPClient)
	} else {
		rc = resty.New()
	}
	if opts.Timeout > 0 {
		rc.SetTimeout(opts.Timeout)
	}
	rc.SetHeader("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	return &Client{http: rc, log: log}
}

// Fetch returns the decoded body of url.
func (c *Client) Fetch(ctx context.Context, url string) (string, error) {
	res, err := c.http.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return "", &NetworkError{URL: url, Err: err}
	}

	c.log.DebugContext(ctx, "fetch", "url", url, "status", res.StatusCode(), "bytes", len(res.Body()))

	if !res.IsSuccess() {
		return "", &NetworkError{URL: url, StatusCode: res.StatusCode()}
	}

	r, err := charset.NewReader(bytes.NewReader(res.Body()), res.Header().Get("Content-Type"))
	if err != nil {
		return "", &NetworkError{URL: url, Err: fmt.Errorf("decode body: %w", err)}
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return "", &NetworkError{URL: url, Err: fmt.Errorf("decode body: %w", err)}
	}

	return string(body), nil
}
