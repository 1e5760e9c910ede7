// Package api is the thin HTTP client for the remote day feed.
package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fijnedagvan/dagvan/internal/constants"
	"github.com/fijnedagvan/dagvan/internal/logger"
)

// Client fetches raw response bodies from the day feed. It does no
// parsing and no caching; the service layer owns both.
type Client struct {
	base string
	key  string
	http *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// NewClient returns a Client for the given base URL. An empty key is
// allowed; the header is then simply omitted.
func NewClient(base, key string, opts ...Option) *Client {
	c := &Client{
		base: base,
		key:  key,
		http: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchAll retrieves the full dataset.
func (c *Client) FetchAll(ctx context.Context) ([]byte, error) {
	return c.get(ctx, nil)
}

// FetchYear retrieves all days for a year.
func (c *Client) FetchYear(ctx context.Context, year string) ([]byte, error) {
	return c.get(ctx, url.Values{"year": {year}})
}

// FetchDate retrieves the days for a single date (YYYY-MM-DD).
func (c *Client) FetchDate(ctx context.Context, date string) ([]byte, error) {
	return c.get(ctx, url.Values{"date": {date}})
}

// FetchFunFacts retrieves the fun-fact pool.
func (c *Client) FetchFunFacts(ctx context.Context) ([]byte, error) {
	return c.get(ctx, url.Values{"funfacts": {"1"}})
}

func (c *Client) get(ctx context.Context, params url.Values) ([]byte, error) {
	target := c.base
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if c.key != "" {
		req.Header.Set(constants.APIKeyHeader, c.key)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", target, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		logger.Error("api: unexpected status", "url", target, "status", res.StatusCode)
		return nil, fmt.Errorf("unexpected status %d from %s", res.StatusCode, target)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}

// FetchImage downloads an image by absolute URL. Callers treat failures
// as a degraded notification, never as a hard error.
func (c *Client) FetchImage(ctx context.Context, imageURL string) ([]byte, error) {
	if imageURL == "" {
		return nil, fmt.Errorf("no image URL")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build image request: %w", err)
	}
	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("image download failed: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image download returned status %d", res.StatusCode)
	}
	return io.ReadAll(res.Body)
}
