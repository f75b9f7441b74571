// Package feed fetches RSS documents over HTTP and normalizes them.
package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/tesso57/rssreader/internal/domain/reading"
	"github.com/tesso57/rssreader/internal/domain/subscription"
)

const feedAcceptHeader = "application/rss+xml, application/xml;q=0.9, text/xml;q=0.8, */*;q=0.5"

// DefaultUserAgent is sent when no user agent is configured.
const DefaultUserAgent = "rssreader/1.0"

// headerTransport adds default request headers that the caller left unset.
type headerTransport struct {
	base     http.RoundTripper
	defaults http.Header
}

func (t headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	var clone *http.Request
	for key, values := range t.defaults {
		if req.Header.Get(key) != "" {
			continue
		}
		if clone == nil {
			clone = req.Clone(req.Context())
		}
		clone.Header[key] = values
	}
	if clone == nil {
		return base.RoundTrip(req)
	}
	return base.RoundTrip(clone)
}

// Fetcher retrieves raw feed documents. It is safe for concurrent use.
type Fetcher struct {
	Client *http.Client
}

// NewFetcher builds a Fetcher sending userAgent and an RSS Accept header.
// A zero timeout leaves the transport defaults in place.
func NewFetcher(userAgent string, timeout time.Duration) *Fetcher {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	defaults := http.Header{}
	defaults.Set("Accept", feedAcceptHeader)
	defaults.Set("User-Agent", userAgent)
	return new(Fetcher{
		Client: &http.Client{
			Transport: headerTransport{base: http.DefaultTransport, defaults: defaults},
			Timeout:   timeout,
		},
	})
}

// Fetch issues a single GET for the subscription and returns the full body.
// Latency covers the request and the body read.
func (f *Fetcher) Fetch(ctx context.Context, sub subscription.Subscription) (reading.RawFeed, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	fail := func(err error) (reading.RawFeed, error) {
		return reading.RawFeed{}, &reading.FetchError{Source: sub.URL, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sub.URL, nil)
	if err != nil {
		return fail(fmt.Errorf("failed to create request: %w", err))
	}

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return fail(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fail(gofeed.HTTPError{StatusCode: resp.StatusCode, Status: resp.Status})
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fail(fmt.Errorf("failed to read response body: %w", err))
	}

	return reading.RawFeed{
		Source:  sub.URL,
		Body:    body,
		Latency: time.Since(start),
	}, nil
}
