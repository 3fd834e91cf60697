package fetcher

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

// HTTPFetcher fetches pages over plain HTTP. It is the default engine; the
// blog serves complete HTML without JavaScript. A fixed-interval limiter
// enforces the politeness delay between requests.
type HTTPFetcher struct {
	client  *resty.Client
	limiter *rate.Limiter
}

// NewHTTPFetcher creates an HTTPFetcher with opts applied.
func NewHTTPFetcher(opts Options) *HTTPFetcher {
	opts = opts.withDefaults()

	client := resty.New().
		SetTimeout(opts.Timeout).
		SetHeader("Accept", "text/html,application/xhtml+xml").
		SetHeader("Accept-Language", "fr,en;q=0.9")
	if opts.UserAgent != "" {
		client.SetHeader("User-Agent", opts.UserAgent)
	}

	return &HTTPFetcher{
		client: client,
		// rate.Every treats a zero delay as no limit.
		limiter: rate.NewLimiter(rate.Every(opts.Delay), 1),
	}
}

// Fetch retrieves url, waiting out the politeness interval first.
func (f *HTTPFetcher) Fetch(url string) (string, error) {
	if err := f.limiter.Wait(context.Background()); err != nil {
		return "", &TransportError{URL: url, Err: err}
	}

	resp, err := f.client.R().Get(url)
	if err != nil {
		return "", &TransportError{URL: url, Err: err}
	}
	if resp.IsError() {
		return "", &TransportError{URL: url, Err: fmt.Errorf("status %s", resp.Status())}
	}

	return string(resp.Body()), nil
}
