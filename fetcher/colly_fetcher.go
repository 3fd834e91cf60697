package fetcher

import (
	"fmt"

	"github.com/gocolly/colly/v2"
)

// CollyFetcher implements the Fetcher interface using colly. The
// collector's limit rule provides the politeness delay.
type CollyFetcher struct {
	collector *colly.Collector

	body     string
	fetchErr error
}

// NewCollyFetcher creates a new CollyFetcher with opts applied.
func NewCollyFetcher(opts Options) *CollyFetcher {
	opts = opts.withDefaults()

	copts := []colly.CollectorOption{colly.AllowURLRevisit()}
	if opts.UserAgent != "" {
		copts = append(copts, colly.UserAgent(opts.UserAgent))
	}

	cf := &CollyFetcher{}
	c := colly.NewCollector(copts...)
	c.SetRequestTimeout(opts.Timeout)

	c.Limit(&colly.LimitRule{
		DomainGlob:  "*",
		Parallelism: 1,
		Delay:       opts.Delay,
	})

	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("Accept", "text/html,application/xhtml+xml")
		r.Headers.Set("Accept-Language", "fr,en;q=0.9")
	})

	c.OnResponse(func(r *colly.Response) {
		cf.body = string(r.Body)
	})

	c.OnError(func(r *colly.Response, err error) {
		cf.fetchErr = err
	})

	cf.collector = c
	return cf
}

// Fetch retrieves url through the collector.
func (cf *CollyFetcher) Fetch(url string) (string, error) {
	cf.body = ""
	cf.fetchErr = nil

	if err := cf.collector.Visit(url); err != nil {
		return "", &TransportError{URL: url, Err: err}
	}
	if cf.fetchErr != nil {
		return "", &TransportError{URL: url, Err: cf.fetchErr}
	}
	if cf.body == "" {
		return "", &TransportError{URL: url, Err: fmt.Errorf("empty response body")}
	}

	return cf.body, nil
}
