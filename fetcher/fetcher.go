package fetcher

import (
	"fmt"
	"time"
)

// Fetcher retrieves the HTML of a single page. Implementations apply the
// politeness delay between consecutive calls themselves; callers run them
// from one goroutine only.
type Fetcher interface {
	Fetch(url string) (string, error)
}

// Options configures fetcher construction.
type Options struct {
	UserAgent string
	Delay     time.Duration
	Timeout   time.Duration
}

// DefaultTimeout applies when Options.Timeout is zero.
const DefaultTimeout = 30 * time.Second

func (o Options) withDefaults() Options {
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	return o
}

// TransportError reports a page that could not be retrieved, either a
// network failure or a non-2xx status.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
