package fetcher

import (
	"fmt"
	"log"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// RodFetcher implements the Fetcher interface with a headless browser. The
// blog serves static HTML, so this engine is only needed when the site
// fronts itself with a JavaScript challenge the plain HTTP engine cannot
// pass.
type RodFetcher struct {
	browser *rod.Browser
	delay   time.Duration
	timeout time.Duration
}

// NewRodFetcher launches a headless browser and connects to it. Call Close
// when done with the fetcher.
func NewRodFetcher(opts Options) (*RodFetcher, error) {
	opts = opts.withDefaults()

	l := launcher.New().
		Headless(true).
		NoSandbox(true).
		Set("disable-gpu").
		Set("disable-dev-shm-usage").
		Set("no-first-run").
		Set("mute-audio")
	if path, exists := launcher.LookPath(); exists {
		l = l.Bin(path)
	}

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	return &RodFetcher{
		browser: browser,
		delay:   opts.Delay,
		timeout: opts.Timeout,
	}, nil
}

// Fetch renders url in a fresh tab and returns the settled HTML.
func (rf *RodFetcher) Fetch(url string) (content string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &TransportError{URL: url, Err: fmt.Errorf("browser failure: %v", r)}
		}
	}()

	time.Sleep(rf.delay)

	page := rf.browser.MustPage()
	defer page.Close()

	if err := page.Timeout(rf.timeout).Navigate(url); err != nil {
		return "", &TransportError{URL: url, Err: fmt.Errorf("failed to navigate: %w", err)}
	}
	page.WaitLoad()

	if err := page.Timeout(10 * time.Second).WaitStable(500 * time.Millisecond); err != nil {
		log.Printf("Warning: Page did not stabilize within timeout, continuing anyway: %v\n", err)
	}

	content, err = page.HTML()
	if err != nil {
		return "", &TransportError{URL: url, Err: fmt.Errorf("failed to get HTML: %w", err)}
	}
	return content, nil
}

// Close shuts the browser down.
func (rf *RodFetcher) Close() error {
	return rf.browser.Close()
}
