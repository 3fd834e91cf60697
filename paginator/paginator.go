package paginator

import (
	"fmt"
	"log"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"rando-scraper/fetcher"
)

// DefaultMaxPages caps pagination when no explicit limit is set.
const DefaultMaxPages = 200

// postLinkRe matches WordPress date permalinks like /2023/07/14/lac-de-tanay/.
var postLinkRe = regexp.MustCompile(`^/\d{4}/\d{2}/\d{2}/[^/]+/?$`)

// Paginator walks the blog feed page by page and yields hike detail URLs
// lazily, in document order, deduplicated across pages. It follows the
// bufio.Scanner shape: Next advances, URL returns the current link. Fetching
// stops at the page cap, at a page with no post links, or at a listing page
// that fails to fetch; the last case is logged and treated as the end of
// the feed, with Err keeping the cause.
type Paginator struct {
	fetcher  fetcher.Fetcher
	base     *url.URL
	maxPages int

	page    int
	queue   []string
	seen    map[string]bool
	current string
	done    bool
	err     error
	visited int
	found   int
}

// New creates a Paginator rooted at baseURL. A maxPages of zero or less
// applies DefaultMaxPages.
func New(f fetcher.Fetcher, baseURL string, maxPages int) (*Paginator, error) {
	base, err := url.Parse(strings.TrimRight(baseURL, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}
	return &Paginator{
		fetcher:  f,
		base:     base,
		maxPages: maxPages,
		seen:     make(map[string]bool),
	}, nil
}

// Next advances to the next detail URL, fetching further listing pages as
// needed. It returns false when the feed is exhausted.
func (p *Paginator) Next() bool {
	for len(p.queue) == 0 {
		if p.done || p.page >= p.maxPages {
			return false
		}
		p.fetchNextPage()
	}
	p.current = p.queue[0]
	p.queue = p.queue[1:]
	return true
}

// URL returns the detail link produced by the last call to Next.
func (p *Paginator) URL() string { return p.current }

// Err returns the listing fetch error that ended iteration early, if any.
// Reaching the page cap or an empty page leaves it nil.
func (p *Paginator) Err() error { return p.err }

// PagesVisited returns how many listing pages were fetched.
func (p *Paginator) PagesVisited() int { return p.visited }

// Found returns how many distinct detail links have been discovered so far.
func (p *Paginator) Found() int { return p.found }

// fetchNextPage fetches one listing page and queues its fresh links.
func (p *Paginator) fetchNextPage() {
	p.page++
	pageURL := p.pageURL(p.page)

	body, err := p.fetcher.Fetch(pageURL)
	if err != nil {
		log.Printf("Listing page %d unavailable, treating as end of feed: %v\n", p.page, err)
		p.done = true
		p.err = err
		return
	}
	p.visited++

	links := p.extractLinks(body)
	if len(links) == 0 {
		p.done = true
		return
	}

	for _, link := range links {
		if p.seen[link] {
			continue
		}
		p.seen[link] = true
		p.queue = append(p.queue, link)
		p.found++
	}
}

// pageURL returns the listing URL for a 1-based page number. WordPress
// serves the first page at the site root and the rest under /page/N/.
func (p *Paginator) pageURL(n int) string {
	if n <= 1 {
		return p.base.String()
	}
	return fmt.Sprintf("%spage/%d/", p.base.String(), n)
}

// extractLinks pulls date-permalink post URLs from a listing page, in
// document order, resolved against the feed host. Links pointing off-site
// and repeated links within the page are dropped.
func (p *Paginator) extractLinks(body string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		log.Printf("Warning: Listing page %d unreadable: %v\n", p.page, err)
		return nil
	}

	var links []string
	pageSeen := make(map[string]bool)
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		ref, err := url.Parse(strings.TrimSpace(href))
		if err != nil {
			return
		}
		abs := p.base.ResolveReference(ref)
		if abs.Host != p.base.Host || !postLinkRe.MatchString(abs.Path) {
			return
		}
		abs.RawQuery = ""
		abs.Fragment = ""
		link := abs.String()
		if pageSeen[link] {
			return
		}
		pageSeen[link] = true
		links = append(links, link)
	})
	return links
}
