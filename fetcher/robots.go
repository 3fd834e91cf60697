package fetcher

import (
	"log"
	"net/url"
	"strings"

	"github.com/temoto/robotstxt"
)

// RobotsGate answers whether robots.txt allows fetching a URL. A missing or
// unreadable robots.txt opens the gate for everything.
type RobotsGate struct {
	group *robotstxt.Group
}

// NewRobotsGate fetches <base>/robots.txt through f and keeps the rule
// group matching userAgent.
func NewRobotsGate(f Fetcher, baseURL, userAgent string) *RobotsGate {
	gate := &RobotsGate{}

	robotsURL := strings.TrimRight(baseURL, "/") + "/robots.txt"
	body, err := f.Fetch(robotsURL)
	if err != nil {
		log.Printf("robots.txt not available, allowing all paths: %v\n", err)
		return gate
	}

	data, err := robotstxt.FromString(body)
	if err != nil {
		log.Printf("Warning: Failed to parse robots.txt, allowing all paths: %v\n", err)
		return gate
	}

	gate.group = data.FindGroup(userAgent)
	return gate
}

// Allowed reports whether rawURL may be fetched.
func (g *RobotsGate) Allowed(rawURL string) bool {
	if g.group == nil {
		return true
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return true
	}
	path := u.Path
	if path == "" {
		path = "/"
	}
	return g.group.Test(path)
}
