package fetcher

import (
	"errors"
	"testing"
)

type stubFetcher struct {
	body string
	err  error
}

func (s *stubFetcher) Fetch(url string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.body, nil
}

func TestRobotsGatePicksAgentGroup(t *testing.T) {
	robots := "User-agent: *\nDisallow: /prive/\n\nUser-agent: RandoScraper\nDisallow: /2024/\n"
	gate := NewRobotsGate(&stubFetcher{body: robots}, "https://randoromandie.com", "RandoScraper/1.0")

	tests := []struct {
		url  string
		want bool
	}{
		{"https://randoromandie.com/2023/07/14/lac-de-tanay/", true},
		{"https://randoromandie.com/2024/01/02/raquettes/", false},
		// The RandoScraper group replaces the * rules entirely.
		{"https://randoromandie.com/prive/page/", true},
		// An empty path counts as /.
		{"https://randoromandie.com", true},
	}

	for _, tt := range tests {
		if got := gate.Allowed(tt.url); got != tt.want {
			t.Errorf("Allowed(%q) = %v, want %v", tt.url, got, tt.want)
		}
	}
}

func TestRobotsGateFallsBackToWildcard(t *testing.T) {
	robots := "User-agent: *\nDisallow: /prive/\n"
	gate := NewRobotsGate(&stubFetcher{body: robots}, "https://randoromandie.com", "RandoScraper/1.0")

	if gate.Allowed("https://randoromandie.com/prive/page/") {
		t.Error("Allowed(/prive/page/) = true, want false under the * group")
	}
	if !gate.Allowed("https://randoromandie.com/2023/07/14/lac-de-tanay/") {
		t.Error("Allowed(/2023/...) = false, want true")
	}
}

func TestRobotsGateAllowsAllWhenUnavailable(t *testing.T) {
	stub := &stubFetcher{err: &TransportError{URL: "https://randoromandie.com/robots.txt", Err: errors.New("HTTP 404")}}
	gate := NewRobotsGate(stub, "https://randoromandie.com", "RandoScraper/1.0")

	if !gate.Allowed("https://randoromandie.com/prive/page/") {
		t.Error("Allowed() = false with no robots.txt, want true")
	}
}

func TestTransportErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	var err error = &TransportError{URL: "https://randoromandie.com/", Err: cause}

	if !errors.Is(err, cause) {
		t.Error("errors.Is() did not reach the wrapped cause")
	}
	var te *TransportError
	if !errors.As(err, &te) || te.URL != "https://randoromandie.com/" {
		t.Errorf("errors.As() failed or lost URL: %+v", te)
	}
}
