package parser

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"rando-scraper/models"
)

// siteTitleSuffix is appended by the blog theme to every post title.
const siteTitleSuffix = " – Randonnées en Suisse romande"

// ParseFailure reports a detail page whose structure could not be read.
// Callers skip the page and continue with the next one.
type ParseFailure struct {
	URL    string
	Reason string
}

func (e *ParseFailure) Error() string {
	return fmt.Sprintf("parse %s: %s", e.URL, e.Reason)
}

// DetailPage holds the raw result of parsing one hike page, before any
// normalization.
type DetailPage struct {
	URL    string
	Title  string
	MapURL string
	Attrs  []models.RawAttribute
}

// DetailParser extracts the title, map link and attribute table from hike
// detail pages.
type DetailParser struct{}

// NewDetailParser creates a new DetailParser instance
func NewDetailParser() *DetailParser {
	return &DetailParser{}
}

// Parse extracts a DetailPage from raw page HTML. It returns a
// *ParseFailure when the page has no readable title or attribute table.
func (dp *DetailParser) Parse(pageURL, htmlContent string) (*DetailPage, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, &ParseFailure{URL: pageURL, Reason: fmt.Sprintf("unreadable HTML: %v", err)}
	}

	page := &DetailPage{URL: pageURL}

	page.Title = dp.extractTitle(doc)
	if page.Title == "" {
		return nil, &ParseFailure{URL: pageURL, Reason: "no title"}
	}

	page.Attrs = dp.extractAttrs(doc)
	if len(page.Attrs) == 0 {
		return nil, &ParseFailure{URL: pageURL, Reason: "no attribute table"}
	}

	page.MapURL = dp.extractMapURL(doc)

	return page, nil
}

// extractTitle reads the post title, preferring the h1 over the document
// title, and strips the site suffix the theme appends.
func (dp *DetailParser) extractTitle(doc *goquery.Document) string {
	title := elementText(doc.Find("h1").First())
	if title == "" {
		title = elementText(doc.Find("title").First())
	}
	title = strings.TrimSuffix(title, siteTitleSuffix)
	return strings.TrimSpace(title)
}

// extractAttrs reads every table row with at least a label and a value
// cell. Repeated labels keep their first position and take the last value.
func (dp *DetailParser) extractAttrs(doc *goquery.Document) []models.RawAttribute {
	var attrs []models.RawAttribute
	doc.Find("table tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("th, td")
		if cells.Length() < 2 {
			return
		}
		label := elementText(cells.Eq(0))
		if label == "" {
			return
		}
		attrs = models.UpsertAttr(attrs, label, elementText(cells.Eq(1)))
	})
	return attrs
}

// extractMapURL returns the first SuisseMobile link on the page, if any.
func (dp *DetailParser) extractMapURL(doc *goquery.Document) string {
	var mapURL string
	doc.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		lower := strings.ToLower(href)
		if strings.Contains(lower, "schweizmobil.ch") || strings.Contains(lower, "suissemobile") {
			mapURL = href
			return false
		}
		return true
	})
	return mapURL
}

// elementText returns the visible text of a selection with nested element
// text joined by single spaces. goquery's Text concatenates text nodes with
// no separator, which glues values together when a cell nests markup.
func elementText(sel *goquery.Selection) string {
	var parts []string
	for _, node := range sel.Nodes {
		collectText(node, &parts)
	}
	return normalizeWhitespace(strings.Join(parts, " "))
}

// collectText walks a node tree appending text leaves, skipping script and
// style subtrees.
func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		if t := strings.TrimSpace(n.Data); t != "" {
			*parts = append(*parts, t)
		}
		return
	}
	if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}

// normalizeWhitespace replaces unicode whitespace, non-breaking spaces
// included, with regular spaces and collapses runs.
func normalizeWhitespace(text string) string {
	normalized := strings.Builder{}
	for _, r := range text {
		if unicode.IsSpace(r) {
			normalized.WriteRune(' ')
		} else {
			normalized.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(normalized.String()), " ")
}
