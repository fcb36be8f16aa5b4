package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/paperdex"
	"golang.org/x/net/html/charset"
)

// Ensure Extractor implements paperdex.Extractor at compile time.
var _ paperdex.Extractor = (*Extractor)(nil)

// genericTitleMarker flags boilerplate titles produced by the analysis
// pipeline (e.g. "ArXiv Deep Reader") that should yield to the paper's
// own first heading. The check is case-sensitive.
const genericTitleMarker = "ArXiv"

// Description extraction thresholds, counted in runes because the
// analyzed documents mix Chinese and English text.
const (
	descMinRunes = 50
	descMaxRunes = 200
)

// Extractor extracts paper metadata from HTML documents using CSS
// selector queries.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses raw HTML and returns the paper's metadata record. The
// document encoding is detected from its content, so both UTF-8 and
// legacy-encoded (e.g. GBK) documents parse correctly.
func (e *Extractor) Extract(html string, paperID string) (*paperdex.Paper, error) {
	r, err := charset.NewReader(strings.NewReader(html), "")
	if err != nil {
		return nil, paperdex.Errorf(paperdex.EINVALID, "failed to detect document encoding: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, paperdex.Errorf(paperdex.EINVALID, "failed to parse HTML: %v", err)
	}

	p := &paperdex.Paper{
		Title:       extractTitle(doc),
		Description: extractDescription(doc),
	}
	paperdex.Classify(doc.Text(), p.Title).Apply(p)

	if url, academic := resolveSourceURL(doc, paperID); url != "" {
		if academic {
			p.ArxivURL = url
		} else {
			p.URL = url
		}
	}

	return p, nil
}

// extractTitle returns the page title, falling back to the first h1
// when the title element is empty or generic pipeline boilerplate. A
// document with neither yields an empty string.
func extractTitle(doc *goquery.Document) string {
	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" || strings.Contains(title, genericTitleMarker) {
		if h1 := doc.Find("h1").First(); h1.Length() > 0 {
			title = strings.TrimSpace(h1.Text())
		}
	}
	return title
}

// extractDescription returns the meta description if one is present,
// else the first substantial paragraph: longer than descMinRunes and
// not a copyright notice, truncated at descMaxRunes with an ellipsis.
func extractDescription(doc *goquery.Document) string {
	if content, ok := doc.Find("meta[name='description']").First().Attr("content"); ok {
		if desc := strings.TrimSpace(content); desc != "" {
			return desc
		}
	}

	var desc string
	doc.Find("p").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.TrimSpace(s.Text())
		runes := []rune(text)
		if len(runes) <= descMinRunes || strings.HasPrefix(text, "©") {
			return true
		}
		if len(runes) > descMaxRunes {
			text = string(runes[:descMaxRunes]) + "..."
		}
		desc = text
		return false
	})
	return desc
}
