package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/paperdex"
)

// urlPattern pairs a URL regexp searched against document text with
// whether a match counts as an academic-repository link.
type urlPattern struct {
	re       *regexp.Regexp
	academic bool
}

// urlPatterns is searched in order against the full document text:
// abstract pages beat raw PDF links, which beat code and model-hub
// links.
var urlPatterns = []urlPattern{
	{re: regexp.MustCompile(`https?://arxiv\.org/abs/[\d.]+`), academic: true},
	{re: regexp.MustCompile(`https?://\S+\.pdf`)},
	{re: regexp.MustCompile(`https?://github\.com/[^/\s]+/[^/\s]+`)},
	{re: regexp.MustCompile(`https?://huggingface\.co/[^/\s]+/[^/\s]+`)},
}

// resolveSourceURL produces at most one source URL for a paper, trying
// strategies in strict order: the paper ID itself, arXiv hyperlinks in
// the document, URL patterns in the document text, and finally the
// page's og:url. An ID-derived URL is authoritative and is never
// second-guessed by content found in the document.
func resolveSourceURL(doc *goquery.Document, paperID string) (url string, academic bool) {
	if paperID != "" {
		return paperdex.ArxivAbsURL(paperID), true
	}

	doc.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href, _ := s.Attr("href")
		if strings.Contains(href, "arxiv.org") {
			url = href
			return false
		}
		return true
	})
	if url != "" {
		return url, true
	}

	text := doc.Text()
	for _, pattern := range urlPatterns {
		if match := pattern.re.FindString(text); match != "" {
			return match, pattern.academic
		}
	}

	if content, ok := doc.Find("meta[property='og:url']").First().Attr("content"); ok && content != "" {
		return content, false
	}

	return "", false
}
