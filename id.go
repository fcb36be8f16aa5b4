package paperdex

import "regexp"

// paperIDRe matches arXiv-style identifiers: four digits, a dot, five
// digits (e.g. "2501.12345"), anywhere in a folder name.
var paperIDRe = regexp.MustCompile(`\d{4}\.\d{5}`)

// ExtractPaperID returns the arXiv-style identifier embedded in a folder
// name. Folders without an identifier are not catalog candidates and
// ok is false.
func ExtractPaperID(folder string) (id string, ok bool) {
	id = paperIDRe.FindString(folder)
	return id, id != ""
}

// ArxivAbsURL returns the arXiv abstract page URL for a paper ID.
func ArxivAbsURL(id string) string {
	return "https://arxiv.org/abs/" + id
}
