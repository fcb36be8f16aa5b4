package paperdex

// Extractor extracts catalog metadata from a paper's HTML analysis
// document.
type Extractor interface {
	// Extract parses raw HTML and returns the paper's metadata record.
	// The paper ID, when non-empty, determines the source URL directly
	// and short-circuits URL discovery inside the document.
	Extract(html string, paperID string) (*Paper, error)
}
