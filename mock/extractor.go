package mock

import "github.com/fwojciec/paperdex"

var _ paperdex.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of paperdex.Extractor.
type Extractor struct {
	ExtractFn func(html string, paperID string) (*paperdex.Paper, error)
}

func (e *Extractor) Extract(html string, paperID string) (*paperdex.Paper, error) {
	return e.ExtractFn(html, paperID)
}
