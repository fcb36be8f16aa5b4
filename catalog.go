package paperdex

import "context"

// DefaultVersion is the catalog schema version written by this tool.
const DefaultVersion = "1.0.0"

// FileRecord describes one file inside a paper's folder, classified for
// display. Records are ordered by ascending Priority when rendered.
type FileRecord struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Priority int    `json:"priority"`
	Icon     string `json:"icon"`
	Label    string `json:"label"`
}

// PaperEntry is a catalog entry: the extracted paper metadata plus the
// folder it lives in and the classified listing of its files.
type PaperEntry struct {
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	Category      string       `json:"category"`
	CategoryColor string       `json:"categoryColor"`
	Tags          []string     `json:"tags"`
	TagColors     []string     `json:"tagColors"`
	Gradient      string       `json:"gradient"`
	Folder        string       `json:"folder"`
	Files         []FileRecord `json:"files"`
	ArxivURL      string       `json:"arxivUrl,omitempty"`
	URL           string       `json:"url,omitempty"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *PaperEntry) Validate() error {
	if e.Folder == "" {
		return Errorf(EINVALID, "catalog entry folder required")
	}
	if len(e.Tags) != len(e.TagColors) {
		return Errorf(EINVALID, "catalog entry has %d tags but %d tag colors", len(e.Tags), len(e.TagColors))
	}
	if e.ArxivURL != "" && e.URL != "" {
		return Errorf(EINVALID, "catalog entry cannot have both an arXiv URL and a generic URL")
	}
	return nil
}

// Statistics summarizes the catalog contents. It is recomputed from
// scratch on every catalog update.
type Statistics struct {
	TotalPapers    int `json:"totalPapers"`
	TotalDocuments int `json:"totalDocuments"`
}

// Catalog is the persisted paper index, keyed by paper ID.
type Catalog struct {
	Papers      map[string]*PaperEntry `json:"papers"`
	Statistics  Statistics             `json:"statistics"`
	LastUpdated string                 `json:"lastUpdated"`
	Version     string                 `json:"version"`
}

// NewCatalog returns an empty catalog at the current schema version.
func NewCatalog() *Catalog {
	return &Catalog{
		Papers:  make(map[string]*PaperEntry),
		Version: DefaultVersion,
	}
}

// CatalogStore loads and saves the persisted catalog.
type CatalogStore interface {
	// Load reads the catalog from storage. A missing catalog is not an
	// error: Load returns a fresh empty catalog instead.
	Load(ctx context.Context) (*Catalog, error)

	// Save writes the catalog to storage, replacing any previous version.
	Save(ctx context.Context, catalog *Catalog) error
}
