// Package fs provides flat-file JSON storage for the paper catalog.
package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"github.com/fwojciec/paperdex"
)

// Ensure CatalogStore implements paperdex.CatalogStore at compile time.
var _ paperdex.CatalogStore = (*CatalogStore)(nil)

// CatalogStore persists the catalog as indented UTF-8 JSON with atomic
// replace semantics: the catalog is written to a temporary file next to
// the target and renamed over it, so a failed write never leaves a
// partial catalog behind.
type CatalogStore struct {
	path string
}

// NewCatalogStore creates a new CatalogStore persisting to path.
func NewCatalogStore(path string) *CatalogStore {
	return &CatalogStore{path: path}
}

// Load reads the catalog file. A missing file yields a fresh empty
// catalog rather than an error, so the first run starts from nothing.
func (s *CatalogStore) Load(ctx context.Context) (*paperdex.Catalog, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return paperdex.NewCatalog(), nil
	}
	if err != nil {
		return nil, err
	}

	var catalog paperdex.Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, paperdex.Errorf(paperdex.EINVALID, "catalog file %s is not valid JSON: %v", s.path, err)
	}

	// Tolerate hand-edited or older catalog files.
	if catalog.Papers == nil {
		catalog.Papers = make(map[string]*paperdex.PaperEntry)
	}
	if catalog.Version == "" {
		catalog.Version = paperdex.DefaultVersion
	}

	return &catalog, nil
}

// Save validates and writes the catalog, fully replacing any previous
// contents. Non-ASCII characters are emitted literally and the output
// is 2-space indented so the catalog stays human-diffable.
func (s *CatalogStore) Save(ctx context.Context, catalog *paperdex.Catalog) error {
	for id, entry := range catalog.Papers {
		if err := entry.Validate(); err != nil {
			return paperdex.Errorf(paperdex.ErrorCode(err), "catalog entry %s: %s", id, paperdex.ErrorMessage(err))
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(catalog); err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
