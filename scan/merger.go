package scan

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fwojciec/paperdex"
)

// Merger rebuilds the persisted catalog from scan results.
type Merger struct {
	Store paperdex.CatalogStore

	// Now returns the catalog timestamp; defaults to time.Now.
	Now func() time.Time
}

// Result holds the outcome of a catalog merge.
type Result struct {
	Papers    int
	Documents int
}

// Merge loads the existing catalog (or starts a new one), replaces its
// entries entirely with the scanned papers, recomputes statistics, and
// persists the result. Entries are built in sorted ID order so repeated
// runs over unchanged inputs produce identical catalogs apart from the
// timestamp.
func (m *Merger) Merge(ctx context.Context, root string, papers map[string]*paperdex.Paper) (*Result, error) {
	catalog, err := m.Store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	catalog.Papers = make(map[string]*paperdex.PaperEntry, len(papers))
	totalDocuments := 0

	ids := make([]string, 0, len(papers))
	for id := range papers {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		folder := matchFolder(root, id)
		files, err := collectFiles(filepath.Join(root, folder))
		if err != nil {
			return nil, fmt.Errorf("listing files for %s: %w", id, err)
		}
		catalog.Papers[id] = buildEntry(papers[id], folder, files)
		totalDocuments += len(files)
	}

	catalog.Statistics = paperdex.Statistics{
		TotalPapers:    len(papers),
		TotalDocuments: totalDocuments,
	}
	catalog.LastUpdated = m.now().UTC().Format(time.RFC3339)

	if err := m.Store.Save(ctx, catalog); err != nil {
		return nil, fmt.Errorf("saving catalog: %w", err)
	}

	return &Result{Papers: len(papers), Documents: totalDocuments}, nil
}

func (m *Merger) now() time.Time {
	if m.Now != nil {
		return m.Now()
	}
	return time.Now()
}

// matchFolder finds the on-disk folder for a paper ID by substring
// match, tolerating version-suffixed folder names ("2412.19255v2" for
// ID "2412.19255"). Candidates are checked in sorted order; the ID
// itself is the fallback when nothing matches.
func matchFolder(root, id string) string {
	entries, err := os.ReadDir(root)
	if err != nil {
		return id
	}
	for _, entry := range entries {
		if entry.IsDir() && strings.Contains(entry.Name(), id) {
			return entry.Name()
		}
	}
	return id
}

// collectFiles classifies every file under dir at any depth and orders
// the records by ascending display priority. The sort is stable, so
// equal-priority files keep walk order. A nonexistent dir yields an
// empty list and the catalog entry simply has no files.
func collectFiles(dir string) ([]paperdex.FileRecord, error) {
	records := []paperdex.FileRecord{}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		kind := paperdex.ClassifyFile(d.Name())
		records = append(records, paperdex.FileRecord{
			Name:     filepath.ToSlash(rel),
			Type:     kind.Type,
			Priority: kind.Priority,
			Icon:     kind.Icon,
			Label:    kind.Label,
		})
		return nil
	})
	if errors.Is(err, fs.ErrNotExist) {
		return records, nil
	}
	if err != nil {
		return nil, err
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Priority < records[j].Priority
	})
	return records, nil
}

// buildEntry combines scanned metadata with folder contents into a
// persistable catalog entry. An academic URL takes precedence over a
// generic one when both are somehow present.
func buildEntry(p *paperdex.Paper, folder string, files []paperdex.FileRecord) *paperdex.PaperEntry {
	entry := &paperdex.PaperEntry{
		Title:         p.Title,
		Description:   p.Description,
		Category:      p.Category,
		CategoryColor: p.CategoryColor,
		Tags:          p.Tags,
		TagColors:     p.TagColors,
		Gradient:      p.Gradient,
		Folder:        folder,
		Files:         files,
	}
	if p.ArxivURL != "" {
		entry.ArxivURL = p.ArxivURL
	} else if p.URL != "" {
		entry.URL = p.URL
	}
	return entry
}
