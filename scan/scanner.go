// Package scan provides catalog build orchestration. It walks the
// papers root, extracts metadata from each paper's primary document,
// and merges the results into the persisted catalog.
package scan

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/paperdex"
)

// Scanner walks the papers root and produces metadata per paper.
type Scanner struct {
	Extractor paperdex.Extractor
}

// ProgressType indicates the type of scan progress event.
type ProgressType int

const (
	ProgressRootMissing ProgressType = iota
	ProgressFolderSkipped
	ProgressDocumentMissing
	ProgressPaperProcessed
	ProgressExtractFailed
)

// ProgressEvent reports one folder's outcome during a scan.
type ProgressEvent struct {
	Type   ProgressType
	Folder string
	ID     string
	Doc    string
	Err    error
}

// ProgressFunc is a callback for reporting scan progress.
type ProgressFunc func(event ProgressEvent)

// ScanPapers enumerates the immediate subdirectories of root and
// extracts metadata for every folder carrying a paper ID. Folders are
// visited in lexicographic order. Folder-level problems are reported
// through progress and never abort the scan; a missing or unreadable
// root yields an empty result.
func (s *Scanner) ScanPapers(ctx context.Context, root string, progress ProgressFunc) map[string]*paperdex.Paper {
	papers := make(map[string]*paperdex.Paper)

	entries, err := os.ReadDir(root)
	if err != nil {
		if progress != nil {
			progress(ProgressEvent{Type: ProgressRootMissing, Folder: root, Err: err})
		}
		return papers
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		folder := entry.Name()

		id, ok := paperdex.ExtractPaperID(folder)
		if !ok {
			if progress != nil {
				progress(ProgressEvent{Type: ProgressFolderSkipped, Folder: folder})
			}
			continue
		}

		doc, ok := firstHTMLFile(filepath.Join(root, folder))
		if !ok {
			if progress != nil {
				progress(ProgressEvent{Type: ProgressDocumentMissing, Folder: folder, ID: id})
			}
			papers[id] = paperdex.DefaultPaper()
			continue
		}

		if progress != nil {
			progress(ProgressEvent{Type: ProgressPaperProcessed, Folder: folder, ID: id, Doc: doc})
		}
		papers[id] = s.extractPaper(filepath.Join(root, folder, doc), id, folder, progress)
	}

	return papers
}

// extractPaper reads and parses one document, substituting default
// metadata when the document cannot be read or parsed. A single bad
// document never aborts the batch.
func (s *Scanner) extractPaper(path, id, folder string, progress ProgressFunc) *paperdex.Paper {
	data, err := os.ReadFile(path)
	if err == nil {
		var paper *paperdex.Paper
		if paper, err = s.Extractor.Extract(string(data), id); err == nil {
			if err = paper.Validate(); err == nil {
				return paper
			}
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressExtractFailed, Folder: folder, ID: id, Doc: filepath.Base(path), Err: err})
	}
	return paperdex.DefaultPaper()
}

// firstHTMLFile returns the lexicographically first file with an .html
// extension directly inside dir.
func firstHTMLFile(dir string) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".html") {
			return entry.Name(), true
		}
	}
	return "", false
}
