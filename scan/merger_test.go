package scan_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/paperdex"
	"github.com/fwojciec/paperdex/fs"
	"github.com/fwojciec/paperdex/mock"
	"github.com/fwojciec/paperdex/scan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)
}

func TestMerger_Merge(t *testing.T) {
	t.Parallel()

	t.Run("builds catalog entries from scan results", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		dir := filepath.Join(root, "2412.19255v2")
		require.NoError(t, os.Mkdir(dir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "paper.html"), []byte("<html>"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "2412.19255v2.pdf"), []byte("%PDF"), 0644))

		papers := map[string]*paperdex.Paper{
			"2412.19255": {
				Title:         "FlashCache",
				Description:   "键值缓存压缩研究。",
				Category:      "KV缓存优化",
				CategoryColor: "blue",
				Tags:          []string{"架构创新", "内存优化", "性能提升"},
				TagColors:     []string{"purple", "green", "orange"},
				Gradient:      "from-blue-600 to-purple-600",
				ArxivURL:      "https://arxiv.org/abs/2412.19255",
			},
		}

		var saved *paperdex.Catalog
		m := &scan.Merger{
			Store: &mock.CatalogStore{
				LoadFn: func(ctx context.Context) (*paperdex.Catalog, error) { return paperdex.NewCatalog(), nil },
				SaveFn: func(ctx context.Context, catalog *paperdex.Catalog) error {
					saved = catalog
					return nil
				},
			},
			Now: fixedNow,
		}

		result, err := m.Merge(context.Background(), root, papers)

		require.NoError(t, err)
		assert.Equal(t, &scan.Result{Papers: 1, Documents: 2}, result)

		require.NotNil(t, saved)
		require.Contains(t, saved.Papers, "2412.19255")
		entry := saved.Papers["2412.19255"]
		assert.Equal(t, "FlashCache", entry.Title)
		assert.Equal(t, "键值缓存压缩研究。", entry.Description)
		assert.Equal(t, "KV缓存优化", entry.Category)
		assert.Equal(t, "2412.19255v2", entry.Folder)
		assert.Equal(t, "https://arxiv.org/abs/2412.19255", entry.ArxivURL)
		assert.Empty(t, entry.URL)

		require.Len(t, entry.Files, 2)
		assert.Equal(t, "paper.html", entry.Files[0].Name)
		assert.Equal(t, 1, entry.Files[0].Priority)
		assert.Equal(t, "2412.19255v2.pdf", entry.Files[1].Name)
		assert.Equal(t, "original", entry.Files[1].Type)
		assert.Equal(t, 2, entry.Files[1].Priority)

		assert.Equal(t, paperdex.Statistics{TotalPapers: 1, TotalDocuments: 2}, saved.Statistics)
		assert.Equal(t, "2026-01-15T10:30:00Z", saved.LastUpdated)
	})

	t.Run("replaces the previous catalog entries entirely", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		dir := filepath.Join(root, "2501.00663")
		require.NoError(t, os.Mkdir(dir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "paper.html"), []byte("<html>"), 0644))

		existing := paperdex.NewCatalog()
		existing.Papers["9999.99999"] = &paperdex.PaperEntry{Title: "Stale", Folder: "9999.99999"}
		existing.Version = "2.0.0"

		var saved *paperdex.Catalog
		m := &scan.Merger{
			Store: &mock.CatalogStore{
				LoadFn: func(ctx context.Context) (*paperdex.Catalog, error) { return existing, nil },
				SaveFn: func(ctx context.Context, catalog *paperdex.Catalog) error {
					saved = catalog
					return nil
				},
			},
			Now: fixedNow,
		}

		_, err := m.Merge(context.Background(), root, map[string]*paperdex.Paper{"2501.00663": {}})

		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Len(t, saved.Papers, 1)
		assert.Contains(t, saved.Papers, "2501.00663")
		assert.NotContains(t, saved.Papers, "9999.99999")
		assert.Equal(t, "2.0.0", saved.Version)
	})

	t.Run("falls back to the id when no folder matches", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()

		var saved *paperdex.Catalog
		m := &scan.Merger{
			Store: &mock.CatalogStore{
				LoadFn: func(ctx context.Context) (*paperdex.Catalog, error) { return paperdex.NewCatalog(), nil },
				SaveFn: func(ctx context.Context, catalog *paperdex.Catalog) error {
					saved = catalog
					return nil
				},
			},
			Now: fixedNow,
		}

		result, err := m.Merge(context.Background(), root, map[string]*paperdex.Paper{"2412.19255": {}})

		require.NoError(t, err)
		assert.Equal(t, &scan.Result{Papers: 1, Documents: 0}, result)

		entry := saved.Papers["2412.19255"]
		assert.Equal(t, "2412.19255", entry.Folder)
		assert.NotNil(t, entry.Files)
		assert.Empty(t, entry.Files)
	})

	t.Run("orders files by priority and keeps ties in walk order", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		dir := filepath.Join(root, "2412.19255")
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "extra"), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "analysis-notes.pdf"), []byte("%PDF"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "report-final.pdf"), []byte("%PDF"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "paper.html"), []byte("<html>"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "extra", "step3-sys-model.md"), []byte("#"), 0644))

		var saved *paperdex.Catalog
		m := &scan.Merger{
			Store: &mock.CatalogStore{
				LoadFn: func(ctx context.Context) (*paperdex.Catalog, error) { return paperdex.NewCatalog(), nil },
				SaveFn: func(ctx context.Context, catalog *paperdex.Catalog) error {
					saved = catalog
					return nil
				},
			},
			Now: fixedNow,
		}

		_, err := m.Merge(context.Background(), root, map[string]*paperdex.Paper{"2412.19255": {}})

		require.NoError(t, err)
		entry := saved.Papers["2412.19255"]
		require.Len(t, entry.Files, 4)

		// paper.html leads, the two priority-2 reports keep their walk
		// order, and the nested file comes last with a slash-separated
		// relative name.
		assert.Equal(t, "paper.html", entry.Files[0].Name)
		assert.Equal(t, "analysis-notes.pdf", entry.Files[1].Name)
		assert.Equal(t, "report-final.pdf", entry.Files[2].Name)
		assert.Equal(t, "extra/step3-sys-model.md", entry.Files[3].Name)
		assert.Equal(t, "sys_model", entry.Files[3].Type)
	})

	t.Run("keeps a generic url only when no academic url exists", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()

		var saved *paperdex.Catalog
		m := &scan.Merger{
			Store: &mock.CatalogStore{
				LoadFn: func(ctx context.Context) (*paperdex.Catalog, error) { return paperdex.NewCatalog(), nil },
				SaveFn: func(ctx context.Context, catalog *paperdex.Catalog) error {
					saved = catalog
					return nil
				},
			},
			Now: fixedNow,
		}

		papers := map[string]*paperdex.Paper{
			"2412.19255": {ArxivURL: "https://arxiv.org/abs/2412.19255"},
			"2501.00663": {URL: "https://github.com/example/flashcache"},
		}

		_, err := m.Merge(context.Background(), root, papers)

		require.NoError(t, err)
		assert.Equal(t, "https://arxiv.org/abs/2412.19255", saved.Papers["2412.19255"].ArxivURL)
		assert.Empty(t, saved.Papers["2412.19255"].URL)
		assert.Equal(t, "https://github.com/example/flashcache", saved.Papers["2501.00663"].URL)
		assert.Empty(t, saved.Papers["2501.00663"].ArxivURL)
	})

	t.Run("wraps store failures", func(t *testing.T) {
		t.Parallel()

		loadErr := paperdex.Errorf(paperdex.EINVALID, "catalog file is not valid JSON")
		m := &scan.Merger{Store: &mock.CatalogStore{
			LoadFn: func(ctx context.Context) (*paperdex.Catalog, error) { return nil, loadErr },
		}}

		_, err := m.Merge(context.Background(), t.TempDir(), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "loading catalog")
		assert.Equal(t, paperdex.EINVALID, paperdex.ErrorCode(err))

		saveErr := paperdex.Errorf(paperdex.EINTERNAL, "disk full")
		m = &scan.Merger{Store: &mock.CatalogStore{
			LoadFn: func(ctx context.Context) (*paperdex.Catalog, error) { return paperdex.NewCatalog(), nil },
			SaveFn: func(ctx context.Context, catalog *paperdex.Catalog) error { return saveErr },
		}}

		_, err = m.Merge(context.Background(), t.TempDir(), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "saving catalog")
	})

	t.Run("produces identical catalogs on repeated runs", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		dir := filepath.Join(root, "2412.19255v2")
		require.NoError(t, os.Mkdir(dir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "paper.html"), []byte("<html>"), 0644))

		path := filepath.Join(t.TempDir(), "meta.json")
		m := &scan.Merger{Store: fs.NewCatalogStore(path), Now: fixedNow}

		papers := map[string]*paperdex.Paper{
			"2412.19255": {Title: "FlashCache", Tags: []string{"架构创新"}, TagColors: []string{"purple"}},
		}

		_, err := m.Merge(context.Background(), root, papers)
		require.NoError(t, err)
		first, err := os.ReadFile(path)
		require.NoError(t, err)

		_, err = m.Merge(context.Background(), root, papers)
		require.NoError(t, err)
		second, err := os.ReadFile(path)
		require.NoError(t, err)

		assert.Equal(t, string(first), string(second))
	})
}
