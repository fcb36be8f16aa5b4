package goquery_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fwojciec/paperdex/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/simplifiedchinese"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title, description, and classification", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>  FlashCache: KV Cache Compression  </title>
<meta name="description" content="A study of KV cache memory compression for LLM inference.">
</head>
<body><p>We compress the KV cache to reduce memory usage.</p></body>
</html>`

		paper, err := goquery.NewExtractor().Extract(html, "2412.19255")

		require.NoError(t, err)
		assert.Equal(t, "FlashCache: KV Cache Compression", paper.Title)
		assert.Equal(t, "A study of KV cache memory compression for LLM inference.", paper.Description)
		assert.Equal(t, "KV缓存优化", paper.Category)
		assert.Equal(t, "blue", paper.CategoryColor)
		assert.Len(t, paper.TagColors, len(paper.Tags))
		assert.NoError(t, paper.Validate())
	})

	t.Run("replaces generic pipeline titles with the first heading", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>ArXiv Deep Reader - 2412.19255</title></head>
<body><h1>Multi-Token Prediction at Scale</h1></body></html>`

		paper, err := goquery.NewExtractor().Extract(html, "")

		require.NoError(t, err)
		assert.Equal(t, "Multi-Token Prediction at Scale", paper.Title)
	})

	t.Run("falls back to the first heading when the title is missing", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><h1>Untitled Analysis</h1><h1>Second Heading</h1></body></html>`

		paper, err := goquery.NewExtractor().Extract(html, "")

		require.NoError(t, err)
		assert.Equal(t, "Untitled Analysis", paper.Title)
	})

	t.Run("keeps a generic title when no heading exists", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>ArXiv Deep Reader</title></head><body><p>body</p></body></html>`

		paper, err := goquery.NewExtractor().Extract(html, "")

		require.NoError(t, err)
		assert.Equal(t, "ArXiv Deep Reader", paper.Title)
	})

	t.Run("skips short and copyright paragraphs for the description", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("这篇论文研究了大模型推理加速问题。", 5)
		html := `<html><body>
<p>short</p>
<p>© 2024 ` + long + `</p>
<p>` + long + `</p>
</body></html>`

		paper, err := goquery.NewExtractor().Extract(html, "")

		require.NoError(t, err)
		assert.Equal(t, long, paper.Description)
	})

	t.Run("truncates long descriptions at 200 characters", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><p>` + strings.Repeat("深", 250) + `</p></body></html>`

		paper, err := goquery.NewExtractor().Extract(html, "")

		require.NoError(t, err)
		assert.Equal(t, 203, utf8.RuneCountInString(paper.Description))
		assert.True(t, strings.HasSuffix(paper.Description, "..."))
	})

	t.Run("ignores blank meta descriptions", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("memory bandwidth analysis ", 4)
		html := `<html><head><meta name="description" content="   "></head>
<body><p>` + long + `</p></body></html>`

		paper, err := goquery.NewExtractor().Extract(html, "")

		require.NoError(t, err)
		assert.Equal(t, strings.TrimSpace(long), paper.Description)
	})

	t.Run("leaves the description empty when nothing qualifies", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><p>too short</p></body></html>`

		paper, err := goquery.NewExtractor().Extract(html, "")

		require.NoError(t, err)
		assert.Empty(t, paper.Description)
	})

	t.Run("parses GBK-encoded documents", func(t *testing.T) {
		t.Parallel()

		utf8HTML := `<html><head><meta charset="gbk"><title>缓存优化研究</title></head>
<body><p>本文研究键值缓存。</p></body></html>`
		gbkHTML, err := simplifiedchinese.GBK.NewEncoder().String(utf8HTML)
		require.NoError(t, err)

		paper, err := goquery.NewExtractor().Extract(gbkHTML, "")

		require.NoError(t, err)
		assert.Equal(t, "缓存优化研究", paper.Title)
		assert.Equal(t, "KV缓存优化", paper.Category)
	})
}
