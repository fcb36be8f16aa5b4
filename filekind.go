package paperdex

import (
	"path/filepath"
	"strings"
)

// FileKind describes how a classified file is displayed: a stable type
// name, a sort priority (lower sorts first), an icon glyph, and a
// human-readable label.
type FileKind struct {
	Type     string
	Priority int
	Icon     string
	Label    string
}

// FileKindOther is the catch-all kind for files matching no rule, so
// classification is total over filenames.
var FileKindOther = FileKind{Type: "other", Priority: 4, Icon: "📎", Label: "其他文件"}

// fileKindRule pairs a filename predicate with the kind assigned on a
// match. Predicates receive the lower-cased base name and its extension
// (with leading dot, also lower-cased).
type fileKindRule struct {
	match func(name, ext string) bool
	kind  FileKind
}

// fileKindRules is evaluated in order and the first match wins. HTML
// analyses outrank everything else, named reports and analyses follow,
// then pipeline artifacts, then PDFs. Substring markers come from the
// analysis pipeline's output naming scheme.
var fileKindRules = []fileKindRule{
	{
		match: func(name, ext string) bool { return ext == ".html" && strings.Contains(name, "step3-model-analysis") },
		kind:  FileKind{Type: "model_analysis", Priority: 2, Icon: "🧠", Label: "模型分析"},
	},
	{
		match: func(name, ext string) bool { return ext == ".html" },
		kind:  FileKind{Type: "analysis", Priority: 1, Icon: "📖", Label: "深度解析"},
	},
	{
		match: func(name, ext string) bool { return strings.Contains(name, "report") || strings.Contains(name, "报告") },
		kind:  FileKind{Type: "report", Priority: 2, Icon: "📊", Label: "研究报告"},
	},
	{
		match: func(name, ext string) bool { return strings.Contains(name, "analysis") || strings.Contains(name, "分析") },
		kind:  FileKind{Type: "analysis_pdf", Priority: 2, Icon: "📊", Label: "分析报告"},
	},
	{
		match: func(name, ext string) bool { return strings.Contains(name, "mfa") && strings.Contains(name, "kr") },
		kind:  FileKind{Type: "mfa_analysis", Priority: 3, Icon: "🔍", Label: "MFA-KR解析"},
	},
	{
		match: func(name, ext string) bool { return strings.Contains(name, "step3-sys-model") },
		kind:  FileKind{Type: "sys_model", Priority: 3, Icon: "⚙️", Label: "系统模型"},
	},
	{
		match: func(name, ext string) bool {
			return strings.Contains(name, "step") || strings.Contains(name, "model") || strings.Contains(name, "sys")
		},
		kind: FileKind{Type: "tech", Priority: 3, Icon: "🔧", Label: "技术报告"},
	},
	{
		match: func(name, ext string) bool {
			return ext == ".pdf" && (strings.Contains(name, "v1") || strings.Contains(name, "v2") || strings.Contains(name, "v3"))
		},
		kind: FileKind{Type: "original", Priority: 2, Icon: "📄", Label: "原文PDF"},
	},
	{
		match: func(name, ext string) bool { return ext == ".pdf" },
		kind:  FileKind{Type: "document", Priority: 3, Icon: "📄", Label: "PDF文档"},
	},
}

// ClassifyFile classifies a file for display by its base name. The path
// may include directories; only the final element is examined. Matching
// is case-insensitive and every filename yields exactly one kind.
func ClassifyFile(filename string) FileKind {
	name := strings.ToLower(filepath.Base(filename))
	ext := filepath.Ext(name)
	for _, rule := range fileKindRules {
		if rule.match(name, ext) {
			return rule.kind
		}
	}
	return FileKindOther
}
