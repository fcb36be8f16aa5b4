package paperdex

import "strings"

// Category groups papers by research area and carries the visual styling
// the catalog site renders for that area: a color name for the category
// badge, a fixed tag set with per-tag colors, and a CSS gradient class
// for the card background.
type Category struct {
	Label     string
	Color     string
	Tags      []string
	TagColors []string
	Gradient  string
}

// Apply copies the category's display fields onto a paper. Tag slices
// are copied so papers never alias the shared rule table.
func (c Category) Apply(p *Paper) {
	p.Category = c.Label
	p.CategoryColor = c.Color
	p.Tags = append([]string(nil), c.Tags...)
	p.TagColors = append([]string(nil), c.TagColors...)
	p.Gradient = c.Gradient
}

// CategoryDefault is assigned to papers that match no keyword rule.
var CategoryDefault = Category{
	Label:     "AI研究",
	Color:     "gray",
	Tags:      []string{"机器学习", "AI技术"},
	TagColors: []string{"blue", "green"},
	Gradient:  "from-gray-600 to-gray-700",
}

// categoryRule pairs a keyword list with the category assigned when any
// keyword appears in a paper's text or title.
type categoryRule struct {
	keywords []string
	category Category
}

// categoryRules is evaluated in order and the first match wins, so the
// more specific research areas come before the catch-all architecture
// rule. Keywords are lowercase; each list mixes English and Chinese
// terms because the analyzed documents are bilingual.
var categoryRules = []categoryRule{
	{
		keywords: []string{"kv cache", "kv缓存", "cache", "缓存", "memory", "attention"},
		category: Category{
			Label:     "KV缓存优化",
			Color:     "blue",
			Tags:      []string{"架构创新", "内存优化", "性能提升"},
			TagColors: []string{"purple", "green", "orange"},
			Gradient:  "from-blue-600 to-purple-600",
		},
	},
	{
		keywords: []string{"multi-token", "多令牌", "prediction", "预测", "parallel", "并行"},
		category: Category{
			Label:     "推理加速",
			Color:     "emerald",
			Tags:      []string{"并行计算", "推测解码", "效率优化"},
			TagColors: []string{"blue", "red", "yellow"},
			Gradient:  "from-emerald-600 to-teal-600",
		},
	},
	{
		keywords: []string{"training", "训练", "fine-tuning", "微调", "lora", "peft"},
		category: Category{
			Label:     "模型训练",
			Color:     "purple",
			Tags:      []string{"训练优化", "参数高效", "微调技术"},
			TagColors: []string{"blue", "green", "purple"},
			Gradient:  "from-purple-600 to-indigo-600",
		},
	},
	{
		keywords: []string{"reasoning", "推理", "logic", "逻辑", "chain of thought", "cot"},
		category: Category{
			Label:     "推理能力",
			Color:     "orange",
			Tags:      []string{"逻辑推理", "思维链", "问题解决"},
			TagColors: []string{"red", "orange", "yellow"},
			Gradient:  "from-orange-600 to-red-600",
		},
	},
	{
		keywords: []string{"multimodal", "多模态", "vision", "视觉", "image", "图像"},
		category: Category{
			Label:     "多模态",
			Color:     "pink",
			Tags:      []string{"视觉理解", "多模态融合", "跨模态"},
			TagColors: []string{"pink", "purple", "blue"},
			Gradient:  "from-pink-600 to-purple-600",
		},
	},
	{
		keywords: []string{"architecture", "架构", "transformer", "attention", "model"},
		category: Category{
			Label:     "模型架构",
			Color:     "indigo",
			Tags:      []string{"架构设计", "注意力机制", "模型创新"},
			TagColors: []string{"indigo", "blue", "purple"},
			Gradient:  "from-indigo-600 to-blue-600",
		},
	},
}

// Classify assigns a category based on keyword matches against the
// document text and title. Matching is case-insensitive substring
// containment; papers matching no rule fall back to CategoryDefault.
func Classify(text, title string) Category {
	haystack := strings.ToLower(text) + "\n" + strings.ToLower(title)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(haystack, kw) {
				return rule.category
			}
		}
	}
	return CategoryDefault
}
