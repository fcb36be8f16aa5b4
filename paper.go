package paperdex

// Paper holds the display metadata extracted from a paper's primary
// analysis document. It is the unit produced by an Extractor and later
// merged into the catalog as a PaperEntry.
type Paper struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	CategoryColor string   `json:"categoryColor"`
	Tags          []string `json:"tags"`
	TagColors     []string `json:"tagColors"`
	Gradient      string   `json:"gradient"`

	// ArxivURL is set when the source could be identified as an arXiv
	// paper. URL is set for any other discovered source link. At most
	// one of the two is ever populated.
	ArxivURL string `json:"arxivUrl,omitempty"`
	URL      string `json:"url,omitempty"`
}

// Validate returns an error if the paper contains invalid fields.
func (p *Paper) Validate() error {
	if len(p.Tags) != len(p.TagColors) {
		return Errorf(EINVALID, "paper has %d tags but %d tag colors", len(p.Tags), len(p.TagColors))
	}
	if p.ArxivURL != "" && p.URL != "" {
		return Errorf(EINVALID, "paper cannot have both an arXiv URL and a generic URL")
	}
	return nil
}

// DefaultPaper returns the metadata used when a paper's document is
// missing or unreadable. The visual fields come from the fallback
// category so every catalog entry renders consistently.
func DefaultPaper() *Paper {
	p := &Paper{
		Title:       "未知论文",
		Description: "这是一篇关于AI技术的研究论文，包含了最新的研究成果和技术创新。",
	}
	CategoryDefault.Apply(p)
	return p
}
