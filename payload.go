package reportpdf

import (
	"fmt"

	"github.com/alnah/go-reportpdf/internal/sections"
)

// Classification is the kind of content found on an analyzed page.
type Classification string

// Known classifications. Any other value is accepted and shown verbatim.
const (
	ClassificationNormal    Classification = "normal"
	ClassificationTOC       Classification = "toc"
	ClassificationPureImage Classification = "pure_image"
	ClassificationBlank     Classification = "blank"
	ClassificationCover     Classification = "cover"
)

// ClassificationLabel returns the display label for c. Unknown values pass
// through unchanged.
func ClassificationLabel(c Classification) string {
	return sections.ClassificationLabel(string(c))
}

// Payload is one analysis result to render. It is read, never modified.
type Payload struct {
	DocumentTitle      string        `json:"documentTitle" yaml:"documentTitle"`
	LanguageLabel      string        `json:"languageLabel,omitempty" yaml:"languageLabel"` // empty means absent
	TotalPages         int           `json:"totalPages" yaml:"totalPages"`
	GlobalSummary      GlobalSummary `json:"globalSummary" yaml:"globalSummary"`
	AggregatedKeywords []string      `json:"aggregatedKeywords" yaml:"aggregatedKeywords"`
	PageSummaries      []PageSummary `json:"pageSummaries" yaml:"pageSummaries"`
	WordcloudURL       string        `json:"wordcloudUrl,omitempty" yaml:"wordcloudUrl"`
	FontURL            string        `json:"fontUrl,omitempty" yaml:"fontUrl"` // overrides the generator default
}

// GlobalSummary is the document-level summary.
type GlobalSummary struct {
	Bullets    []string   `json:"bullets" yaml:"bullets"`
	Expansions Expansions `json:"expansions" yaml:"expansions"`
}

// Expansions holds the three long-form panels. Empty fields are drawn as a
// placeholder; the panel itself always appears.
type Expansions struct {
	KeyConclusions  string `json:"key_conclusions" yaml:"key_conclusions"`
	CoreData        string `json:"core_data" yaml:"core_data"`
	RisksAndActions string `json:"risks_and_actions" yaml:"risks_and_actions"`
}

// PageSummary is the analysis of one source page. Order is preserved.
type PageSummary struct {
	PageNumber     int            `json:"page_number" yaml:"page_number"`
	Classification Classification `json:"classification" yaml:"classification"`
	Bullets        []string       `json:"bullets" yaml:"bullets"`
	Keywords       []string       `json:"keywords" yaml:"keywords"`
	Skipped        bool           `json:"skipped" yaml:"skipped"`
	SkipReason     string         `json:"skip_reason,omitempty" yaml:"skip_reason"`
}

// Validate checks the counts a report cannot be drawn without.
// An unknown classification is not an error.
func (p *Payload) Validate() error {
	if p.TotalPages < 0 {
		return fmt.Errorf("%w: %d (must not be negative)", ErrInvalidTotalPages, p.TotalPages)
	}
	for i, ps := range p.PageSummaries {
		if ps.PageNumber < 1 {
			return fmt.Errorf("%w: pageSummaries[%d] has %d (must be at least 1)", ErrInvalidPageNumber, i, ps.PageNumber)
		}
	}
	return nil
}

// report converts the payload to the view the sections draw, passing every
// free-text field through text.
func (p *Payload) report(text func(string) string) *sections.Report {
	each := func(in []string) []string {
		if len(in) == 0 {
			return nil
		}
		out := make([]string, len(in))
		for i, s := range in {
			out[i] = text(s)
		}
		return out
	}

	rep := &sections.Report{
		DocumentTitle:  p.DocumentTitle,
		LanguageLabel:  p.LanguageLabel,
		TotalPages:     p.TotalPages,
		Bullets:        each(p.GlobalSummary.Bullets),
		KeyConclusions: text(p.GlobalSummary.Expansions.KeyConclusions),
		CoreData:       text(p.GlobalSummary.Expansions.CoreData),
		Risks:          text(p.GlobalSummary.Expansions.RisksAndActions),
		Keywords:       p.AggregatedKeywords,
		WordcloudURL:   p.WordcloudURL,
	}
	rep.Pages = make([]sections.PageCard, len(p.PageSummaries))
	for i, ps := range p.PageSummaries {
		rep.Pages[i] = sections.PageCard{
			Number:         ps.PageNumber,
			Classification: string(ps.Classification),
			Bullets:        each(ps.Bullets),
			Keywords:       ps.Keywords,
			Skipped:        ps.Skipped,
			SkipReason:     ps.SkipReason,
		}
	}
	return rep
}
