// Package sections draws the fixed sequence of report sections onto a
// paginator: the title block, the global summary, its expansions, the
// aggregated keywords, one card per analyzed page and the word cloud.
//
// Every section that can overflow a page builds a layout.SectionContext whose
// redraw callback repeats the section heading on the continuation page.
package sections

import (
	"context"
	"image"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/alnah/go-reportpdf/internal/fonts"
	"github.com/alnah/go-reportpdf/internal/layout"
)

// SectionGap is the vertical space after the summary and expansion sections.
const SectionGap = 32

// Report is the read-only view of an analysis result that sections draw.
type Report struct {
	DocumentTitle  string
	LanguageLabel  string
	TotalPages     int
	Bullets        []string
	KeyConclusions string
	CoreData       string
	Risks          string
	Keywords       []string
	Pages          []PageCard
	WordcloudURL   string
}

// PageCard is one per-page summary.
type PageCard struct {
	Number         int
	Classification string
	Bullets        []string
	Keywords       []string
	Skipped        bool
	SkipReason     string
}

// ImageLoader fetches and decodes an image.
type ImageLoader interface {
	Load(ctx context.Context, url string) (image.Image, error)
}

// Run is the state shared by the sections of one report.
type Run struct {
	Report *Report
	Pages  *layout.Paginator
	Images ImageLoader        // nil means every image is unavailable
	Log    logrus.FieldLogger // nil means discard
	Gap    float64            // zero means SectionGap
}

// Section draws one part of the report.
type Section interface {
	Name() string
	Render(ctx context.Context, r *Run) error
}

// Default returns the report sections in drawing order.
func Default() []Section {
	return []Section{
		Title{},
		GlobalSummary{},
		Expansions{},
		Keywords{},
		PageSummaries{},
		WordCloud{},
	}
}

func (r *Run) gap() float64 {
	if r.Gap > 0 {
		return r.Gap
	}
	return SectionGap
}

func (r *Run) log() logrus.FieldLogger {
	if r.Log != nil {
		return r.Log
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// line draws a single unwrapped line at the left margin and advances.
func (r *Run) line(text string, spec fonts.Spec, role layout.Role, heading bool, advance float64) {
	p := r.Pages
	c := p.Theme().Muted
	if heading {
		c = p.Theme().Heading
	}
	p.Text(text, p.Geometry().MarginX, p.Cursor(), spec, c, role)
	p.Advance(advance)
}

// sectionHeading keeps 80px free and draws a 22px section title.
func (r *Run) sectionHeading(text string) {
	r.Pages.EnsureSpace(80)
	r.line(text, fonts.Weighted(22, fonts.WeightSemibold), layout.RoleHeading, true, 34)
}

// subHeading keeps 50px free and draws an 18px sub-title.
func (r *Run) subHeading(text string) {
	r.Pages.EnsureSpace(50)
	r.line(text, fonts.Weighted(18, fonts.WeightSemibold), layout.RoleHeading, true, 28)
}

// paragraph draws text in the body style with the given gap after it.
func (r *Run) paragraph(sc *layout.SectionContext, text string, gapAfter float64) {
	st := r.Pages.DefaultParagraph()
	st.GapAfter = gapAfter
	r.Pages.Paragraph(sc, text, st)
}

// muted draws text in the muted style with the given gap after it.
func (r *Run) muted(sc *layout.SectionContext, text string, gapAfter float64) {
	st := r.Pages.MutedParagraph()
	st.GapAfter = gapAfter
	r.Pages.Paragraph(sc, text, st)
}
