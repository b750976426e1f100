package sections

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-reportpdf/internal/fonts"
	"github.com/alnah/go-reportpdf/internal/layout"
)

// Placeholders drawn when a field is empty.
const (
	NoSummary    = "尚未提供全局摘要。"
	NoData       = "暫無資料"
	NoKeywords   = "暫無整體關鍵字資料。"
	Untitled     = "未命名檔案"
	reportTitle  = "分析報告"
	metaSep      = "  •  "
	keywordSep   = "，"
	headSummary  = "全局摘要"
	headExpand   = "延伸說明"
	headKeywords = "整體關鍵字"
)

// Title draws the report title, the document title and the meta line.
type Title struct{}

func (Title) Name() string { return "title" }

func (Title) Render(_ context.Context, r *Run) error {
	rep := r.Report
	r.line(reportTitle, fonts.Weighted(32, fonts.WeightBold), layout.RoleTitle, true, 46)

	doc := rep.DocumentTitle
	if doc == "" {
		doc = Untitled
	}
	r.line(doc, fonts.Weighted(24, fonts.WeightSemibold), layout.RoleTitle, true, 38)

	var meta []string
	if rep.LanguageLabel != "" {
		meta = append(meta, "語言："+rep.LanguageLabel)
	}
	meta = append(meta, fmt.Sprintf("總頁數：%d", rep.TotalPages))
	r.line(strings.Join(meta, metaSep), fonts.Regular(15), layout.RoleMeta, false, 40)

	return r.Pages.Err()
}

// GlobalSummary draws the document-wide bullet list.
type GlobalSummary struct{}

func (GlobalSummary) Name() string { return "global-summary" }

func (GlobalSummary) Render(_ context.Context, r *Run) error {
	r.sectionHeading(headSummary)
	if len(r.Report.Bullets) > 0 {
		sc := layout.NewSectionContext(headSummary, func() { r.sectionHeading(headSummary) })
		r.Pages.BulletList(sc, r.Report.Bullets, r.Pages.DefaultBullets())
	} else {
		r.muted(nil, NoSummary, 12)
	}
	r.Pages.Advance(r.gap())
	return r.Pages.Err()
}

// Expansions draws the three expansion paragraphs under their sub-headings.
// The panel is drawn even when every field is empty.
type Expansions struct{}

func (Expansions) Name() string { return "expansions" }

func (Expansions) Render(_ context.Context, r *Run) error {
	rep := r.Report
	parts := []struct {
		title string
		text  string
		gap   float64
	}{
		{"關鍵結論", rep.KeyConclusions, 16},
		{"核心資料", rep.CoreData, 16},
		{"風險與建議", rep.Risks, 12},
	}

	r.sectionHeading(headExpand)
	for _, part := range parts {
		r.subHeading(part.title)
		text := part.text
		if text == "" {
			text = NoData
		}
		sc := layout.NewSectionContext(part.title, func() {
			r.sectionHeading(headExpand)
			r.subHeading(part.title)
		})
		r.paragraph(sc, text, part.gap)
	}
	r.Pages.Advance(r.gap())
	return r.Pages.Err()
}

// Keywords draws the aggregated keywords as one paragraph, then ends the page.
type Keywords struct{}

func (Keywords) Name() string { return "keywords" }

func (Keywords) Render(_ context.Context, r *Run) error {
	r.sectionHeading(headKeywords)
	if len(r.Report.Keywords) > 0 {
		sc := layout.NewSectionContext(headKeywords, func() { r.sectionHeading(headKeywords) })
		r.paragraph(sc, strings.Join(r.Report.Keywords, keywordSep), 0)
	} else {
		r.muted(nil, NoKeywords, 12)
	}
	r.Pages.BreakPage()
	return r.Pages.Err()
}
