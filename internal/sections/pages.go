package sections

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-reportpdf/internal/fonts"
	"github.com/alnah/go-reportpdf/internal/layout"
)

const (
	headPages     = "逐頁重點摘要"
	skippedLabel  = "（已跳過）"
	NoPageSummary = "本頁無摘要資料。"
	pageKeywords  = "關鍵字："
	pageSkip      = "跳過原因："
	pageKeySep    = "、"
)

var cardTitle = fonts.Weighted(18, fonts.WeightSemibold)

// PageSummaries draws one card per analyzed page under a single heading,
// then ends the page.
type PageSummaries struct{}

func (PageSummaries) Name() string { return "page-summaries" }

func (PageSummaries) Render(ctx context.Context, r *Run) error {
	heading := func() {
		r.line(headPages, fonts.Weighted(24, fonts.WeightSemibold), layout.RoleHeading, true, 38)
	}
	heading()

	for _, card := range r.Report.Pages {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.Pages.EnsureSpace(160)
		r.cardHeader(card)

		sc := layout.NewSectionContext(fmt.Sprintf("page-%d", card.Number), func() {
			heading()
			r.cardHeader(card)
		})

		if len(card.Bullets) > 0 {
			r.Pages.BulletList(sc, card.Bullets, r.Pages.DefaultBullets())
		} else {
			r.muted(sc, NoPageSummary, 10)
		}
		if len(card.Keywords) > 0 {
			r.muted(sc, pageKeywords+strings.Join(card.Keywords, pageKeySep), 18)
		}
		if card.Skipped && card.SkipReason != "" {
			r.muted(sc, pageSkip+card.SkipReason, 28)
		} else {
			r.Pages.Advance(18)
		}
		if err := r.Pages.Err(); err != nil {
			return err
		}
	}

	r.Pages.BreakPage()
	return r.Pages.Err()
}

// cardHeader draws "第 N 頁" with its muted label to the right.
func (r *Run) cardHeader(card PageCard) {
	p := r.Pages
	x := p.Geometry().MarginX
	y := p.Cursor()
	title := fmt.Sprintf("第 %d 頁", card.Number)
	p.Text(title, x, y, cardTitle, p.Theme().Heading, layout.RoleHeading)

	label := ClassificationLabel(card.Classification)
	if card.Skipped && card.SkipReason != "" {
		label = skippedLabel
	}
	p.Text(" "+label, x+p.Measure(title, cardTitle)+6, y+2, fonts.Regular(15), p.Theme().Muted, layout.RoleMeta)
	p.Advance(28)
}
