package sections

import (
	"context"
	"errors"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/alnah/go-reportpdf/internal/fonts"
	"github.com/alnah/go-reportpdf/internal/layout"
)

const (
	headCloud    = "文字雲"
	NoImage      = "尚未取得圖像資料。"
	imageFailed  = "圖像載入失敗："
	cloudReserve = 80 // kept free below the image
)

var errNoLoader = errors.New("no image loader configured")

// WordCloud draws the word-cloud image on a page of its own.
// A missing or broken image degrades to a muted note.
type WordCloud struct{}

func (WordCloud) Name() string { return "word-cloud" }

func (WordCloud) Render(ctx context.Context, r *Run) error {
	p := r.Pages
	if !p.AtTop() {
		p.BreakPage()
	}
	r.line(headCloud, fonts.Weighted(26, fonts.WeightSemibold), layout.RoleHeading, true, 40)

	url := r.Report.WordcloudURL
	if url == "" {
		r.muted(nil, NoImage, 12)
		return p.Err()
	}

	var err error
	if r.Images == nil {
		err = errNoLoader
	} else {
		err = r.drawImage(ctx, url)
	}
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		r.log().WithFields(logrus.Fields{"url": url, "error": err}).Warn("word cloud unavailable")
		r.muted(nil, imageFailed+err.Error(), 12)
	}
	return p.Err()
}

func (r *Run) drawImage(ctx context.Context, url string) error {
	img, err := r.Images.Load(ctx, url)
	if err != nil {
		return err
	}

	p := r.Pages
	geo := p.Geometry()
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	availW := geo.ContentWidth()
	availH := geo.ContentHeight() - cloudReserve

	scale := math.Min(math.Min(availW/w, availH/h), 1)
	dw, dh := w*scale, h*scale
	p.Image(img, geo.MarginX+(availW-dw)/2, p.Cursor(), dw, dh)
	return nil
}
