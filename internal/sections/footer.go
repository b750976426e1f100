package sections

import (
	"fmt"
	"image/color"

	"github.com/alnah/go-reportpdf/internal/fonts"
	"github.com/alnah/go-reportpdf/internal/layout"
)

// Footer stamps "第 N 頁" in 14px on every committed page.
func Footer(faces layout.Faces, c color.Color) layout.FooterStamp {
	return func(p *layout.Page) error {
		return p.StampFooter(fmt.Sprintf("第 %d 頁", p.Number()), faces.Face(fonts.Regular(14)), c)
	}
}
