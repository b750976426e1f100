package layout

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Sentinel errors for page operations.
var (
	ErrSurface    = errors.New("cannot create drawing surface")
	ErrPageSealed = errors.New("page is sealed")
)

// MaxSurfacePixels caps a single page surface.
const MaxSurfacePixels = 1 << 26

// footerOffset is the distance from the content bottom to the footer line.
const footerOffset = 36

// Role classifies a drawn text run.
type Role int

const (
	RoleBody Role = iota
	RoleTitle
	RoleHeading
	RoleMeta
	RoleMarker
	RoleFooter
)

// TextRun records one string drawn on a page.
type TextRun struct {
	Text string
	X, Y float64
	Role Role
}

// ImageRun records one image drawn on a page.
type ImageRun struct {
	X, Y, W, H float64
}

// SurfaceFactory allocates a drawing surface of w by h pixels filled with bg.
type SurfaceFactory func(w, h int, bg color.Color) (xdraw.Image, error)

// NewRGBASurface is the default SurfaceFactory.
func NewRGBASurface(w, h int, bg color.Color) (xdraw.Image, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrSurface, w, h)
	}
	if w*h > MaxSurfacePixels {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrSurface, w, h, MaxSurfacePixels)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, xdraw.Src)
	return img, nil
}

// Page is one raster page: a surface, a write cursor and a page number.
// Every drawing call is also recorded in the page's display list.
type Page struct {
	geo     Geometry
	surface xdraw.Image
	number  int
	cursorY float64
	sealed  bool

	texts  []TextRun
	images []ImageRun
}

func newPage(geo Geometry, number int, surface xdraw.Image) *Page {
	return &Page{
		geo:     geo,
		surface: surface,
		number:  number,
		cursorY: geo.MarginTop,
	}
}

// Number returns the 1-based page number.
func (p *Page) Number() int { return p.number }

// CursorY returns the current write position.
func (p *Page) CursorY() float64 { return p.cursorY }

// Surface returns the page raster.
func (p *Page) Surface() image.Image { return p.surface }

// Sealed reports whether the page has been committed.
func (p *Page) Sealed() bool { return p.sealed }

// Empty reports whether nothing has been drawn on the page.
func (p *Page) Empty() bool { return len(p.texts) == 0 && len(p.images) == 0 }

// Texts returns the text runs drawn on the page, in drawing order.
func (p *Page) Texts() []TextRun { return append([]TextRun(nil), p.texts...) }

// Images returns the images drawn on the page, in drawing order.
func (p *Page) Images() []ImageRun { return append([]ImageRun(nil), p.images...) }

// DrawText draws s with its top edge at y.
func (p *Page) DrawText(s string, x, y float64, face font.Face, c color.Color, role Role) error {
	if p.sealed {
		return fmt.Errorf("%w: page %d", ErrPageSealed, p.number)
	}
	d := font.Drawer{
		Dst:  p.surface,
		Src:  image.NewUniform(c),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(math.Round(x * 64)),
			Y: fixed.Int26_6(math.Round(y*64)) + face.Metrics().Ascent,
		},
	}
	d.DrawString(s)
	p.texts = append(p.texts, TextRun{Text: s, X: x, Y: y, Role: role})
	return nil
}

// DrawImage scales img into the w by h box whose top-left corner is (x, y).
func (p *Page) DrawImage(img image.Image, x, y, w, h float64) error {
	if p.sealed {
		return fmt.Errorf("%w: page %d", ErrPageSealed, p.number)
	}
	dst := image.Rect(
		int(math.Round(x)), int(math.Round(y)),
		int(math.Round(x+w)), int(math.Round(y+h)),
	)
	xdraw.CatmullRom.Scale(p.surface, dst, img, img.Bounds(), xdraw.Over, nil)
	p.images = append(p.images, ImageRun{X: x, Y: y, W: w, H: h})
	return nil
}

// StampFooter draws s right-aligned against the right margin, below the
// content area. It is measured first so it never crosses the margin.
func (p *Page) StampFooter(s string, face font.Face, c color.Color) error {
	width := float64(font.MeasureString(face, s)) / 64
	x := p.geo.Width - p.geo.MarginX - width
	y := p.geo.ContentBottom() + footerOffset
	return p.DrawText(s, x, y, face, c, RoleFooter)
}
