package layout

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/font"

	"github.com/alnah/go-reportpdf/internal/fonts"
)

// ErrFinished indicates drawing after Finish.
var ErrFinished = errors.New("paginator already finished")

// Faces resolves a font spec to a face.
type Faces interface {
	Face(spec fonts.Spec) font.Face
}

// FooterStamp seals a page with its footer. It runs once per committed page.
type FooterStamp func(p *Page) error

// Options configures a Paginator.
type Options struct {
	Faces   Faces          // required
	Theme   Theme          // zero value means DefaultTheme
	Surface SurfaceFactory // nil means NewRGBASurface
	Footer  FooterStamp    // nil means no footer
}

// Paginator owns the ordered sequence of pages. Exactly one page is active;
// committed pages are sealed and never change again.
//
// The first error is kept and turns every later operation into a no-op, so
// drawing code can run straight through and check Err (or Finish) once.
type Paginator struct {
	geo     Geometry
	faces   Faces
	theme   Theme
	surface SurfaceFactory
	footer  FooterStamp

	active   *Page
	sealed   []*Page
	finished bool
	err      error
}

// NewPaginator validates the geometry and opens page 1.
func NewPaginator(geo Geometry, opts Options) (*Paginator, error) {
	if err := geo.Validate(); err != nil {
		return nil, err
	}
	if opts.Faces == nil {
		return nil, errors.New("layout: Options.Faces is required")
	}
	if opts.Theme.Background == nil {
		opts.Theme = DefaultTheme()
	}
	if opts.Surface == nil {
		opts.Surface = NewRGBASurface
	}

	p := &Paginator{
		geo:     geo,
		faces:   opts.Faces,
		theme:   opts.Theme,
		surface: opts.Surface,
		footer:  opts.Footer,
	}
	first, err := p.open(1)
	if err != nil {
		return nil, err
	}
	p.active = first
	return p, nil
}

func (p *Paginator) open(number int) (*Page, error) {
	w := int(math.Ceil(p.geo.Width))
	h := int(math.Ceil(p.geo.Height))
	surface, err := p.surface(w, h, p.theme.Background)
	if err != nil {
		return nil, fmt.Errorf("opening page %d: %w", number, err)
	}
	return newPage(p.geo, number, surface), nil
}

// Geometry returns the page geometry.
func (p *Paginator) Geometry() Geometry { return p.geo }

// Theme returns the colors pages are drawn with.
func (p *Paginator) Theme() Theme { return p.theme }

// Face resolves spec through the paginator's face source.
func (p *Paginator) Face(spec fonts.Spec) font.Face { return p.faces.Face(spec) }

// Active returns the page currently being drawn.
func (p *Paginator) Active() *Page { return p.active }

// Err returns the first error encountered.
func (p *Paginator) Err() error { return p.err }

// Cursor returns the write position on the active page.
func (p *Paginator) Cursor() float64 { return p.active.cursorY }

// Advance moves the write cursor down by dy.
func (p *Paginator) Advance(dy float64) {
	if p.err != nil {
		return
	}
	p.active.cursorY += dy
}

// AtTop reports whether the cursor still sits on the top margin.
func (p *Paginator) AtTop() bool { return p.active.cursorY == p.geo.MarginTop }

// Fits reports whether h more pixels fit above the bottom margin.
func (p *Paginator) Fits(h float64) bool {
	return p.active.cursorY+h <= p.geo.ContentBottom()
}

// EnsureSpace commits the active page unless minHeight still fits on it.
// It reports whether a page break happened.
func (p *Paginator) EnsureSpace(minHeight float64) bool {
	if p.err != nil || p.Fits(minHeight) {
		return false
	}
	p.Commit()
	return p.err == nil
}

// Commit stamps the footer on the active page, seals it, and opens the
// next page with the number incremented and the cursor at the top margin.
func (p *Paginator) Commit() {
	if !p.seal() {
		return
	}
	next, err := p.open(p.active.number + 1)
	if err != nil {
		p.err = err
		return
	}
	p.active = next
}

// BreakPage commits the active page only if something was drawn on it, so
// a section that must start on a fresh page never leaves a blank one behind.
// It reports whether a page was committed.
func (p *Paginator) BreakPage() bool {
	if p.err != nil || p.active.Empty() {
		return false
	}
	p.Commit()
	return p.err == nil
}

// Finish seals the active page and returns every sealed page in commit
// order. A trailing blank page is dropped unless it is the only page.
func (p *Paginator) Finish() ([]*Page, error) {
	if p.err != nil {
		return nil, p.err
	}
	if !p.finished && (!p.active.Empty() || len(p.sealed) == 0) {
		if !p.seal() {
			return nil, p.err
		}
	}
	p.finished = true
	return append([]*Page(nil), p.sealed...), nil
}

// Sealed returns the pages committed so far.
func (p *Paginator) Sealed() []*Page { return append([]*Page(nil), p.sealed...) }

func (p *Paginator) seal() bool {
	if p.err != nil {
		return false
	}
	if p.finished {
		p.err = ErrFinished
		return false
	}
	if p.footer != nil {
		if err := p.footer(p.active); err != nil {
			p.err = fmt.Errorf("stamping footer on page %d: %w", p.active.number, err)
			return false
		}
	}
	p.active.sealed = true
	p.sealed = append(p.sealed, p.active)
	return true
}

// Text draws s on the active page at an explicit position.
func (p *Paginator) Text(s string, x, y float64, spec fonts.Spec, c color.Color, role Role) {
	if p.err != nil {
		return
	}
	if p.finished {
		p.err = ErrFinished
		return
	}
	if err := p.active.DrawText(s, x, y, p.faces.Face(spec), c, role); err != nil {
		p.err = err
	}
}

// Image draws img on the active page.
func (p *Paginator) Image(img image.Image, x, y, w, h float64) {
	if p.err != nil {
		return
	}
	if p.finished {
		p.err = ErrFinished
		return
	}
	if err := p.active.DrawImage(img, x, y, w, h); err != nil {
		p.err = err
	}
}

// Measure returns the width of s in the face for spec.
func (p *Paginator) Measure(s string, spec fonts.Spec) float64 {
	return float64(font.MeasureString(p.faces.Face(spec), s)) / 64
}
