package layout

import (
	"image/color"

	"github.com/alnah/go-reportpdf/internal/fonts"
	"github.com/alnah/go-reportpdf/internal/shaper"
)

// SectionContext carries a section's continuation: what to redraw at the
// top of a page after a forced break in the middle of the section.
type SectionContext struct {
	name   string
	redraw func()
	breaks int
}

// NewSectionContext returns a context whose Continue calls redraw.
func NewSectionContext(name string, redraw func()) *SectionContext {
	return &SectionContext{name: name, redraw: redraw}
}

// Name returns the section name.
func (sc *SectionContext) Name() string {
	if sc == nil {
		return ""
	}
	return sc.name
}

// Continue records a forced break and redraws the section heading.
// A nil context does nothing.
func (sc *SectionContext) Continue() {
	if sc == nil {
		return
	}
	sc.breaks++
	if sc.redraw != nil {
		sc.redraw()
	}
}

// Breaks returns how many forced breaks the section went through.
func (sc *SectionContext) Breaks() int {
	if sc == nil {
		return 0
	}
	return sc.breaks
}

// ParagraphStyle controls Paragraph.
type ParagraphStyle struct {
	Font       fonts.Spec
	Color      color.Color
	LineHeight float64
	GapAfter   float64
	Role       Role
}

// BulletStyle controls BulletList.
type BulletStyle struct {
	Font       fonts.Spec
	Color      color.Color
	LineHeight float64
	Spacing    float64 // between bullets
	Indent     float64 // from marker to text
	Marker     string
}

// DefaultParagraph returns body text: 16px regular, 26px lines, 12px after.
func (p *Paginator) DefaultParagraph() ParagraphStyle {
	return ParagraphStyle{
		Font:       fonts.Regular(16),
		Color:      p.theme.Body,
		LineHeight: 26,
		GapAfter:   12,
		Role:       RoleBody,
	}
}

// MutedParagraph returns DefaultParagraph in the muted color.
func (p *Paginator) MutedParagraph() ParagraphStyle {
	st := p.DefaultParagraph()
	st.Color = p.theme.Muted
	return st
}

// DefaultBullets returns the bullet list style: a dot marker with text
// indented 24px, 26px lines and 10px between bullets.
func (p *Paginator) DefaultBullets() BulletStyle {
	return BulletStyle{
		Font:       fonts.Regular(16),
		Color:      p.theme.Body,
		LineHeight: 26,
		Spacing:    10,
		Indent:     24,
		Marker:     "•",
	}
}

// breakFor commits the page mid-block and lets the section redraw its
// heading on the new page.
func (p *Paginator) breakFor(sc *SectionContext) {
	p.Commit()
	if p.err != nil {
		return
	}
	sc.Continue()
}

// Paragraph wraps text to the content width and draws it line by line.
// Each line is checked against the bottom margin; a line that does not fit
// moves to a new page after sc has redrawn its heading there.
func (p *Paginator) Paragraph(sc *SectionContext, text string, st ParagraphStyle) {
	if p.err != nil {
		return
	}
	m := shaper.FaceMeasurer{Face: p.faces.Face(st.Font)}
	for _, line := range shaper.Wrap(m, text, p.geo.ContentWidth()) {
		if !p.Fits(st.LineHeight) {
			p.breakFor(sc)
		}
		p.Text(line, p.geo.MarginX, p.Cursor(), st.Font, st.Color, st.Role)
		p.Advance(st.LineHeight)
	}
	p.Advance(st.GapAfter)
}

// BulletList draws each bullet with its marker at the left margin and its
// text wrapped to the indented width.
//
// A bullet that does not fit but would fit on an empty page starts on the
// next page whole. A bullet taller than a page is split line by line, with
// the marker only on its first line.
func (p *Paginator) BulletList(sc *SectionContext, bullets []string, st BulletStyle) {
	if p.err != nil {
		return
	}
	m := shaper.FaceMeasurer{Face: p.faces.Face(st.Font)}
	textX := p.geo.MarginX + st.Indent
	width := p.geo.ContentWidth() - st.Indent

	for _, bullet := range bullets {
		lines := shaper.Wrap(m, bullet, width)
		height := max(st.LineHeight, float64(len(lines))*st.LineHeight)
		if !p.Fits(height) && height <= p.geo.ContentHeight() {
			p.breakFor(sc)
		}

		for i, line := range lines {
			if !p.Fits(st.LineHeight) {
				p.breakFor(sc)
			}
			if i == 0 {
				p.Text(st.Marker, p.geo.MarginX, p.Cursor(), st.Font, st.Color, RoleMarker)
			}
			p.Text(line, textX, p.Cursor(), st.Font, st.Color, RoleBody)
			p.Advance(st.LineHeight)
		}
		p.Advance(st.Spacing)
		if p.err != nil {
			return
		}
	}
}
