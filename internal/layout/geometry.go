// Package layout lays report content out on raster pages.
//
// All coordinates are logical pixels on a fixed virtual page. Text is drawn
// top-aligned: a line drawn at y occupies [y, y+lineHeight), so advancing the
// write cursor is plain addition. The physical page size only matters to the
// PDF assembler.
package layout

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrInvalidGeometry indicates page dimensions or margins that leave no
// drawable content area.
var ErrInvalidGeometry = errors.New("invalid page geometry")

// Geometry is the logical page size and its margins.
type Geometry struct {
	Width        float64
	Height       float64
	MarginX      float64
	MarginTop    float64
	MarginBottom float64
}

// DefaultGeometry returns a 1190x1684 logical page, twice the A4 point size.
func DefaultGeometry() Geometry {
	return Geometry{
		Width:        1190,
		Height:       1684,
		MarginX:      80,
		MarginTop:    80,
		MarginBottom: 100,
	}
}

// Validate checks that the geometry leaves a positive content area.
func (g Geometry) Validate() error {
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("%w: page %vx%v", ErrInvalidGeometry, g.Width, g.Height)
	}
	if g.MarginX < 0 || g.MarginTop < 0 || g.MarginBottom < 0 {
		return fmt.Errorf("%w: negative margin", ErrInvalidGeometry)
	}
	if g.ContentWidth() <= 0 {
		return fmt.Errorf("%w: horizontal margins %v exceed width %v", ErrInvalidGeometry, g.MarginX, g.Width)
	}
	if g.ContentHeight() <= 0 {
		return fmt.Errorf("%w: vertical margins exceed height %v", ErrInvalidGeometry, g.Height)
	}
	return nil
}

// ContentWidth is the horizontal space between the side margins.
func (g Geometry) ContentWidth() float64 { return g.Width - 2*g.MarginX }

// ContentBottom is the lowest y that content may reach.
func (g Geometry) ContentBottom() float64 { return g.Height - g.MarginBottom }

// ContentHeight is the vertical space between the top and bottom margins.
func (g Geometry) ContentHeight() float64 { return g.ContentBottom() - g.MarginTop }

// Theme holds the report colors.
type Theme struct {
	Background color.Color
	Heading    color.Color
	Body       color.Color
	Muted      color.Color
}

// DefaultTheme returns the report palette: near-black headings, dark gray
// body text and a muted gray for placeholders and metadata.
func DefaultTheme() Theme {
	return Theme{
		Background: color.White,
		Heading:    color.RGBA{R: 0x11, G: 0x18, B: 0x27, A: 0xff},
		Body:       color.RGBA{R: 0x1f, G: 0x29, B: 0x37, A: 0xff},
		Muted:      color.RGBA{R: 0x6b, G: 0x72, B: 0x80, A: 0xff},
	}
}
