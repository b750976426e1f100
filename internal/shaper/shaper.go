// Package shaper measures and wraps plain text against a pixel width budget.
//
// Wrapping is rune-granular: words are never kept together and no hyphens
// are inserted. This keeps CJK and mixed-script text, where word boundaries
// are unreliable, flowing to the full line width.
package shaper

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/text/unicode/norm"
)

// Measurer reports the advance width of a string in logical pixels.
type Measurer interface {
	Measure(s string) float64
}

// FaceMeasurer measures strings with a font face.
type FaceMeasurer struct {
	Face font.Face
}

// Measure returns the advance width of s rendered with the face.
func (m FaceMeasurer) Measure(s string) float64 {
	return float64(font.MeasureString(m.Face, s)) / 64
}

// MeasureFunc adapts a plain function to Measurer.
type MeasureFunc func(s string) float64

// Measure calls f(s).
func (f MeasureFunc) Measure(s string) float64 { return f(s) }

// Wrap splits text into lines no wider than maxWidth.
//
// Explicit newlines always break, and empty source lines are kept as empty
// output lines. A space that would start a continuation line is dropped.
// A line always holds at least one rune, even when that rune alone is
// wider than maxWidth. Empty input yields a single empty line.
func Wrap(m Measurer, text string, maxWidth float64) []string {
	if text == "" {
		return []string{""}
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = norm.NFC.String(text)

	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		var current strings.Builder
		for _, r := range raw {
			candidate := current.String() + string(r)
			if current.Len() == 0 || m.Measure(candidate) <= maxWidth {
				current.Reset()
				current.WriteString(candidate)
				continue
			}
			lines = append(lines, current.String())
			current.Reset()
			if r != ' ' {
				current.WriteRune(r)
			}
		}
		switch {
		case current.Len() > 0:
			lines = append(lines, current.String())
		case raw == "":
			lines = append(lines, "")
		}
	}
	return lines
}
