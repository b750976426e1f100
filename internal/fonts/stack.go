// Package fonts provides the font fallback chain used to rasterize report
// text, and a memoized cache for remotely hosted font files.
//
// A Stack puts an optional custom font and an installed CJK font in front
// of the Go fonts. Faces produced from a stack pick, rune by rune, the first
// font in the chain that actually has a glyph for that rune, so CJK and
// Latin text can be mixed on a single line.
package fonts

import (
	"errors"
	"fmt"
	"image"
	"slices"
	"sync"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Weights used by the report sections.
const (
	WeightRegular  = 400
	WeightSemibold = 600
	WeightBold     = 700
)

// Spec describes a requested face: a pixel size and a CSS-style weight.
type Spec struct {
	Size   float64
	Weight int
}

// Regular returns a regular-weight spec of the given size.
func Regular(size float64) Spec { return Spec{Size: size, Weight: WeightRegular} }

// Weighted returns a spec of the given size and weight.
func Weighted(size float64, weight int) Spec { return Spec{Size: size, Weight: weight} }

// bold reports whether the fallback tier should use the bold Go font.
func (s Spec) bold() bool { return s.Weight >= WeightSemibold }

var goFonts = sync.OnceValues(func() ([2]*sfnt.Font, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return [2]*sfnt.Font{}, fmt.Errorf("parsing Go Regular: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return [2]*sfnt.Font{}, fmt.Errorf("parsing Go Bold: %w", err)
	}
	return [2]*sfnt.Font{regular, bold}, nil
})

// Stack is an ordered font fallback chain. It is immutable and safe to
// share; faces are created per FaceSet because sfnt buffers are not.
type Stack struct {
	primary *sfnt.Font
	cjk     *sfnt.Font
	regular *sfnt.Font
	bold    *sfnt.Font
}

// NewStack builds a stack with primary, then the installed CJK font found
// by SystemCJK, in front of the Go fonts. A nil primary is skipped.
func NewStack(primary *sfnt.Font) (*Stack, error) {
	return NewStackWithCJK(primary, SystemCJK())
}

// NewStackWithCJK is NewStack with an explicit CJK tier. A nil cjk leaves
// the Go fonts as the only fallback.
func NewStackWithCJK(primary, cjk *sfnt.Font) (*Stack, error) {
	builtin, err := goFonts()
	if err != nil {
		return nil, err
	}
	return &Stack{primary: primary, cjk: cjk, regular: builtin[0], bold: builtin[1]}, nil
}

// HasPrimary reports whether a custom font heads the chain.
func (s *Stack) HasPrimary() bool { return s.primary != nil }

// HasCJK reports whether the chain carries an installed CJK font.
func (s *Stack) HasCJK() bool { return s.cjk != nil }

// NewFaceSet returns a face set for one rendering run.
func (s *Stack) NewFaceSet() *FaceSet {
	return &FaceSet{
		stack:   s,
		faces:   make(map[Spec]*stackFace),
		missing: make(map[rune]struct{}),
	}
}

// FaceSet hands out faces for a single rendering run. It is not safe for
// concurrent use.
type FaceSet struct {
	stack   *Stack
	faces   map[Spec]*stackFace
	missing map[rune]struct{}
	err     error
}

// Face returns the face for spec, creating it on first use. If a face
// cannot be built, the fixed-width basic face is returned and the error is
// kept for Err.
func (fs *FaceSet) Face(spec Spec) font.Face {
	if f, ok := fs.faces[spec]; ok {
		return f
	}

	fallback := fs.stack.regular
	if spec.bold() {
		fallback = fs.stack.bold
	}
	var chain []*sfnt.Font
	for _, f := range []*sfnt.Font{fs.stack.primary, fs.stack.cjk, fallback} {
		if f != nil {
			chain = append(chain, f)
		}
	}

	sf := &stackFace{missing: fs.missing}
	for _, f := range chain {
		face, err := opentype.NewFace(f, &opentype.FaceOptions{
			Size:    spec.Size,
			DPI:     72,
			Hinting: font.HintingNone,
		})
		if err != nil {
			fs.err = errors.Join(fs.err, fmt.Errorf("creating face %vpx/%d: %w", spec.Size, spec.Weight, err))
			continue
		}
		sf.tiers = append(sf.tiers, tier{font: f, face: face})
	}
	if len(sf.tiers) == 0 {
		sf.tiers = []tier{{face: basicfont.Face7x13}}
	}

	fs.faces[spec] = sf
	return sf
}

// Err returns face construction errors seen so far.
func (fs *FaceSet) Err() error { return fs.err }

// Missing returns, in code point order, the runes that no font in the chain
// has a glyph for. They are drawn as the last font's missing-glyph box.
func (fs *FaceSet) Missing() []rune {
	out := make([]rune, 0, len(fs.missing))
	for r := range fs.missing {
		out = append(out, r)
	}
	slices.Sort(out)
	return out
}

// Close releases every face created by the set.
func (fs *FaceSet) Close() error {
	var errs []error
	for _, f := range fs.faces {
		if err := f.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	fs.faces = make(map[Spec]*stackFace)
	return errors.Join(errs...)
}

type tier struct {
	font *sfnt.Font // nil for the basic fallback face
	face font.Face
}

// stackFace implements font.Face over a fallback chain.
type stackFace struct {
	tiers   []tier
	buf     sfnt.Buffer
	missing map[rune]struct{}
}

// pick returns the first face in the chain with a glyph for r. The last
// tier is used when no tier has one, and covered is false then.
func (f *stackFace) pick(r rune) (face font.Face, covered bool) {
	for _, t := range f.tiers {
		if t.font == nil {
			if _, ok := t.face.GlyphAdvance(r); ok {
				return t.face, true
			}
			continue
		}
		idx, err := t.font.GlyphIndex(&f.buf, r)
		if err == nil && idx != 0 {
			return t.face, true
		}
	}
	if f.missing != nil && !unicode.IsSpace(r) && !unicode.IsControl(r) {
		f.missing[r] = struct{}{}
	}
	return f.tiers[len(f.tiers)-1].face, false
}

// Glyph draws the missing-glyph box for a rune no tier covers, so that it
// still takes up space on the line.
func (f *stackFace) Glyph(dot fixed.Point26_6, r rune) (image.Rectangle, image.Image, image.Point, fixed.Int26_6, bool) {
	face, covered := f.pick(r)
	dr, mask, maskp, adv, ok := face.Glyph(dot, r)
	if !covered && !ok {
		if mask == nil {
			dr = image.Rectangle{}
			adv, _ = face.GlyphAdvance(r)
		}
		ok = true
	}
	return dr, mask, maskp, adv, ok
}

func (f *stackFace) GlyphBounds(r rune) (fixed.Rectangle26_6, fixed.Int26_6, bool) {
	face, covered := f.pick(r)
	bounds, adv, ok := face.GlyphBounds(r)
	return bounds, adv, ok || !covered
}

func (f *stackFace) GlyphAdvance(r rune) (fixed.Int26_6, bool) {
	face, covered := f.pick(r)
	adv, ok := face.GlyphAdvance(r)
	return adv, ok || !covered
}

func (f *stackFace) Kern(r0, r1 rune) fixed.Int26_6 {
	a, _ := f.pick(r0)
	b, _ := f.pick(r1)
	if a != b {
		return 0
	}
	return a.Kern(r0, r1)
}

// Metrics returns the metrics of the head of the chain, widened so that
// every tier fits between ascent and descent.
func (f *stackFace) Metrics() font.Metrics {
	m := f.tiers[0].face.Metrics()
	for _, t := range f.tiers[1:] {
		tm := t.face.Metrics()
		m.Ascent = max(m.Ascent, tm.Ascent)
		m.Descent = max(m.Descent, tm.Descent)
		m.Height = max(m.Height, tm.Height)
	}
	return m
}

func (f *stackFace) Close() error {
	var errs []error
	for _, t := range f.tiers {
		if t.font == nil {
			continue
		}
		if err := t.face.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
