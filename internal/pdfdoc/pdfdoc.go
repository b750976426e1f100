// Package pdfdoc assembles rendered raster pages into a PDF document.
//
// Each page image is placed full-bleed on its own PDF page. The logical
// page is scaled uniformly by physicalWidth/logicalWidth and anchored at the
// top-left corner, so a page whose aspect ratio differs from the paper keeps
// its top edge aligned and leaves any slack at the bottom.
package pdfdoc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"strings"
	"sync"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Sentinel errors for document assembly.
var (
	ErrNoPages       = errors.New("no pages to assemble")
	ErrEncode        = errors.New("cannot encode page image")
	ErrSerialize     = errors.New("cannot serialize pdf")
	ErrValidate      = errors.New("generated pdf failed validation")
	ErrUnknownFormat = errors.New("unknown page size")
)

// PageSize is a physical page size in PDF points.
type PageSize struct {
	Name   string
	Width  float64
	Height float64
}

// Physical page sizes.
var (
	A4     = PageSize{Name: "a4", Width: 595.28, Height: 841.89}
	Letter = PageSize{Name: "letter", Width: 612, Height: 792}
	Legal  = PageSize{Name: "legal", Width: 612, Height: 1008}
)

// PageSizeByName returns the named page size (case-insensitive).
func PageSizeByName(name string) (PageSize, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "a4":
		return A4, nil
	case "letter":
		return Letter, nil
	case "legal":
		return Legal, nil
	}
	return PageSize{}, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Page is a finished raster page.
type Page interface {
	Surface() image.Image
}

// Options configures Assemble.
type Options struct {
	PageSize PageSize // zero value means A4
	Validate bool     // re-read the output with pdfcpu
	Title    string
	Subject  string
	Creator  string
	Now      time.Time // creation date, zero means time.Now
}

// Placement is where a logical page lands on the physical page.
type Placement struct {
	X, Y, W, H float64
	Scale      float64
}

// Place scales a logicalW by logicalH page onto size.
func Place(logicalW, logicalH float64, size PageSize) Placement {
	scale := size.Width / logicalW
	return Placement{
		X:     0,
		Y:     0,
		W:     logicalW * scale,
		H:     logicalH * scale,
		Scale: scale,
	}
}

// Assemble converts pages into a PDF, one PDF page per raster page, in order.
// On error no bytes are returned.
func Assemble(ctx context.Context, pages []Page, opts Options) ([]byte, error) {
	if len(pages) == 0 {
		return nil, ErrNoPages
	}
	if opts.PageSize.Width <= 0 || opts.PageSize.Height <= 0 {
		opts.PageSize = A4
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}

	size := fpdf.SizeType{Wd: opts.PageSize.Width, Ht: opts.PageSize.Height}
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           size,
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCompression(true)
	pdf.SetTitle(opts.Title, true)
	pdf.SetSubject(opts.Subject, true)
	pdf.SetCreator(opts.Creator, true)
	pdf.SetCreationDate(opts.Now)
	pdf.SetModificationDate(opts.Now)

	for i, page := range pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		surface := page.Surface()
		var buf bytes.Buffer
		if err := png.Encode(&buf, surface); err != nil {
			return nil, fmt.Errorf("%w: page %d: %v", ErrEncode, i+1, err)
		}

		b := surface.Bounds()
		place := Place(float64(b.Dx()), float64(b.Dy()), opts.PageSize)

		name := fmt.Sprintf("page-%d", i+1)
		imgOpts := fpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader(name, imgOpts, &buf)
		pdf.AddPageFormat("P", size)
		pdf.ImageOptions(name, place.X, place.Y, place.W, place.H, false, imgOpts, 0, "")
		if err := pdf.Error(); err != nil {
			return nil, fmt.Errorf("%w: page %d: %v", ErrSerialize, i+1, err)
		}
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialize, err)
	}

	if opts.Validate {
		if err := Validate(out.Bytes()); err != nil {
			return nil, err
		}
	}
	return out.Bytes(), nil
}

var disableConfigDir sync.Once

// Config returns a pdfcpu configuration that never touches the user's
// config directory.
func Config() *model.Configuration {
	disableConfigDir.Do(api.DisableConfigDir)
	return model.NewDefaultConfiguration()
}

// Validate checks data with pdfcpu.
func Validate(data []byte) error {
	if err := api.Validate(bytes.NewReader(data), Config()); err != nil {
		return fmt.Errorf("%w: %v", ErrValidate, err)
	}
	return nil
}

// PageCount returns the number of pages in data.
func PageCount(data []byte) (int, error) {
	n, err := api.PageCount(bytes.NewReader(data), Config())
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrValidate, err)
	}
	return n, nil
}
