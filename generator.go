package reportpdf

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font/sfnt"

	"github.com/alnah/go-reportpdf/internal/assets"
	"github.com/alnah/go-reportpdf/internal/config"
	"github.com/alnah/go-reportpdf/internal/fonts"
	"github.com/alnah/go-reportpdf/internal/layout"
	"github.com/alnah/go-reportpdf/internal/pdfdoc"
	"github.com/alnah/go-reportpdf/internal/sections"
)

// Creator is written to the PDF metadata.
const Creator = "go-reportpdf"

// Fetcher fetches the raw bytes behind a font or image URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Result is a generated report.
type Result struct {
	PDF   []byte
	Pages int
	ID    string // per-generation UUID, also the PDF subject
}

// Generator renders analysis payloads to PDF.
// It is safe for concurrent use: every Generate call lays out its own pages.
type Generator struct {
	log      logrus.FieldLogger
	fetcher  Fetcher
	fonts    *FontCache
	images   *assets.ImageLoader
	geo      layout.Geometry
	gap      float64
	pageSize string
	physical pdfdoc.PageSize
	validate bool
	markdown bool
	fontURL  string
	assets   config.AssetsConfig
	now      func() time.Time
	cjk      func() *sfnt.Font // installed CJK fallback, nil when none
}

// NewGenerator creates a Generator. Without options it lays out on the
// default 1190x1684 page, prints to A4, validates its output, and fetches
// assets over HTTP only.
//
// Returns ErrInvalidGeometry, ErrInvalidPageSize, ErrInvalidAssetDir or
// ErrInvalidBaseURL for settings that cannot work.
func NewGenerator(opts ...Option) (*Generator, error) {
	g := &Generator{
		log:      discardLogger(),
		geo:      layout.DefaultGeometry(),
		gap:      sections.SectionGap,
		validate: true,
		now:      time.Now,
		cjk:      fonts.SystemCJK,
	}

	for _, opt := range opts {
		opt(g)
	}

	if err := g.geo.Validate(); err != nil {
		return nil, err
	}

	size, err := pdfdoc.PageSizeByName(g.pageSize)
	if err != nil {
		return nil, err
	}
	g.physical = size

	if g.fetcher == nil {
		resolver, err := assets.NewResolver(assets.ResolverOptions{
			BaseURL:  g.assets.BaseURL,
			BaseDir:  g.assets.BaseDir,
			HTTP:     assets.NewHTTPFetcher(g.assets.Timeout, g.assets.MaxBytes),
			MaxBytes: g.assets.MaxBytes,
		})
		if err != nil {
			return nil, err
		}
		g.fetcher = resolver
	}
	if g.fonts == nil {
		g.fonts = NewFontCache(g.fetcher)
	}
	g.images = assets.NewImageLoader(g.fetcher)

	return g, nil
}

// Generate lays out the payload and returns the PDF.
//
// Font and image failures never fail a report: text falls back to the
// fallback fonts and a missing image becomes a placeholder, both logged at
// warn level. Anything else, including cancellation, rejects the whole call
// and returns no bytes. Recovers from internal panics to prevent crashes from
// propagating to callers.
func (g *Generator) Generate(ctx context.Context, payload Payload) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := payload.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	log := g.log.WithField("report", id)

	faces, err := g.faceSet(ctx, payload.FontURL, log)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}
	defer func() {
		if cerr := faces.Close(); cerr != nil {
			log.WithError(cerr).Debug("closing faces")
		}
	}()

	theme := layout.DefaultTheme()
	pages, err := layout.NewPaginator(g.geo, layout.Options{
		Faces:  faces,
		Theme:  theme,
		Footer: sections.Footer(faces, theme.Muted),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}

	text := func(s string) string { return s }
	if g.markdown {
		text = PlainText
	}
	run := &sections.Run{
		Report: payload.report(text),
		Pages:  pages,
		Images: g.images,
		Log:    log,
		Gap:    g.gap,
	}

	for _, s := range sections.Default() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := s.Render(ctx, run); err != nil {
			return nil, g.renderError(s.Name(), err)
		}
		log.WithFields(logrus.Fields{
			"section": s.Name(),
			"page":    pages.Active().Number(),
		}).Debug("section drawn")
	}

	sealed, err := pages.Finish()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}
	if err := faces.Err(); err != nil {
		log.WithError(err).Warn("some faces fell back to the basic font")
	}
	if missing := faces.Missing(); len(missing) > 0 {
		log.WithFields(logrus.Fields{
			"runes":  len(missing),
			"sample": string(missing[:min(len(missing), 8)]),
		}).Warn(msgMissingGlyphs)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	docPages := make([]pdfdoc.Page, len(sealed))
	for i, p := range sealed {
		docPages[i] = p
	}
	data, err := pdfdoc.Assemble(ctx, docPages, pdfdoc.Options{
		PageSize: g.physical,
		Validate: g.validate,
		Title:    titleOrDefault(payload.DocumentTitle),
		Subject:  id,
		Creator:  Creator,
		Now:      g.now(),
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %w", ErrPDFGeneration, err)
	}

	log.WithFields(logrus.Fields{
		"pages": len(sealed),
		"bytes": len(data),
	}).Info("report generated")

	return &Result{PDF: data, Pages: len(sealed), ID: id}, nil
}

// renderError keeps cancellation errors bare so callers can match them.
func (g *Generator) renderError(section string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", ErrRender, section, err)
}

// faceSet resolves the font stack. A font that cannot be loaded is logged
// and the fallback fonts are used alone.
func (g *Generator) faceSet(ctx context.Context, payloadURL string, log logrus.FieldLogger) (*fonts.FaceSet, error) {
	url := payloadURL
	if url == "" {
		url = g.fontURL
	}

	var primary *sfnt.Font
	if url != "" {
		f, err := g.fonts.get(ctx, url)
		if err != nil {
			log.WithFields(logrus.Fields{
				"url":   url,
				"error": err.Error(),
			}).Warn("font unavailable, using fallback fonts")
		} else {
			primary = f
		}
	}

	stack, err := fonts.NewStackWithCJK(primary, g.cjk())
	if err != nil {
		return nil, err
	}
	return stack.NewFaceSet(), nil
}

// msgMissingGlyphs is logged once per report when some text has no font.
const msgMissingGlyphs = "glyphs missing from every font, install a CJK font or set a font URL"

func titleOrDefault(title string) string {
	if title == "" {
		return sections.Untitled
	}
	return title
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.WarnLevel)
	return l
}
