package reportpdf

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/alnah/go-reportpdf/internal/config"
	"github.com/alnah/go-reportpdf/internal/layout"
)

// Config is the YAML configuration file, see LoadConfig.
type Config = config.Config

// LoadConfig loads a configuration by name (searched in the current
// directory, then ~/.config/go-reportpdf/) or by path.
func LoadConfig(nameOrPath string) (*Config, error) {
	return config.LoadConfig(nameOrPath)
}

// Geometry is the logical page the report is laid out on, in pixels.
// Zero fields keep the defaults (1190x1684, margins 80/80/100, gap 32).
type Geometry struct {
	Width        float64
	Height       float64
	MarginX      float64
	MarginTop    float64
	MarginBottom float64
	SectionGap   float64
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l logrus.FieldLogger) Option {
	return func(g *Generator) {
		if l != nil {
			g.log = l
		}
	}
}

// WithFontCache shares a font cache between generators.
func WithFontCache(c *FontCache) Option {
	return func(g *Generator) {
		g.fonts = c
	}
}

// WithFetcher sets how fonts and images are fetched. It replaces the
// default resolver and every assets setting of WithConfig.
func WithFetcher(f Fetcher) Option {
	return func(g *Generator) {
		g.fetcher = f
	}
}

// WithGeometry overrides the logical page. Zero fields keep the current value.
func WithGeometry(geo Geometry) Option {
	return func(g *Generator) {
		g.geo = mergeGeometry(g.geo, geo)
		if geo.SectionGap > 0 {
			g.gap = geo.SectionGap
		}
	}
}

// WithPageSize sets the physical PDF page size: "a4" (default), "letter"
// or "legal". An unknown name makes NewGenerator fail.
func WithPageSize(name string) Option {
	return func(g *Generator) {
		g.pageSize = name
	}
}

// WithValidation toggles re-reading the output with pdfcpu. Enabled by default.
func WithValidation(enabled bool) Option {
	return func(g *Generator) {
		g.validate = enabled
	}
}

// WithClock sets the time source used for the PDF creation date.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// WithMarkdownText strips Markdown syntax from summaries, see PlainText.
func WithMarkdownText(enabled bool) Option {
	return func(g *Generator) {
		g.markdown = enabled
	}
}

// WithFontURL sets the font used when a payload names none.
func WithFontURL(url string) Option {
	return func(g *Generator) {
		g.fontURL = url
	}
}

// WithConfig applies a configuration file. Options given after it win.
// Logging settings are left to the caller, who owns the logger.
func WithConfig(cfg *Config) Option {
	return func(g *Generator) {
		if cfg == nil {
			return
		}
		WithGeometry(Geometry(cfg.Layout))(g)
		if cfg.Output.PageSize != "" {
			g.pageSize = cfg.Output.PageSize
		}
		g.validate = cfg.Output.ValidateOutput()
		if cfg.Fonts.URL != "" {
			g.fontURL = cfg.Fonts.URL
		}
		g.assets = cfg.Assets
	}
}

// mergeGeometry copies the positive fields of g over base.
func mergeGeometry(base layout.Geometry, g Geometry) layout.Geometry {
	set := func(dst *float64, v float64) {
		if v > 0 {
			*dst = v
		}
	}
	set(&base.Width, g.Width)
	set(&base.Height, g.Height)
	set(&base.MarginX, g.MarginX)
	set(&base.MarginTop, g.MarginTop)
	set(&base.MarginBottom, g.MarginBottom)
	return base
}
