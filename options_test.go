package reportpdf

import (
	"testing"

	"github.com/alnah/go-reportpdf/internal/config"
	"github.com/alnah/go-reportpdf/internal/layout"
)

func TestMergeGeometry(t *testing.T) {
	t.Parallel()

	base := layout.DefaultGeometry()
	got := mergeGeometry(base, Geometry{Width: 1000, MarginTop: 40, MarginX: -5})

	want := base
	want.Width = 1000
	want.MarginTop = 40
	if got != want {
		t.Errorf("mergeGeometry() = %+v, want %+v", got, want)
	}
}

func TestWithConfig(t *testing.T) {
	t.Parallel()

	off := false
	cfg := &Config{
		Layout: config.LayoutConfig{Height: 2000, SectionGap: 12},
		Output: config.OutputConfig{PageSize: "letter", Validate: &off},
		Fonts:  config.FontsConfig{URL: "https://cdn.example/font.ttf"},
	}

	g := &Generator{geo: layout.DefaultGeometry(), validate: true}
	WithConfig(cfg)(g)

	if g.geo.Height != 2000 || g.geo.Width != 1190 {
		t.Errorf("geo = %+v, want height 2000 and default width", g.geo)
	}
	if g.gap != 12 {
		t.Errorf("gap = %v, want 12", g.gap)
	}
	if g.pageSize != "letter" || g.validate || g.fontURL != cfg.Fonts.URL {
		t.Errorf("pageSize=%q validate=%v fontURL=%q", g.pageSize, g.validate, g.fontURL)
	}

	WithFontURL("https://other.example/f.ttf")(g)
	if g.fontURL != "https://other.example/f.ttf" {
		t.Errorf("later option did not win: fontURL = %q", g.fontURL)
	}

	WithConfig(nil)(g)
	if g.pageSize != "letter" {
		t.Error("nil config changed settings")
	}
}
