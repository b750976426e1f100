// Package reportpdf renders document-analysis results to paginated PDF.
//
// The engine lays the report out itself: it measures and wraps text, breaks
// pages, repeats section headings on continuation pages and stamps page
// numbers, all on raster pages. The finished pages are then placed into a
// PDF at the physical page size.
//
// # Quick Start
//
//	gen, err := reportpdf.NewGenerator()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := gen.Generate(ctx, reportpdf.Payload{
//	    DocumentTitle: "季度報告.pdf",
//	    TotalPages:    12,
//	    GlobalSummary: reportpdf.GlobalSummary{Bullets: []string{"營收成長 12%"}},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile(reportpdf.OutputName("季度報告.pdf"), result.PDF, 0644)
//
// # Report Layout
//
// Sections are drawn in a fixed order:
//
//  1. Title block (report title, document title, language and page count)
//  2. Global summary bullets
//  3. Expansions (key conclusions, core data, risks and actions)
//  4. Aggregated keywords, then a page break
//  5. One card per analyzed page, then a page break
//  6. Word cloud image
//
// Empty fields are drawn as placeholders, never skipped.
//
// # Fonts and Images
//
// Text is drawn with the first font that has each glyph: the font named by
// WithFontURL (or Payload.FontURL), then an installed CJK font such as
// Noto Sans TC, PingFang TC or Microsoft JhengHei, then the Go fonts. On a
// host without CJK fonts pass a TTF or OTF URL; it is fetched once per URL
// and shared through a FontCache:
//
//	cache := reportpdf.NewFontCache(fetcher)
//	gen, err := reportpdf.NewGenerator(
//	    reportpdf.WithFetcher(fetcher),
//	    reportpdf.WithFontCache(cache),
//	    reportpdf.WithFontURL("https://cdn.example.com/NotoSansTC-Regular.ttf"),
//	)
//
// A font or word-cloud image that cannot be loaded degrades the report
// (fallback fonts, a placeholder line) and is logged at warn level; it
// never fails the generation.
//
// # Configuration
//
// A YAML file can carry the layout, output, font, asset and log settings:
//
//	cfg, err := reportpdf.LoadConfig("team")
//	gen, err := reportpdf.NewGenerator(reportpdf.WithConfig(cfg))
package reportpdf
