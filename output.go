package reportpdf

import "github.com/alnah/go-reportpdf/internal/fileutil"

// Download name parts.
const (
	DefaultOutputBase = "分析報告"
	OutputSuffix      = "-分析結果.pdf"
)

// OutputName returns the file name a report for title is saved under:
// the title without its extension, with path and shell characters
// replaced, followed by "-分析結果.pdf".
//
//	OutputName("季度報告.pdf") // "季度報告-分析結果.pdf"
//	OutputName("")           // "分析報告-分析結果.pdf"
func OutputName(title string) string {
	base := fileutil.SanitizeName(fileutil.StripExt(title))
	if base == "" {
		base = DefaultOutputBase
	}
	return base + OutputSuffix
}
