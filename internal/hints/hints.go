// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"
)

// FontURLEnv is the environment variable the CLI reads a default font URL from.
const FontURLEnv = "REPORTPDF_FONT_URL"

// ForFontFallback returns hints for reports drawn without the custom font.
// Without an installed CJK font, Chinese text renders as boxes.
func ForFontFallback() string {
	var hints []string
	if os.Getenv(FontURLEnv) == "" {
		hints = append(hints, "set "+FontURLEnv+" or pass --font-url with a TTF/OTF that covers the report's script")
	}
	hints = append(hints, "fonts.url in the config file works too")
	return formatHints(hints)
}

// ForRelativeAsset returns a hint for site-relative asset URLs that have
// nothing to resolve against.
func ForRelativeAsset() string {
	return format("relative URLs need --base-url or --asset-dir")
}

// ForPayload returns a hint for payload files that do not decode.
func ForPayload() string {
	return format("payload must be a JSON or YAML analysis result (documentTitle, globalSummary, pageSummaries, ...)")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-reportpdf/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepathSlash(p), "go-reportpdf/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

func filepathSlash(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
