package main

import (
	"fmt"
	"io"

	"github.com/alnah/go-reportpdf/internal/hints"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: reportpdf [flags] <payload>...")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render analysis results (JSON or YAML) to PDF reports.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  payload    .json, .yaml or .yml file, or a directory of them")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (single payload) or directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Assets:")
	fmt.Fprintln(w, "      --font-url <url>      Font used when a payload names none")
	fmt.Fprintf(w, "                            (default: $%s)\n", hints.FontURLEnv)
	fmt.Fprintln(w, "      --asset-dir <path>    Directory for file:// and relative URLs")
	fmt.Fprintln(w, "      --base-url <url>      Site root for relative URLs")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -p, --page-size <s>       Page size: a4, letter, legal")
	fmt.Fprintln(w, "      --no-validate         Skip PDF validation")
	fmt.Fprintln(w, "      --markdown            Strip Markdown syntax from summaries")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "      --log-format <s>      Log format: text, json")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing and debug logs")
	fmt.Fprintln(w, "      --version             Show version information")
}
