package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// cliFlags holds every command-line flag.
type cliFlags struct {
	config     string
	output     string
	workers    int
	fontURL    string
	assetDir   string
	baseURL    string
	pageSize   string
	noValidate bool
	markdown   bool
	logFormat  string
	quiet      bool
	verbose    bool
	version    bool
	help       bool
}

// parseFlags parses args (without the program name) and returns the
// positional payload paths.
func parseFlags(args []string, stderr io.Writer) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("reportpdf", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &cliFlags{}

	// I/O flags
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")

	// Asset flags
	fs.StringVar(&f.fontURL, "font-url", "", "font used when a payload names none")
	fs.StringVar(&f.assetDir, "asset-dir", "", "directory for file:// and relative asset URLs")
	fs.StringVar(&f.baseURL, "base-url", "", "site root for relative asset URLs")

	// Output flags
	fs.StringVarP(&f.pageSize, "page-size", "p", "", "page size: a4, letter, legal")
	fs.BoolVar(&f.noValidate, "no-validate", false, "skip PDF validation")
	fs.BoolVar(&f.markdown, "markdown", false, "strip Markdown syntax from summaries")

	// Logging flags
	fs.StringVar(&f.logFormat, "log-format", "", "log format: text, json")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing and debug logs")

	fs.BoolVar(&f.version, "version", false, "show version information")
	fs.BoolVarP(&f.help, "help", "h", false, "show this help")

	fs.Usage = func() { printUsage(stderr) }

	// pflag skips Usage under ContinueOnError.
	if err := fs.Parse(args); err != nil {
		fs.Usage()
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
