package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	reportpdf "github.com/alnah/go-reportpdf"
)

// Sentinel errors for input discovery.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrInvalidExtension   = errors.New("payload must have .json, .yaml or .yml extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrInvalidOutput      = errors.New("invalid output path")
)

// payloadExtensions lists the accepted payload file extensions.
var payloadExtensions = map[string]bool{
	".json": true,
	".yaml": true,
	".yml":  true,
}

// discoverPayloads expands the positional arguments into payload files.
// Files are taken as given (their extension must be known); directories are
// walked for payload files. The result has no duplicates.
func discoverPayloads(paths []string) ([]string, error) {
	if len(paths) == 0 {
		return nil, ErrNoInput
	}

	seen := make(map[string]bool)
	var files []string
	add := func(p string) {
		clean := filepath.Clean(p)
		if !seen[clean] {
			seen[clean] = true
			files = append(files, clean)
		}
	}

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			if err := validatePayloadExtension(p); err != nil {
				return nil, err
			}
			add(p)
			continue
		}

		var found []string
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return fmt.Errorf("scanning %s: %w", path, err)
			}
			if d.IsDir() {
				return nil
			}
			if payloadExtensions[strings.ToLower(filepath.Ext(path))] {
				found = append(found, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		sort.Strings(found)
		for _, f := range found {
			add(f)
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no payload files found in %s", ErrNoInput, strings.Join(paths, ", "))
	}
	return files, nil
}

// validatePayloadExtension checks that the file has a payload extension.
func validatePayloadExtension(path string) error {
	ext := filepath.Ext(path)
	if !payloadExtensions[strings.ToLower(ext)] {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, ext)
	}
	return nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > reportpdf.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, reportpdf.MaxWorkers)
	}
	return nil
}

// isPDFPath reports whether output names a single PDF file.
func isPDFPath(output string) bool {
	return strings.EqualFold(filepath.Ext(output), ".pdf")
}

// resolveOutputPath determines where the report for a payload is written.
//
// An explicit .pdf output is used verbatim. Otherwise the report goes into
// the output directory (flag, then config, then the payload's directory)
// under the download name derived from the document title.
func resolveOutputPath(output, configDir, inputPath, title string) string {
	if output != "" && isPDFPath(output) {
		return output
	}

	dir := output
	if dir == "" {
		dir = configDir
	}
	if dir == "" {
		dir = filepath.Dir(inputPath)
	}

	if title == "" {
		title = filepath.Base(inputPath)
	}
	return filepath.Join(dir, reportpdf.OutputName(title))
}
