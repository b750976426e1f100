package main

import (
	"errors"
	"os"

	reportpdf "github.com/alnah/go-reportpdf"
	"github.com/alnah/go-reportpdf/internal/config"
)

// Exit codes for the reportpdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Every report generated
	ExitGeneral = 1 // Rendering, PDF or unexpected error
	ExitUsage   = 2 // Invalid flags, config, or payload
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadPayload) ||
		errors.Is(err, ErrWritePDF) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, reportpdf.ErrInvalidTotalPages) ||
		errors.Is(err, reportpdf.ErrInvalidPageNumber) ||
		errors.Is(err, reportpdf.ErrInvalidGeometry) ||
		errors.Is(err, reportpdf.ErrInvalidPageSize) ||
		errors.Is(err, reportpdf.ErrInvalidAssetDir) ||
		errors.Is(err, reportpdf.ErrInvalidBaseURL) ||
		errors.Is(err, ErrDecodePayload) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidOutput) ||
		errors.Is(err, ErrInvalidLogSetting) {
		return ExitUsage
	}

	return ExitGeneral
}
