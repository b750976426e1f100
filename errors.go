package reportpdf

import (
	"errors"

	"github.com/alnah/go-reportpdf/internal/assets"
	"github.com/alnah/go-reportpdf/internal/layout"
	"github.com/alnah/go-reportpdf/internal/pdfdoc"
)

// Sentinel errors for library operations.
var (
	// Payload validation errors.
	ErrInvalidTotalPages = errors.New("invalid total pages")
	ErrInvalidPageNumber = errors.New("invalid page number")

	// Generator configuration errors.
	ErrInvalidGeometry = layout.ErrInvalidGeometry
	ErrInvalidPageSize = pdfdoc.ErrUnknownFormat
	ErrInvalidAssetDir = assets.ErrInvalidBasePath
	ErrInvalidBaseURL  = assets.ErrInvalidAssetURL

	// Generation errors. Every one of them rejects the whole report.
	ErrRender        = errors.New("report rendering failed")
	ErrPDFGeneration = errors.New("PDF generation failed")
	ErrPDFValidation = pdfdoc.ErrValidate

	// ErrImageLoad matches the error logged for a word-cloud image that could
	// not be used. It never fails a generation; the report shows the failure
	// text instead.
	ErrImageLoad = assets.ErrImageLoad
)
