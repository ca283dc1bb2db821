package portfolio

import "errors"

// Sentinel errors for library operations.
var (
	ErrNilProfile       = errors.New("profile cannot be nil")
	ErrInvalidProfile   = errors.New("invalid profile")
	ErrProfileNotFound  = errors.New("profile file not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrWriteOutput      = errors.New("failed to write output file")
	ErrEmptyOutputPath  = errors.New("output path cannot be empty")

	// PDF export errors.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrWritePDF       = errors.New("failed to write PDF file")
)
