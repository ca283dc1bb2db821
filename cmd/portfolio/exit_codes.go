package main

import (
	"context"
	"errors"
	"os"

	portfolio "github.com/alnah/go-portfolio"
	"github.com/alnah/go-portfolio/internal/assets"
	"github.com/alnah/go-portfolio/internal/config"
	"github.com/alnah/go-portfolio/internal/prompt"
)

// Exit codes for the portfolio CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Page written, or the user chose to exit
	ExitGeneral = 1 // Template missing at generation time, or unexpected error
	ExitUsage   = 2 // Invalid flags, config, or profile
	ExitIO      = 3 // Output or profile file could not be read or written
	ExitBrowser = 4 // Browser/Chrome errors during PDF export
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Missing template and closed input (exit 1)
	if errors.Is(err, portfolio.ErrTemplateNotFound) ||
		errors.Is(err, prompt.ErrInputClosed) {
		return ExitGeneral
	}

	// Browser errors (exit 4). Only PDF export runs under a deadline.
	if errors.Is(err, portfolio.ErrBrowserConnect) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, portfolio.ErrPageCreate) ||
		errors.Is(err, portfolio.ErrPageLoad) ||
		errors.Is(err, portfolio.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, portfolio.ErrWriteOutput) ||
		errors.Is(err, portfolio.ErrWritePDF) ||
		errors.Is(err, portfolio.ErrProfileNotFound) ||
		errors.Is(err, assets.ErrAssetRead) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, portfolio.ErrInvalidProfile) ||
		errors.Is(err, portfolio.ErrEmptyOutputPath) ||
		errors.Is(err, assets.ErrInvalidBasePath) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, assets.ErrPathTraversal) ||
		errors.Is(err, assets.ErrTemplateTooLarge) ||
		errors.Is(err, assets.ErrAssetExists) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrUnexpectedArgs) {
		return ExitUsage
	}

	return ExitGeneral
}
