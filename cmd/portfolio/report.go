package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	portfolio "github.com/alnah/go-portfolio"
	"github.com/alnah/go-portfolio/internal/assets"
	"github.com/alnah/go-portfolio/internal/config"
	"github.com/alnah/go-portfolio/internal/hints"
)

// reportError prints err with any matching hint and returns its exit code.
func reportError(w io.Writer, err error) int {
	fmt.Fprintf(w, "error: %v%s\n", err, hintFor(err))
	return exitCodeFor(err)
}

// hintFor returns the hint matching err, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		var paths []string
		if dir, dirErr := os.UserConfigDir(); dirErr == nil {
			paths = append(paths, filepath.Join(dir, "go-portfolio", "portfolio.yaml"))
		}
		return hints.ForConfigNotFound(paths)
	case errors.Is(err, portfolio.ErrTemplateNotFound):
		return hints.ForTemplateNotFound("")
	case errors.Is(err, portfolio.ErrInvalidProfile), errors.Is(err, portfolio.ErrProfileNotFound):
		return hints.ForInvalidProfile()
	case errors.Is(err, portfolio.ErrWriteOutput), errors.Is(err, portfolio.ErrWritePDF):
		return hints.ForOutputDirectory()
	case errors.Is(err, portfolio.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, portfolio.ErrPageLoad):
		return hints.ForTimeout()
	case errors.Is(err, assets.ErrAssetExists):
		return hints.ForAssetsExist()
	}
	return ""
}
