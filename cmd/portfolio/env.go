package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/go-rod/rod/lib/launcher"
	"golang.org/x/term"

	portfolio "github.com/alnah/go-portfolio"
)

// pdfExporter prints a written page to PDF.
type pdfExporter interface {
	Export(ctx context.Context, htmlPath, pdfPath string) error
	Close() error
}

// Environment holds injectable dependencies for testability.
// Includes I/O, program location, and browser access.
type Environment struct {
	Stdin       io.Reader
	Stdout      io.Writer
	Stderr      io.Writer
	IsTerminal  func() bool                             // Reports whether Stdin is a terminal
	Executable  func() (string, error)                  // Locates the running binary
	LookPath    func() (string, bool)                   // Locates Chrome/Chromium
	NewExporter func(timeout time.Duration) pdfExporter // Starts PDF export
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdin:      os.Stdin,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		IsTerminal: func() bool { return term.IsTerminal(int(os.Stdin.Fd())) },
		Executable: os.Executable,
		LookPath:   launcher.LookPath,
		NewExporter: func(timeout time.Duration) pdfExporter {
			return portfolio.NewPDFExporter(timeout)
		},
	}
}

// interactive reports whether a person can answer prompts on Stdin.
func (e *Environment) interactive() bool {
	return e.IsTerminal != nil && e.IsTerminal()
}
