package portfolio

import (
	"log/slog"

	"github.com/alnah/go-portfolio/internal/assets"
	"github.com/alnah/go-portfolio/internal/pipeline"
)

// Option configures a Generator.
type Option func(*Generator)

// generatorConfig holds internal configuration for Generator.
type generatorConfig struct {
	outputPath    string
	names         assets.Names
	markdownAbout bool
}

// WithNames overrides the asset filenames. Empty fields keep the default.
func WithNames(names assets.Names) Option {
	return func(g *Generator) {
		if names.Template != "" {
			g.cfg.names.Template = names.Template
		}
		if names.Style != "" {
			g.cfg.names.Style = names.Style
		}
		if names.Picture != "" {
			g.cfg.names.Picture = names.Picture
		}
		if names.DefaultPicture != "" {
			g.cfg.names.DefaultPicture = names.DefaultPicture
		}
	}
}

// WithMarkdownAbout renders the about text as Markdown before substitution.
func WithMarkdownAbout(enabled bool) Option {
	return func(g *Generator) {
		g.cfg.markdownAbout = enabled
	}
}

// WithLogger sets the logger for debug output. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// withRenderer replaces the substitution step (tests).
func withRenderer(r pipeline.Renderer) Option {
	return func(g *Generator) {
		g.renderer = r
	}
}

// withMarkdownConverter replaces the Markdown converter and enables it (tests).
func withMarkdownConverter(m pipeline.MarkdownConverter) Option {
	return func(g *Generator) {
		g.markdown = m
		g.cfg.markdownAbout = true
	}
}
