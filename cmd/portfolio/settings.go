package main

import (
	"io"
	"log/slog"
	"path/filepath"

	portfolio "github.com/alnah/go-portfolio"
	"github.com/alnah/go-portfolio/internal/assets"
	"github.com/alnah/go-portfolio/internal/config"
)

// defaultOutputName is the page written next to the program.
const defaultOutputName = "index.html"

// loadSettings builds the effective configuration.
// Precedence: CLI flags > env vars > config file > defaults.
// Locations left empty resolve next to the program: <programDir>/assets
// and <programDir>/index.html.
func loadSettings(programDir string, common commonFlags, paths pathFlags, stderr io.Writer) (*config.Config, error) {
	envCfg := loadEnvConfig()
	if !common.quiet {
		warnUnknownEnvVars(stderr)
	}

	cfg := config.DefaultConfig()
	name := common.config
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)

	if paths.assets != "" {
		cfg.Assets.Dir = paths.assets
	}
	if paths.output != "" {
		cfg.Output.Path = paths.output
	}

	if cfg.Assets.Dir == "" {
		cfg.Assets.Dir = filepath.Join(programDir, assets.DirName)
	}
	if cfg.Output.Path == "" {
		cfg.Output.Path = filepath.Join(programDir, defaultOutputName)
	}

	// Flags and env may bring values the file could not
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newGenerator creates a Generator from the effective configuration.
func newGenerator(cfg *config.Config, logger *slog.Logger) (*portfolio.Generator, error) {
	return portfolio.NewGenerator(cfg.Assets.Dir, cfg.Output.Path,
		portfolio.WithNames(assets.Names{
			Template:       cfg.Assets.Template,
			Style:          cfg.Assets.Style,
			Picture:        cfg.Assets.Picture,
			DefaultPicture: cfg.Assets.DefaultPicture,
		}),
		portfolio.WithMarkdownAbout(cfg.Render.MarkdownAbout),
		portfolio.WithLogger(logger),
	)
}
