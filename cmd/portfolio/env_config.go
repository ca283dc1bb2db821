package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alnah/go-portfolio/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string        // PORTFOLIO_CONFIG: config file name or path
	AssetsDir  string        // PORTFOLIO_ASSETS_DIR: assets directory
	Output     string        // PORTFOLIO_OUTPUT: page output path
	PDFTimeout time.Duration // PORTFOLIO_PDF_TIMEOUT: PDF export timeout
}

// knownEnvVars lists valid PORTFOLIO_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"PORTFOLIO_CONFIG":      true,
	"PORTFOLIO_ASSETS_DIR":  true,
	"PORTFOLIO_OUTPUT":      true,
	"PORTFOLIO_PDF_TIMEOUT": true,
	"PORTFOLIO_CONTAINER":   true, // read by the check command
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("PORTFOLIO_CONFIG"),
		AssetsDir:  os.Getenv("PORTFOLIO_ASSETS_DIR"),
		Output:     os.Getenv("PORTFOLIO_OUTPUT"),
	}

	// Invalid or non-positive durations are ignored
	if timeout := os.Getenv("PORTFOLIO_PDF_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.PDFTimeout = d
		}
	}

	return cfg
}

// warnUnknownEnvVars prints warnings for unrecognized PORTFOLIO_* variables.
// Helps catch typos like PORTFOLIO_ASSET_DIR instead of PORTFOLIO_ASSETS_DIR.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "PORTFOLIO_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Set variables replace config file values.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later by the command)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.AssetsDir != "" {
		cfg.Assets.Dir = env.AssetsDir
	}
	if env.Output != "" {
		cfg.Output.Path = env.Output
	}
	if env.PDFTimeout > 0 {
		cfg.PDF.Timeout = env.PDFTimeout.String()
	}
}
