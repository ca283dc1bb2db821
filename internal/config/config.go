package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-portfolio/internal/assets"
	"github.com/alnah/go-portfolio/internal/fileutil"
	"github.com/alnah/go-portfolio/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Hard limits on user input. Config may tighten them, never loosen.
const (
	MaxFieldLength = 1000 // Characters per free-text answer
	MaxItems       = 10   // Entries per list (skills, education, projects)
	MaxPathLength  = 512  // Any configured path
)

// DefaultPDFTimeout bounds headless Chrome rendering.
const DefaultPDFTimeout = 30 * time.Second

// Config holds all configuration for portfolio generation.
type Config struct {
	Assets AssetsConfig `yaml:"assets"`
	Output OutputConfig `yaml:"output"`
	Render RenderConfig `yaml:"render"`
	PDF    PDFConfig    `yaml:"pdf"`
	Limits LimitsConfig `yaml:"limits"`
}

// AssetsConfig defines where the template and images live.
type AssetsConfig struct {
	Dir            string `yaml:"dir"`            // Empty = "assets" next to the executable
	Template       string `yaml:"template"`       // Filename inside Dir
	Style          string `yaml:"style"`          // Filename inside Dir, checked only
	Picture        string `yaml:"picture"`        // Preferred profile picture
	DefaultPicture string `yaml:"defaultPicture"` // Fallback profile picture
}

// OutputConfig defines the generated page location.
type OutputConfig struct {
	Path string `yaml:"path"` // Empty = index.html next to the executable
}

// RenderConfig defines optional rendering behavior.
type RenderConfig struct {
	MarkdownAbout bool `yaml:"markdownAbout"` // Render the about text as Markdown
}

// PDFConfig defines the optional PDF export.
type PDFConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`    // Empty = output path with .pdf extension
	Timeout string `yaml:"timeout"` // Go duration, e.g. "45s"
}

// LimitsConfig bounds interactive input.
type LimitsConfig struct {
	MaxFieldLength int `yaml:"maxFieldLength"` // 1-1000
	MaxItems       int `yaml:"maxItems"`       // 0-10
}

// Validate checks names, lengths and ranges.
// Called automatically by LoadConfig, but available for configs built in code.
func (c *Config) Validate() error {
	if err := validateFieldLength("assets.dir", c.Assets.Dir, MaxPathLength); err != nil {
		return err
	}
	names := map[string]string{
		"assets.template":       c.Assets.Template,
		"assets.style":          c.Assets.Style,
		"assets.picture":        c.Assets.Picture,
		"assets.defaultPicture": c.Assets.DefaultPicture,
	}
	for field, name := range names {
		if err := assets.ValidateAssetName(name); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidValue, field, err)
		}
	}

	if err := validateFieldLength("output.path", c.Output.Path, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("pdf.path", c.PDF.Path, MaxPathLength); err != nil {
		return err
	}
	if c.PDF.Timeout != "" {
		d, err := time.ParseDuration(c.PDF.Timeout)
		if err != nil || d <= 0 {
			return fmt.Errorf("%w: pdf.timeout: %q is not a positive duration", ErrInvalidValue, c.PDF.Timeout)
		}
	}

	if c.Limits.MaxFieldLength < 1 || c.Limits.MaxFieldLength > MaxFieldLength {
		return fmt.Errorf("%w: limits.maxFieldLength: must be between 1 and %d, got %d",
			ErrInvalidValue, MaxFieldLength, c.Limits.MaxFieldLength)
	}
	if c.Limits.MaxItems < 0 || c.Limits.MaxItems > MaxItems {
		return fmt.Errorf("%w: limits.maxItems: must be between 0 and %d, got %d",
			ErrInvalidValue, MaxItems, c.Limits.MaxItems)
	}

	return nil
}

// PDFTimeout returns the configured timeout or DefaultPDFTimeout.
func (c *Config) PDFTimeout() time.Duration {
	if d, err := time.ParseDuration(c.PDF.Timeout); err == nil && d > 0 {
		return d
	}
	return DefaultPDFTimeout
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Assets: AssetsConfig{
			Dir:            "",
			Template:       assets.TemplateFile,
			Style:          assets.StyleFile,
			Picture:        assets.PictureFile,
			DefaultPicture: assets.DefaultPictureFile,
		},
		Output: OutputConfig{Path: ""},
		Render: RenderConfig{MarkdownAbout: false},
		PDF:    PDFConfig{Enabled: false},
		Limits: LimitsConfig{
			MaxFieldLength: MaxFieldLength,
			MaxItems:       MaxItems,
		},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields absent from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	cfg := DefaultConfig()
	if err := yamlutil.ReadFileStrict(configPath, cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-portfolio/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-portfolio", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
