package assets

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed defaults/*
var defaults embed.FS

// EmbeddedLoader loads the built-in default assets.
// Implements AssetLoader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadTemplate loads a built-in file by name.
func (e *EmbeddedLoader) LoadTemplate(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := defaults.ReadFile("defaults/" + name)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}

	return string(content), nil
}

// Exists reports whether a built-in file with the given name is present.
func (e *EmbeddedLoader) Exists(name string) bool {
	if ValidateAssetName(name) != nil {
		return false
	}
	_, err := fs.Stat(defaults, "defaults/"+name)
	return err == nil
}

// Names lists the built-in files.
func (e *EmbeddedLoader) Names() []string {
	entries, err := defaults.ReadDir("defaults")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)
