package assets

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FilesystemLoader loads assets from a directory on the filesystem.
// Implements AssetLoader interface.
type FilesystemLoader struct {
	basePath string
}

// NewFilesystemLoader creates a FilesystemLoader for the given base path.
// The directory may not exist yet: a missing directory reads as missing
// assets, so files added after startup are still picked up.
// Returns ErrInvalidBasePath if the path is empty or names a non-directory.
func NewFilesystemLoader(basePath string) (*FilesystemLoader, error) {
	if basePath == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	absPath, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}

	// Resolve symlinks in base path for consistent containment checks
	if realPath, err := filepath.EvalSymlinks(absPath); err == nil {
		absPath = realPath
	}

	info, err := os.Stat(absPath)
	if err == nil && !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidBasePath, absPath)
	}
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}

	return &FilesystemLoader{basePath: absPath}, nil
}

// BasePath returns the absolute assets directory.
func (f *FilesystemLoader) BasePath() string {
	return f.basePath
}

// Path returns the absolute path an asset name resolves to.
func (f *FilesystemLoader) Path(name string) string {
	return filepath.Join(f.basePath, name)
}

// LoadTemplate reads {basePath}/{name}.
func (f *FilesystemLoader) LoadTemplate(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	filePath := f.Path(name)
	if err := f.verifyPathContainment(filePath); err != nil {
		return "", err
	}

	file, err := os.Open(filePath) // #nosec G304 -- path validated above
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, filePath)
		}
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrTemplateNotFound, filePath)
	}

	// Read one byte past the limit to detect oversize files
	content, err := io.ReadAll(io.LimitReader(file, MaxTemplateSize+1))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	if int64(len(content)) > MaxTemplateSize {
		return "", fmt.Errorf("%w: %s (max %d bytes)", ErrTemplateTooLarge, filePath, MaxTemplateSize)
	}

	return string(content), nil
}

// Exists reports whether {basePath}/{name} is a regular file.
func (f *FilesystemLoader) Exists(name string) bool {
	if ValidateAssetName(name) != nil {
		return false
	}
	filePath := f.Path(name)
	if f.verifyPathContainment(filePath) != nil {
		return false
	}
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// verifyPathContainment ensures the resolved file path is within basePath.
// Resolves symlinks to prevent escape via symlink pointing outside basePath.
func (f *FilesystemLoader) verifyPathContainment(filePath string) error {
	absFilePath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("%w: cannot resolve path", ErrPathTraversal)
	}

	// A missing file keeps its unresolved path; the open fails later
	if realPath, err := filepath.EvalSymlinks(absFilePath); err == nil {
		absFilePath = realPath
	}

	// Separator suffix prevents prefix attacks (/base/path vs /base/pathevil)
	if !strings.HasPrefix(absFilePath, f.basePath+string(filepath.Separator)) {
		return fmt.Errorf("%w: path escapes base directory", ErrPathTraversal)
	}

	return nil
}

// Compile-time interface check.
var _ AssetLoader = (*FilesystemLoader)(nil)
