package assets

import "errors"

// Sentinel errors for asset operations.
var (
	// ErrTemplateNotFound indicates the requested template does not exist.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrTemplateTooLarge indicates the template exceeds MaxTemplateSize.
	ErrTemplateTooLarge = errors.New("template exceeds maximum size")

	// ErrInvalidAssetName indicates the asset name is empty or contains
	// path separators or traversal sequences.
	ErrInvalidAssetName = errors.New("invalid asset name")

	// ErrInvalidBasePath indicates the configured base path is not a valid directory.
	ErrInvalidBasePath = errors.New("invalid base path")

	// ErrAssetRead indicates an I/O error occurred while reading an asset file.
	ErrAssetRead = errors.New("failed to read asset")

	// ErrPathTraversal indicates an attempt to access files outside the base path.
	ErrPathTraversal = errors.New("path traversal detected")

	// ErrAssetExists indicates scaffolding would overwrite an existing file.
	ErrAssetExists = errors.New("asset already exists")
)
