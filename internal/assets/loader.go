package assets

// AssetLoader defines the contract for reading portfolio assets by filename.
type AssetLoader interface {
	// LoadTemplate reads a template file by name (e.g. "template.html").
	// Returns ErrTemplateNotFound if the file doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTemplate(name string) (string, error)

	// Exists reports whether a regular file with the given name is present.
	// Invalid names report false.
	Exists(name string) bool
}
