package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName checks that an asset name is a plain filename.
// Returns ErrInvalidAssetName if the name is empty, is a dot entry, or
// contains path separators or null bytes.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if name == "." || name == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	if strings.ContainsAny(name, "/\\\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
