package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Scaffold writes the built-in defaults into dir, creating it if needed.
// If any target already exists and force is unset, nothing is written and
// ErrAssetExists is returned. Returns the paths written.
func Scaffold(dir string, force bool) ([]string, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating assets directory: %w", err)
	}

	embedded := NewEmbeddedLoader()
	names := embedded.Names()

	// Refuse before writing anything so a partial scaffold never happens
	if !force {
		for _, name := range names {
			target := filepath.Join(dir, name)
			if _, err := os.Stat(target); err == nil {
				return nil, fmt.Errorf("%w: %s", ErrAssetExists, target)
			} else if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
			}
		}
	}

	written := make([]string, 0, len(names))
	for _, name := range names {
		target := filepath.Join(dir, name)

		content, err := embedded.LoadTemplate(name)
		if err != nil {
			return written, err
		}
		if err := os.WriteFile(target, []byte(content), 0o644); err != nil { // #nosec G306 -- page assets are meant to be world-readable
			return written, fmt.Errorf("writing %s: %w", target, err)
		}
		written = append(written, target)
	}

	return written, nil
}
