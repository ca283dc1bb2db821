package assets

import "path"

// Picture is the outcome of choosing a profile picture.
type Picture struct {
	Name     string // Filename chosen within the assets directory
	Ref      string // Path written into the page, relative to the output file
	Fallback bool   // True when the custom picture was missing
	Found    bool   // True when the chosen file exists
}

// PictureResolver picks the custom picture when present, falling back to the
// default picture otherwise.
type PictureResolver struct {
	loader AssetLoader
	refDir string
}

// NewPictureResolver creates a PictureResolver. refDir is the directory
// prefix used in the page reference (e.g. "assets"); use forward slashes.
func NewPictureResolver(loader AssetLoader, refDir string) *PictureResolver {
	return &PictureResolver{loader: loader, refDir: refDir}
}

// Resolve returns the custom picture if it exists, else the fallback.
// The fallback is returned even when missing, so the page keeps a stable
// reference the user can fill in later.
func (r *PictureResolver) Resolve(custom, fallback string) Picture {
	if custom != "" && r.loader.Exists(custom) {
		return Picture{
			Name:  custom,
			Ref:   r.ref(custom),
			Found: true,
		}
	}

	return Picture{
		Name:     fallback,
		Ref:      r.ref(fallback),
		Fallback: true,
		Found:    r.loader.Exists(fallback),
	}
}

func (r *PictureResolver) ref(name string) string {
	if r.refDir == "" {
		return name
	}
	return path.Join(r.refDir, name)
}
