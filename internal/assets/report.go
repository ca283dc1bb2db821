package assets

// Names lists the asset filenames a run looks for.
type Names struct {
	Template       string
	Style          string
	Picture        string
	DefaultPicture string
}

// DefaultNames returns the standard asset filenames.
func DefaultNames() Names {
	return Names{
		Template:       TemplateFile,
		Style:          StyleFile,
		Picture:        PictureFile,
		DefaultPicture: DefaultPictureFile,
	}
}

// Report holds the presence of each asset.
type Report struct {
	Template       bool `json:"template"`
	Style          bool `json:"style"`
	Picture        bool `json:"picture"`
	DefaultPicture bool `json:"default_picture"`
}

// Inspect checks which assets are present.
func Inspect(loader AssetLoader, names Names) Report {
	return Report{
		Template:       loader.Exists(names.Template),
		Style:          loader.Exists(names.Style),
		Picture:        loader.Exists(names.Picture),
		DefaultPicture: loader.Exists(names.DefaultPicture),
	}
}

// Ready reports whether generation can proceed. Only the template is required.
func (r Report) Ready() bool {
	return r.Template
}

// HasPicture reports whether any profile picture will display.
func (r Report) HasPicture() bool {
	return r.Picture || r.DefaultPicture
}
