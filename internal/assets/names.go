package assets

// Default asset filenames, relative to the assets directory.
const (
	DirName            = "assets"
	TemplateFile       = "template.html"
	StyleFile          = "style.css"
	PictureFile        = "pfp.jpg"
	DefaultPictureFile = "defaultpfp.jpg"
)

// MaxTemplateSize bounds the template read into memory (1MB).
var MaxTemplateSize int64 = 1 << 20
