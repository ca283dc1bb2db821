// Package assets locates and loads the files a portfolio page is built from.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── FilesystemLoader  - the assets directory next to the executable
//	    └── EmbeddedLoader    - built-in defaults, used to scaffold a new directory
//
// Generation reads the template through a FilesystemLoader only. The
// embedded defaults never stand in for a missing template: a missing
// template.html is a fatal condition for the run.
//
// # Directory Structure
//
//	{basePath}/
//	├── template.html     # required, contains {{KEY}} placeholders
//	├── style.css         # optional, referenced by the template
//	├── pfp.jpg           # optional profile picture
//	└── defaultpfp.jpg    # fallback picture
//
// # Security
//
// Asset names are plain filenames. FilesystemLoader resolves symlinks and
// verifies paths stay within basePath.
package assets
