package portfolio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/alnah/go-portfolio/internal/assets"
	"github.com/alnah/go-portfolio/internal/fileutil"
	"github.com/alnah/go-portfolio/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.Renderer          = (*pipeline.Substitution)(nil)
	_ pipeline.MarkdownConverter = (*pipeline.GoldmarkConverter)(nil)
	_ assets.AssetLoader         = (*assets.FilesystemLoader)(nil)
)

// outputPermissions is rw-r--r--: the page is meant to be opened by a browser.
const outputPermissions = 0o644

// Input is one generation request.
type Input struct {
	Profile *Profile

	// Picture overrides the picture choice. Nil resolves it at render time.
	Picture *assets.Picture
}

// Result is the outcome of a generation.
type Result struct {
	HTML       string
	Picture    assets.Picture
	OutputPath string // Empty until written
}

// Generator renders profiles into a page template and writes the page.
// Create with NewGenerator. A Generator holds no per-run state.
type Generator struct {
	cfg      generatorConfig
	loader   *assets.FilesystemLoader
	pictures *assets.PictureResolver
	renderer pipeline.Renderer
	markdown pipeline.MarkdownConverter
	logger   *slog.Logger
}

// NewGenerator creates a Generator reading assets from assetsDir and
// writing the page to outputPath. The assets directory may not exist yet.
func NewGenerator(assetsDir, outputPath string, opts ...Option) (*Generator, error) {
	if outputPath == "" {
		return nil, ErrEmptyOutputPath
	}

	loader, err := assets.NewFilesystemLoader(assetsDir)
	if err != nil {
		return nil, fmt.Errorf("opening assets: %w", err)
	}

	g := &Generator{
		cfg: generatorConfig{
			outputPath: outputPath,
			names:      assets.DefaultNames(),
		},
		loader:   loader,
		renderer: &pipeline.Substitution{},
		logger:   slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.cfg.markdownAbout && g.markdown == nil {
		g.markdown = pipeline.NewGoldmarkConverter()
	}

	g.pictures = assets.NewPictureResolver(loader, pictureRefDir(loader.BasePath(), outputPath))
	return g, nil
}

// pictureRefDir returns the assets directory as seen from the output file,
// with forward slashes. An assets directory that cannot be made relative
// is referenced by its absolute path.
func pictureRefDir(assetsDir, outputPath string) string {
	outDir, err := filepath.Abs(filepath.Dir(outputPath))
	if err != nil {
		return filepath.ToSlash(assetsDir)
	}
	if resolved, err := filepath.EvalSymlinks(outDir); err == nil {
		outDir = resolved
	}

	rel, err := filepath.Rel(outDir, assetsDir)
	if err != nil {
		return filepath.ToSlash(assetsDir)
	}
	if rel == "." {
		return ""
	}
	return filepath.ToSlash(rel)
}

// Names returns the asset filenames in use.
func (g *Generator) Names() assets.Names {
	return g.cfg.names
}

// AssetsDir returns the absolute assets directory.
func (g *Generator) AssetsDir() string {
	return g.loader.BasePath()
}

// TemplatePath returns where the template is expected.
func (g *Generator) TemplatePath() string {
	return g.loader.Path(g.cfg.names.Template)
}

// OutputPath returns where the page is written.
func (g *Generator) OutputPath() string {
	return g.cfg.outputPath
}

// Check reports which assets are present right now.
func (g *Generator) Check() assets.Report {
	return assets.Inspect(g.loader, g.cfg.names)
}

// ResolvePicture chooses the profile picture from the files present now.
func (g *Generator) ResolvePicture() assets.Picture {
	return g.pictures.Resolve(g.cfg.names.Picture, g.cfg.names.DefaultPicture)
}

// Render loads the template and substitutes every placeholder.
// The template is read on each call, so a file added after startup is used.
// If the template is missing, no substitution runs and the error wraps
// ErrTemplateNotFound.
func (g *Generator) Render(ctx context.Context, input Input) (*Result, error) {
	if err := input.Profile.Validate(); err != nil {
		return nil, err
	}

	pic := g.ResolvePicture()
	if input.Picture != nil {
		pic = *input.Picture
	}

	tmpl, err := g.loader.LoadTemplate(g.cfg.names.Template)
	if err != nil {
		if errors.Is(err, assets.ErrTemplateNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, g.TemplatePath())
		}
		return nil, fmt.Errorf("loading template: %w", err)
	}
	g.logger.Debug("template loaded", "path", g.TemplatePath(), "bytes", len(tmpl))

	about := input.Profile.About
	if g.markdown != nil {
		about, err = g.markdown.ToFragment(ctx, about)
		if err != nil {
			return nil, fmt.Errorf("rendering about text: %w", err)
		}
	}

	doc, err := g.renderer.Render(ctx, tmpl, input.Profile.values(about, pic.Ref))
	if err != nil {
		return nil, err
	}
	g.logger.Debug("placeholders substituted", "picture", pic.Ref, "bytes", len(doc))

	return &Result{HTML: doc, Picture: pic}, nil
}

// Write stores the rendered page at the output path in one operation,
// replacing any previous file.
func (g *Generator) Write(result *Result) error {
	if err := fileutil.WriteFileAtomic(g.cfg.outputPath, []byte(result.HTML), outputPermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	result.OutputPath = g.cfg.outputPath
	g.logger.Debug("page written", "path", g.cfg.outputPath)
	return nil
}

// Generate renders the page and writes it. Nothing is written unless
// rendering completes.
func (g *Generator) Generate(ctx context.Context, input Input) (*Result, error) {
	result, err := g.Render(ctx, input)
	if err != nil {
		return nil, err
	}
	if err := g.Write(result); err != nil {
		return nil, err
	}
	return result, nil
}
