package portfolio

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-portfolio/internal/assets"
	"github.com/alnah/go-portfolio/internal/pipeline"
)

// ---------------------------------------------------------------------------
// Test helpers
// ---------------------------------------------------------------------------

// setupSite creates <root>/assets with the given files and returns the root.
func setupSite(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	dir := filepath.Join(root, assets.DirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("setup: %v", err)
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("setup %s: %v", name, err)
		}
	}
	return root
}

func newTestGenerator(t *testing.T, root string, opts ...Option) *Generator {
	t.Helper()

	g, err := NewGenerator(filepath.Join(root, assets.DirName), filepath.Join(root, "index.html"), opts...)
	if err != nil {
		t.Fatalf("NewGenerator() error = %v", err)
	}
	return g
}

// spyRenderer records whether substitution ran.
type spyRenderer struct {
	called bool
}

func (s *spyRenderer) Render(ctx context.Context, template string, values pipeline.Values) (string, error) {
	s.called = true
	return (&pipeline.Substitution{}).Render(ctx, template, values)
}

// stubMarkdown returns a fixed fragment or error.
type stubMarkdown struct {
	out string
	err error
}

func (s *stubMarkdown) ToFragment(_ context.Context, _ string) (string, error) {
	return s.out, s.err
}

// ---------------------------------------------------------------------------
// TestNewGenerator - Construction
// ---------------------------------------------------------------------------

func TestNewGenerator(t *testing.T) {
	t.Parallel()

	t.Run("empty output path", func(t *testing.T) {
		t.Parallel()

		_, err := NewGenerator(t.TempDir(), "")
		if !errors.Is(err, ErrEmptyOutputPath) {
			t.Errorf("error = %v, want ErrEmptyOutputPath", err)
		}
	})

	t.Run("assets path is a file", func(t *testing.T) {
		t.Parallel()

		file := filepath.Join(t.TempDir(), "assets")
		if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, err := NewGenerator(file, "index.html")
		if !errors.Is(err, assets.ErrInvalidBasePath) {
			t.Errorf("error = %v, want ErrInvalidBasePath", err)
		}
	})

	t.Run("missing assets directory is accepted", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		g := newTestGenerator(t, root)

		if g.Check().Ready() {
			t.Error("Check().Ready() = true, want false")
		}
		if want := filepath.Join(root, "assets", "template.html"); !strings.HasSuffix(g.TemplatePath(), filepath.Join("assets", "template.html")) {
			t.Errorf("TemplatePath() = %q, want suffix of %q", g.TemplatePath(), want)
		}
	})

	t.Run("custom names", func(t *testing.T) {
		t.Parallel()

		g := newTestGenerator(t, t.TempDir(), WithNames(assets.Names{Template: "page.html"}))

		names := g.Names()
		if names.Template != "page.html" {
			t.Errorf("Template = %q, want page.html", names.Template)
		}
		if names.DefaultPicture != assets.DefaultPictureFile {
			t.Errorf("DefaultPicture = %q, want default", names.DefaultPicture)
		}
	})
}

// ---------------------------------------------------------------------------
// TestGenerator_Generate - End to end
// ---------------------------------------------------------------------------

func TestGenerator_Generate_AdaScenario(t *testing.T) {
	t.Parallel()

	root := setupSite(t, map[string]string{
		"template.html": "<p>{{NAME}}</p><ul>{{SKILLS}}</ul>",
	})
	g := newTestGenerator(t, root)

	result, err := g.Generate(context.Background(), Input{
		Profile: &Profile{Name: "Ada", Skills: []string{"C", "Math"}},
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	want := "<p>Ada</p><ul><li>C</li>\n                <li>Math</li>\n                </ul>"
	if result.HTML != want {
		t.Errorf("HTML = %q, want %q", result.HTML, want)
	}

	written, err := os.ReadFile(filepath.Join(root, "index.html"))
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !bytes.Equal(written, []byte(want)) {
		t.Errorf("written = %q, want %q", written, want)
	}
	if result.OutputPath != filepath.Join(root, "index.html") {
		t.Errorf("OutputPath = %q", result.OutputPath)
	}
}

func TestGenerator_Generate_AllPlaceholdersEmptyLists(t *testing.T) {
	t.Parallel()

	root := setupSite(t, map[string]string{
		"template.html": "{{NAME}}|{{BIO}}|{{ABOUT}}|{{CONTACT}}|{{SKILLS}}|{{EDUCATION}}|{{PROJECTS}}|{{PFP}}",
	})
	g := newTestGenerator(t, root)

	result, err := g.Generate(context.Background(), Input{
		Profile: &Profile{Name: "Ada", Bio: "Analyst", About: "Engines", Contact: "ada@example.com"},
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	want := "Ada|Analyst|Engines|ada@example.com||||assets/defaultpfp.jpg"
	if result.HTML != want {
		t.Errorf("HTML = %q, want %q", result.HTML, want)
	}
	if !result.Picture.Fallback {
		t.Error("Picture.Fallback = false, want true")
	}
}

func TestGenerator_Generate_WriteReadBackIdentity(t *testing.T) {
	t.Parallel()

	tmpl := "<html>\n<body>héllo {{NAME}}\r\n<img src=\"{{PFP}}\"></body>\n</html>\n"
	root := setupSite(t, map[string]string{"template.html": tmpl})
	g := newTestGenerator(t, root)

	result, err := g.Generate(context.Background(), Input{Profile: &Profile{Name: "Zoë"}})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	written, err := os.ReadFile(result.OutputPath)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if string(written) != result.HTML {
		t.Errorf("written %q differs from rendered %q", written, result.HTML)
	}
}

func TestGenerator_Generate_OverwritesOutput(t *testing.T) {
	t.Parallel()

	root := setupSite(t, map[string]string{"template.html": "<h1>{{NAME}}</h1>"})
	out := filepath.Join(root, "index.html")
	if err := os.WriteFile(out, []byte("old content that is longer than the new page"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	g := newTestGenerator(t, root)

	if _, err := g.Generate(context.Background(), Input{Profile: &Profile{Name: "Ada"}}); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	written, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if string(written) != "<h1>Ada</h1>" {
		t.Errorf("written = %q, want %q", written, "<h1>Ada</h1>")
	}
}

func TestGenerator_Generate_MissingTemplate(t *testing.T) {
	t.Parallel()

	root := setupSite(t, map[string]string{"style.css": "body{}"})
	spy := &spyRenderer{}
	g := newTestGenerator(t, root, withRenderer(spy))

	_, err := g.Generate(context.Background(), Input{Profile: &Profile{Name: "Ada"}})
	if !errors.Is(err, ErrTemplateNotFound) {
		t.Fatalf("error = %v, want ErrTemplateNotFound", err)
	}
	if !strings.Contains(err.Error(), "template.html") {
		t.Errorf("error should name the template path, got %v", err)
	}
	if spy.called {
		t.Error("substitution ran without a template")
	}
	if _, statErr := os.Stat(filepath.Join(root, "index.html")); !os.IsNotExist(statErr) {
		t.Errorf("output should not exist, stat error = %v", statErr)
	}
}

func TestGenerator_Generate_TemplateAddedAfterStartup(t *testing.T) {
	t.Parallel()

	root := setupSite(t, nil)
	g := newTestGenerator(t, root)

	if g.Check().Template {
		t.Fatal("template should be missing at startup")
	}
	if err := os.WriteFile(filepath.Join(root, "assets", "template.html"), []byte("{{NAME}}"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	result, err := g.Generate(context.Background(), Input{Profile: &Profile{Name: "Ada"}})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if result.HTML != "Ada" {
		t.Errorf("HTML = %q, want Ada", result.HTML)
	}
}

func TestGenerator_Generate_InvalidProfile(t *testing.T) {
	t.Parallel()

	root := setupSite(t, map[string]string{"template.html": "{{NAME}}"})
	g := newTestGenerator(t, root)

	tests := []struct {
		name    string
		profile *Profile
		wantErr error
	}{
		{"nil profile", nil, ErrNilProfile},
		{"too many skills", &Profile{Skills: make([]string, MaxItems+1)}, ErrInvalidProfile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := g.Render(context.Background(), Input{Profile: tt.profile})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGenerator_Generate_CancelledContextWritesNothing(t *testing.T) {
	t.Parallel()

	root := setupSite(t, map[string]string{"template.html": "{{NAME}}"})
	g := newTestGenerator(t, root)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.Generate(ctx, Input{Profile: &Profile{Name: "Ada"}})
	if !errors.Is(err, pipeline.ErrRender) {
		t.Fatalf("error = %v, want ErrRender", err)
	}
	if _, statErr := os.Stat(filepath.Join(root, "index.html")); !os.IsNotExist(statErr) {
		t.Errorf("output should not exist, stat error = %v", statErr)
	}
}

func TestGenerator_Generate_WriteFailure(t *testing.T) {
	t.Parallel()

	root := setupSite(t, map[string]string{"template.html": "{{NAME}}"})
	g, err := NewGenerator(filepath.Join(root, "assets"), filepath.Join(root, "missing-dir", "index.html"))
	if err != nil {
		t.Fatalf("NewGenerator() error = %v", err)
	}

	_, err = g.Generate(context.Background(), Input{Profile: &Profile{Name: "Ada"}})
	if !errors.Is(err, ErrWriteOutput) {
		t.Errorf("error = %v, want ErrWriteOutput", err)
	}
}

// ---------------------------------------------------------------------------
// TestGenerator_Picture - Picture selection
// ---------------------------------------------------------------------------

func TestGenerator_Picture(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		files        map[string]string
		wantRef      string
		wantFallback bool
		wantFound    bool
	}{
		{
			name:      "custom picture present",
			files:     map[string]string{"template.html": "{{PFP}}", "pfp.jpg": "x", "defaultpfp.jpg": "y"},
			wantRef:   "assets/pfp.jpg",
			wantFound: true,
		},
		{
			name:         "only default present",
			files:        map[string]string{"template.html": "{{PFP}}", "defaultpfp.jpg": "y"},
			wantRef:      "assets/defaultpfp.jpg",
			wantFallback: true,
			wantFound:    true,
		},
		{
			name:         "neither present keeps default reference",
			files:        map[string]string{"template.html": "{{PFP}}"},
			wantRef:      "assets/defaultpfp.jpg",
			wantFallback: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root := setupSite(t, tt.files)
			g := newTestGenerator(t, root)

			result, err := g.Render(context.Background(), Input{Profile: &Profile{}})
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if result.HTML != tt.wantRef {
				t.Errorf("HTML = %q, want %q", result.HTML, tt.wantRef)
			}
			if result.Picture.Fallback != tt.wantFallback {
				t.Errorf("Fallback = %v, want %v", result.Picture.Fallback, tt.wantFallback)
			}
			if result.Picture.Found != tt.wantFound {
				t.Errorf("Found = %v, want %v", result.Picture.Found, tt.wantFound)
			}
		})
	}
}

func TestGenerator_Render_PictureOverride(t *testing.T) {
	t.Parallel()

	root := setupSite(t, map[string]string{"template.html": "{{PFP}}", "pfp.jpg": "x"})
	g := newTestGenerator(t, root)

	pic := assets.Picture{Name: "defaultpfp.jpg", Ref: "assets/defaultpfp.jpg", Fallback: true}
	result, err := g.Render(context.Background(), Input{Profile: &Profile{}, Picture: &pic})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if result.HTML != "assets/defaultpfp.jpg" {
		t.Errorf("HTML = %q, want the override reference", result.HTML)
	}
}

func TestPictureRefDir(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}

	tests := []struct {
		name       string
		assetsDir  string
		outputPath string
		want       string
	}{
		{
			name:       "assets next to output",
			assetsDir:  filepath.Join(root, "assets"),
			outputPath: filepath.Join(root, "index.html"),
			want:       "assets",
		},
		{
			name:       "output inside assets",
			assetsDir:  root,
			outputPath: filepath.Join(root, "index.html"),
			want:       "",
		},
		{
			name:       "output in sibling directory",
			assetsDir:  filepath.Join(root, "assets"),
			outputPath: filepath.Join(root, "site", "index.html"),
			want:       "../assets",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := pictureRefDir(tt.assetsDir, tt.outputPath); got != tt.want {
				t.Errorf("pictureRefDir() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestGenerator_MarkdownAbout - Optional Markdown rendering
// ---------------------------------------------------------------------------

func TestGenerator_MarkdownAbout(t *testing.T) {
	t.Parallel()

	t.Run("disabled keeps raw text", func(t *testing.T) {
		t.Parallel()

		root := setupSite(t, map[string]string{"template.html": "{{ABOUT}}"})
		g := newTestGenerator(t, root)

		result, err := g.Render(context.Background(), Input{Profile: &Profile{About: "*hi*"}})
		if err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		if result.HTML != "*hi*" {
			t.Errorf("HTML = %q, want raw text", result.HTML)
		}
	})

	t.Run("enabled renders markdown", func(t *testing.T) {
		t.Parallel()

		root := setupSite(t, map[string]string{"template.html": "{{ABOUT}}"})
		g := newTestGenerator(t, root, WithMarkdownAbout(true))

		result, err := g.Render(context.Background(), Input{Profile: &Profile{About: "*hi*"}})
		if err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		if result.HTML != "<p><em>hi</em></p>" {
			t.Errorf("HTML = %q, want rendered paragraph", result.HTML)
		}
	})

	t.Run("converter error stops rendering", func(t *testing.T) {
		t.Parallel()

		root := setupSite(t, map[string]string{"template.html": "{{ABOUT}}"})
		spy := &spyRenderer{}
		g := newTestGenerator(t, root,
			withRenderer(spy),
			withMarkdownConverter(&stubMarkdown{err: pipeline.ErrMarkdownConversion}),
		)

		_, err := g.Render(context.Background(), Input{Profile: &Profile{About: "x"}})
		if !errors.Is(err, pipeline.ErrMarkdownConversion) {
			t.Errorf("error = %v, want ErrMarkdownConversion", err)
		}
		if spy.called {
			t.Error("substitution ran after conversion failure")
		}
	})
}
