package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alnah/go-portfolio/internal/assets"
)

// testTemplate uses every placeholder once.
const testTemplate = "<h1>{{NAME}}</h1><p>{{BIO}}</p>{{ABOUT}}<ul>{{SKILLS}}</ul>" +
	"{{EDUCATION}}{{PROJECTS}}<img src=\"{{PFP}}\"><footer>{{CONTACT}}</footer>"

// testEnv is an Environment backed by buffers.
type testEnv struct {
	*Environment
	stdout   *bytes.Buffer
	stderr   *bytes.Buffer
	exporter *fakeExporter
}

// newTestEnv returns an environment reading stdin from input. The
// executable lookup fails, so defaults resolve from argv[0].
func newTestEnv(input string) *testEnv {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	exporter := &fakeExporter{}
	return &testEnv{
		Environment: &Environment{
			Stdin:       strings.NewReader(input),
			Stdout:      stdout,
			Stderr:      stderr,
			IsTerminal:  func() bool { return false },
			Executable:  func() (string, error) { return "", errors.New("no executable") },
			LookPath:    func() (string, bool) { return "", false },
			NewExporter: func(d time.Duration) pdfExporter { exporter.timeout = d; return exporter },
		},
		stdout:   stdout,
		stderr:   stderr,
		exporter: exporter,
	}
}

// fakeExporter records PDF exports without a browser.
type fakeExporter struct {
	err      error
	timeout  time.Duration
	htmlPath string
	pdfPath  string
	closed   bool
}

func (f *fakeExporter) Export(_ context.Context, htmlPath, pdfPath string) error {
	f.htmlPath = htmlPath
	f.pdfPath = pdfPath
	if f.err != nil {
		return f.err
	}
	return os.WriteFile(pdfPath, []byte("%PDF-1.4"), 0o644)
}

func (f *fakeExporter) Close() error {
	f.closed = true
	return nil
}

// setupSite creates root/assets holding files and returns root.
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

// siteArgs returns the location flags pointing at root.
func siteArgs(root string) []string {
	return []string{
		"--assets", filepath.Join(root, assets.DirName),
		"--output", filepath.Join(root, "index.html"),
	}
}

// readPage returns the generated page under root.
func readPage(t *testing.T, root string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(root, "index.html"))
	if err != nil {
		t.Fatalf("reading page: %v", err)
	}
	return string(data)
}

// writeFile writes content to dir/name and returns the path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("setup %s: %v", name, err)
	}
	return path
}
