package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	flag "github.com/spf13/pflag"

	portfolio "github.com/alnah/go-portfolio"
	"github.com/alnah/go-portfolio/internal/assets"
	"github.com/alnah/go-portfolio/internal/config"
	"github.com/alnah/go-portfolio/internal/prompt"
)

// runGenerateCmd builds the page, interactively or from --profile.
func runGenerateCmd(programDir string, args []string, env *Environment) int {
	f, rest, err := parseGenerateFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		printGenerateUsage(env.Stdout)
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return ExitUsage
	}
	if len(rest) > 0 {
		return reportError(env.Stderr, fmt.Errorf("%w: %v", ErrUnexpectedArgs, rest))
	}

	logger := newLogger(env.Stderr, f.common.quiet, f.common.verbose)

	cfg, err := loadSettings(programDir, f.common, f.paths, env.Stderr)
	if err != nil {
		return reportError(env.Stderr, err)
	}
	if err := applyGenerateFlags(f, cfg); err != nil {
		return reportError(env.Stderr, err)
	}

	gen, err := newGenerator(cfg, logger)
	if err != nil {
		return reportError(env.Stderr, err)
	}
	logger.Debug("settings resolved",
		"assets", gen.AssetsDir(),
		"output", gen.OutputPath(),
		"pdf", cfg.PDF.Enabled)

	ctx, stop := notifyContext(context.Background())
	defer stop()

	run := &generateRun{
		gen:    gen,
		cfg:    cfg,
		env:    env,
		logger: logger,
		quiet:  f.common.quiet,
	}
	if f.profile != "" {
		return run.fromFile(ctx, f.profile)
	}
	return run.interactive(ctx)
}

// applyGenerateFlags applies generate-only flags over the settings.
func applyGenerateFlags(f *generateFlags, cfg *config.Config) error {
	if f.changed("markdown-about") {
		cfg.Render.MarkdownAbout = f.markdownAbout
	}
	if f.changed("pdf") {
		cfg.PDF.Enabled = f.pdf.enabled
	}
	if f.pdf.output != "" {
		cfg.PDF.Path = f.pdf.output
		cfg.PDF.Enabled = true
	}
	if f.pdf.timeout != "" {
		cfg.PDF.Timeout = f.pdf.timeout
	}
	return cfg.Validate()
}

// generateRun carries one generate invocation.
type generateRun struct {
	gen    *portfolio.Generator
	cfg    *config.Config
	env    *Environment
	logger *slog.Logger
	quiet  bool
}

// interactive runs the menu and question flow, then writes the page.
func (r *generateRun) interactive(ctx context.Context) int {
	out := r.env.Stdout
	p := prompt.New(r.env.Stdin, out, r.cfg.Limits.MaxFieldLength)
	names := r.gen.Names()

	fmt.Fprint(out, "=== Portfolio Generator ===\n\n")
	printFileCheck(out, r.gen.Check(), names)

	fmt.Fprint(out, "1 - Start generating portfolio\n")
	fmt.Fprint(out, "2 - Show instructions and then start generating portfolio\n")
	fmt.Fprint(out, "3 - Exit the program\n")
	choice, err := p.Int("Enter your choice: \n", 1, 3)
	if err != nil {
		return reportError(r.env.Stderr, err)
	}
	switch choice {
	case 2:
		printInstructions(out, r.cfg)
	case 3:
		fmt.Fprint(out, "Terminated program.\n")
		return ExitSuccess
	}

	profile, err := askProfile(p, out, r.cfg.Limits.MaxItems)
	if err != nil {
		return reportError(r.env.Stderr, err)
	}

	// Chosen now so the message names the picture the page uses
	pic := r.gen.ResolvePicture()
	if pic.Fallback {
		fmt.Fprintf(out, "\n[!] No %s found - using default picture (%s)\n", names.Picture, names.DefaultPicture)
	} else {
		fmt.Fprintf(out, "\n[OK] Profile picture found: %s\n", names.Picture)
	}

	result, err := r.gen.Render(ctx, portfolio.Input{Profile: profile, Picture: &pic})
	if errors.Is(err, portfolio.ErrTemplateNotFound) {
		fmt.Fprintf(out, "\n[ERROR] %s is still missing!\n", names.Template)
		fmt.Fprintf(out, "Cannot generate portfolio without %s.\n", names.Template)
		if r.env.interactive() {
			p.Wait("Press Enter to exit...")
		}
		return reportError(r.env.Stderr, err)
	}
	if err != nil {
		return reportError(r.env.Stderr, err)
	}

	return r.write(ctx, result)
}

// fromFile renders a profile read from a YAML file, without prompting.
func (r *generateRun) fromFile(ctx context.Context, path string) int {
	profile, err := portfolio.LoadProfile(path)
	if err != nil {
		return reportError(r.env.Stderr, err)
	}
	if err := profile.CheckLimits(r.cfg.Limits.MaxFieldLength, r.cfg.Limits.MaxItems); err != nil {
		return reportError(r.env.Stderr, err)
	}

	names := r.gen.Names()
	report := r.gen.Check()
	if !report.Style {
		r.logger.Warn("stylesheet not found", "file", names.Style, "dir", r.gen.AssetsDir())
	}
	if !report.HasPicture() {
		r.logger.Warn("no profile picture will be displayed",
			"picture", names.Picture,
			"default", names.DefaultPicture)
	}

	result, err := r.gen.Render(ctx, portfolio.Input{Profile: profile})
	if err != nil {
		return reportError(r.env.Stderr, err)
	}
	r.logger.Debug("profile rendered", "profile", path, "picture", result.Picture.Name)

	return r.write(ctx, result)
}

// write stores the page and runs the optional PDF export.
// A failed export keeps the written page.
func (r *generateRun) write(ctx context.Context, result *portfolio.Result) int {
	out := r.env.Stdout
	if r.quiet {
		out = io.Discard
	}

	if err := r.gen.Write(result); err != nil {
		fmt.Fprintf(r.env.Stdout, "Error: Could not create %s\n", filepath.Base(r.gen.OutputPath()))
		return reportError(r.env.Stderr, err)
	}

	fmt.Fprint(out, "\n=== Success! ===\n")
	fmt.Fprintf(out, "Your portfolio has been generated: %s\n", result.OutputPath)
	fmt.Fprintf(out, "Open %s in your browser to view it.\n", filepath.Base(result.OutputPath))

	if !r.cfg.PDF.Enabled {
		return ExitSuccess
	}

	pdfPath, err := r.exportPDF(ctx, result.OutputPath)
	if err != nil {
		return reportError(r.env.Stderr, fmt.Errorf("exporting PDF (page kept at %s): %w", result.OutputPath, err))
	}
	fmt.Fprintf(out, "PDF exported: %s\n", pdfPath)
	return ExitSuccess
}

// exportPDF prints the written page to PDF and returns the PDF path.
func (r *generateRun) exportPDF(ctx context.Context, htmlPath string) (string, error) {
	pdfPath := r.cfg.PDF.Path
	if pdfPath == "" {
		pdfPath = portfolio.PDFPath(htmlPath)
	}
	timeout := r.cfg.PDFTimeout()

	newExporter := r.env.NewExporter
	if newExporter == nil {
		newExporter = func(d time.Duration) pdfExporter { return portfolio.NewPDFExporter(d) }
	}
	exporter := newExporter(timeout)
	defer exporter.Close()

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	r.logger.Debug("exporting PDF", "page", htmlPath, "pdf", pdfPath, "timeout", timeout)
	if err := exporter.Export(ctx, htmlPath, pdfPath); err != nil {
		return "", err
	}
	return pdfPath, nil
}

// printFileCheck prints which assets are present before the menu.
func printFileCheck(w io.Writer, r assets.Report, names assets.Names) {
	fmt.Fprint(w, "=== Checking Files ===\n\n")

	if r.Template {
		fmt.Fprintf(w, "[OK] %s found\n", names.Template)
	} else {
		fmt.Fprintf(w, "[WARNING] %s NOT FOUND - This file is required!\n", names.Template)
		fmt.Fprintf(w, "          Make sure %s is in the assets folder.\n", names.Template)
	}

	if r.Style {
		fmt.Fprintf(w, "[OK] %s found\n", names.Style)
	} else {
		fmt.Fprintf(w, "[WARNING] %s NOT FOUND!\n", names.Style)
		fmt.Fprintf(w, "          Make sure %s is in the assets folder.\n", names.Style)
	}

	if r.Picture {
		fmt.Fprintf(w, "[OK] %s found\n", names.Picture)
	} else {
		fmt.Fprintf(w, "[INFO] %s not found - will use default picture\n", names.Picture)
		if r.DefaultPicture {
			fmt.Fprintf(w, "[OK] %s found\n", names.DefaultPicture)
		} else {
			fmt.Fprintf(w, "[WARNING] %s NOT FOUND - No profile picture will be displayed!\n", names.DefaultPicture)
			fmt.Fprintf(w, "          Add %s or %s to the assets folder.\n", names.Picture, names.DefaultPicture)
		}
	}

	fmt.Fprint(w, "\n")
}

// interview asks questions in order and keeps the first error.
// Once an error is kept, the remaining questions are skipped.
type interview struct {
	p   *prompt.Prompter
	w   io.Writer
	err error
}

func (iv *interview) say(s string) {
	if iv.err == nil {
		fmt.Fprint(iv.w, s)
	}
}

func (iv *interview) line(format string, args ...any) string {
	if iv.err != nil {
		return ""
	}
	s, err := iv.p.Line(fmt.Sprintf(format, args...))
	iv.err = err
	return s
}

func (iv *interview) count(format string, hi int) int {
	if iv.err != nil {
		return 0
	}
	n, err := iv.p.Int(fmt.Sprintf(format, hi), 0, hi)
	iv.err = err
	return n
}

// askProfile collects a profile from the prompts, contact last since it
// closes the page.
func askProfile(p *prompt.Prompter, w io.Writer, maxItems int) (*portfolio.Profile, error) {
	iv := &interview{p: p, w: w}
	prof := &portfolio.Profile{}

	prof.Name = iv.line("Enter your name: ")
	prof.Bio = iv.line("Enter your bio (short tagline): ")
	prof.About = iv.line("Enter about me text: ")

	iv.say("\n--- Skills ---\n")
	for i := range iv.count("How many skills? (0-%d): ", maxItems) {
		prof.Skills = append(prof.Skills, iv.line("Skill %d: ", i+1))
	}

	iv.say("\n--- Education ---\n")
	for i := range iv.count("How many education entries? (0-%d): ", maxItems) {
		prof.Education = append(prof.Education, portfolio.Education{
			School: iv.line("\nEducation %d school/university: ", i+1),
			Degree: iv.line("Education %d degree/field: ", i+1),
			Year:   iv.line("Education %d year(s): ", i+1),
		})
	}

	iv.say("\n--- Projects ---\n")
	for i := range iv.count("How many projects? (0-%d): ", maxItems) {
		prof.Projects = append(prof.Projects, portfolio.Project{
			Title:       iv.line("\nProject %d title: ", i+1),
			Description: iv.line("Project %d description: ", i+1),
		})
	}

	iv.say("\n--- Contact ---\n")
	prof.Contact = iv.line("Enter contact info (email, phone, socials): ")
	iv.say("\n---------------------------------------------\n")

	if iv.err != nil {
		return nil, iv.err
	}
	return prof, nil
}
