package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	flag "github.com/spf13/pflag"

	portfolio "github.com/alnah/go-portfolio"
	"github.com/alnah/go-portfolio/internal/config"
	"github.com/alnah/go-portfolio/internal/pipeline"
)

// checkResult holds all diagnostic information.
type checkResult struct {
	Status   string        `json:"status"` // "ready", "warnings", "errors"
	Assets   assetsInfo    `json:"assets"`
	Template *templateInfo `json:"template,omitempty"`
	Output   outputInfo    `json:"output"`
	Chrome   chromeInfo    `json:"chrome"`
	Env      envInfo       `json:"environment"`
	Warnings []string      `json:"warnings,omitempty"`
	Errors   []string      `json:"errors,omitempty"`
}

// assetsInfo holds asset presence results.
type assetsInfo struct {
	Dir            string `json:"dir"`
	Template       bool   `json:"template"`
	Style          bool   `json:"style"`
	Picture        bool   `json:"picture"`
	DefaultPicture bool   `json:"default_picture"`
}

// templateInfo holds placeholder and link findings for the template.
type templateInfo struct {
	Missing      []string `json:"missing_placeholders,omitempty"`
	Repeated     []string `json:"repeated_placeholders,omitempty"`
	Stylesheets  []string `json:"stylesheets,omitempty"`
	StyleLinked  bool     `json:"style_linked"`
	PictureInImg bool     `json:"picture_in_img"`
}

// outputInfo holds output location results.
type outputInfo struct {
	Path     string `json:"path"`
	Writable bool   `json:"writable"`
}

// chromeInfo holds Chrome/Chromium detection results.
type chromeInfo struct {
	Required bool   `json:"required"` // pdf.enabled in the config
	Found    bool   `json:"found"`
	Path     string `json:"path,omitempty"`
	Version  string `json:"version,omitempty"`
	Sandbox  bool   `json:"sandbox"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS            string `json:"os"`
	Arch          string `json:"arch"`
	Container     bool   `json:"container"`
	ContainerHint string `json:"container_hint,omitempty"`
	CI            bool   `json:"ci"`
	NoSandbox     string `json:"rod_no_sandbox"`
	BrowserBin    string `json:"rod_browser_bin"`
}

// runCheckCmd executes the check command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runCheckCmd(programDir string, args []string, env *Environment) int {
	f, rest, err := parseCheckFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		printCheckUsage(env.Stdout)
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return ExitUsage
	}
	if len(rest) > 0 {
		return reportError(env.Stderr, fmt.Errorf("%w: %v", ErrUnexpectedArgs, rest))
	}

	cfg, err := loadSettings(programDir, f.common, f.paths, env.Stderr)
	if err != nil {
		return reportError(env.Stderr, err)
	}

	result, err := runCheck(cfg, env)
	if err != nil {
		return reportError(env.Stderr, err)
	}

	if f.json {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printCheckResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runCheck performs all diagnostic checks.
func runCheck(cfg *config.Config, env *Environment) (*checkResult, error) {
	gen, err := newGenerator(cfg, nil)
	if err != nil {
		return nil, err
	}

	result := &checkResult{
		Status: "ready",
		Env: envInfo{
			OS:         runtime.GOOS,
			Arch:       runtime.GOARCH,
			NoSandbox:  os.Getenv("ROD_NO_SANDBOX"),
			BrowserBin: os.Getenv("ROD_BROWSER_BIN"),
		},
	}

	checkAssets(result, gen)
	if result.Assets.Template {
		checkTemplate(result, gen)
	}
	checkOutput(result, gen.OutputPath())
	checkEnvironment(result)
	checkChrome(result, cfg.PDF.Enabled, env.LookPath)

	// Determine final status
	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}

	return result, nil
}

// checkAssets reports asset presence. Only the template is required.
func checkAssets(result *checkResult, gen *portfolio.Generator) {
	report := gen.Check()
	names := gen.Names()

	result.Assets = assetsInfo{
		Dir:            gen.AssetsDir(),
		Template:       report.Template,
		Style:          report.Style,
		Picture:        report.Picture,
		DefaultPicture: report.DefaultPicture,
	}

	if !report.Template {
		result.Errors = append(result.Errors,
			fmt.Sprintf("%s not found in %s. Run 'portfolio init'", names.Template, gen.AssetsDir()))
	}
	if !report.Style {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%s not found. The page will be unstyled", names.Style))
	}
	if !report.HasPicture() {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Neither %s nor %s found. No profile picture will be displayed", names.Picture, names.DefaultPicture))
	}
}

// checkTemplate inspects placeholder usage. Findings are warnings: a missing
// placeholder simply leaves that section out of the page.
func checkTemplate(result *checkResult, gen *portfolio.Generator) {
	data, err := os.ReadFile(gen.TemplatePath())
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read template: %v", err))
		return
	}

	report, err := pipeline.InspectTemplate(string(data))
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Cannot parse template: %v", err))
		return
	}

	style := gen.Names().Style
	info := &templateInfo{
		Missing:      tokens(report.Missing),
		Repeated:     tokens(report.Repeated),
		Stylesheets:  report.Stylesheets,
		StyleLinked:  report.LinksStylesheet(style),
		PictureInImg: report.PictureInImg,
	}
	result.Template = info

	for _, tok := range info.Missing {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Template has no %s placeholder", tok))
	}
	for _, tok := range info.Repeated {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Template repeats %s; only the first occurrence is filled", tok))
	}
	if result.Assets.Style && !info.StyleLinked {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Template does not link %s", style))
	}
}

func tokens(keys []pipeline.Key) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k.Token())
	}
	return out
}

// checkOutput verifies the page can be written beside its final path.
func checkOutput(result *checkResult, outputPath string) {
	result.Output.Path = outputPath

	dir := filepath.Dir(outputPath)
	probe, err := os.CreateTemp(dir, ".portfolio-check-*")
	if err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Output directory not writable: %s", dir))
		return
	}
	name := probe.Name()
	_ = probe.Close()
	_ = os.Remove(name)
	result.Output.Writable = true
}

// checkEnvironment detects container and CI environments.
func checkEnvironment(result *checkResult) {
	// Detect container (multi-signal approach)
	result.Env.Container, result.Env.ContainerHint = isContainer()

	// Detect CI environments
	ciVars := []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"}
	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			result.Env.CI = true
			break
		}
	}
}

// isContainer detects if running in a container environment.
// Returns (isContainer, hint) where hint indicates which signal was detected.
func isContainer() (bool, string) {
	// Explicit override (highest priority)
	if os.Getenv("PORTFOLIO_CONTAINER") == "1" {
		return true, "PORTFOLIO_CONTAINER=1"
	}
	// Docker
	if _, err := os.Stat("/.dockerenv"); err == nil {
		return true, "/.dockerenv"
	}
	// Podman / systemd-nspawn / general container indicator
	if v := os.Getenv("container"); v != "" {
		return true, "container=" + v
	}
	// Kubernetes
	if os.Getenv("KUBERNETES_SERVICE_HOST") != "" {
		return true, "KUBERNETES_SERVICE_HOST"
	}
	return false, ""
}

// checkChrome detects Chrome/Chromium. A missing browser is an error only
// when PDF export is enabled.
func checkChrome(result *checkResult, required bool, lookPath func() (string, bool)) {
	result.Chrome.Required = required

	report := func(msg string) {
		if required {
			result.Errors = append(result.Errors, msg)
		} else {
			result.Warnings = append(result.Warnings, msg+" (needed only for --pdf)")
		}
	}

	chromePath := result.Env.BrowserBin
	if chromePath == "" {
		found := false
		if lookPath != nil {
			chromePath, found = lookPath()
		}
		if !found {
			report("Chrome/Chromium not found. Install Chrome or set ROD_BROWSER_BIN")
			return
		}
	}

	// Verify it exists
	if _, err := os.Stat(chromePath); err != nil {
		report(fmt.Sprintf("Chrome not found at %s", chromePath))
		return
	}

	result.Chrome.Found = true
	result.Chrome.Path = chromePath

	// Get version by running chrome --version
	cmd := exec.Command(chromePath, "--version") // #nosec G204 -- path comes from ROD_BROWSER_BIN or launcher lookup
	out, err := cmd.Output()
	if err == nil {
		result.Chrome.Version = strings.TrimSpace(string(out))
	} else {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Could not get Chrome version: %v", err))
	}

	// Sandbox status: disabled if ROD_NO_SANDBOX=1
	result.Chrome.Sandbox = result.Env.NoSandbox != "1"

	// Warn if container/CI without sandbox disabled
	if (result.Env.Container || result.Env.CI) && result.Chrome.Sandbox {
		result.Warnings = append(result.Warnings,
			"Container/CI detected but ROD_NO_SANDBOX not set. Set ROD_NO_SANDBOX=1")
	}
}

// printCheckResult outputs human-readable diagnostic results.
func printCheckResult(w io.Writer, r *checkResult) {
	fmt.Fprintln(w, "portfolio check")
	fmt.Fprintln(w)

	// Assets section
	fmt.Fprintf(w, "Assets (%s)\n", r.Assets.Dir)
	printPresence(w, "Template", r.Assets.Template, "[ERROR]")
	printPresence(w, "Stylesheet", r.Assets.Style, "[WARN]")
	printPresence(w, "Picture", r.Assets.Picture, "[INFO]")
	printPresence(w, "Default picture", r.Assets.DefaultPicture, "[WARN]")
	fmt.Fprintln(w)

	if t := r.Template; t != nil {
		fmt.Fprintln(w, "Template")
		if len(t.Missing) == 0 && len(t.Repeated) == 0 {
			fmt.Fprintln(w, "  [OK] Placeholders: all present once")
		} else {
			fmt.Fprintf(w, "  [WARN] Placeholders: %d missing, %d repeated\n", len(t.Missing), len(t.Repeated))
		}
		if t.StyleLinked {
			fmt.Fprintln(w, "  [OK] Stylesheet: linked")
		} else {
			fmt.Fprintln(w, "  [WARN] Stylesheet: not linked")
		}
		fmt.Fprintln(w)
	}

	// Output section
	fmt.Fprintln(w, "Output")
	if r.Output.Writable {
		fmt.Fprintf(w, "  [OK] %s: writable\n", r.Output.Path)
	} else {
		fmt.Fprintf(w, "  [ERROR] %s: not writable\n", r.Output.Path)
	}
	fmt.Fprintln(w)

	// Chrome section
	fmt.Fprintln(w, "Chrome/Chromium")
	if r.Chrome.Found {
		fmt.Fprintf(w, "  [OK] Found at %s\n", r.Chrome.Path)
		if r.Chrome.Version != "" {
			fmt.Fprintf(w, "  [OK] Version: %s\n", r.Chrome.Version)
		}
		if r.Chrome.Sandbox {
			fmt.Fprintln(w, "  [OK] Sandbox: enabled")
		} else {
			fmt.Fprintln(w, "  [OK] Sandbox: disabled (ROD_NO_SANDBOX=1)")
		}
	} else if r.Chrome.Required {
		fmt.Fprintln(w, "  [ERROR] Not found")
	} else {
		fmt.Fprintln(w, "  [INFO] Not found (PDF export disabled)")
	}
	fmt.Fprintln(w)

	// Environment section
	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	if r.Env.Container {
		fmt.Fprintf(w, "  [OK] Container: detected (%s)\n", r.Env.ContainerHint)
	}
	if r.Env.CI {
		fmt.Fprintln(w, "  [OK] CI: detected")
	}
	fmt.Fprintln(w)

	// Warnings
	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	// Errors
	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	// Final status
	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: Ready to generate")
	case "warnings":
		fmt.Fprintln(w, "Status: Ready with warnings")
	case "errors":
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}

// printPresence prints one asset line with the label used when it is absent.
func printPresence(w io.Writer, what string, present bool, missingLabel string) {
	if present {
		fmt.Fprintf(w, "  [OK] %s: found\n", what)
		return
	}
	fmt.Fprintf(w, "  %s %s: missing\n", missingLabel, what)
}
