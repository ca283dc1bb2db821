// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-portfolio/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForBrowserConnect returns hints for browser connection errors.
// Detects CI/Docker environment and suggests relevant environment variables.
func ForBrowserConnect() string {
	var hints []string

	// Detect CI environment
	inCI := os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != "" ||
		os.Getenv("JENKINS_URL") != ""

	// Suggest ROD_NO_SANDBOX for container/CI environments
	if (inCI || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		hints = append(hints, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}

	// Suggest ROD_BROWSER_BIN if not set
	if os.Getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to use custom Chrome")
	}

	return formatHints(hints)
}

// ForTimeout returns a hint about increasing the PDF export timeout.
func ForTimeout() string {
	return format("raise pdf.timeout in the config or PORTFOLIO_PDF_TIMEOUT")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-portfolio/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path (contains .config/go-portfolio) to suggest
	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-portfolio") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output file write errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForTemplateNotFound returns hints when the page template is missing.
// path is where the template was expected.
func ForTemplateNotFound(path string) string {
	if path == "" {
		return format("run 'portfolio init' to create the default assets")
	}
	return format("place a template at " + path + " or run 'portfolio init'")
}

// ForPictureMissing returns hints when neither picture file exists.
// The page is still written; browsers show a broken image.
func ForPictureMissing(names ...string) string {
	if len(names) == 0 {
		return ""
	}
	return format("add " + strings.Join(names, " or ") + " to the assets directory")
}

// ForInvalidProfile returns hints for profile files that fail validation.
func ForInvalidProfile() string {
	return format("run 'portfolio init' for an example profile.yaml")
}

// ForAssetsExist returns hints when init would overwrite existing files.
func ForAssetsExist() string {
	return format("use --force to overwrite")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
