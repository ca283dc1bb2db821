package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: portfolio [command] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  generate      Build index.html from your answers (default)")
	fmt.Fprintln(w, "  check         Report which assets are present")
	fmt.Fprintln(w, "  init          Create the default template and stylesheet")
	fmt.Fprintln(w, "  instructions  Show how the generator works")
	fmt.Fprintln(w, "  version       Show version information")
	fmt.Fprintln(w, "  help          Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'portfolio help <command>' for details on a specific command.")
}

// printCommonFlags prints the flags every command accepts.
func printCommonFlags(w io.Writer) {
	fmt.Fprintln(w, "Locations:")
	fmt.Fprintln(w, "  -a, --assets <dir>        Assets directory (default: assets next to the program)")
	fmt.Fprintln(w, "  -o, --output <path>       Page output path (default: index.html next to the program)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs")
}

// printGenerateUsage prints usage for the generate command.
func printGenerateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: portfolio generate [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Ask for your details and fill the page template with them.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input:")
	fmt.Fprintln(w, "  -p, --profile <path>      Read answers from a YAML profile instead of prompting")
	fmt.Fprintln(w, "      --markdown-about      Render the about text as Markdown")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "PDF:")
	fmt.Fprintln(w, "      --pdf                 Also export the page to PDF (needs Chrome)")
	fmt.Fprintln(w, "      --pdf-output <path>   PDF output path (implies --pdf)")
	fmt.Fprintln(w, "      --pdf-timeout <d>     Export timeout (default: 30s)")
	fmt.Fprintln(w)
	printCommonFlags(w)
	fmt.Fprintln(w)
	printEnvVars(w)
}

// printCheckUsage prints usage for the check command.
func printCheckUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: portfolio check [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Report which assets are present and whether PDF export can run.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "      --json                Print the report as JSON")
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// printInitUsage prints usage for the init command.
func printInitUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: portfolio init [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Write the built-in template.html and style.css into the assets directory.")
	fmt.Fprintln(w, "Existing files are left alone unless --force is given.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -f, --force               Overwrite existing files")
	fmt.Fprintln(w, "  -p, --profile <path>      Also write an example profile")
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// printEnvVars prints the recognized environment variables.
func printEnvVars(w io.Writer) {
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  PORTFOLIO_CONFIG          Config file name or path")
	fmt.Fprintln(w, "  PORTFOLIO_ASSETS_DIR      Assets directory")
	fmt.Fprintln(w, "  PORTFOLIO_OUTPUT          Page output path")
	fmt.Fprintln(w, "  PORTFOLIO_PDF_TIMEOUT     PDF export timeout")
	fmt.Fprintln(w, "  ROD_BROWSER_BIN           Chrome binary used for PDF export")
	fmt.Fprintln(w, "  ROD_NO_SANDBOX=1          Disable the Chrome sandbox (Docker/CI)")
}

// runHelp prints help for a command, or the main usage.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "generate":
		printGenerateUsage(env.Stdout)
	case "check":
		printCheckUsage(env.Stdout)
	case "init":
		printInitUsage(env.Stdout)
	case "instructions":
		fmt.Fprintln(env.Stdout, "Usage: portfolio instructions [flags]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show what the generator asks for and where it writes the page.")
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: portfolio version")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: portfolio help [command]")
	default:
		fmt.Fprintf(env.Stderr, "error: %v: %s\n\n", ErrUnknownCommand, args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
