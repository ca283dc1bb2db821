package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-portfolio/internal/config"
)

// printInstructions prints the how-to screen shown from the menu.
// Limits and file names follow the effective configuration.
func printInstructions(w io.Writer, cfg *config.Config) {
	page := filepath.Base(cfg.Output.Path)
	n := cfg.Limits.MaxItems

	fmt.Fprint(w, "\n")
	fmt.Fprint(w, "=== HOW TO USE ===\n\n")
	fmt.Fprint(w, "This program generates a personal portfolio website.\n\n")
	fmt.Fprint(w, "You will be asked to enter:\n")
	fmt.Fprint(w, "  - Your name and a short bio\n")
	fmt.Fprint(w, "  - An 'About Me' description\n")
	fmt.Fprintf(w, "  - Your skills (up to %d)\n", n)
	fmt.Fprintf(w, "  - Your education (up to %d entries)\n", n)
	fmt.Fprintf(w, "  - Your projects with descriptions (up to %d)\n", n)
	fmt.Fprint(w, "  - Your contact information (email, socials, etc.)\n\n")
	fmt.Fprint(w, "PROFILE PICTURE:\n")
	fmt.Fprintf(w, "  - Place a file named %q in the assets folder\n", cfg.Assets.Picture)
	fmt.Fprintf(w, "  - If no %q is found, a default picture '%s' will be used\n\n", cfg.Assets.Picture, cfg.Assets.DefaultPicture)
	fmt.Fprint(w, "OUTPUT:\n")
	fmt.Fprintf(w, "  - The program creates %q next to the program\n", page)
	fmt.Fprintf(w, "  - Open %q in your browser to see your portfolio\n", page)
	fmt.Fprintf(w, "  - Make sure the %q and %q files are in the assets folder.\n\n", cfg.Assets.Picture, cfg.Assets.Style)
	fmt.Fprint(w, "==================\n\n")
}

// runInstructionsCmd prints the how-to screen.
func runInstructionsCmd(programDir string, args []string, env *Environment) int {
	common, paths, rest, err := parseCommonFlags("instructions", args)
	if errors.Is(err, flag.ErrHelp) {
		return runHelp([]string{"instructions"}, env)
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return ExitUsage
	}
	if len(rest) > 0 {
		return reportError(env.Stderr, fmt.Errorf("%w: %v", ErrUnexpectedArgs, rest))
	}

	cfg, err := loadSettings(programDir, *common, *paths, env.Stderr)
	if err != nil {
		return reportError(env.Stderr, err)
	}

	printInstructions(env.Stdout, cfg)
	return ExitSuccess
}
