package main

import (
	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// pathFlags holds the asset and output location overrides.
type pathFlags struct {
	assets string
	output string
}

// pdfFlags holds PDF export flags.
type pdfFlags struct {
	enabled bool
	output  string
	timeout string
}

// generateFlags holds all flags for the generate command.
type generateFlags struct {
	common        commonFlags
	paths         pathFlags
	pdf           pdfFlags
	profile       string
	markdownAbout bool
	changed       func(name string) bool // Reports flags set on the command line
}

// checkFlags holds flags for the check command.
type checkFlags struct {
	common commonFlags
	paths  pathFlags
	json   bool
}

// initFlags holds flags for the init command.
type initFlags struct {
	common  commonFlags
	paths   pathFlags
	force   bool
	profile string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs")
}

// addPathFlags adds asset and output location flags to a FlagSet.
func addPathFlags(fs *flag.FlagSet, f *pathFlags) {
	fs.StringVarP(&f.assets, "assets", "a", "", "assets directory")
	fs.StringVarP(&f.output, "output", "o", "", "page output path")
}

// addPDFFlags adds PDF export flags to a FlagSet.
func addPDFFlags(fs *flag.FlagSet, f *pdfFlags) {
	fs.BoolVar(&f.enabled, "pdf", false, "also export the page to PDF")
	fs.StringVar(&f.output, "pdf-output", "", "PDF output path (implies --pdf)")
	fs.StringVar(&f.timeout, "pdf-timeout", "", "PDF export timeout (e.g., 30s, 1m)")
}

// parseGenerateFlags parses generate command flags.
// Returns the flags and remaining positional arguments.
func parseGenerateFlags(args []string) (*generateFlags, []string, error) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.Usage = func() {}
	f := &generateFlags{}

	addCommonFlags(fs, &f.common)
	addPathFlags(fs, &f.paths)
	addPDFFlags(fs, &f.pdf)
	fs.StringVarP(&f.profile, "profile", "p", "", "read answers from a YAML profile instead of prompting")
	fs.BoolVar(&f.markdownAbout, "markdown-about", false, "render the about text as Markdown")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	f.changed = fs.Changed

	return f, fs.Args(), nil
}

// parseCheckFlags parses check command flags.
func parseCheckFlags(args []string) (*checkFlags, []string, error) {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.Usage = func() {}
	f := &checkFlags{}

	addCommonFlags(fs, &f.common)
	addPathFlags(fs, &f.paths)
	fs.BoolVar(&f.json, "json", false, "print the report as JSON")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// parseInitFlags parses init command flags.
func parseInitFlags(args []string) (*initFlags, []string, error) {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	fs.Usage = func() {}
	f := &initFlags{}

	addCommonFlags(fs, &f.common)
	addPathFlags(fs, &f.paths)
	fs.BoolVarP(&f.force, "force", "f", false, "overwrite existing files")
	fs.StringVarP(&f.profile, "profile", "p", "", "also write an example profile to this path")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// parseCommonFlags parses commands that only take common and path flags.
func parseCommonFlags(name string, args []string) (*commonFlags, *pathFlags, []string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {}
	common := &commonFlags{}
	paths := &pathFlags{}

	addCommonFlags(fs, common)
	addPathFlags(fs, paths)

	if err := fs.Parse(args); err != nil {
		return nil, nil, nil, err
	}

	return common, paths, fs.Args(), nil
}
