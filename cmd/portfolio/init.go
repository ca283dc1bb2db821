package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	flag "github.com/spf13/pflag"

	portfolio "github.com/alnah/go-portfolio"
	"github.com/alnah/go-portfolio/internal/assets"
	"github.com/alnah/go-portfolio/internal/fileutil"
)

// profilePermissions is rw-------: profiles may hold contact details.
const profilePermissions = 0o600

// runInitCmd writes the built-in assets and, optionally, an example profile.
func runInitCmd(programDir string, args []string, env *Environment) int {
	f, rest, err := parseInitFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		printInitUsage(env.Stdout)
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

	// Check the profile target first so a refusal writes nothing
	if f.profile != "" && !f.force {
		if _, err := os.Stat(f.profile); err == nil {
			return reportError(env.Stderr, fmt.Errorf("%w: %s", assets.ErrAssetExists, f.profile))
		} else if !errors.Is(err, fs.ErrNotExist) {
			return reportError(env.Stderr, fmt.Errorf("%w: %v", assets.ErrAssetRead, err))
		}
	}

	written, err := assets.Scaffold(cfg.Assets.Dir, f.force)
	if err != nil {
		return reportError(env.Stderr, err)
	}

	if f.profile != "" {
		data, err := portfolio.MarshalProfile(portfolio.ExampleProfile())
		if err != nil {
			return reportError(env.Stderr, err)
		}
		if err := fileutil.WriteFileAtomic(f.profile, data, profilePermissions); err != nil {
			return reportError(env.Stderr, fmt.Errorf("%w: %v", portfolio.ErrWriteOutput, err))
		}
		written = append(written, f.profile)
	}

	if !f.common.quiet {
		for _, path := range written {
			fmt.Fprintf(env.Stdout, "[OK] created %s\n", path)
		}
		fmt.Fprintf(env.Stdout, "\nAdd %s to %s for your own picture, then run 'portfolio'.\n",
			cfg.Assets.Picture, cfg.Assets.Dir)
	}
	return ExitSuccess
}
