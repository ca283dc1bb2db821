package main

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-portfolio/internal/fileutil"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Command-line errors.
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUnexpectedArgs = errors.New("unexpected arguments")
)

func main() {
	// A missing .env file is the common case
	_ = godotenv.Load()

	// Configure GOMAXPROCS with conditional logging
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if slices.Contains(os.Args, "-v") || slices.Contains(os.Args, "--verbose") {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches to a command and returns the process exit code.
// With no command, or when the first argument is a flag, it generates.
func runMain(args []string, env *Environment) int {
	argv0 := ""
	if len(args) > 0 {
		argv0 = args[0]
		args = args[1:]
	}

	programDir, err := fileutil.ProgramDir(env.Executable, argv0)
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return ExitGeneral
	}

	cmd := "generate"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		cmd, args = args[0], args[1:]
	}

	switch cmd {
	case "generate":
		return runGenerateCmd(programDir, args, env)
	case "check":
		return runCheckCmd(programDir, args, env)
	case "init":
		return runInitCmd(programDir, args, env)
	case "instructions":
		return runInstructionsCmd(programDir, args, env)
	case "version":
		fmt.Fprintf(env.Stdout, "portfolio %s\n", Version)
		return ExitSuccess
	case "help":
		return runHelp(args, env)
	default:
		fmt.Fprintf(env.Stderr, "error: %v: %s\n\n", ErrUnknownCommand, cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}
}
