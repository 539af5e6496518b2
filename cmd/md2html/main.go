package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-md2html/internal/fileutil"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Configure GOMAXPROCS from the container CPU quota before workers are sized.
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if isVerbose(os.Args) {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	ctx, stop := notifyContext(context.Background())
	code := run(ctx, os.Args, DefaultEnv())
	stop()
	os.Exit(code)
}

// run dispatches args[1] to a command and returns the process exit code.
// A markdown file or an existing directory as first argument is shorthand
// for "convert".
func run(ctx context.Context, args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]
	switch {
	case isCommand(cmd, "convert"):
		return runConvertCmd(ctx, rest, env)
	case isCommand(cmd, "version", "--version"):
		fmt.Fprintf(env.Stdout, "md2html %s\n", Version)
		return ExitSuccess
	case isCommand(cmd, "help", "-h", "--help"):
		return runHelp(rest, env)
	case looksLikeInput(cmd):
		return runConvertCmd(ctx, args[1:], env)
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}
}

// runConvertCmd parses convert flags, runs the conversion and reports errors.
func runConvertCmd(ctx context.Context, args []string, env *Environment) int {
	flags, positional, err := parseConvertFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	if err := runConvert(ctx, positional, flags, env); err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// isCommand reports whether arg is one of the given command names.
func isCommand(arg string, names ...string) bool {
	return slices.Contains(names, arg)
}

// looksLikeInput reports whether arg is a markdown file name or a directory.
func looksLikeInput(arg string) bool {
	if fileutil.IsMarkdown(arg) {
		return true
	}
	info, err := os.Stat(filepath.Clean(arg))
	return err == nil && info.IsDir()
}

// isVerbose scans raw args for -v/--verbose before flags are parsed.
func isVerbose(args []string) bool {
	return slices.Contains(args, "-v") || slices.Contains(args, "--verbose")
}
