package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// commands lists the subcommand names.
var commands = []string{"convert", "serve", "version", "help"}

func main() {
	env := DefaultEnv()

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply.
	_, _ = maxprocs.Set(maxprocs.Logger(maxprocsLogger(env, hasFlag(os.Args[1:], "-v", "--verbose"))))

	os.Exit(runMain(os.Args, env))
}

// runMain dispatches to a command and returns the process exit code.
// A first argument that is not a command is handed to convert.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	name, rest := args[1], args[2:]
	if !isCommand(name) {
		if !looksLikeInput(name) {
			fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", name)
			printUsage(env.Stderr)
			return ExitUsage
		}
		name, rest = "convert", args[1:]
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	var err error
	switch name {
	case "convert":
		flags, positional, perr := parseConvertFlags(rest, env.Stderr)
		if perr != nil {
			return parseErrorCode(perr, name, env)
		}
		err = runConvert(ctx, positional, flags, env)
	case "serve":
		flags, positional, perr := parseServeFlags(rest, env.Stderr)
		if perr != nil {
			return parseErrorCode(perr, name, env)
		}
		err = runServe(ctx, positional, flags, env)
	case "version":
		fmt.Fprintf(env.Stdout, "md2html %s\n", Version)
	case "help":
		runHelp(rest, env)
	}

	if err != nil {
		fmt.Fprintln(env.Stderr, err)
	}
	return exitCodeFor(err)
}

// parseErrorCode reports a flag parsing error and maps it to an exit code.
// Usage for -h has already been printed by the FlagSet.
func parseErrorCode(err error, command string, env *Environment) int {
	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	fmt.Fprintf(env.Stderr, "%v\nRun 'md2html help %s' for usage.\n", err, command)
	return ExitUsage
}

func isCommand(s string) bool {
	for _, c := range commands {
		if s == c {
			return true
		}
	}
	return false
}

// looksLikeInput reports whether s reads as a flag or a document path
// rather than a mistyped command.
func looksLikeInput(s string) bool {
	if strings.HasPrefix(s, "-") {
		return true
	}
	if looksLikeMarkdown(s) || strings.ContainsRune(s, filepath.Separator) || strings.Contains(s, "/") {
		return true
	}
	_, err := os.Stat(s)
	return err == nil
}

func looksLikeMarkdown(s string) bool {
	return strings.HasSuffix(s, ".md") || strings.HasSuffix(s, ".markdown")
}

// hasFlag scans raw arguments before any FlagSet exists.
func hasFlag(args []string, names ...string) bool {
	for _, a := range args {
		if a == "--" {
			return false
		}
		for _, n := range names {
			if a == n {
				return true
			}
		}
	}
	return false
}

func maxprocsLogger(env *Environment, verbose bool) func(string, ...interface{}) {
	if !verbose {
		return func(string, ...interface{}) {}
	}
	return func(format string, args ...interface{}) {
		fmt.Fprintf(env.Stderr, format+"\n", args...)
	}
}
