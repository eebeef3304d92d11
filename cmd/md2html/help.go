package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert markdown files to HTML (default)")
	fmt.Fprintln(w, "  serve      Preview a directory of markdown files over HTTP")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'md2html help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html [convert] <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert markdown files to HTML.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file or directory (or -i, --input)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -i, --input <path>        Markdown file or directory")
	fmt.Fprintln(w, "  -o, --output <path>       File input: output file (default <name>.html)")
	fmt.Fprintln(w, "                            Directory input: file name written beside each")
	fmt.Fprintln(w, "                            markdown file (default index.html)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Files converted in parallel (0 = auto)")
	fmt.Fprintln(w, "      --rewrite-links       Point links to .md files at their HTML output")
	fmt.Fprintln(w)
	printRenderUsage(w)
	fmt.Fprintln(w)
	printOutputControlUsage(w)
}

// printServeUsage prints usage for the serve command.
func printServeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html serve [dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Serve markdown files under dir (default .) as HTML pages.")
	fmt.Fprintln(w, "/a/b, /a/b.html and /a/b.md all render a/b.md; directories render index.md.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Server:")
	fmt.Fprintf(w, "  -a, --addr <host:port>    Listen address (default %s)\n", defaultAddr)
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	printRenderUsage(w)
	fmt.Fprintln(w)
	printOutputControlUsage(w)
}

func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "  -j, --threads <n>         Block renderers per document (0 = default)")
	fmt.Fprintln(w, "      --no-frontmatter      Treat a leading --- block as content")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --style <name|path>   CSS style name or file (default: default)")
	fmt.Fprintln(w, "      --code-style <name>   Chroma style for code blocks (default: github)")
	fmt.Fprintln(w, "      --assets-dir <dir>    Directory searched for styles/<name>.css")
	fmt.Fprintln(w, "      --no-style            Disable CSS styling")
}

func printOutputControlUsage(w io.Writer) {
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "serve":
		printServeUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: md2html version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: md2html help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
