package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// defaultAddr is where serve listens without --addr.
const defaultAddr = "localhost:8080"

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// renderFlags holds the flags that shape each page.
type renderFlags struct {
	threads       int
	style         string // name or path
	noStyle       bool
	codeStyle     string
	assetsDir     string
	noFrontmatter bool
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common       commonFlags
	render       renderFlags
	input        string
	output       string
	workers      int
	rewriteLinks bool
}

// serveFlags holds all flags for the serve command.
type serveFlags struct {
	common commonFlags
	render renderFlags
	addr   string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addRenderFlags adds page rendering flags to a FlagSet.
func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.IntVarP(&f.threads, "threads", "j", 0, "block renderers per document (0 = default)")
	fs.StringVar(&f.style, "style", "", "CSS style name or file path")
	fs.BoolVar(&f.noStyle, "no-style", false, "disable CSS styling")
	fs.StringVar(&f.codeStyle, "code-style", "", "chroma style for code blocks")
	fs.StringVar(&f.assetsDir, "assets-dir", "", "directory searched for styles/<name>.css")
	fs.BoolVar(&f.noFrontmatter, "no-frontmatter", false, "treat front matter as content")
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string, stderr io.Writer) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &convertFlags{}

	// I/O flags
	fs.StringVarP(&f.input, "input", "i", "", "markdown file or directory")
	fs.StringVarP(&f.output, "output", "o", "", "output file, or file name per directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "files converted in parallel (0 = auto)")
	fs.BoolVar(&f.rewriteLinks, "rewrite-links", false, "point links to .md files at their HTML output")

	addCommonFlags(fs, &f.common)
	addRenderFlags(fs, &f.render)

	fs.Usage = func() { printConvertUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// parseServeFlags parses serve command flags and returns positional args.
func parseServeFlags(args []string, stderr io.Writer) (*serveFlags, []string, error) {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &serveFlags{}

	fs.StringVarP(&f.addr, "addr", "a", defaultAddr, "listen address")

	addCommonFlags(fs, &f.common)
	addRenderFlags(fs, &f.render)

	fs.Usage = func() { printServeUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
