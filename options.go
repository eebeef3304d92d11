package md2html

import (
	"log/slog"

	"github.com/alnah/go-md2html/internal/assets"
)

// Lookup resolves a configured template by table ("page" or "tags") and
// key. The boolean is false when the key is not configured.
type Lookup interface {
	Lookup(table, key string) (string, bool)
}

// LookupFunc adapts a function to the Lookup interface.
type LookupFunc func(table, key string) (string, bool)

// Lookup calls f(table, key).
func (f LookupFunc) Lookup(table, key string) (string, bool) {
	return f(table, key)
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds settings resolved in NewConverter.
type converterConfig struct {
	workers      int
	lookup       Lookup
	styleInput   string
	codeStyle    string
	assetPath    string
	frontmatter  bool
	rewriteLinks bool
	outputName   string
}

// WithWorkers sets how many goroutines render the blocks of one document.
// Zero selects the default of 4; 1 renders sequentially.
// Panics if n is negative.
func WithWorkers(n int) Option {
	if n < 0 {
		panic("md2html: WithWorkers count must not be negative")
	}
	return func(c *Converter) {
		c.cfg.workers = n
	}
}

// WithTemplates overlays configured templates on the built-in ones.
func WithTemplates(lookup Lookup) Option {
	return func(c *Converter) {
		c.cfg.lookup = lookup
	}
}

// WithStyle injects a stylesheet: a style name or a path to a CSS file.
// An empty string disables injection.
func WithStyle(nameOrPath string) Option {
	return func(c *Converter) {
		c.cfg.styleInput = nameOrPath
	}
}

// WithCodeStyle sets the chroma style whose colours are used for code
// blocks when a stylesheet is injected. An empty string omits them.
func WithCodeStyle(name string) Option {
	return func(c *Converter) {
		c.cfg.codeStyle = name
	}
}

// WithAssetPath adds a directory searched for styles/<name>.css before the
// embedded styles.
func WithAssetPath(dir string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = dir
	}
}

// WithLogger sets the logger for diagnostics and timing. Default discards.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithFrontmatter enables or disables YAML front matter parsing.
// Enabled by default.
func WithFrontmatter(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.frontmatter = enabled
	}
}

// WithLinkRewrite rewrites relative links to .md files so they point at the
// converted pages: "a.md" becomes "a.html", or "<dir>/<outputName>" when
// outputName is not empty.
func WithLinkRewrite(outputName string) Option {
	return func(c *Converter) {
		c.cfg.rewriteLinks = true
		c.cfg.outputName = outputName
	}
}

func defaultConfig() converterConfig {
	return converterConfig{
		codeStyle:   assets.DefaultCodeStyleName,
		frontmatter: true,
	}
}
