package md2html

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/alnah/go-md2html/internal/assets"
	"github.com/alnah/go-md2html/internal/frontmatter"
	"github.com/alnah/go-md2html/internal/pipeline"
	"github.com/alnah/go-md2html/internal/templates"
)

var _ pipeline.CSSInjector = (*pipeline.CSSInjection)(nil)

// Input is one document to convert.
type Input struct {
	Markdown string

	// Title overrides the page title, which otherwise comes from the front
	// matter "title" or the first level-1 header.
	Title string
}

// Result is a converted document.
type Result struct {
	HTML        string
	Title       string
	Meta        map[string]any // front matter, nil when absent
	Diagnostics []Diagnostic
}

// Diagnostic reports a block that was rendered as an error fragment or
// closed at the end of the document.
type Diagnostic struct {
	Unit    int // index of the block in the document
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("block %d: %s", d.Unit, d.Message)
}

// Converter turns Markdown into HTML pages.
// Create with NewConverter and call Convert from any number of goroutines.
type Converter struct {
	cfg         converterConfig
	store       *templates.Store
	css         string
	cssInjector pipeline.CSSInjector
	logger      *slog.Logger
}

// NewConverter creates a Converter. Returns an error when the requested
// style, code style or asset path cannot be loaded.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:         defaultConfig(),
		cssInjector: &pipeline.CSSInjection{},
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.store = templates.New(c.cfg.lookup)

	if err := c.resolveStyle(); err != nil {
		return nil, err
	}

	return c, nil
}

// resolveStyle loads the stylesheet and, alongside it, the code palette.
func (c *Converter) resolveStyle() error {
	if c.cfg.styleInput == "" {
		return nil
	}

	resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}

	css, err := resolver.ResolveStyle(c.cfg.styleInput)
	if err != nil {
		if errors.Is(err, assets.ErrStyleNotFound) || errors.Is(err, assets.ErrInvalidAssetName) {
			return fmt.Errorf("%w: %v", ErrStyleNotFound, err)
		}
		return fmt.Errorf("loading style %q: %w", c.cfg.styleInput, err)
	}

	if c.cfg.codeStyle != "" {
		codeCSS, err := assets.CodeCSS(c.cfg.codeStyle)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrCodeStyleNotFound, c.cfg.codeStyle)
		}
		css += "\n" + codeCSS
	}

	c.css = css
	return nil
}

// Convert runs the pipeline on one document.
//
// An empty document yields a page with an empty body. Blocks that cannot
// be rendered become error fragments listed in Result.Diagnostics; only
// cancellation, a renderer panic or a link rewriting failure return an
// error. Recovers from internal panics to prevent crashes from propagating
// to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrInternal, r)
		}
	}()

	start := time.Now()
	markdown := input.Markdown

	var meta frontmatter.Meta
	if c.cfg.frontmatter {
		m, body, fmErr := frontmatter.Parse(markdown)
		switch {
		case fmErr != nil:
			c.logger.Warn("front matter ignored", "error", fmErr)
		case m != nil:
			meta, markdown = m, body
		}
	}

	pc := pipeline.Segment(pipeline.SplitLines(markdown))

	fragments, renderDiags, err := pipeline.RenderAll(ctx, pc, c.store, c.cfg.workers)
	if err != nil {
		return nil, fmt.Errorf("rendering: %w", err)
	}

	title := input.Title
	if title == "" {
		title = meta.Title()
	}
	if title == "" {
		title = pc.Title
	}

	page := pipeline.AssemblePage(fragments, title, c.store)
	page = c.cssInjector.InjectCSS(ctx, page, c.css)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if c.cfg.rewriteLinks {
		page, err = pipeline.RewriteMarkdownLinks(page, c.cfg.outputName)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLinkRewrite, err)
		}
	}

	diags := make([]Diagnostic, 0, len(pc.Diagnostics)+len(renderDiags))
	for _, d := range append(pc.Diagnostics, renderDiags...) {
		diags = append(diags, Diagnostic{Unit: d.Unit, Message: d.Message})
		c.logger.Warn("malformed block", "unit", d.Unit, "message", d.Message)
	}

	c.logger.Debug("converted",
		"blocks", pc.Len(),
		"diagnostics", len(diags),
		"workers", pipeline.ResolveWorkers(c.cfg.workers),
		"duration", time.Since(start).String(),
	)

	res := &Result{HTML: page, Title: title, Diagnostics: diags}
	if meta != nil {
		res.Meta = meta
	}
	return res, nil
}
