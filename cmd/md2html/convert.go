package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/assets"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrReadMarkdown       = errors.New("failed to read markdown file")
	ErrWriteHTML          = errors.New("failed to write HTML file")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	if err := validateCount("--workers", flags.workers, config.MaxWorkers); err != nil {
		return err
	}
	if err := validateCount("--threads", flags.render.threads, config.MaxThreads); err != nil {
		return err
	}

	cfg, err := loadConfig(flags.common.config, env)
	if err != nil {
		return err
	}

	// CLI wins over config
	mergeRenderFlags(&flags.render, cfg)
	if flags.output != "" {
		cfg.Convert.Output = flags.output
	}
	if flags.workers > 0 {
		cfg.Convert.Workers = flags.workers
	}
	if flags.rewriteLinks {
		cfg.Convert.RewriteLinks = true
	}

	inputPath, err := resolveInputPath(positionalArgs, flags.input)
	if err != nil {
		return err
	}

	info, err := os.Stat(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	files, err := discoverFiles(inputPath, cfg.Convert.Output)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no markdown files found in %s", inputPath)
	}

	logger := newLogger(env.Stderr, flags.common, env.Interactive)

	opts := converterOptions(cfg, flags.render.noStyle, logger)
	if cfg.Convert.RewriteLinks {
		outputName := ""
		if info.IsDir() {
			outputName = dirOutputName(cfg.Convert.Output)
		}
		opts = append(opts, md2html.WithLinkRewrite(outputName))
	}

	conv, err := newConverter(opts)
	if err != nil {
		return err
	}

	files, conflicts := splitConflicts(files)

	poolSize := resolvePoolSize(cfg.Convert.Workers)
	logger.Debug("starting conversion", "files", len(files), "workers", poolSize)

	results := append(conflicts, convertBatch(ctx, conv, files, poolSize)...)
	sortResults(results)

	if ctx.Err() != nil {
		return ctx.Err()
	}

	failedCount := printResultsWithWriter(results, flags.common.quiet, flags.common.verbose, env)
	if failedCount > 0 {
		return fmt.Errorf("%d conversion(s) failed: %w", failedCount, firstError(results))
	}

	return nil
}

// loadConfig loads the named config, or copies the environment's config
// when no name is given.
func loadConfig(nameOrPath string, env *Environment) (*config.Config, error) {
	if nameOrPath == "" {
		cfg := config.DefaultConfig()
		if env.Config != nil {
			c := *env.Config
			cfg = &c
		}
		return cfg, nil
	}

	cfg, err := config.Load(nameOrPath)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(nameOrPath) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(nameOrPath)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeRenderFlags copies explicitly set rendering flags into cfg.
func mergeRenderFlags(f *renderFlags, cfg *config.Config) {
	if f.threads > 0 {
		cfg.Convert.Threads = f.threads
	}
	if f.style != "" {
		cfg.Convert.Style = f.style
	}
	if f.codeStyle != "" {
		cfg.Convert.CodeStyle = f.codeStyle
	}
	if f.assetsDir != "" {
		cfg.Convert.AssetsDir = f.assetsDir
	}
	if f.noFrontmatter {
		disabled := false
		cfg.Convert.Frontmatter = &disabled
	}
}

// resolveStyle returns the style to inject: none with --no-style, the
// configured one, or the default style.
func resolveStyle(cfg *config.Config, noStyle bool) string {
	if noStyle {
		return ""
	}
	if cfg.Convert.Style != "" {
		return cfg.Convert.Style
	}
	return assets.DefaultStyleName
}

// converterOptions translates merged settings into converter options.
func converterOptions(cfg *config.Config, noStyle bool, logger *slog.Logger) []md2html.Option {
	codeStyle := cfg.Convert.CodeStyle
	if codeStyle == "" {
		codeStyle = assets.DefaultCodeStyleName
	}

	return []md2html.Option{
		md2html.WithWorkers(cfg.Convert.Threads),
		md2html.WithTemplates(cfg),
		md2html.WithStyle(resolveStyle(cfg, noStyle)),
		md2html.WithCodeStyle(codeStyle),
		md2html.WithAssetPath(cfg.Convert.AssetsDir),
		md2html.WithFrontmatter(cfg.Convert.FrontmatterEnabled()),
		md2html.WithLogger(logger),
	}
}

// newConverter builds the converter and adds hints to style errors.
func newConverter(opts []md2html.Option) (*md2html.Converter, error) {
	conv, err := md2html.NewConverter(opts...)
	switch {
	case err == nil:
		return conv, nil
	case errors.Is(err, md2html.ErrStyleNotFound):
		return nil, fmt.Errorf("%w%s", err, hints.ForStyleNotFound(assets.NewEmbeddedLoader().Styles()))
	case errors.Is(err, md2html.ErrCodeStyleNotFound):
		return nil, fmt.Errorf("%w%s", err, hints.ForCodeStyleNotFound())
	default:
		return nil, err
	}
}

// resolveInputPath prefers the positional argument over --input.
func resolveInputPath(args []string, flagInput string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if flagInput != "" {
		return flagInput, nil
	}
	return "", ErrNoInput
}

// validateCount checks that a worker count is within valid bounds.
func validateCount(name string, n, maxValue int) error {
	if n < 0 {
		return fmt.Errorf("%w: %s %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, name, n)
	}
	if n > maxValue {
		return fmt.Errorf("%w: %s %d (maximum is %d)", ErrInvalidWorkerCount, name, n, maxValue)
	}
	return nil
}
