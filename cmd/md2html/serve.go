package main

import (
	"context"
	"errors"
	"fmt"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/hints"
	"github.com/alnah/go-md2html/internal/server"
)

// runServe converts and serves the markdown files under a directory until
// ctx is cancelled.
func runServe(ctx context.Context, positionalArgs []string, flags *serveFlags, env *Environment) error {
	if err := validateCount("--threads", flags.render.threads, config.MaxThreads); err != nil {
		return err
	}

	cfg, err := loadConfig(flags.common.config, env)
	if err != nil {
		return err
	}
	mergeRenderFlags(&flags.render, cfg)

	root := "."
	if len(positionalArgs) > 0 {
		root = positionalArgs[0]
	}

	logger := newLogger(env.Stderr, flags.common, env.Interactive)

	// Links always point at served pages, which resolve x.html to x.md.
	opts := append(converterOptions(cfg, flags.render.noStyle, logger), md2html.WithLinkRewrite(""))
	conv, err := newConverter(opts)
	if err != nil {
		return err
	}

	srv, err := server.New(root, convertFunc(conv), logger)
	if err != nil {
		return err
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Serving %s on http://%s\n", root, flags.addr)
	}

	if err := srv.ListenAndServe(ctx, flags.addr); err != nil {
		if errors.Is(err, server.ErrListen) {
			return fmt.Errorf("%w%s", err, hints.ForPortInUse())
		}
		return err
	}
	return nil
}

// convertFunc adapts a converter to the server's page callback.
func convertFunc(conv CLIConverter) server.ConvertFunc {
	return func(ctx context.Context, markdown string) (string, error) {
		result, err := conv.Convert(ctx, md2html.Input{Markdown: markdown})
		if err != nil {
			return "", err
		}
		return result.HTML, nil
	}
}
