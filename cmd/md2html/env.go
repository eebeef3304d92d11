package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/alnah/go-md2html/internal/config"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdout      io.Writer
	Stderr      io.Writer
	Interactive bool           // stderr is a terminal
	Config      *config.Config // used when --config is not given
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	fd := os.Stderr.Fd()
	return &Environment{
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Interactive: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
		Config:      config.DefaultConfig(),
	}
}
