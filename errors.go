package md2html

import (
	"errors"

	"github.com/alnah/go-md2html/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrStyleNotFound     = errors.New("style not found")
	ErrCodeStyleNotFound = errors.New("code style not found")
	ErrInvalidAssetPath  = errors.New("invalid asset path")
	ErrLinkRewrite       = errors.New("rewriting links failed")

	// ErrInternal wraps a panic recovered during conversion.
	ErrInternal = errors.New("internal error")

	// ErrRenderPanic indicates a block renderer panicked. The document
	// produces no output.
	ErrRenderPanic = pipeline.ErrRenderPanic
)
