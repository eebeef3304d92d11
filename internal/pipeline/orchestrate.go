package pipeline

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/alnah/go-md2html/internal/templates"
)

// DefaultWorkers is the worker count used when none is configured.
const DefaultWorkers = 4

// ErrRenderPanic indicates a rendering goroutine panicked. The whole
// conversion fails; no partial output is returned.
var ErrRenderPanic = errors.New("render worker panicked")

// ResolveWorkers maps a configured worker count to the effective one:
// zero or less selects DefaultWorkers.
func ResolveWorkers(n int) int {
	if n <= 0 {
		return DefaultWorkers
	}
	return n
}

// chunkSize returns ceil(units/workers).
func chunkSize(units, workers int) int {
	return (units + workers - 1) / workers
}

// RenderAll renders every unit of pc and returns the fragments in unit
// order.
//
// Units are split into contiguous chunks of ceil(N/workers) units, each
// rendered by its own goroutine into its own slots of a pre-sized slice.
// With workers == 1 rendering runs sequentially on the calling goroutine.
// The result does not depend on the worker count.
//
// A unit that fails with ErrMalformedUnit is replaced by an error fragment
// and reported as a Diagnostic. A panic fails the whole call with
// ErrRenderPanic.
func RenderAll(ctx context.Context, pc *ParseContext, s *templates.Store, workers int) ([]string, []Diagnostic, error) {
	n := pc.Len()
	out := make([]string, n)
	errs := make([]error, n)
	if n == 0 {
		return out, nil, nil
	}

	workers = ResolveWorkers(workers)
	if workers == 1 {
		if err := renderRange(ctx, pc, s, 0, n, out, errs); err != nil {
			return nil, nil, err
		}
	} else {
		size := chunkSize(n, workers)
		g, gctx := errgroup.WithContext(ctx)
		for lo := 0; lo < n; lo += size {
			hi := min(lo+size, n)
			g.Go(func() error {
				return renderRange(gctx, pc, s, lo, hi, out, errs)
			})
		}
		if err := g.Wait(); err != nil {
			return nil, nil, err
		}
	}

	var diags []Diagnostic
	for i, err := range errs {
		if err == nil {
			continue
		}
		out[i] = errorFragment(s, err.Error())
		diags = append(diags, Diagnostic{Unit: i, Message: err.Error()})
	}
	return out, diags, nil
}

// renderRange renders units [lo, hi) into out and errs. It only touches
// those indices.
func renderRange(ctx context.Context, pc *ParseContext, s *templates.Store, lo, hi int, out []string, errs []error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: unit %d..%d: %v", ErrRenderPanic, lo, hi-1, r)
		}
	}()

	for i := lo; i < hi; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		out[i], errs[i] = RenderUnit(pc.Units[i], pc.Types[i], s)
	}
	return nil
}
