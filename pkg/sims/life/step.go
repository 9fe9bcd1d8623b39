package life

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"lifeca/pkg/core"
)

// ErrAliasedBuffers is returned when a step would read and write the same grid.
var ErrAliasedBuffers = errors.New("current and next buffers alias")

func checkPair(cur, next *core.Grid) error {
	if cur == nil || next == nil {
		return fmt.Errorf("%w: nil buffer", core.ErrAllocation)
	}
	if cur == next {
		return ErrAliasedBuffers
	}
	if !cur.SameShape(next) {
		return fmt.Errorf("%w: buffers %dx%d and %dx%d differ", core.ErrIndex, cur.W, cur.H, next.W, next.H)
	}
	if len(cur.Cells()) == 0 {
		return fmt.Errorf("%w: released buffer", core.ErrAllocation)
	}
	return nil
}

// Step fills next with the generation that follows cur. cur is not modified.
func Step(cur, next *core.Grid, p Policy) error {
	if err := checkPair(cur, next); err != nil {
		return err
	}
	stepRows(cur, next, p, 0, cur.H)
	return nil
}

// StepParallel is Step with rows split into disjoint slabs evaluated by up to
// workers goroutines. It returns only after every slab is written.
func StepParallel(ctx context.Context, cur, next *core.Grid, p Policy, workers int) error {
	if err := checkPair(cur, next); err != nil {
		return err
	}
	if workers <= 1 || cur.H < 2 {
		stepRows(cur, next, p, 0, cur.H)
		return nil
	}
	if workers > cur.H {
		workers = cur.H
	}
	rowsPerWorker := (cur.H + workers - 1) / workers

	eg, ctx := errgroup.WithContext(ctx)
	for start := 0; start < cur.H; start += rowsPerWorker {
		from, to := start, min(start+rowsPerWorker, cur.H)
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			stepRows(cur, next, p, from, to)
			return nil
		})
	}
	return eg.Wait()
}

// stepRows writes rows [from, to) of next from cur.
func stepRows(cur, next *core.Grid, p Policy, from, to int) {
	w := cur.W
	src := cur.Cells()
	dst := next.Cells()
	for row := from; row < to; row++ {
		for col := 0; col < w; col++ {
			idx := row*w + col
			dst[idx] = core.Dead
			if NextState(src[idx] == core.Alive, Neighbors(cur, row, col, p)) {
				dst[idx] = core.Alive
			}
		}
	}
}
