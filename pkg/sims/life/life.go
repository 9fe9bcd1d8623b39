package life

import (
	"context"

	"lifeca/pkg/core"
)

// Life holds the current/next generation pair for Conway's Game of Life.
type Life struct {
	policy  Policy
	workers int
	gen     int
	cur     *core.Grid
	nxt     *core.Grid
}

// New returns a Life with two dead w*h buffers.
func New(w, h int, p Policy) (*Life, error) {
	cur, err := core.NewGrid(w, h)
	if err != nil {
		return nil, err
	}
	nxt, err := core.NewGrid(w, h)
	if err != nil {
		return nil, err
	}
	return &Life{policy: p, workers: 1, cur: cur, nxt: nxt}, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string {
	if l.policy == Toroidal {
		return "life-torus"
	}
	return "life"
}

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.cur.W, H: l.cur.H} }

// Cells exposes the current grid values.
func (l *Life) Cells() []uint8 { return l.cur.Cells() }

// Policy returns the neighbourhood policy in use.
func (l *Life) Policy() Policy { return l.policy }

// SetWorkers sets how many goroutines evaluate a generation.
func (l *Life) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	l.workers = n
}

// Current returns the grid holding the present generation.
func (l *Life) Current() *core.Grid { return l.cur }

// Next returns the scratch grid the following generation is written into.
func (l *Life) Next() *core.Grid { return l.nxt }

// Generation counts how many swaps have happened since the last reset.
func (l *Life) Generation() int { return l.gen }

// Reset randomizes the board using the provided seed.
func (l *Life) Reset(seed int64) {
	l.Randomize(seed, 0.5)
}

// Randomize seeds the current generation with the given live-cell density.
func (l *Life) Randomize(seed int64, density float64) {
	core.FillDensity(core.NewRNG(seed), l.cur.Cells(), density)
	l.gen = 0
}

// Compute writes the next generation into the scratch buffer.
func (l *Life) Compute() error {
	if l.workers > 1 {
		return StepParallel(context.Background(), l.cur, l.nxt, l.policy, l.workers)
	}
	return Step(l.cur, l.nxt, l.policy)
}

// Swap exchanges the roles of the two buffers without copying cells.
func (l *Life) Swap() {
	l.cur, l.nxt = l.nxt, l.cur
	l.gen++
}

// Advance computes and swaps in one generation.
func (l *Life) Advance() error {
	if err := l.Compute(); err != nil {
		return err
	}
	l.Swap()
	return nil
}

// Step advances the simulation by one generation. It is a no-op once the
// buffers have been released.
func (l *Life) Step() {
	_ = l.Advance()
}

// Release drops both buffers.
func (l *Life) Release() {
	l.cur.Release()
	l.nxt.Release()
}
