package life

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"testing"

	"lifeca/pkg/core"
)

func gridWith(t *testing.T, w, h int, cells ...core.Cell) *core.Grid {
	t.Helper()
	g, err := core.NewGrid(w, h)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	for _, c := range cells {
		if err := g.Set(c.Row, c.Col, true); err != nil {
			t.Fatalf("Set(%d,%d): %v", c.Row, c.Col, err)
		}
	}
	return g
}

func TestStepAllDeadStaysDead(t *testing.T) {
	for _, p := range []Policy{Bounded, Toroidal} {
		cur := gridWith(t, 7, 5)
		next := gridWith(t, 7, 5)
		next.Cells()[3] = core.Alive // stale data must be overwritten
		if err := Step(cur, next, p); err != nil {
			t.Fatalf("Step: %v", err)
		}
		if next.Population() != 0 {
			t.Fatalf("%v: empty grid produced %d live cells", p, next.Population())
		}
	}
}

func TestStepLeavesCurrentUntouched(t *testing.T) {
	cur := gridWith(t, 8, 8, core.Cell{Row: 1, Col: 2}, core.Cell{Row: 2, Col: 3}, core.Cell{Row: 3, Col: 1})
	before := append([]uint8(nil), cur.Cells()...)
	next := gridWith(t, 8, 8)
	if err := Step(cur, next, Bounded); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if !slices.Equal(before, cur.Cells()) {
		t.Fatal("Step modified the current buffer")
	}
}

func TestStepRejectsBadBuffers(t *testing.T) {
	g := gridWith(t, 4, 4)
	if err := Step(g, g, Bounded); !errors.Is(err, ErrAliasedBuffers) {
		t.Fatalf("aliased Step err = %v, want ErrAliasedBuffers", err)
	}
	other := gridWith(t, 5, 4)
	if err := Step(g, other, Bounded); !errors.Is(err, core.ErrIndex) {
		t.Fatalf("mismatched Step err = %v, want ErrIndex", err)
	}
	if err := Step(g, nil, Bounded); !errors.Is(err, core.ErrAllocation) {
		t.Fatalf("nil Step err = %v, want ErrAllocation", err)
	}
}

func TestGliderTranslatesAfterFourSteps(t *testing.T) {
	l, err := New(30, 30, Bounded)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	glider := []core.Cell{{Row: 1, Col: 2}, {Row: 2, Col: 3}, {Row: 3, Col: 1}, {Row: 3, Col: 2}, {Row: 3, Col: 3}}
	for _, c := range glider {
		_ = l.Current().Set(c.Row, c.Col, true)
	}
	for i := 0; i < 4; i++ {
		if err := l.Advance(); err != nil {
			t.Fatalf("Advance: %v", err)
		}
	}
	want := make([]core.Cell, 0, len(glider))
	for _, c := range glider {
		want = append(want, core.Cell{Row: c.Row + 1, Col: c.Col + 1})
	}
	slices.SortFunc(want, func(a, b core.Cell) int {
		if a.Row != b.Row {
			return a.Row - b.Row
		}
		return a.Col - b.Col
	})
	if got := l.Current().LiveCells(); !slices.Equal(got, want) {
		t.Fatalf("glider after 4 steps = %v, want %v", got, want)
	}
	if l.Generation() != 4 {
		t.Fatalf("generation = %d, want 4", l.Generation())
	}
}

func TestBlinkerOscillatesOnBothPolicies(t *testing.T) {
	horizontal := []core.Cell{{Row: 5, Col: 4}, {Row: 5, Col: 5}, {Row: 5, Col: 6}}
	vertical := []core.Cell{{Row: 4, Col: 5}, {Row: 5, Col: 5}, {Row: 6, Col: 5}}
	for _, p := range []Policy{Bounded, Toroidal} {
		l, _ := New(12, 12, p)
		for _, c := range horizontal {
			_ = l.Current().Set(c.Row, c.Col, true)
		}
		for i := 1; i <= 6; i++ {
			l.Step()
			want := vertical
			if i%2 == 0 {
				want = horizontal
			}
			if got := l.Current().LiveCells(); !slices.Equal(got, want) {
				t.Fatalf("%v step %d: live = %v, want %v", p, i, got, want)
			}
		}
	}
}

func TestToroidalGliderCrossesEdge(t *testing.T) {
	l, _ := New(8, 8, Toroidal)
	for _, c := range []core.Cell{{Row: 1, Col: 2}, {Row: 2, Col: 3}, {Row: 3, Col: 1}, {Row: 3, Col: 2}, {Row: 3, Col: 3}} {
		_ = l.Current().Set(c.Row, c.Col, true)
	}
	start := append([]uint8(nil), l.Cells()...)
	// A glider on an 8x8 torus returns to its start after 8 translations.
	for i := 0; i < 32; i++ {
		l.Step()
	}
	if !slices.Equal(start, l.Cells()) {
		t.Fatal("glider did not wrap around the torus back to its start")
	}
}

func TestStepParallelMatchesSerial(t *testing.T) {
	for _, p := range []Policy{Bounded, Toroidal} {
		seed := gridWith(t, 37, 23)
		core.FillDensity(core.NewRNG(7), seed.Cells(), 0.35)
		for _, workers := range []int{1, 2, 3, 8, 64} {
			serial := gridWith(t, 37, 23)
			parallel := gridWith(t, 37, 23)
			if err := Step(seed, serial, p); err != nil {
				t.Fatalf("Step: %v", err)
			}
			if err := StepParallel(context.Background(), seed, parallel, p, workers); err != nil {
				t.Fatalf("StepParallel(%d): %v", workers, err)
			}
			if !slices.Equal(serial.Cells(), parallel.Cells()) {
				t.Fatalf("%v workers=%d: parallel result differs from serial", p, workers)
			}
		}
	}
}

func TestStepParallelHonoursCancelledContext(t *testing.T) {
	cur := gridWith(t, 16, 16)
	next := gridWith(t, 16, 16)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := StepParallel(ctx, cur, next, Bounded, 4); !errors.Is(err, context.Canceled) {
		t.Fatalf("StepParallel err = %v, want context.Canceled", err)
	}
}

func BenchmarkStep(b *testing.B) {
	cur, _ := core.NewGrid(512, 512)
	next, _ := core.NewGrid(512, 512)
	core.FillDensity(core.NewRNG(1), cur.Cells(), 0.3)
	for _, workers := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("512x512-%d", workers), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if err := StepParallel(context.Background(), cur, next, Toroidal, workers); err != nil {
					b.Fatal(err)
				}
				cur, next = next, cur
			}
		})
	}
}
