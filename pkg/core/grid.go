package core

import (
	"fmt"
	"math"
)

// Cell states as stored in the grid buffer.
const (
	Dead  uint8 = 0
	Alive uint8 = 1
)

// MaxCells bounds the number of cells a single grid may hold.
const MaxCells = 1 << 28

// Cell is a (row, col) coordinate. Row 0 is the top row of storage.
type Cell struct {
	Row, Col int
}

// Grid stores a 2D field of cell states in a single row-major buffer.
type Grid struct {
	W, H int
	data []uint8
}

// NewGrid allocates a grid with every cell dead.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: invalid dimensions %dx%d", ErrAllocation, w, h)
	}
	if w > math.MaxInt/h || w*h > MaxCells {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d cells", ErrAllocation, w, h, MaxCells)
	}
	return &Grid{W: w, H: h, data: make([]uint8, w*h)}, nil
}

// Cells exposes the backing slice so renderers can read values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.W + col }

// InBounds reports whether (row, col) addresses a cell of g.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.H && col >= 0 && col < g.W
}

func (g *Grid) check(row, col int) error {
	if !g.InBounds(row, col) {
		return &IndexError{Row: row, Col: col, W: g.W, H: g.H}
	}
	return nil
}

// Get reports whether the cell at (row, col) is alive.
func (g *Grid) Get(row, col int) (bool, error) {
	if err := g.check(row, col); err != nil {
		return false, err
	}
	return g.data[g.Index(row, col)] == Alive, nil
}

// Set updates the cell at (row, col).
func (g *Grid) Set(row, col int, alive bool) error {
	if err := g.check(row, col); err != nil {
		return err
	}
	v := Dead
	if alive {
		v = Alive
	}
	g.data[g.Index(row, col)] = v
	return nil
}

// Toggle flips the cell at (row, col).
func (g *Grid) Toggle(row, col int) error {
	if err := g.check(row, col); err != nil {
		return err
	}
	g.data[g.Index(row, col)] ^= Alive
	return nil
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(row, col int) (int, int) {
	row = (row%g.H + g.H) % g.H
	col = (col%g.W + g.W) % g.W
	return row, col
}

// VisualRow maps a storage row to a bottom-up screen row.
func (g *Grid) VisualRow(row int) int { return g.H - 1 - row }

// Clear fills the grid with dead cells.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = Dead
	}
}

// Clone returns a deep copy with an independent buffer.
func (g *Grid) Clone() *Grid {
	return &Grid{W: g.W, H: g.H, data: append([]uint8(nil), g.data...)}
}

// SameShape reports whether both grids have identical dimensions.
func (g *Grid) SameShape(o *Grid) bool {
	return o != nil && g.W == o.W && g.H == o.H
}

// CopyFrom overwrites g with the cells of src.
func (g *Grid) CopyFrom(src *Grid) error {
	if !g.SameShape(src) {
		return fmt.Errorf("%w: copy %dx%d into %dx%d", ErrIndex, src.W, src.H, g.W, g.H)
	}
	copy(g.data, src.data)
	return nil
}

// Release drops the backing storage. It is safe to call more than once.
func (g *Grid) Release() {
	if g == nil {
		return
	}
	g.W, g.H = 0, 0
	g.data = nil
}

// Population counts live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.data {
		if c == Alive {
			n++
		}
	}
	return n
}

// LiveCells returns every live cell in row-major order.
func (g *Grid) LiveCells() []Cell {
	cells := make([]Cell, 0)
	for row := 0; row < g.H; row++ {
		base := row * g.W
		for col := 0; col < g.W; col++ {
			if g.data[base+col] == Alive {
				cells = append(cells, Cell{Row: row, Col: col})
			}
		}
	}
	return cells
}
