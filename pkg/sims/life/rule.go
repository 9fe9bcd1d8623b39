package life

import (
	"fmt"
	"strings"

	"lifeca/pkg/core"
)

// Policy selects which cells count as the eight neighbours of a cell.
type Policy uint8

const (
	// Bounded ignores neighbours that fall outside the grid.
	Bounded Policy = iota
	// Toroidal wraps neighbours around to the opposite edge.
	Toroidal
)

func (p Policy) String() string {
	switch p {
	case Bounded:
		return "bounded"
	case Toroidal:
		return "toroidal"
	default:
		return fmt.Sprintf("policy(%d)", uint8(p))
	}
}

// ParsePolicy accepts "bounded" or "toroidal" (also "torus", "wrap").
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bounded", "":
		return Bounded, nil
	case "toroidal", "torus", "wrap":
		return Toroidal, nil
	}
	return Bounded, fmt.Errorf("%w: unknown neighbourhood policy %q", core.ErrConfigParse, s)
}

// Neighbors counts the live neighbours of (row, col) in g.
func Neighbors(g *core.Grid, row, col int, p Policy) int {
	w, h := g.W, g.H
	cells := g.Cells()
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := row+dr, col+dc
			if p == Toroidal {
				r = (r + h) % h
				c = (c + w) % w
			} else if r < 0 || r >= h || c < 0 || c >= w {
				continue
			}
			n += int(cells[r*w+c])
		}
	}
	return n
}

// NextState applies Conway's rule: survive on 2 or 3, birth on 3.
func NextState(alive bool, neighbors int) bool {
	return neighbors == 3 || (alive && neighbors == 2)
}
