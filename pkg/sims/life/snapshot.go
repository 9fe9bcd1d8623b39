package life

import (
	"fmt"

	"lifeca/pkg/core"
)

// SnapshotStore keeps at most one saved copy of a grid.
type SnapshotStore struct {
	grid *core.Grid
}

// Has reports whether a snapshot is stored.
func (s *SnapshotStore) Has() bool { return s.grid != nil }

// Save replaces any stored snapshot with a deep copy of g.
func (s *SnapshotStore) Save(g *core.Grid) error {
	if g == nil || len(g.Cells()) == 0 {
		return fmt.Errorf("%w: nothing to snapshot", core.ErrAllocation)
	}
	s.Clear()
	s.grid = g.Clone()
	return nil
}

// Restore returns a copy of the stored snapshot. The snapshot stays stored.
func (s *SnapshotStore) Restore() (*core.Grid, error) {
	if s.grid == nil {
		return nil, core.ErrNoSnapshot
	}
	return s.grid.Clone(), nil
}

// RestoreInto copies the stored snapshot into dst, which must match its size.
func (s *SnapshotStore) RestoreInto(dst *core.Grid) error {
	if s.grid == nil {
		return core.ErrNoSnapshot
	}
	return dst.CopyFrom(s.grid)
}

// Clear drops the stored snapshot, if any.
func (s *SnapshotStore) Clear() {
	if s.grid == nil {
		return
	}
	s.grid.Release()
	s.grid = nil
}
