package life

import (
	"errors"
	"slices"
	"testing"

	"lifeca/pkg/core"
)

func TestRestoreBeforeSaveFails(t *testing.T) {
	var s SnapshotStore
	if _, err := s.Restore(); !errors.Is(err, core.ErrNoSnapshot) {
		t.Fatalf("Restore err = %v, want ErrNoSnapshot", err)
	}
	g := gridWith(t, 3, 3)
	if err := s.RestoreInto(g); !errors.Is(err, core.ErrNoSnapshot) {
		t.Fatalf("RestoreInto err = %v, want ErrNoSnapshot", err)
	}
	s.Clear()
}

func TestSnapshotIsDeepAndRepeatable(t *testing.T) {
	var s SnapshotStore
	g := gridWith(t, 4, 4, core.Cell{Row: 0, Col: 1}, core.Cell{Row: 3, Col: 3})
	want := g.LiveCells()
	if err := s.Save(g); err != nil {
		t.Fatalf("Save: %v", err)
	}
	g.Clear()

	for i := 0; i < 2; i++ {
		if err := s.RestoreInto(g); err != nil {
			t.Fatalf("RestoreInto #%d: %v", i, err)
		}
		if got := g.LiveCells(); !slices.Equal(got, want) {
			t.Fatalf("restore #%d = %v, want %v", i, got, want)
		}
		_ = g.Set(2, 2, true)
	}

	copyGrid, err := s.Restore()
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	_ = copyGrid.Set(1, 1, true)
	again, _ := s.Restore()
	if got := again.LiveCells(); !slices.Equal(got, want) {
		t.Fatalf("stored snapshot changed through a restored copy: %v", got)
	}
}

func TestSaveReplacesPreviousSnapshot(t *testing.T) {
	var s SnapshotStore
	_ = s.Save(gridWith(t, 3, 3, core.Cell{Row: 0, Col: 0}))
	_ = s.Save(gridWith(t, 3, 3, core.Cell{Row: 2, Col: 2}))
	got, _ := s.Restore()
	if cells := got.LiveCells(); !slices.Equal(cells, []core.Cell{{Row: 2, Col: 2}}) {
		t.Fatalf("snapshot = %v, want only (2,2)", cells)
	}
	s.Clear()
	if s.Has() {
		t.Fatal("Clear must drop the snapshot")
	}
}
