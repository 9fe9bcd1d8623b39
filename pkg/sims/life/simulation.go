package life

import (
	"fmt"
	"time"

	"lifeca/pkg/core"
)

// Simulation owns the live generation pair, the snapshot store, the step
// cadence and the run/pause state. Callers drive it from a single goroutine.
type Simulation struct {
	cfg    Config
	life   *Life
	snap   SnapshotStore
	gate   *core.FixedStep
	paused bool
}

// NewSimulation allocates a dead fieldSize*fieldSize grid. The simulation
// starts paused.
func NewSimulation(cfg Config) (*Simulation, error) {
	if cfg.StepDelay <= 0 {
		return nil, fmt.Errorf("%w: stepDelay %v must be positive", core.ErrConfigParse, cfg.StepDelay)
	}
	l, err := New(cfg.FieldSize, cfg.FieldSize, cfg.Policy)
	if err != nil {
		return nil, err
	}
	l.SetWorkers(cfg.Workers)
	return &Simulation{
		cfg:    cfg,
		life:   l,
		gate:   core.NewFixedStep(cfg.StepInterval()),
		paused: true,
	}, nil
}

// Name returns the simulation identifier.
func (s *Simulation) Name() string { return s.life.Name() }

// Size reports the grid dimensions.
func (s *Simulation) Size() core.Size { return s.life.Size() }

// Cells exposes the current generation buffer for renderers.
func (s *Simulation) Cells() []uint8 { return s.life.Cells() }

// Config returns the active configuration.
func (s *Simulation) Config() Config { return s.cfg }

// Grid returns the live grid. It changes identity on every Swap.
func (s *Simulation) Grid() *core.Grid { return s.life.Current() }

// Generation counts steps since the last reset or resize.
func (s *Simulation) Generation() int { return s.life.Generation() }

// Population counts live cells in the current generation.
func (s *Simulation) Population() int { return s.life.Current().Population() }

// Reset randomizes the live grid with the configured density.
func (s *Simulation) Reset(seed int64) { s.Randomize(seed, s.cfg.Density) }

// Randomize fills the live grid with the given live-cell density.
func (s *Simulation) Randomize(seed int64, density float64) {
	s.life.Randomize(seed, density)
}

// Compute writes the next generation without making it current.
func (s *Simulation) Compute() error { return s.life.Compute() }

// Swap makes the computed generation current.
func (s *Simulation) Swap() { s.life.Swap() }

// Advance computes and swaps in one generation.
func (s *Simulation) Advance() error { return s.life.Advance() }

// Step advances one generation regardless of the pause flag.
func (s *Simulation) Step() { s.life.Step() }

// Tick advances one generation when running and the step delay has elapsed
// since the previous tick that stepped. It reports whether a step happened.
func (s *Simulation) Tick(now time.Time) (bool, error) {
	if s.paused || !s.gate.Ready(now) {
		return false, nil
	}
	if err := s.life.Advance(); err != nil {
		return false, err
	}
	return true, nil
}

// Paused reports whether Tick is suspended.
func (s *Simulation) Paused() bool { return s.paused }

// SetPaused suspends or resumes Tick.
func (s *Simulation) SetPaused(p bool) { s.paused = p }

// TogglePause flips the pause flag and returns the new value.
func (s *Simulation) TogglePause() bool {
	s.paused = !s.paused
	return s.paused
}

// Cell reports whether (row, col) is alive.
func (s *Simulation) Cell(row, col int) (bool, error) {
	return s.life.Current().Get(row, col)
}

// SetCell sets (row, col) in the live grid.
func (s *Simulation) SetCell(row, col int, alive bool) error {
	return s.life.Current().Set(row, col, alive)
}

// ToggleCell flips (row, col) in the live grid.
func (s *Simulation) ToggleCell(row, col int) error {
	return s.life.Current().Toggle(row, col)
}

// ClearGrid kills every cell of the live grid.
func (s *Simulation) ClearGrid() { s.life.Current().Clear() }

// LoadPattern marks the given cells alive. Either every cell is in bounds and
// all are set, or the grid is left untouched.
func (s *Simulation) LoadPattern(cells []core.Cell) error {
	g := s.life.Current()
	for _, c := range cells {
		if !g.InBounds(c.Row, c.Col) {
			return &core.IndexError{Row: c.Row, Col: c.Col, W: g.W, H: g.H}
		}
	}
	for _, c := range cells {
		if err := g.Set(c.Row, c.Col, true); err != nil {
			return err
		}
	}
	return nil
}

// HasSnapshot reports whether a snapshot is stored.
func (s *Simulation) HasSnapshot() bool { return s.snap.Has() }

// SaveSnapshot stores a copy of the live grid, replacing any earlier one.
func (s *Simulation) SaveSnapshot() error { return s.snap.Save(s.life.Current()) }

// RestoreSnapshot copies the stored snapshot into the live grid. The snapshot
// remains available for later restores.
func (s *Simulation) RestoreSnapshot() error { return s.snap.RestoreInto(s.life.Current()) }

// EncodeToFile writes the live cells to path.
func (s *Simulation) EncodeToFile(path string) error {
	return EncodeToFile(path, s.life.Current())
}

// DecodeFromFile replaces the live grid with the pattern stored at path. On
// error the live grid is unchanged.
func (s *Simulation) DecodeFromFile(path string) error {
	cur := s.life.Current()
	tmp, err := core.NewGrid(cur.W, cur.H)
	if err != nil {
		return err
	}
	if err := DecodeFromFile(path, tmp); err != nil {
		return err
	}
	return cur.CopyFrom(tmp)
}

// Configure applies a new field size and step delay. A zero value keeps the
// current setting. Changing the field size reallocates both buffers, which
// clears the grid and drops the snapshot.
func (s *Simulation) Configure(fieldSize int, stepDelay float64) error {
	if fieldSize < 0 {
		return fmt.Errorf("%w: fieldSize %d must be positive", core.ErrConfigParse, fieldSize)
	}
	if stepDelay < 0 {
		return fmt.Errorf("%w: stepDelay %v must be positive", core.ErrConfigParse, stepDelay)
	}
	if fieldSize > 0 && fieldSize != s.cfg.FieldSize {
		l, err := New(fieldSize, fieldSize, s.cfg.Policy)
		if err != nil {
			return err
		}
		l.SetWorkers(s.cfg.Workers)
		s.life.Release()
		s.life = l
		s.snap.Clear()
		s.cfg.FieldSize = fieldSize
	}
	if stepDelay > 0 {
		s.cfg.StepDelay = stepDelay
		s.gate.SetDelay(s.cfg.StepInterval())
	}
	return nil
}

// Close releases the grids and the snapshot.
func (s *Simulation) Close() {
	s.snap.Clear()
	s.life.Release()
}

// DefaultPattern is the start-up field seeded when no pattern is loaded.
func DefaultPattern() []core.Cell {
	return []core.Cell{
		{Row: 2, Col: 5}, {Row: 3, Col: 5}, {Row: 3, Col: 6},
		{Row: 4, Col: 4}, {Row: 4, Col: 5}, {Row: 7, Col: 7},
		{Row: 14, Col: 14}, {Row: 14, Col: 15}, {Row: 14, Col: 17},
		{Row: 14, Col: 19}, {Row: 15, Col: 19}, {Row: 15, Col: 20},
		{Row: 16, Col: 20}, {Row: 16, Col: 21},
	}
}
