package life

import (
	"errors"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"lifeca/pkg/core"
)

func newTestSim(t *testing.T, size int) *Simulation {
	t.Helper()
	cfg := DefaultConfig()
	cfg.FieldSize = size
	sim, err := NewSimulation(cfg)
	if err != nil {
		t.Fatalf("NewSimulation: %v", err)
	}
	t.Cleanup(sim.Close)
	return sim
}

func TestNewSimulationRejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FieldSize = 0
	if _, err := NewSimulation(cfg); !errors.Is(err, core.ErrAllocation) {
		t.Fatalf("err = %v, want ErrAllocation", err)
	}
	cfg = DefaultConfig()
	cfg.StepDelay = 0
	if _, err := NewSimulation(cfg); !errors.Is(err, core.ErrConfigParse) {
		t.Fatalf("err = %v, want ErrConfigParse", err)
	}
}

func TestSnapshotSaveClearRestore(t *testing.T) {
	sim := newTestSim(t, 10)
	if err := sim.RestoreSnapshot(); !errors.Is(err, core.ErrNoSnapshot) {
		t.Fatalf("restore before save err = %v, want ErrNoSnapshot", err)
	}
	_ = sim.ToggleCell(1, 1)
	_ = sim.ToggleCell(8, 3)
	want := sim.Grid().LiveCells()
	if err := sim.SaveSnapshot(); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}
	sim.ClearGrid()
	if sim.Population() != 0 {
		t.Fatal("ClearGrid left live cells")
	}
	if err := sim.RestoreSnapshot(); err != nil {
		t.Fatalf("RestoreSnapshot: %v", err)
	}
	if got := sim.Grid().LiveCells(); !slices.Equal(got, want) {
		t.Fatalf("restored %v, want %v", got, want)
	}
}

func TestSnapshotSurvivesStepping(t *testing.T) {
	sim := newTestSim(t, 10)
	_ = sim.LoadPattern([]core.Cell{{Row: 5, Col: 4}, {Row: 5, Col: 5}, {Row: 5, Col: 6}})
	want := sim.Grid().LiveCells()
	_ = sim.SaveSnapshot()
	sim.Step() // live grid is now the other buffer
	if err := sim.RestoreSnapshot(); err != nil {
		t.Fatalf("RestoreSnapshot: %v", err)
	}
	if got := sim.Grid().LiveCells(); !slices.Equal(got, want) {
		t.Fatalf("restored %v, want %v", got, want)
	}
}

func TestToggleCellOutOfRange(t *testing.T) {
	sim := newTestSim(t, 5)
	if err := sim.ToggleCell(5, 0); !errors.Is(err, core.ErrIndex) {
		t.Fatalf("err = %v, want ErrIndex", err)
	}
	if err := sim.LoadPattern([]core.Cell{{Row: 0, Col: 0}, {Row: 9, Col: 9}}); !errors.Is(err, core.ErrIndex) {
		t.Fatalf("LoadPattern err = %v, want ErrIndex", err)
	}
	if sim.Population() != 0 {
		t.Fatal("a rejected pattern must not be partially applied")
	}
}

func TestTickRespectsPauseAndDelay(t *testing.T) {
	sim := newTestSim(t, 10)
	_ = sim.LoadPattern([]core.Cell{{Row: 5, Col: 4}, {Row: 5, Col: 5}, {Row: 5, Col: 6}})
	now := time.Unix(1000, 0)

	if !sim.Paused() {
		t.Fatal("simulation should start paused")
	}
	if stepped, _ := sim.Tick(now); stepped {
		t.Fatal("paused simulation must not step")
	}
	sim.TogglePause()
	if stepped, err := sim.Tick(now); !stepped || err != nil {
		t.Fatalf("Tick = %v, %v; want a step", stepped, err)
	}
	if stepped, _ := sim.Tick(now.Add(10 * time.Millisecond)); stepped {
		t.Fatal("stepped before stepDelay elapsed")
	}
	if stepped, _ := sim.Tick(now.Add(50 * time.Millisecond)); !stepped {
		t.Fatal("did not step after stepDelay elapsed")
	}
	if sim.Generation() != 2 {
		t.Fatalf("generation = %d, want 2", sim.Generation())
	}
}

func TestConfigureKeepsZeroValues(t *testing.T) {
	sim := newTestSim(t, 10)
	_ = sim.ToggleCell(2, 2)
	_ = sim.SaveSnapshot()

	if err := sim.Configure(0, 0.5); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	if sim.Config().FieldSize != 10 || sim.Config().StepDelay != 0.5 {
		t.Fatalf("config = %+v", sim.Config())
	}
	if sim.Population() != 1 || !sim.HasSnapshot() {
		t.Fatal("changing only the delay must keep grid and snapshot")
	}

	if err := sim.Configure(20, 0); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	if s := sim.Size(); s.W != 20 || s.H != 20 {
		t.Fatalf("size = %+v, want 20x20", s)
	}
	if sim.Config().StepDelay != 0.5 {
		t.Fatal("field resize must keep the step delay")
	}
	if sim.HasSnapshot() || sim.Population() != 0 {
		t.Fatal("resize must start from an empty grid without a snapshot")
	}
	if err := sim.Configure(-1, 0); !errors.Is(err, core.ErrConfigParse) {
		t.Fatalf("err = %v, want ErrConfigParse", err)
	}
}

func TestSimulationFileRoundTrip(t *testing.T) {
	sim := newTestSim(t, 30)
	_ = sim.LoadPattern(DefaultPattern())
	want := sim.Grid().LiveCells()
	path := filepath.Join(t.TempDir(), "field.bin")
	if err := sim.EncodeToFile(path); err != nil {
		t.Fatalf("EncodeToFile: %v", err)
	}
	sim.ClearGrid()
	_ = sim.ToggleCell(0, 0)
	if err := sim.DecodeFromFile(path); err != nil {
		t.Fatalf("DecodeFromFile: %v", err)
	}
	if got := sim.Grid().LiveCells(); !slices.Equal(got, want) {
		t.Fatalf("loaded %v, want %v", got, want)
	}

	small := newTestSim(t, 10)
	_ = small.ToggleCell(0, 0)
	if err := small.DecodeFromFile(path); !errors.Is(err, core.ErrIndex) {
		t.Fatalf("err = %v, want ErrIndex", err)
	}
	if alive, _ := small.Cell(0, 0); !alive || small.Population() != 1 {
		t.Fatal("failed load must leave the live grid unchanged")
	}
}

func TestParameterSetters(t *testing.T) {
	sim := newTestSim(t, 10)
	if !sim.SetFloatParameter("stepDelay", 0.3) || sim.Config().StepDelay != 0.3 {
		t.Fatal("SetFloatParameter(stepDelay) failed")
	}
	if sim.SetFloatParameter("fieldSize", 3) || sim.SetFloatParameter("stepDelay", 0) {
		t.Fatal("invalid float parameter accepted")
	}
	if !sim.SetIntParameter("fieldSize", 12) || sim.Size().W != 12 {
		t.Fatal("SetIntParameter(fieldSize) failed")
	}
	p, ok := sim.Parameters().Lookup("fieldSize")
	if !ok || p.Value != "12" {
		t.Fatalf("fieldSize parameter = %+v, %v", p, ok)
	}
	if p, _ := sim.Parameters().Lookup("paused"); p.Value != "true" {
		t.Fatalf("paused parameter = %+v", p)
	}
}

func TestRegistryBuildsBothPolicies(t *testing.T) {
	for name, want := range map[string]Policy{"life": Bounded, "life-torus": Toroidal} {
		f, ok := core.Sims()[name]
		if !ok {
			t.Fatalf("%q not registered", name)
		}
		s, err := f(map[string]string{"fieldSize": "30", "policy": "bounded"})
		if err != nil {
			t.Fatalf("factory %q: %v", name, err)
		}
		sim := s.(*Simulation)
		if sim.Config().Policy != want {
			t.Fatalf("%q policy = %v, want %v", name, sim.Config().Policy, want)
		}
		if sim.Population() != len(DefaultPattern()) {
			t.Fatalf("%q population = %d, want default pattern", name, sim.Population())
		}
	}
	s, err := core.Sims()["life"](map[string]string{"fieldSize": "5"})
	if err != nil {
		t.Fatalf("factory: %v", err)
	}
	if s.(*Simulation).Population() != 0 {
		t.Fatal("a field too small for the default pattern should start empty")
	}
}
