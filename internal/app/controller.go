package app

import (
	"errors"
	"fmt"
	"time"

	"lifeca/pkg/core"
	"lifeca/pkg/sims/life"
)

// ErrQuit is returned by Do when the user asked to leave.
var ErrQuit = errors.New("quit requested")

// Action is a front-end independent user command.
type Action int

const (
	ActionNone Action = iota
	ActionTogglePause
	ActionStepOnce
	ActionClear
	ActionRandomize
	ActionSaveSnapshot
	ActionRestoreSnapshot
	ActionSaveSlot
	ActionLoadSlot
	ActionDeleteSlot
	ActionSlower
	ActionFaster
	ActionGrow
	ActionShrink
	ActionQuit
)

// Command pairs an action with the slot it targets, if any.
type Command struct {
	Action Action
	Slot   int
}

// Controller applies user commands to a Simulation and keeps a one-line
// status message for display.
type Controller struct {
	sim    *life.Simulation
	slots  life.Slots
	seed   int64
	status string
}

// NewController wires a simulation to its save slots.
func NewController(sim *life.Simulation, slots life.Slots, seed int64) *Controller {
	return &Controller{sim: sim, slots: slots, seed: seed, status: "paused - space to run"}
}

// Sim returns the driven simulation.
func (c *Controller) Sim() *life.Simulation { return c.sim }

// Status returns the message describing the last command.
func (c *Controller) Status() string { return c.status }

// Tick advances the simulation according to its cadence.
func (c *Controller) Tick(now time.Time) error {
	_, err := c.sim.Tick(now)
	if err != nil {
		c.status = "step failed: " + err.Error()
	}
	return err
}

// ToggleAt flips the cell under a front-end click.
func (c *Controller) ToggleAt(row, col int) error {
	if err := c.sim.ToggleCell(row, col); err != nil {
		return err
	}
	c.status = fmt.Sprintf("toggled (%d,%d)", row, col)
	return nil
}

// Do executes cmd. Failures are reported both as status text and as the
// returned error; ErrQuit signals that the front end should exit.
func (c *Controller) Do(cmd Command) error {
	err := c.do(cmd)
	if err != nil && !errors.Is(err, ErrQuit) {
		c.status = err.Error()
	}
	return err
}

func (c *Controller) do(cmd Command) error {
	switch cmd.Action {
	case ActionNone:
		return nil
	case ActionTogglePause:
		if c.sim.TogglePause() {
			c.status = "paused"
		} else {
			c.status = "running"
		}
	case ActionStepOnce:
		if err := c.sim.Advance(); err != nil {
			return err
		}
		c.status = fmt.Sprintf("generation %d", c.sim.Generation())
	case ActionClear:
		c.sim.ClearGrid()
		c.status = "cleared"
	case ActionRandomize:
		c.seed++
		c.sim.Reset(c.seed)
		c.status = fmt.Sprintf("randomized (seed %d)", c.seed)
	case ActionSaveSnapshot:
		if err := c.sim.SaveSnapshot(); err != nil {
			return err
		}
		c.status = "snapshot saved"
	case ActionRestoreSnapshot:
		if err := c.sim.RestoreSnapshot(); err != nil {
			return err
		}
		c.status = "snapshot restored"
	case ActionSaveSlot:
		if err := c.slots.Save(c.sim, cmd.Slot); err != nil {
			return err
		}
		c.status = fmt.Sprintf("saved slot %d", cmd.Slot)
	case ActionLoadSlot:
		if err := c.slots.Load(c.sim, cmd.Slot); err != nil {
			return err
		}
		c.status = fmt.Sprintf("loaded slot %d", cmd.Slot)
	case ActionDeleteSlot:
		if err := c.slots.Delete(cmd.Slot); err != nil {
			return err
		}
		c.status = fmt.Sprintf("deleted slot %d", cmd.Slot)
	case ActionSlower:
		return c.adjust("stepDelay", 1)
	case ActionFaster:
		return c.adjust("stepDelay", -1)
	case ActionGrow:
		return c.adjust("fieldSize", 1)
	case ActionShrink:
		return c.adjust("fieldSize", -1)
	case ActionQuit:
		return ErrQuit
	default:
		return fmt.Errorf("unknown action %d", cmd.Action)
	}
	return nil
}

// adjust nudges a control by one step in dir using the simulation's
// advertised bounds.
func (c *Controller) adjust(key string, dir int) error {
	var ctrl core.ParameterControl
	found := false
	for _, candidate := range c.sim.ParameterControls() {
		if candidate.Key == key {
			ctrl, found = candidate, true
			break
		}
	}
	if !found {
		return fmt.Errorf("no control %q", key)
	}
	cfg := c.sim.Config()
	switch ctrl.Type {
	case core.ParamTypeFloat:
		v := ctrl.Clamp(cfg.StepDelay + float64(dir)*ctrl.Step)
		if !c.sim.SetFloatParameter(key, v) {
			return fmt.Errorf("%w: %s=%v rejected", core.ErrConfigParse, key, v)
		}
		c.status = fmt.Sprintf("%s %.2fs", ctrl.Label, c.sim.Config().StepDelay)
	case core.ParamTypeInt:
		v := int(ctrl.Clamp(float64(cfg.FieldSize) + float64(dir)*ctrl.Step))
		if !c.sim.SetIntParameter(key, v) {
			return fmt.Errorf("%w: %s=%v rejected", core.ErrConfigParse, key, v)
		}
		c.status = fmt.Sprintf("%s %d", ctrl.Label, c.sim.Config().FieldSize)
	}
	return nil
}

// CellAt maps a pixel position in a bottom-up drawn field of the given size
// to a grid cell. ok is false outside the field.
func CellAt(px, py, scale int, size core.Size) (row, col int, ok bool) {
	if scale <= 0 || px < 0 || py < 0 {
		return 0, 0, false
	}
	col = px / scale
	visual := py / scale
	if col >= size.W || visual >= size.H {
		return 0, 0, false
	}
	return size.H - 1 - visual, col, true
}
