// Package term drives a Simulation from a terminal using tcell. Each cell is
// drawn two columns wide, with row 0 on the bottom line of the field.
package term

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"lifeca/internal/app"
)

var (
	aliveStyle  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
	deadStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	infoStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

var runeActions = map[rune]app.Action{
	' ': app.ActionTogglePause,
	'n': app.ActionStepOnce,
	'c': app.ActionClear,
	'x': app.ActionRandomize,
	's': app.ActionSaveSnapshot,
	'r': app.ActionRestoreSnapshot,
	'-': app.ActionSlower,
	'=': app.ActionFaster,
	'+': app.ActionFaster,
	'[': app.ActionShrink,
	']': app.ActionGrow,
	'q': app.ActionQuit,
}

// slotPrefixes select which slot action the next digit performs.
var slotPrefixes = map[rune]app.Action{
	'w': app.ActionSaveSlot,
	'l': app.ActionLoadSlot,
	'd': app.ActionDeleteSlot,
}

// Frontend renders a Controller's simulation and feeds it terminal input.
type Frontend struct {
	screen  tcell.Screen
	ctrl    *app.Controller
	pending app.Action
	held    bool
	note    string
}

// New returns a Frontend drawing to an initialised screen.
func New(screen tcell.Screen, ctrl *app.Controller) *Frontend {
	return &Frontend{screen: screen, ctrl: ctrl}
}

// Draw paints the field and the status lines.
func (f *Frontend) Draw() {
	sim := f.ctrl.Sim()
	g := sim.Grid()
	f.screen.Clear()
	for row := 0; row < g.H; row++ {
		y := g.VisualRow(row)
		for col := 0; col < g.W; col++ {
			style := deadStyle
			if g.Cells()[g.Index(row, col)] != 0 {
				style = aliveStyle
			}
			f.screen.SetContent(col*2, y, ' ', nil, style)
			f.screen.SetContent(col*2+1, y, ' ', nil, style)
		}
	}
	state := "running"
	if sim.Paused() {
		state = "paused"
	}
	cfg := sim.Config()
	info := fmt.Sprintf("gen %d  pop %d  delay %.2fs  %s  %s", sim.Generation(), sim.Population(), cfg.StepDelay, cfg.Policy, state)
	drawText(f.screen, 0, g.H, info, infoStyle)
	status := f.ctrl.Status()
	if f.note != "" {
		status = f.note
	}
	drawText(f.screen, 0, g.H+1, status, statusStyle)
	f.screen.Show()
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// HandleKey applies a key press. It returns app.ErrQuit when the user quits.
func (f *Frontend) HandleKey(ev *tcell.EventKey) error {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return app.ErrQuit
	}
	if ev.Key() != tcell.KeyRune {
		return nil
	}
	r := ev.Rune()
	if f.pending != app.ActionNone {
		action := f.pending
		f.pending = app.ActionNone
		f.note = ""
		if r >= '0' && r <= '9' {
			return f.ctrl.Do(app.Command{Action: action, Slot: int(r - '0')})
		}
		return nil
	}
	if action, ok := slotPrefixes[r]; ok {
		f.pending = action
		f.note = "slot 0-9?"
		return nil
	}
	if action, ok := runeActions[r]; ok {
		return f.ctrl.Do(app.Command{Action: action})
	}
	return nil
}

// HandleMouse toggles the cell under a fresh left-button press.
func (f *Frontend) HandleMouse(ev *tcell.EventMouse) error {
	pressed := ev.Buttons()&tcell.Button1 != 0
	fresh := pressed && !f.held
	f.held = pressed
	if !fresh {
		return nil
	}
	x, y := ev.Position()
	row, col, ok := app.CellAt(x/2, y, 1, f.ctrl.Sim().Size())
	if !ok {
		return nil
	}
	return f.ctrl.ToggleAt(row, col)
}

// Run processes input and redraws every frame until ctx is done or the
// user quits. The simulation is only touched from the calling goroutine.
func (f *Frontend) Run(ctx context.Context, frame time.Duration) error {
	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(frame)
	defer ticker.Stop()
	f.Draw()
	for {
		var err error
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				err = f.HandleKey(ev)
			case *tcell.EventMouse:
				err = f.HandleMouse(ev)
			case *tcell.EventResize:
				f.screen.Sync()
			}
		case now := <-ticker.C:
			err = f.ctrl.Tick(now)
		}
		if errors.Is(err, app.ErrQuit) {
			return nil
		}
		f.Draw()
	}
}
