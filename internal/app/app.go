//go:build ebiten

package app

import (
	"errors"
	"image/color"
	"log"
	"time"

	"lifeca/internal/render"
	"lifeca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 220

// Game adapts a Controller to the ebiten.Game interface.
type Game struct {
	ctrl    *Controller
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	onColor  color.Color
	offColor color.Color

	scale int
}

// New constructs a Game for the provided controller.
func New(ctrl *Controller, scale int) *Game {
	size := ctrl.Sim().Size()
	return &Game{
		ctrl:     ctrl,
		painter:  render.NewGridPainter(size.W, size.H),
		hud:      ui.NewHUD(ctrl.Sim(), hudWidth),
		overlay:  ui.NewOverlay(),
		onColor:  color.RGBA{R: 178, G: 178, B: 178, A: 255},
		offColor: color.RGBA{R: 26, G: 26, B: 38, A: 255},
		scale:    scale,
	}
}

var digitKeys = [...]ebiten.Key{
	ebiten.KeyDigit0, ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
	ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

var keyActions = map[ebiten.Key]Action{
	ebiten.KeySpace:        ActionTogglePause,
	ebiten.KeyN:            ActionStepOnce,
	ebiten.KeyC:            ActionClear,
	ebiten.KeyX:            ActionRandomize,
	ebiten.KeyS:            ActionSaveSnapshot,
	ebiten.KeyR:            ActionRestoreSnapshot,
	ebiten.KeyMinus:        ActionSlower,
	ebiten.KeyEqual:        ActionFaster,
	ebiten.KeyBracketRight: ActionGrow,
	ebiten.KeyBracketLeft:  ActionShrink,
	ebiten.KeyQ:            ActionQuit,
	ebiten.KeyEscape:       ActionQuit,
}

// commands collects the commands triggered this frame. Digits select a slot:
// Ctrl saves, Shift loads and Alt deletes.
func commands() []Command {
	var cmds []Command
	for key, action := range keyActions {
		if inpututil.IsKeyJustPressed(key) {
			cmds = append(cmds, Command{Action: action})
		}
	}
	for slot, key := range digitKeys {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		switch {
		case ebiten.IsKeyPressed(ebiten.KeyControl):
			cmds = append(cmds, Command{Action: ActionSaveSlot, Slot: slot})
		case ebiten.IsKeyPressed(ebiten.KeyShift):
			cmds = append(cmds, Command{Action: ActionLoadSlot, Slot: slot})
		case ebiten.IsKeyPressed(ebiten.KeyAlt):
			cmds = append(cmds, Command{Action: ActionDeleteSlot, Slot: slot})
		}
	}
	return cmds
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	for _, cmd := range commands() {
		if err := g.ctrl.Do(cmd); err != nil {
			if errors.Is(err, ErrQuit) {
				return ebiten.Termination
			}
			log.Printf("%v", err)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if row, col, ok := CellAt(x, y, g.scale, g.ctrl.Sim().Size()); ok {
			if err := g.ctrl.ToggleAt(row, col); err != nil {
				log.Printf("toggle: %v", err)
			}
		}
	}
	if g.overlay != nil {
		g.overlay.Update()
	}
	if g.hud != nil {
		g.hud.Update(g.ctrl.Status())
	}
	return g.ctrl.Tick(time.Now())
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	size := g.ctrl.Sim().Size()
	if w, h := g.painter.Size(); w != size.W || h != size.H {
		g.painter = render.NewGridPainter(size.W, size.H)
	}
	g.painter.Blit(screen, g.ctrl.Sim().Cells(), g.onColor, g.offColor, g.scale)
	if g.overlay != nil {
		g.overlay.Draw(screen, size, g.scale)
	}
	if g.hud != nil {
		g.hud.Draw(screen, size.W*g.scale, size.H*g.scale)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.ctrl.Sim().Size()
	return s.W*g.scale + hudWidth, s.H * g.scale
}
