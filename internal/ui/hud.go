//go:build ebiten

package ui

import (
	"image/color"

	"lifeca/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 10
	lineHeight   = 16
)

var (
	panelColor  = color.RGBA{R: 18, G: 18, B: 24, A: 255}
	headerColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor  = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	valueColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	statusColor = color.RGBA{R: 230, G: 190, B: 90, A: 255}
)

var keyHelp = []string{
	"space run/pause   n step",
	"click toggle cell c clear",
	"x random  s save  r restore",
	"-/= delay  [/] field size",
	"ctrl/shift/alt+0-9 slot",
	"  save/load/delete   q quit",
}

// HUD renders the parameter panel to the right of the field.
type HUD struct {
	sim    core.ParameterProvider
	width  int
	panel  *ebiten.Image
	status string
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.ParameterProvider, width int) *HUD {
	if width <= 0 || sim == nil {
		return nil
	}
	return &HUD{sim: sim, width: width}
}

// Update records the latest status line.
func (h *HUD) Update(status string) {
	if h == nil {
		return
	}
	h.status = status
}

// Draw paints the panel at horizontal offset x.
func (h *HUD) Draw(screen *ebiten.Image, x, height int) {
	if h == nil || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelColor)

	face := basicfont.Face7x13
	y := panelPadding + lineHeight
	for _, group := range h.sim.Parameters().Groups {
		text.Draw(h.panel, group.Name, face, panelPadding, y, headerColor)
		y += lineHeight
		for _, p := range group.Params {
			text.Draw(h.panel, p.Label, face, panelPadding, y, labelColor)
			text.Draw(h.panel, p.Value, face, h.width-panelPadding-len(p.Value)*7, y, valueColor)
			y += lineHeight
		}
		y += lineHeight / 2
	}
	if h.status != "" {
		text.Draw(h.panel, h.status, face, panelPadding, y, statusColor)
		y += lineHeight
	}
	y += lineHeight / 2
	for _, line := range keyHelp {
		text.Draw(h.panel, line, face, panelPadding, y, labelColor)
		y += lineHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), 0)
	screen.DrawImage(h.panel, op)
}
