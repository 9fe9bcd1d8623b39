//go:build ebiten

package ui

import (
	"image/color"

	"lifeca/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var gridLineColor = color.RGBA{R: 70, G: 70, B: 80, A: 255}

// Overlay draws grid lines on top of the field.
type Overlay struct {
	showGrid bool
}

// NewOverlay constructs a new overlay instance with grid lines shown.
func NewOverlay() *Overlay {
	return &Overlay{showGrid: true}
}

// Update toggles the grid lines on G.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
}

// Draw renders the enabled overlays.
func (o *Overlay) Draw(screen *ebiten.Image, size core.Size, scale int) {
	if !o.showGrid || scale < 4 {
		return
	}
	w := float32(size.W * scale)
	h := float32(size.H * scale)
	for col := 0; col <= size.W; col++ {
		x := float32(col * scale)
		vector.StrokeLine(screen, x, 0, x, h, 1, gridLineColor, false)
	}
	for row := 0; row <= size.H; row++ {
		y := float32(row * scale)
		vector.StrokeLine(screen, 0, y, w, y, 1, gridLineColor, false)
	}
}
