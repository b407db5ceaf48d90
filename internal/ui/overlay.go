//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"life-canvas/internal/game"
)

// Overlay draws optional debugging visuals on top of the grid: the cell under
// the cursor and a status line.
type Overlay struct {
	visible bool
	hoverX  int
	hoverY  int
}

// NewOverlay constructs a hidden overlay.
func NewOverlay() *Overlay { return &Overlay{} }

// Toggle shows or hides the overlay.
func (o *Overlay) Toggle() { o.visible = !o.visible }

// Visible reports whether the overlay is drawn.
func (o *Overlay) Visible() bool { return o.visible }

// Hover records the cursor position in screen pixels.
func (o *Overlay) Hover(x, y int) { o.hoverX, o.hoverY = x, y }

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image, g *game.Game) {
	if !o.visible {
		return
	}
	size := g.CellSize()
	status := fmt.Sprintf("gen %d  pop %d  %d FPS  %s  TPS %.0f",
		g.Generation(), g.Population(), g.Speed(), g.RunLabel(), ebiten.ActualTPS())

	if cell, ok := g.CellAt(float64(o.hoverX), float64(o.hoverY)); ok {
		x, y := float32(cell.Col*size), float32(cell.Row*size)
		vector.StrokeRect(screen, x, y, float32(size), float32(size), 1, color.RGBA{R: 90, G: 170, B: 230, A: 255}, false)
		status += fmt.Sprintf("  cell %d,%d", cell.Row, cell.Col)
	}

	ebitenutil.DebugPrintAt(screen, status, 8, screen.Bounds().Dy()-20)
}
