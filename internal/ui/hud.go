//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"life-canvas/internal/game"
)

// HUD draws a Panel over the simulation view.
type HUD struct {
	panel *Panel
	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided panel.
func NewHUD(panel *Panel) *HUD {
	h := &HUD{panel: panel}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Panel exposes the layout used for hit testing.
func (h *HUD) Panel() *Panel { return h.panel }

// Update refreshes labels and values from the game.
func (h *HUD) Update(g *game.Game) {
	if h == nil {
		return
	}
	h.panel.Sync(g)
}

// Draw paints the toggle button and, when visible, the panel body.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil {
		return
	}
	p := h.panel
	h.drawButton(screen, p.Toggle.Rect, p.Toggle.Label, true)
	if !p.Visible() {
		return
	}

	h.fill(screen, p.Bounds, color.RGBA{R: 16, G: 16, B: 20, A: 220})
	for _, b := range p.Buttons {
		h.drawButton(screen, b.Rect, b.Label, true)
	}

	face := basicfont.Face7x13
	for _, s := range p.Steppers {
		labelY := s.Top + labelBaseline
		text.Draw(screen, s.Control.Label, face, p.Bounds.Min.X+panelPadding, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})

		value := s.Control.Format(s.Value)
		valueWidth := text.BoundString(face, value).Dx()
		valueX := s.Minus.Min.X - buttonGap - valueWidth
		text.Draw(screen, value, face, valueX, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})

		h.drawButton(screen, s.Minus, "-", s.Control.CanAdjust(s.Value, -1))
		h.drawButton(screen, s.Plus, "+", s.Control.CanAdjust(s.Value, 1))
	}
}

func (h *HUD) fill(dst *ebiten.Image, rect image.Rectangle, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(h.pixel, op)
}

func (h *HUD) drawButton(dst *ebiten.Image, rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	h.fill(dst, rect, bg)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(dst, label, face, x, y, fg)
}
