// Package render paints a grid onto an abstract rectangle-filling surface.
package render

import (
	"image/color"

	"life-canvas/internal/core"
)

// Surface is the drawing backend. Dimensions are in pixels and match the
// viewport the grid was sized for.
type Surface interface {
	Clear(width, height int)
	SetFillColor(c color.Color)
	FillRect(x, y, w, h int)
}

// DefaultLiveColor is the fill used for live cells (#666).
var DefaultLiveColor = color.RGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xff}

// Painter redraws a grid onto a surface.
type Painter struct {
	Live color.Color
}

// NewPainter returns a Painter using live as the cell colour, or
// DefaultLiveColor when live is nil.
func NewPainter(live color.Color) *Painter {
	if live == nil {
		live = DefaultLiveColor
	}
	return &Painter{Live: live}
}

// Paint clears the surface to width×height and fills one rectangle per live
// cell, one unit narrower than cellSize so a grid line shows between cells.
func (p *Painter) Paint(s Surface, g *core.Grid, cellSize, width, height int) {
	s.Clear(width, height)
	if g == nil {
		return
	}
	if cellSize < 1 {
		cellSize = 1
	}
	s.SetFillColor(p.Live)
	cells := g.Cells()
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			if cells[g.Index(row, col)] == 0 {
				continue
			}
			s.FillRect(col*cellSize, row*cellSize, cellSize-1, cellSize-1)
		}
	}
}
