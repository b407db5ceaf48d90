// Package input turns pointer and touch gestures into cell toggles.
package input

import (
	"math"

	"life-canvas/internal/core"
)

// Target is the grid the mapper paints on.
type Target interface {
	InBounds(row, col int) bool
	Toggle(row, col int) bool
}

// Point is a surface-relative or client position in pixels.
type Point struct {
	X, Y float64
}

// PointerToCell maps a client position to the cell under it. The result may
// lie outside the grid; callers bounds-check before indexing.
func PointerToCell(x, y float64, origin Point, cellSize int) core.Cell {
	if cellSize < 1 {
		cellSize = 1
	}
	size := float64(cellSize)
	return core.Cell{
		Row: int(math.Floor((y - origin.Y) / size)),
		Col: int(math.Floor((x - origin.X) / size)),
	}
}

// DragState tracks one paint gesture. The last toggled cell keeps a drag from
// toggling the same cell again on every move event.
type DragState struct {
	Down    bool
	last    core.Cell
	hasLast bool
}

// Last returns the most recently toggled cell of the current gesture.
func (d *DragState) Last() (core.Cell, bool) { return d.last, d.hasLast }

// Reset forgets the last toggled cell.
func (d *DragState) Reset() { d.hasLast = false }

// Mapper applies pointer gestures to a Target.
type Mapper struct {
	Origin   Point
	CellSize int

	target Target
	redraw func()
	drag   DragState
}

// NewMapper returns a Mapper toggling cells on target and calling redraw after
// each toggle.
func NewMapper(target Target, cellSize int, redraw func()) *Mapper {
	return &Mapper{target: target, CellSize: cellSize, redraw: redraw}
}

// SetTarget swaps the painted grid, e.g. after a resize.
func (m *Mapper) SetTarget(t Target) { m.target = t }

// Drag exposes the gesture state.
func (m *Mapper) Drag() DragState { return m.drag }

// Down starts a gesture (mouse-down, touch-start) and always handles its
// position.
func (m *Mapper) Down(x, y float64) bool {
	m.drag.Down = true
	m.drag.Reset()
	return m.Handle(PointerToCell(x, y, m.Origin, m.CellSize))
}

// Move handles a position while the pointer is down and ignores it otherwise.
func (m *Mapper) Move(x, y float64) bool {
	if !m.drag.Down {
		return false
	}
	return m.Handle(PointerToCell(x, y, m.Origin, m.CellSize))
}

// Up ends the gesture (mouse-up, mouse-leave, touch-end, touch-cancel)
// without toggling anything.
func (m *Mapper) Up() {
	m.drag.Down = false
	m.drag.Reset()
}

// Leave is Up for a pointer leaving the surface.
func (m *Mapper) Leave() { m.Up() }

// Cancel is Up for an interrupted touch.
func (m *Mapper) Cancel() { m.Up() }

// Handle toggles cell when it is on the grid and differs from the last cell
// toggled in this gesture. It reports whether a toggle happened.
func (m *Mapper) Handle(cell core.Cell) bool {
	if m.target == nil || !m.target.InBounds(cell.Row, cell.Col) {
		return false
	}
	if last, ok := m.drag.Last(); ok && last == cell {
		return false
	}
	if !m.target.Toggle(cell.Row, cell.Col) {
		return false
	}
	m.drag.last = cell
	m.drag.hasLast = true
	if m.redraw != nil {
		m.redraw()
	}
	return true
}
