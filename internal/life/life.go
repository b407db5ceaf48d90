// Package life implements Conway's Game of Life (B3/S23) on a toroidal grid.
package life

import "life-canvas/internal/core"

// CountLiveNeighbors sums the eight Moore neighbours of (row, col), wrapping
// both axes. On grids with a dimension of 1 or 2 a cell can count itself or
// the same neighbour more than once; a lone live cell on a 1×1 grid has 8.
// Coordinates outside the grid yield 0.
func CountLiveNeighbors(g *core.Grid, row, col int) int {
	if !g.InBounds(row, col) {
		return 0
	}
	rows, cols := g.Rows, g.Cols
	cells := g.Cells()
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			r := (row + dy + rows) % rows
			c := (col + dx + cols) % cols
			n += int(cells[r*cols+c])
		}
	}
	return n
}

// Next applies the survival/birth rule to a single cell.
func Next(alive bool, neighbors int) uint8 {
	if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
		return 1
	}
	return 0
}

// Step returns the next generation of g. g is not modified.
func Step(g *core.Grid) *core.Grid {
	next := core.NewGrid(g.Rows, g.Cols)
	StepInto(next, g)
	return next
}

// StepInto writes the generation following src into dst. Only src is read, so
// every cell sees the same generation. dst must not alias src; a dst of a
// different shape is reallocated.
func StepInto(dst, src *core.Grid) {
	if !dst.SameShape(src) || len(dst.Cells()) != len(src.Cells()) {
		dst.Rows, dst.Cols = src.Rows, src.Cols
		dst.Reinitialize()
	}
	out := dst.Cells()
	in := src.Cells()
	for row := 0; row < src.Rows; row++ {
		for col := 0; col < src.Cols; col++ {
			idx := row*src.Cols + col
			out[idx] = Next(in[idx] == 1, CountLiveNeighbors(src, row, col))
		}
	}
}
