package core

// Grid stores a rows×cols board of binary cells in row-major order.
// Dimensions may be zero when the viewport is smaller than one cell.
type Grid struct {
	Rows, Cols int
	data       []uint8
}

// NewGrid allocates an all-dead grid. Negative dimensions are treated as zero.
func NewGrid(rows, cols int) *Grid {
	g := &Grid{Rows: max(rows, 0), Cols: max(cols, 0)}
	g.Reinitialize()
	return g
}

// NewGridForViewport sizes a grid to fit the viewport at cellSize pixels per cell.
func NewGridForViewport(width, height, cellSize int) *Grid {
	g := &Grid{}
	g.Resize(width, height, cellSize)
	g.Reinitialize()
	return g
}

// Resize recomputes Rows and Cols for the viewport. The backing cells are left
// untouched; callers pair it with Reinitialize.
func (g *Grid) Resize(width, height, cellSize int) {
	if cellSize < 1 {
		cellSize = 1
	}
	g.Rows = max(height, 0) / cellSize
	g.Cols = max(width, 0) / cellSize
}

// Reinitialize allocates Rows×Cols dead cells, discarding previous state.
func (g *Grid) Reinitialize() {
	g.data = make([]uint8, g.Rows*g.Cols)
}

// Size reports the grid dimensions as columns by rows.
func (g *Grid) Size() Size { return Size{W: g.Cols, H: g.Rows} }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.Cols + col }

// InBounds reports whether (row, col) addresses a cell.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols && len(g.data) == g.Rows*g.Cols
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(row, col int) (int, int) {
	row = (row%g.Rows + g.Rows) % g.Rows
	col = (col%g.Cols + g.Cols) % g.Cols
	return row, col
}

// At returns the cell value, or 0 outside the grid.
func (g *Grid) At(row, col int) uint8 {
	if !g.InBounds(row, col) {
		return 0
	}
	return g.data[g.Index(row, col)]
}

// Set stores v (normalised to 0/1) when (row, col) is in bounds.
func (g *Grid) Set(row, col int, v uint8) {
	if !g.InBounds(row, col) {
		return
	}
	g.data[g.Index(row, col)] = alive(v)
}

// Toggle flips one cell and reports whether anything changed. Out-of-range
// coordinates are ignored.
func (g *Grid) Toggle(row, col int) bool {
	if !g.InBounds(row, col) {
		return false
	}
	i := g.Index(row, col)
	g.data[i] ^= 1
	return true
}

// SetAll assigns every cell from fn.
func (g *Grid) SetAll(fn func(row, col int) uint8) {
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			g.data[g.Index(row, col)] = alive(fn(row, col))
		}
	}
}

// Fill sets every cell to v.
func (g *Grid) Fill(v uint8) {
	v = alive(v)
	for i := range g.data {
		g.data[i] = v
	}
}

// Clear fills the grid with zeros.
func (g *Grid) Clear() { g.Fill(0) }

// Population counts live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.data {
		n += int(c)
	}
	return n
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	c := &Grid{Rows: g.Rows, Cols: g.Cols, data: make([]uint8, len(g.data))}
	copy(c.data, g.data)
	return c
}

// SameShape reports whether o has identical dimensions.
func (g *Grid) SameShape(o *Grid) bool {
	return o != nil && g.Rows == o.Rows && g.Cols == o.Cols
}

// Equal reports whether both grids have the same shape and cells.
func (g *Grid) Equal(o *Grid) bool {
	if !g.SameShape(o) || len(g.data) != len(o.data) {
		return false
	}
	for i := range g.data {
		if g.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

func alive(v uint8) uint8 {
	if v != 0 {
		return 1
	}
	return 0
}
