package core

import (
	"slices"
	"testing"
)

func TestResizeFloorsViewport(t *testing.T) {
	g := NewGridForViewport(105, 47, 10)
	if g.Rows != 4 || g.Cols != 10 {
		t.Fatalf("rows=%d cols=%d, want 4x10", g.Rows, g.Cols)
	}
	if len(g.Cells()) != 40 {
		t.Fatalf("expected 40 cells, got %d", len(g.Cells()))
	}
}

func TestResizeSmallerThanCell(t *testing.T) {
	g := NewGridForViewport(5, 5, 10)
	if g.Rows != 0 || g.Cols != 0 || len(g.Cells()) != 0 {
		t.Fatalf("expected empty grid, got %dx%d (%d cells)", g.Rows, g.Cols, len(g.Cells()))
	}
	if g.Toggle(0, 0) {
		t.Fatal("toggle on empty grid must be ignored")
	}
}

func TestResizeClampsCellSize(t *testing.T) {
	g := NewGridForViewport(3, 2, 0)
	if g.Rows != 2 || g.Cols != 3 {
		t.Fatalf("cell size 0 should act as 1, got %dx%d", g.Rows, g.Cols)
	}
}

func TestReinitializeDiscardsState(t *testing.T) {
	g := NewGrid(4, 4)
	g.Fill(1)
	g.Resize(60, 30, 10)
	g.Reinitialize()
	if g.Rows != 3 || g.Cols != 6 {
		t.Fatalf("rows=%d cols=%d, want 3x6", g.Rows, g.Cols)
	}
	if g.Population() != 0 {
		t.Fatalf("expected all-dead grid after reinitialize, population %d", g.Population())
	}
}

func TestToggleBounds(t *testing.T) {
	g := NewGrid(3, 4)
	if !g.Toggle(2, 3) {
		t.Fatal("expected in-range toggle to apply")
	}
	if g.At(2, 3) != 1 {
		t.Fatal("cell (2,3) should be alive")
	}
	if !g.Toggle(2, 3) || g.At(2, 3) != 0 {
		t.Fatal("second toggle should kill cell (2,3)")
	}

	before := slices.Clone(g.Cells())
	for _, c := range []Cell{{-1, 0}, {0, -1}, {3, 0}, {0, 4}, {100, 100}} {
		if g.Toggle(c.Row, c.Col) {
			t.Fatalf("toggle(%d,%d) should be ignored", c.Row, c.Col)
		}
	}
	if !slices.Equal(before, g.Cells()) {
		t.Fatal("out-of-range toggles mutated the grid")
	}
}

func TestSetAllAndFill(t *testing.T) {
	g := NewGrid(2, 3)
	g.SetAll(func(row, col int) uint8 { return uint8(row + col) })
	want := []uint8{0, 1, 1, 1, 1, 1}
	if !slices.Equal(g.Cells(), want) {
		t.Fatalf("SetAll normalised cells = %v, want %v", g.Cells(), want)
	}
	g.Clear()
	if g.Population() != 0 {
		t.Fatal("Clear left live cells")
	}
	g.Fill(7)
	if g.Population() != 6 {
		t.Fatalf("Fill(7) population = %d, want 6", g.Population())
	}
}

func TestWrap(t *testing.T) {
	g := NewGrid(3, 5)
	r, c := g.Wrap(-1, 5)
	if r != 2 || c != 0 {
		t.Fatalf("Wrap(-1,5) = (%d,%d), want (2,0)", r, c)
	}
}

func TestCloneAndEqual(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(0, 1, 1)
	c := g.Clone()
	if !g.Equal(c) {
		t.Fatal("clone should equal source")
	}
	c.Toggle(1, 1)
	if g.Equal(c) {
		t.Fatal("clone must not share storage")
	}
	if g.Equal(NewGrid(1, 4)) {
		t.Fatal("grids with different shapes must differ")
	}
}

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)
	for i := 0; i < 32; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("draw %d differs for identical seeds", i)
		}
	}
}
