package input

import (
	"testing"

	"life-canvas/internal/core"
)

func newTestMapper(rows, cols, cellSize int) (*Mapper, *core.Grid, *int) {
	g := core.NewGrid(rows, cols)
	redraws := new(int)
	m := NewMapper(g, cellSize, func() { *redraws++ })
	return m, g, redraws
}

func TestPointerToCell(t *testing.T) {
	cases := []struct {
		x, y   float64
		origin Point
		size   int
		want   core.Cell
	}{
		{x: 0, y: 0, size: 10, want: core.Cell{Row: 0, Col: 0}},
		{x: 19.9, y: 9.99, size: 10, want: core.Cell{Row: 0, Col: 1}},
		{x: 25, y: 37, origin: Point{X: 5, Y: 7}, size: 10, want: core.Cell{Row: 3, Col: 2}},
		{x: -0.5, y: 3, size: 10, want: core.Cell{Row: 0, Col: -1}},
		{x: 4, y: 4, size: 0, want: core.Cell{Row: 4, Col: 4}},
	}
	for _, tc := range cases {
		if got := PointerToCell(tc.x, tc.y, tc.origin, tc.size); got != tc.want {
			t.Fatalf("PointerToCell(%v,%v,%v,%d) = %+v, want %+v", tc.x, tc.y, tc.origin, tc.size, got, tc.want)
		}
	}
}

func TestDragTogglesEachCellOnce(t *testing.T) {
	m, g, redraws := newTestMapper(5, 5, 10)

	m.Down(12, 12)
	for i := 0; i < 20; i++ {
		m.Move(12+float64(i%8), 15)
	}
	if g.At(1, 1) != 1 {
		t.Fatal("cell (1,1) should be alive after one toggle")
	}
	if *redraws != 1 {
		t.Fatalf("expected 1 redraw, got %d", *redraws)
	}

	m.Move(25, 15)
	if g.At(1, 2) != 1 || *redraws != 2 {
		t.Fatal("moving to a new cell should toggle it")
	}
}

func TestReturningToCellAfterLeavingIt(t *testing.T) {
	m, g, _ := newTestMapper(5, 5, 10)
	m.Down(5, 5) // (0,0)
	m.Move(15, 5)
	m.Move(5, 5)
	if g.At(0, 0) != 0 {
		t.Fatal("moving back onto (0,0) via another cell re-toggles it")
	}
	if g.Population() != 1 {
		t.Fatalf("population = %d, want 1", g.Population())
	}
}

func TestOffGridMoveKeepsLastCell(t *testing.T) {
	m, g, _ := newTestMapper(3, 3, 10)
	m.Down(5, 5)
	m.Move(-20, 5)
	m.Move(500, 500)
	m.Move(5, 5)
	if g.At(0, 0) != 1 {
		t.Fatal("off-grid excursions must not re-enable toggling the last cell")
	}
}

func TestUpReenablesToggling(t *testing.T) {
	m, g, _ := newTestMapper(3, 3, 10)
	m.Down(5, 5)
	m.Up()
	drag := m.Drag()
	if last, ok := drag.Last(); ok {
		t.Fatalf("Up should clear the last cell, still %+v", last)
	}
	m.Down(5, 5)
	if g.At(0, 0) != 0 {
		t.Fatal("second press on the same cell should toggle it back")
	}
}

func TestMoveWithoutDownIgnored(t *testing.T) {
	m, g, redraws := newTestMapper(3, 3, 10)
	m.Move(5, 5)
	m.Down(5, 5)
	m.Leave()
	m.Move(15, 5)
	m.Cancel()
	m.Move(25, 5)
	if g.Population() != 1 || *redraws != 1 {
		t.Fatalf("population=%d redraws=%d, want 1/1", g.Population(), *redraws)
	}
}

func TestOutOfBoundsDownIgnored(t *testing.T) {
	m, g, redraws := newTestMapper(2, 2, 10)
	for _, p := range []Point{{X: -1, Y: 0}, {X: 0, Y: -1}, {X: 20, Y: 0}, {X: 0, Y: 20}} {
		if m.Down(p.X, p.Y) {
			t.Fatalf("Down at %+v toggled a cell", p)
		}
	}
	if g.Population() != 0 || *redraws != 0 {
		t.Fatal("out-of-range presses must not touch the grid")
	}
	if !m.Drag().Down {
		t.Fatal("an off-grid press still starts a drag")
	}
	m.Move(5, 5)
	if g.At(0, 0) != 1 {
		t.Fatal("dragging onto the grid after an off-grid press should paint")
	}
}

func TestSetTargetAfterResize(t *testing.T) {
	m, _, _ := newTestMapper(2, 2, 10)
	bigger := core.NewGrid(4, 4)
	m.SetTarget(bigger)
	m.Down(35, 35)
	if bigger.At(3, 3) != 1 {
		t.Fatal("mapper should paint on the new target")
	}
}
