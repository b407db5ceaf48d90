// Package game wires the grid, engine, input mapper and animation driver
// behind one host-facing API. It is single-threaded: the host calls every
// method from its own loop.
package game

import (
	"image/color"
	"time"

	"life-canvas/internal/anim"
	"life-canvas/internal/core"
	"life-canvas/internal/input"
	"life-canvas/internal/life"
	"life-canvas/internal/log"
	"life-canvas/internal/render"
	"life-canvas/internal/seed"
)

// Options configures a Game.
type Options struct {
	Width, Height int
	CellSize      int
	Speed         int
	Density       float64
	Seed          int64
	Noise         seed.NoiseParams
	Live          color.Color

	SpeedControl core.Control
	CellControl  core.Control

	// Now reports the host clock used for frame timestamps. Defaults to the
	// time since New.
	Now    func() time.Duration
	Logger *log.Logger
}

// DefaultOptions uses 10px cells at 10 generations per second.
func DefaultOptions() Options {
	return Options{
		Width:        800,
		Height:       600,
		CellSize:     10,
		Speed:        10,
		Density:      seed.DefaultDensity,
		Seed:         1,
		Noise:        seed.DefaultNoise,
		Live:         render.DefaultLiveColor,
		SpeedControl: core.Control{Key: "speed", Label: "Speed", Unit: "FPS", Step: 1, Min: 1, Max: 60},
		CellControl:  core.Control{Key: "cell", Label: "Cell size", Unit: "px", Step: 1, Min: 2, Max: 50},
	}
}

// Game is the interactive Life simulation.
type Game struct {
	opts    Options
	log     *log.Logger
	surface render.Surface
	painter *render.Painter

	grid     *core.Grid
	spare    *core.Grid
	width    int
	height   int
	cellSize int

	frames *anim.FrameQueue
	driver *anim.Driver
	mapper *input.Mapper
	rng    *core.RNG

	panelVisible bool
	generation   uint64
	redraws      uint64
}

// New builds a game sized to opts.Width×opts.Height and paints the empty grid.
func New(surface render.Surface, opts Options) *Game {
	if opts.Now == nil {
		start := time.Now()
		opts.Now = func() time.Duration { return time.Since(start) }
	}
	if opts.Logger == nil {
		opts.Logger = log.Discard()
	}
	if opts.CellSize < 1 {
		opts.CellSize = 1
	}

	g := &Game{
		opts:         opts,
		log:          opts.Logger,
		surface:      surface,
		painter:      render.NewPainter(opts.Live),
		cellSize:     opts.CellSize,
		frames:       anim.NewFrameQueue(),
		rng:          core.NewRNG(opts.Seed),
		panelVisible: true,
		grid:         &core.Grid{},
		spare:        &core.Grid{},
	}
	g.driver = anim.NewDriver(g.frames, opts.Now, opts.Speed, g.advance)
	g.mapper = input.NewMapper(g.grid, g.cellSize, g.Draw)
	g.rebuild(opts.Width, opts.Height)
	g.log.Infof("grid %dx%d at %dpx cells, %d FPS", g.grid.Rows, g.grid.Cols, g.cellSize, g.driver.Speed())
	g.Draw()
	return g
}

// rebuild resizes and reinitializes the grid for the viewport.
func (g *Game) rebuild(width, height int) {
	g.width, g.height = max(width, 0), max(height, 0)
	g.grid.Resize(g.width, g.height, g.cellSize)
	g.grid.Reinitialize()
	g.spare.Resize(g.width, g.height, g.cellSize)
	g.spare.Reinitialize()
	g.mapper.SetTarget(g.grid)
	g.mapper.CellSize = g.cellSize
	g.mapper.Up()
	g.generation = 0
}

// ResizeViewport reacts to a host resize: the grid is rebuilt empty for the
// new dimensions and redrawn. The running state is kept.
func (g *Game) ResizeViewport(width, height int) {
	g.rebuild(width, height)
	g.log.Debugf("viewport %dx%d -> grid %dx%d", g.width, g.height, g.grid.Rows, g.grid.Cols)
	g.Draw()
}

// SetCellSize stops the simulation and rebuilds an empty grid. Sizes below 1
// are raised to 1.
func (g *Game) SetCellSize(size int) {
	if size < 1 {
		size = 1
	}
	g.cellSize = size
	g.rebuild(g.width, g.height)
	g.Stop()
	g.Draw()
}

// SetSpeed changes the rate live; values below 1 are raised to 1.
func (g *Game) SetSpeed(fps int) { g.driver.SetSpeed(fps) }

// Start runs the simulation from the next frame.
func (g *Game) Start() {
	if g.driver.Running() {
		return
	}
	g.driver.Start()
	g.log.Infof("started at %d FPS", g.driver.Speed())
}

// Stop halts the simulation.
func (g *Game) Stop() {
	if !g.driver.Running() {
		return
	}
	g.driver.Stop()
	g.log.Infof("stopped at generation %d", g.generation)
}

// Clear stops the simulation and kills every cell.
func (g *Game) Clear() {
	g.Stop()
	g.grid.Clear()
	g.generation = 0
	g.Draw()
}

// Randomize makes each cell alive with the configured density.
func (g *Game) Randomize() {
	g.Fill(seed.Random(g.rng, g.opts.Density))
}

// Noise seeds clustered life from a fresh Perlin field.
func (g *Game) Noise() {
	g.Fill(seed.Noise(g.rng.Source().Int64(), g.opts.Noise))
}

// Fill assigns every cell from fn and redraws.
func (g *Game) Fill(fn seed.Fill) {
	g.grid.SetAll(fn)
	g.generation = 0
	g.Draw()
}

// StepOnce advances one generation while stopped.
func (g *Game) StepOnce() bool {
	if g.driver.Running() {
		return false
	}
	g.advance()
	return true
}

// advance runs one generation into the spare buffer, swaps, and redraws.
func (g *Game) advance() {
	life.StepInto(g.spare, g.grid)
	g.grid, g.spare = g.spare, g.grid
	g.mapper.SetTarget(g.grid)
	g.generation++
	g.Draw()
}

// Frame delivers a host frame at now.
func (g *Game) Frame(now time.Duration) { g.frames.Pump(now) }

// Tick delivers a host frame stamped with the game clock.
func (g *Game) Tick() { g.Frame(g.opts.Now()) }

// Draw repaints the whole grid onto the surface.
func (g *Game) Draw() {
	g.redraws++
	if g.surface == nil {
		return
	}
	g.painter.Paint(g.surface, g.grid, g.cellSize, g.width, g.height)
}

// SetOrigin sets the surface origin in client coordinates used for pointer mapping.
func (g *Game) SetOrigin(x, y float64) { g.mapper.Origin = input.Point{X: x, Y: y} }

// PointerDown starts a paint gesture (mouse-down).
func (g *Game) PointerDown(x, y float64) { g.mapper.Down(x, y) }

// PointerMove paints while the pointer is down (mouse-move).
func (g *Game) PointerMove(x, y float64) { g.mapper.Move(x, y) }

// PointerUp ends a paint gesture (mouse-up).
func (g *Game) PointerUp() { g.mapper.Up() }

// PointerLeave ends a paint gesture when the pointer leaves the surface.
func (g *Game) PointerLeave() { g.mapper.Leave() }

// TouchStart is PointerDown for the first touch point.
func (g *Game) TouchStart(x, y float64) { g.mapper.Down(x, y) }

// TouchMove is PointerMove for the first touch point.
func (g *Game) TouchMove(x, y float64) { g.mapper.Move(x, y) }

// TouchEnd ends a touch gesture.
func (g *Game) TouchEnd() { g.mapper.Up() }

// TouchCancel ends an interrupted touch gesture.
func (g *Game) TouchCancel() { g.mapper.Cancel() }

// Dispatch applies a control-panel command. Set and adjust values are clamped
// to the matching control's range.
func (g *Game) Dispatch(cmd Command) {
	g.log.Debugf("command %s", cmd)
	switch cmd.Kind {
	case CmdToggleRun:
		if g.driver.Running() {
			g.Stop()
		} else {
			g.Start()
		}
	case CmdStart:
		g.Start()
	case CmdStop:
		g.Stop()
	case CmdClear:
		g.Clear()
	case CmdRandomize:
		g.Randomize()
	case CmdNoise:
		g.Noise()
	case CmdStep:
		if !g.StepOnce() {
			g.log.Debugf("step ignored while running")
		}
	case CmdSetSpeed:
		g.SetSpeed(g.opts.SpeedControl.Clamp(cmd.Value))
	case CmdAdjustSpeed:
		g.SetSpeed(g.opts.SpeedControl.Adjust(g.driver.Speed(), cmd.Value))
	case CmdSetCellSize:
		g.SetCellSize(g.opts.CellControl.Clamp(cmd.Value))
	case CmdAdjustCellSize:
		if next := g.opts.CellControl.Adjust(g.cellSize, cmd.Value); next != g.cellSize {
			g.SetCellSize(next)
		}
	case CmdTogglePanel:
		g.panelVisible = !g.panelVisible
	default:
		g.log.Warnf("unknown command %s", cmd)
	}
}

// Grid returns the current generation.
func (g *Game) Grid() *core.Grid { return g.grid }

// Running reports whether the simulation is stepping.
func (g *Game) Running() bool { return g.driver.Running() }

// RunLabel is the caption for the start/stop control.
func (g *Game) RunLabel() string {
	if g.driver.Running() {
		return "Stop"
	}
	return "Start"
}

// Speed returns generations per second.
func (g *Game) Speed() int { return g.driver.Speed() }

// CellSize returns pixels per cell.
func (g *Game) CellSize() int { return g.cellSize }

// Viewport returns the surface size in pixels.
func (g *Game) Viewport() core.Size { return core.Size{W: g.width, H: g.height} }

// Generation counts steps since the grid was last cleared, seeded or rebuilt.
func (g *Game) Generation() uint64 { return g.generation }

// Population counts live cells.
func (g *Game) Population() int { return g.grid.Population() }

// PanelVisible reports whether the control panel is shown.
func (g *Game) PanelVisible() bool { return g.panelVisible }

// Redraws counts full repaints, mostly for tests and the overlay.
func (g *Game) Redraws() uint64 { return g.redraws }

// SpeedControl describes the speed setting's bounds.
func (g *Game) SpeedControl() core.Control { return g.opts.SpeedControl }

// CellControl describes the cell-size setting's bounds.
func (g *Game) CellControl() core.Control { return g.opts.CellControl }

// CellAt maps a client position to a cell, reporting whether it is on the grid.
func (g *Game) CellAt(x, y float64) (core.Cell, bool) {
	c := input.PointerToCell(x, y, g.mapper.Origin, g.cellSize)
	return c, g.grid.InBounds(c.Row, c.Col)
}
