//go:build ebiten

package app

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"life-canvas/internal/game"
	"life-canvas/internal/log"
	"life-canvas/internal/render"
	"life-canvas/internal/ui"
)

const panelWidth = 200

var keyNames = map[ebiten.Key]string{
	ebiten.KeySpace:          "space",
	ebiten.KeyEnter:          "enter",
	ebiten.KeyC:              "c",
	ebiten.KeyR:              "r",
	ebiten.KeyP:              "p",
	ebiten.KeyN:              "n",
	ebiten.KeyEqual:          "=",
	ebiten.KeyNumpadAdd:      "+",
	ebiten.KeyMinus:          "-",
	ebiten.KeyNumpadSubtract: "-",
	ebiten.KeyBracketRight:   "]",
	ebiten.KeyBracketLeft:    "[",
	ebiten.KeyH:              "h",
}

// Game adapts the simulation to the ebiten.Game interface.
type Game struct {
	sim     *game.Game
	surface *render.ImageSurface
	hud     *ui.HUD
	overlay *ui.Overlay
	log     *log.Logger

	width, height int

	mouseDown bool
	touching  bool
	touchID   ebiten.TouchID
	touchIDs  []ebiten.TouchID
}

// New constructs a Game from the parsed configuration.
func New(cfg *Config, logger *log.Logger) *Game {
	surface := render.NewImageSurface()
	sim := game.New(surface, cfg.Options(logger))
	return &Game{
		sim:     sim,
		surface: surface,
		hud:     ui.NewHUD(ui.NewPanel(panelWidth, sim.SpeedControl(), sim.CellControl())),
		overlay: ui.NewOverlay(),
		log:     logger,
		width:   cfg.Width,
		height:  cfg.Height,
	}
}

// Update handles per-frame input and delivers the frame to the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.overlay.Toggle()
	}
	for key, name := range keyNames {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		if cmd, ok := game.LookupKey(name); ok {
			g.sim.Dispatch(cmd)
		}
	}

	g.hud.Update(g.sim)
	g.handleMouse()
	g.handleTouch()

	g.sim.Tick()
	g.hud.Update(g.sim)
	return nil
}

func (g *Game) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height && !g.hud.Panel().Contains(x, y)
}

// press routes a press to the panel or starts painting. It reports whether
// painting started.
func (g *Game) press(x, y int) bool {
	panel := g.hud.Panel()
	if panel.Contains(x, y) {
		if cmd, ok := panel.Hit(x, y); ok {
			g.sim.Dispatch(cmd)
		}
		return false
	}
	return true
}

func (g *Game) handleMouse() {
	x, y := ebiten.CursorPosition()
	g.overlay.Hover(x, y)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if g.press(x, y) {
			g.mouseDown = true
			g.sim.PointerDown(float64(x), float64(y))
		}
		return
	}
	if !g.mouseDown {
		return
	}
	switch {
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.mouseDown = false
		g.sim.PointerUp()
	case !g.inside(x, y):
		g.mouseDown = false
		g.sim.PointerLeave()
	default:
		g.sim.PointerMove(float64(x), float64(y))
	}
}

func (g *Game) handleTouch() {
	if !g.touching {
		g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
		if len(g.touchIDs) == 0 {
			return
		}
		id := g.touchIDs[0]
		x, y := ebiten.TouchPosition(id)
		if g.press(x, y) {
			g.touching = true
			g.touchID = id
			g.sim.TouchStart(float64(x), float64(y))
		}
		return
	}
	if inpututil.IsTouchJustReleased(g.touchID) {
		g.touching = false
		g.sim.TouchEnd()
		return
	}
	x, y := ebiten.TouchPosition(g.touchID)
	if !g.inside(x, y) {
		g.touching = false
		g.sim.TouchCancel()
		return
	}
	g.sim.TouchMove(float64(x), float64(y))
}

// Draw blits the painted grid and the controls.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if img := g.surface.Image(); img != nil {
		screen.DrawImage(img, nil)
	}
	g.overlay.Draw(screen, g.sim)
	g.hud.Draw(screen)
}

// Layout tracks the window size; a change rebuilds the grid for the new
// viewport.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.log.Debugf("window resized to %dx%d", outsideWidth, outsideHeight)
		g.sim.ResizeViewport(outsideWidth, outsideHeight)
	}
	return g.width, g.height
}

// Sim exposes the underlying simulation.
func (g *Game) Sim() *game.Game { return g.sim }
