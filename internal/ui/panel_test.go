package ui

import (
	"image"
	"testing"

	"life-canvas/internal/game"
)

func center(r image.Rectangle) (int, int) {
	return (r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2
}

func newPanelGame(t *testing.T) (*Panel, *game.Game) {
	t.Helper()
	opts := game.DefaultOptions()
	opts.Width, opts.Height = 400, 300
	g := game.New(nil, opts)
	p := NewPanel(200, g.SpeedControl(), g.CellControl())
	p.Sync(g)
	return p, g
}

func TestPanelButtonsDispatch(t *testing.T) {
	p, g := newPanelGame(t)
	var run image.Rectangle
	for _, b := range p.Buttons {
		if b.Command.Kind == game.CmdToggleRun {
			run = b.Rect
		}
	}
	cmd, ok := p.Hit(center(run))
	if !ok || cmd.Kind != game.CmdToggleRun {
		t.Fatalf("start button hit = %v %v", cmd, ok)
	}
	g.Dispatch(cmd)
	p.Sync(g)
	if p.Buttons[0].Label != "Stop" {
		t.Fatalf("run label = %q, want Stop", p.Buttons[0].Label)
	}
}

func TestStepperRespectsBounds(t *testing.T) {
	p, g := newPanelGame(t)
	g.Dispatch(game.Command{Kind: game.CmdSetSpeed, Value: 1})
	p.Sync(g)

	speed := p.Steppers[0]
	if _, ok := p.Hit(center(speed.Minus)); ok {
		t.Fatal("minus at minimum speed should be disabled")
	}
	cmd, ok := p.Hit(center(speed.Plus))
	if !ok || cmd != (game.Command{Kind: game.CmdAdjustSpeed, Value: 1}) {
		t.Fatalf("plus hit = %v %v", cmd, ok)
	}
	g.Dispatch(cmd)
	if g.Speed() != 2 {
		t.Fatalf("speed = %d, want 2", g.Speed())
	}
}

func TestHiddenPanelOnlyShowsToggle(t *testing.T) {
	p, g := newPanelGame(t)
	g.Dispatch(game.Command{Kind: game.CmdTogglePanel})
	p.Sync(g)

	if p.Toggle.Label != "Show" {
		t.Fatalf("toggle label = %q", p.Toggle.Label)
	}
	x, y := center(p.Buttons[1].Rect)
	if p.Contains(x, y) {
		t.Fatal("hidden panel must not capture pointer presses")
	}
	if _, ok := p.Hit(x, y); ok {
		t.Fatal("hidden buttons must not be clickable")
	}
	if cmd, ok := p.Hit(center(p.Toggle.Rect)); !ok || cmd.Kind != game.CmdTogglePanel {
		t.Fatal("toggle stays clickable while hidden")
	}
}

func TestPanelBackgroundCapturesButDoesNothing(t *testing.T) {
	p, _ := newPanelGame(t)
	x, y := p.Bounds.Min.X+2, p.Bounds.Min.Y+2
	if !p.Contains(x, y) {
		t.Fatal("panel body should capture presses")
	}
	if _, ok := p.Hit(x, y); ok {
		t.Fatal("panel padding is not a button")
	}
	if p.Contains(p.Bounds.Max.X+10, p.Bounds.Max.Y+10) {
		t.Fatal("area outside the panel belongs to the grid")
	}
}
