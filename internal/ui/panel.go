package ui

import (
	"image"

	"life-canvas/internal/core"
	"life-canvas/internal/game"
)

// Button is a clickable panel entry that dispatches one command.
type Button struct {
	Label   string
	Rect    image.Rectangle
	Command game.Command
}

// Stepper shows a bounded value with -/+ buttons.
type Stepper struct {
	Control core.Control
	Value   int
	Adjust  game.CommandKind

	Top   int
	Minus image.Rectangle
	Plus  image.Rectangle
}

// Panel lays out the floating control panel and maps clicks to commands. It
// holds no drawing state so it works in headless builds.
type Panel struct {
	Toggle   Button
	Buttons  []Button
	Steppers []Stepper
	Bounds   image.Rectangle

	visible bool
}

// NewPanel lays out a panel width pixels wide anchored at the top-left corner.
func NewPanel(width int, speed, cell core.Control) *Panel {
	if width < minPanelWidth {
		width = minPanelWidth
	}
	p := &Panel{visible: true}
	p.Toggle = Button{
		Label:   "Hide",
		Rect:    image.Rect(panelMargin, panelMargin, panelMargin+toggleWidth, panelMargin+buttonSize),
		Command: game.Command{Kind: game.CmdTogglePanel},
	}

	left := panelMargin
	top := p.Toggle.Rect.Max.Y + buttonGap
	right := left + width
	y := top + panelPadding
	for _, b := range []Button{
		{Label: "Start", Command: game.Command{Kind: game.CmdToggleRun}},
		{Label: "Clear", Command: game.Command{Kind: game.CmdClear}},
		{Label: "Random", Command: game.Command{Kind: game.CmdRandomize}},
		{Label: "Noise", Command: game.Command{Kind: game.CmdNoise}},
		{Label: "Step", Command: game.Command{Kind: game.CmdStep}},
	} {
		b.Rect = image.Rect(left+panelPadding, y, right-panelPadding, y+buttonSize)
		p.Buttons = append(p.Buttons, b)
		y += buttonSize + buttonGap
	}

	y += buttonGap
	for _, s := range []Stepper{
		{Control: speed, Value: speed.Min, Adjust: game.CmdAdjustSpeed},
		{Control: cell, Value: cell.Min, Adjust: game.CmdAdjustCellSize},
	} {
		buttonY := y + (lineHeight-buttonSize)/2
		s.Top = y
		s.Plus = image.Rect(right-panelPadding-buttonSize, buttonY, right-panelPadding, buttonY+buttonSize)
		s.Minus = image.Rect(s.Plus.Min.X-buttonGap-buttonSize, buttonY, s.Plus.Min.X-buttonGap, buttonY+buttonSize)
		p.Steppers = append(p.Steppers, s)
		y += lineHeight
	}

	p.Bounds = image.Rect(left, top, right, y+panelPadding)
	return p
}

// Visible reports whether the panel body is shown.
func (p *Panel) Visible() bool { return p.visible }

// Sync copies labels and values from the game.
func (p *Panel) Sync(g *game.Game) {
	p.visible = g.PanelVisible()
	p.Toggle.Label = "Hide"
	if !p.visible {
		p.Toggle.Label = "Show"
	}
	for i := range p.Buttons {
		if p.Buttons[i].Command.Kind == game.CmdToggleRun {
			p.Buttons[i].Label = g.RunLabel()
		}
	}
	for i := range p.Steppers {
		switch p.Steppers[i].Adjust {
		case game.CmdAdjustSpeed:
			p.Steppers[i].Value = g.Speed()
		case game.CmdAdjustCellSize:
			p.Steppers[i].Value = g.CellSize()
		}
	}
}

// Contains reports whether (x, y) is over a visible part of the panel, where
// pointer presses belong to the panel rather than the grid.
func (p *Panel) Contains(x, y int) bool {
	pt := image.Pt(x, y)
	if pt.In(p.Toggle.Rect) {
		return true
	}
	return p.visible && pt.In(p.Bounds)
}

// Hit maps a click to a command. Disabled stepper buttons and clicks on the
// panel background return false.
func (p *Panel) Hit(x, y int) (game.Command, bool) {
	pt := image.Pt(x, y)
	if pt.In(p.Toggle.Rect) {
		return p.Toggle.Command, true
	}
	if !p.visible {
		return game.Command{}, false
	}
	for _, b := range p.Buttons {
		if pt.In(b.Rect) {
			return b.Command, true
		}
	}
	for _, s := range p.Steppers {
		if pt.In(s.Minus) && s.Control.CanAdjust(s.Value, -1) {
			return game.Command{Kind: s.Adjust, Value: -1}, true
		}
		if pt.In(s.Plus) && s.Control.CanAdjust(s.Value, 1) {
			return game.Command{Kind: s.Adjust, Value: 1}, true
		}
	}
	return game.Command{}, false
}

const (
	panelMargin   = 8
	panelPadding  = 12
	minPanelWidth = 160
	toggleWidth   = 48
	lineHeight    = 36
	buttonSize    = 24
	buttonGap     = 6
	labelBaseline = 24
)
