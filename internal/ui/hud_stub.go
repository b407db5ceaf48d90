//go:build !ebiten

package ui

import "life-canvas/internal/game"

// HUD is a no-op placeholder for headless builds.
type HUD struct {
	panel *Panel
}

// NewHUD wraps the panel without any drawing resources.
func NewHUD(panel *Panel) *HUD { return &HUD{panel: panel} }

// Panel exposes the layout used for hit testing.
func (h *HUD) Panel() *Panel { return h.panel }

// Update keeps the panel in sync so hit testing still works headless.
func (h *HUD) Update(g *game.Game) {
	if h != nil {
		h.panel.Sync(g)
	}
}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any) {}
