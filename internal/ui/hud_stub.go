//go:build !ebiten

package ui

// HUD is a placeholder used when the ebiten build tag is not present.
type HUD struct{}

// NewHUD returns nil in headless builds.
func NewHUD(Panel, int) *HUD { return nil }

// Update is a no-op placeholder.
func (h *HUD) Update(int) {}

// Draw is a no-op placeholder.
func (h *HUD) Draw(any, int, int) {}
