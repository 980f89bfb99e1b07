//go:build !ebiten

package ui

// Status describes the values the HUD displays each frame.
type Status struct {
	Generation int
	Population int
	TPS        int
	Paused     bool
	Pattern    string
}

// HUD is a placeholder for builds without the ebiten tag.
type HUD struct{}

// NewHUD returns an inert HUD.
func NewHUD() *HUD { return &HUD{} }

// Toggle is a no-op placeholder.
func (h *HUD) Toggle() {}

// Draw is a no-op placeholder to satisfy the GUI build's API shape.
func (h *HUD) Draw(any, Status) {}
