//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Status describes the values the HUD displays each frame.
type Status struct {
	Generation int
	Population int
	TPS        int
	Paused     bool
	Pattern    string
}

// HUD draws simulation status text in the top-left corner of the view.
type HUD struct {
	visible bool
}

// NewHUD returns a visible HUD.
func NewHUD() *HUD { return &HUD{visible: true} }

// Toggle flips HUD visibility.
func (h *HUD) Toggle() { h.visible = !h.visible }

// Draw renders the status lines with a one-pixel drop shadow so they
// stay readable over a live board.
func (h *HUD) Draw(screen *ebiten.Image, st Status) {
	if h == nil || !h.visible {
		return
	}
	state := "running"
	if st.Paused {
		state = "paused"
	}
	lines := []string{
		fmt.Sprintf("gen %d  alive %d  %d tps  %s", st.Generation, st.Population, st.TPS, state),
		fmt.Sprintf("stamp: %s (right click places, tab cycles)", st.Pattern),
		"space pause  n step  c clear  s soup  -/= speed  h hud  q quit",
	}
	face := basicfont.Face7x13
	y := 16
	for _, line := range lines {
		text.Draw(screen, line, face, 9, y+1, color.Black)
		text.Draw(screen, line, face, 8, y, color.White)
		y += 14
	}
}
