//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Status draws a one-line HUD with the preset name, generation counter, and
// pause state.
type Status struct {
	visible bool
}

// NewStatus constructs a status line, visible by default.
func NewStatus() *Status {
	return &Status{visible: true}
}

// Toggle flips visibility.
func (s *Status) Toggle() { s.visible = !s.visible }

// Draw renders the status line in the top-left corner.
func (s *Status) Draw(screen *ebiten.Image, name string, generation uint64, paused bool) {
	if !s.visible {
		return
	}
	line := fmt.Sprintf("%s  gen %d", name, generation)
	if paused {
		line += "  [paused]"
	}
	face := basicfont.Face7x13
	// Shadow first so the text stays readable on light cells.
	text.Draw(screen, line, face, 5, 14, color.RGBA{A: 255})
	text.Draw(screen, line, face, 4, 13, color.RGBA{R: 220, G: 220, B: 230, A: 255})
}
