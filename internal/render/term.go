package render

import (
	"fmt"
	"io"
)

// glyphs maps cell states to two-character terminal blocks, densest first
// after the empty background. States beyond the ramp clamp to the last
// entry.
var glyphs = []string{"  ", "██", "▓▓", "▒▒", "░░"}

// Terminal renders frames as block art. Large grids are cropped to keep the
// output inside a typical terminal.
type Terminal struct {
	w, h int
	out  io.Writer
	crop int
}

// NewTerminal creates a renderer for w*h frames writing to out.
func NewTerminal(w, h int, out io.Writer) *Terminal {
	return &Terminal{w: w, h: h, out: out, crop: 80}
}

// Frame draws one generation, clearing the screen first so successive calls
// animate in place.
func (t *Terminal) Frame(cells []uint8, generation uint64, label string) {
	fmt.Fprint(t.out, "\033[H\033[2J")
	t.draw(cells)
	fmt.Fprintf(t.out, "%s  generation %d  (%dx%d)\n", label, generation, t.w, t.h)
}

// Print draws one generation without clearing the screen.
func (t *Terminal) Print(cells []uint8, generation uint64, label string) {
	t.draw(cells)
	fmt.Fprintf(t.out, "%s  generation %d  (%dx%d)\n", label, generation, t.w, t.h)
}

func (t *Terminal) draw(cells []uint8) {
	w, h := t.w, t.h
	if w > t.crop {
		w = t.crop
	}
	if h > t.crop {
		h = t.crop
	}
	last := len(glyphs) - 1
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := int(cells[y*t.w+x])
			if idx > last {
				idx = last
			}
			fmt.Fprint(t.out, glyphs[idx])
		}
		fmt.Fprintln(t.out)
	}
}
