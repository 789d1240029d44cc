package automata

import (
	"fmt"
	"strings"
)

// Boundary selects how coordinates outside the grid are resolved.
type Boundary int

const (
	// Wrap treats the grid as a torus; indices wrap modulo the shape.
	Wrap Boundary = iota
	// ZeroFill reads out-of-range cells as the background symbol 0.
	ZeroFill
	// Clamp snaps out-of-range indices to the nearest edge cell.
	Clamp
)

// String returns the config-file spelling of the boundary policy.
func (b Boundary) String() string {
	switch b {
	case Wrap:
		return "wrap"
	case ZeroFill:
		return "zerofill"
	case Clamp:
		return "clamp"
	}
	return "unknown"
}

// ParseBoundary maps a config string to a boundary policy.
func ParseBoundary(s string) (Boundary, bool) {
	switch strings.ToLower(s) {
	case "wrap", "torus", "toroidal":
		return Wrap, true
	case "zerofill", "zero", "fixed":
		return ZeroFill, true
	case "clamp", "clamped":
		return Clamp, true
	}
	return Wrap, false
}

// Grid stores a 2D field of cell symbols in row-major order. The shape and
// alphabet are fixed for the grid's lifetime; only the cell values change,
// and only as whole-array swaps.
type Grid struct {
	w, h     int
	states   int
	boundary Boundary
	cells    []uint8
}

// NewGrid constructs a grid from an initial state array. Dimensions must be
// positive and the alphabet needs at least two states; the array length must
// equal w*h and every value must lie inside the alphabet [0, states). A nil
// initial state yields an all-zero grid.
func NewGrid(w, h int, initial []uint8, states int, boundary Boundary) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("automata: grid shape %dx%d is not positive", w, h)
	}
	if states < 2 {
		return nil, fmt.Errorf("automata: alphabet needs at least two states, got %d", states)
	}
	g := &Grid{w: w, h: h, states: states, boundary: boundary, cells: make([]uint8, w*h)}
	if initial == nil {
		return g, nil
	}
	if len(initial) != w*h {
		return nil, &ShapeError{WantW: w, WantH: h, Got: len(initial)}
	}
	for i, v := range initial {
		if int(v) >= states {
			return nil, &SymbolError{Index: i, Value: v, States: states}
		}
	}
	copy(g.cells, initial)
	return g, nil
}

// Width returns the horizontal cell count.
func (g *Grid) Width() int { return g.w }

// Height returns the vertical cell count.
func (g *Grid) Height() int { return g.h }

// States returns the alphabet size.
func (g *Grid) States() int { return g.states }

// Boundary returns the boundary policy.
func (g *Grid) Boundary() Boundary { return g.boundary }

// Cells exposes the backing slice so seeding helpers can write values
// directly. Once a simulation owns the grid, all mutation goes through it.
func (g *Grid) Cells() []uint8 { return g.cells }

// Index returns the linear slice index for in-range coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.w + x }

// resolve maps arbitrary integer coordinates to a linear index under the
// boundary policy. ok is false only for ZeroFill coordinates outside the
// grid, which read as the background symbol.
func (g *Grid) resolve(x, y int) (int, bool) {
	if x >= 0 && x < g.w && y >= 0 && y < g.h {
		return y*g.w + x, true
	}
	switch g.boundary {
	case Wrap:
		x = (x%g.w + g.w) % g.w
		y = (y%g.h + g.h) % g.h
	case ZeroFill:
		return 0, false
	case Clamp:
		if x < 0 {
			x = 0
		} else if x >= g.w {
			x = g.w - 1
		}
		if y < 0 {
			y = 0
		} else if y >= g.h {
			y = g.h - 1
		}
	}
	return y*g.w + x, true
}

// At reads the cell at (x, y), resolving out-of-range coordinates through
// the boundary policy. It never panics for any integer input.
func (g *Grid) At(x, y int) uint8 {
	idx, ok := g.resolve(x, y)
	if !ok {
		return 0
	}
	return g.cells[idx]
}

// SetState replaces the entire state array as a single atomic swap. The new
// state is validated before any of it becomes visible.
func (g *Grid) SetState(next []uint8) error {
	if len(next) != len(g.cells) {
		return &ShapeError{WantW: g.w, WantH: g.h, Got: len(next)}
	}
	for i, v := range next {
		if int(v) >= g.states {
			return &SymbolError{Index: i, Value: v, States: g.states}
		}
	}
	copy(g.cells, next)
	return nil
}

// Snapshot returns an independent copy of the current state. Mutating the
// copy never affects the grid.
func (g *Grid) Snapshot() []uint8 {
	return append([]uint8(nil), g.cells...)
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{w: g.w, h: g.h, states: g.states, boundary: g.boundary, cells: g.Snapshot()}
}

// Clear fills the grid with the background symbol.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = 0
	}
}
