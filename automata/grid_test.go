package automata

import (
	"errors"
	"slices"
	"testing"
)

func TestNewGridValidation(t *testing.T) {
	if _, err := NewGrid(3, 2, []uint8{0, 1}, 2, Wrap); err == nil {
		t.Fatal("expected shape error for short initial state")
	} else {
		var se *ShapeError
		if !errors.As(err, &se) {
			t.Fatalf("expected ShapeError, got %v", err)
		}
	}

	if _, err := NewGrid(2, 2, []uint8{0, 1, 2, 0}, 2, Wrap); err == nil {
		t.Fatal("expected symbol error for out-of-alphabet value")
	} else {
		var se *SymbolError
		if !errors.As(err, &se) {
			t.Fatalf("expected SymbolError, got %v", err)
		}
		if se.Index != 2 || se.Value != 2 {
			t.Fatalf("SymbolError should name the offending cell, got %+v", se)
		}
	}

	if _, err := NewGrid(0, 4, nil, 2, Wrap); err == nil {
		t.Fatal("zero width must be rejected, not defaulted")
	}
	if _, err := NewGrid(4, -1, nil, 2, Wrap); err == nil {
		t.Fatal("negative height must be rejected, not defaulted")
	}
	if _, err := NewGrid(4, 4, nil, 1, Wrap); err == nil {
		t.Fatal("a one-state alphabet must be rejected, not widened")
	}

	g, err := NewGrid(4, 3, nil, 2, Wrap)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range g.Cells() {
		if v != 0 {
			t.Fatalf("nil initial state should zero cell %d, got %d", i, v)
		}
	}
}

func TestAtBoundaryPolicies(t *testing.T) {
	state := []uint8{
		1, 2, 3,
		4, 5, 6,
	}

	wrap, err := NewGrid(3, 2, state, 7, Wrap)
	if err != nil {
		t.Fatal(err)
	}
	if got := wrap.At(-1, 0); got != 3 {
		t.Fatalf("wrap At(-1,0) = %d, want 3", got)
	}
	if got := wrap.At(3, 2); got != 1 {
		t.Fatalf("wrap At(3,2) = %d, want 1", got)
	}
	if got := wrap.At(-7, -5); got != 6 {
		t.Fatalf("wrap At(-7,-5) = %d, want 6", got)
	}

	zero, err := NewGrid(3, 2, state, 7, ZeroFill)
	if err != nil {
		t.Fatal(err)
	}
	if got := zero.At(-1, 0); got != 0 {
		t.Fatalf("zerofill At(-1,0) = %d, want 0", got)
	}
	if got := zero.At(1, 1); got != 5 {
		t.Fatalf("zerofill in-range At(1,1) = %d, want 5", got)
	}

	clamp, err := NewGrid(3, 2, state, 7, Clamp)
	if err != nil {
		t.Fatal(err)
	}
	if got := clamp.At(-10, 0); got != 1 {
		t.Fatalf("clamp At(-10,0) = %d, want 1", got)
	}
	if got := clamp.At(99, 99); got != 6 {
		t.Fatalf("clamp At(99,99) = %d, want 6", got)
	}
}

func TestSetStateAtomic(t *testing.T) {
	g, err := NewGrid(2, 2, []uint8{1, 0, 0, 1}, 2, Wrap)
	if err != nil {
		t.Fatal(err)
	}
	before := g.Snapshot()

	if err := g.SetState([]uint8{1, 1, 1}); err == nil {
		t.Fatal("expected shape error")
	}
	if !slices.Equal(g.Cells(), before) {
		t.Fatal("failed SetState must leave the grid untouched")
	}

	if err := g.SetState([]uint8{0, 0, 9, 0}); err == nil {
		t.Fatal("expected symbol error")
	}
	if !slices.Equal(g.Cells(), before) {
		t.Fatal("invalid symbols must leave the grid untouched")
	}

	next := []uint8{0, 1, 1, 0}
	if err := g.SetState(next); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(g.Cells(), next) {
		t.Fatal("SetState should install the new state")
	}
}

func TestSnapshotIndependent(t *testing.T) {
	g, err := NewGrid(2, 2, []uint8{1, 0, 0, 1}, 2, Wrap)
	if err != nil {
		t.Fatal(err)
	}
	snap := g.Snapshot()
	snap[0] = 0
	if g.Cells()[0] != 1 {
		t.Fatal("mutating a snapshot must not affect the grid")
	}
}

func TestParseBoundary(t *testing.T) {
	cases := map[string]Boundary{
		"wrap":     Wrap,
		"toroidal": Wrap,
		"zerofill": ZeroFill,
		"fixed":    ZeroFill,
		"clamp":    Clamp,
	}
	for in, want := range cases {
		got, ok := ParseBoundary(in)
		if !ok || got != want {
			t.Fatalf("ParseBoundary(%q) = %v, %v", in, got, ok)
		}
	}
	if _, ok := ParseBoundary("mirror"); ok {
		t.Fatal("unknown boundary strings must not parse")
	}
}
