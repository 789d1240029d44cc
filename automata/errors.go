package automata

import "fmt"

// ShapeError reports an array whose length does not match a grid's fixed
// shape. Shape mismatches are always rejected at the boundary, never
// truncated or broadcast.
type ShapeError struct {
	WantW, WantH int
	Got          int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("automata: state length %d does not match %dx%d grid", e.Got, e.WantW, e.WantH)
}

// SymbolError reports a cell value outside the automaton's declared alphabet.
type SymbolError struct {
	Index  int
	Value  uint8
	States int
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("automata: cell %d holds symbol %d outside alphabet of %d states", e.Index, e.Value, e.States)
}

// KernelError reports an invalid kernel definition.
type KernelError struct {
	Reason string
}

func (e *KernelError) Error() string {
	return "automata: invalid kernel: " + e.Reason
}

// RuleDomainError reports a (state, aggregate) pair for which a rule has no
// defined mapping.
type RuleDomainError struct {
	State     uint8
	Aggregate int
}

func (e *RuleDomainError) Error() string {
	return fmt.Sprintf("automata: rule has no mapping for state %d with aggregate %d", e.State, e.Aggregate)
}
