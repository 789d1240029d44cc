package automata

import (
	"fmt"
	"regexp"
	"strconv"
)

// Rule maps a cell's current state plus its aggregated neighborhood to the
// next state. A rule is pure and local: the result depends only on the
// arguments, never on neighbors' next values or the cell's position. counts
// is nil for WeightedSum rules; sum is zero for PerSymbolCounts rules.
type Rule interface {
	States() int
	Aggregation() Mode
	Next(current uint8, sum int, counts []int) (uint8, error)
}

// TableRule is a dense lookup table over (state, aggregate) pairs, the
// precomputed form of an outer-totalistic rule. Entries left unmapped are a
// RuleDomainError when looked up.
type TableRule struct {
	states int
	span   int
	table  []int16
}

// NewTableRule allocates an empty table covering aggregates [0, span) for
// each of the given states. All entries start unmapped.
func NewTableRule(states, span int) *TableRule {
	if states < 2 {
		states = 2
	}
	if span < 1 {
		span = 1
	}
	table := make([]int16, states*span)
	for i := range table {
		table[i] = -1
	}
	return &TableRule{states: states, span: span, table: table}
}

// Map defines the next state for a (state, aggregate) pair.
func (r *TableRule) Map(state uint8, aggregate int, next uint8) error {
	if int(state) >= r.states {
		return &SymbolError{Index: -1, Value: state, States: r.states}
	}
	if int(next) >= r.states {
		return &SymbolError{Index: -1, Value: next, States: r.states}
	}
	if aggregate < 0 || aggregate >= r.span {
		return &RuleDomainError{State: state, Aggregate: aggregate}
	}
	r.table[int(state)*r.span+aggregate] = int16(next)
	return nil
}

// States returns the alphabet size.
func (r *TableRule) States() int { return r.states }

// Aggregation reports that the table consumes a single weighted sum.
func (r *TableRule) Aggregation() Mode { return WeightedSum }

// Next implements Rule.
func (r *TableRule) Next(current uint8, sum int, _ []int) (uint8, error) {
	if int(current) >= r.states || sum < 0 || sum >= r.span {
		return 0, &RuleDomainError{State: current, Aggregate: sum}
	}
	v := r.table[int(current)*r.span+sum]
	if v < 0 {
		return 0, &RuleDomainError{State: current, Aggregate: sum}
	}
	return uint8(v), nil
}

// FuncRule wraps a closed-form update function with a declared alphabet and
// aggregation mode.
type FuncRule struct {
	states int
	mode   Mode
	fn     func(current uint8, sum int, counts []int) uint8
}

// NewFuncRule builds a rule from an update function. The function must
// return values inside the alphabet for every reachable input; violations
// are caught eagerly by the simulation driver.
func NewFuncRule(states int, mode Mode, fn func(current uint8, sum int, counts []int) uint8) *FuncRule {
	if states < 2 {
		states = 2
	}
	return &FuncRule{states: states, mode: mode, fn: fn}
}

// States returns the alphabet size.
func (r *FuncRule) States() int { return r.states }

// Aggregation returns the declared aggregation mode.
func (r *FuncRule) Aggregation() Mode { return r.mode }

// Next implements Rule.
func (r *FuncRule) Next(current uint8, sum int, counts []int) (uint8, error) {
	return r.fn(current, sum, counts), nil
}

var ruleStringRE = regexp.MustCompile(`^[bB]?([0-9]*)/[sS]?([0-9]*)$`)

// ParseRuleString parses a lifelike rule string in B/S notation ("B3/S23",
// "3/23", "b36/s23") into birth and survive aggregate sets.
func ParseRuleString(s string) (birth, survive []int, err error) {
	m := ruleStringRE.FindStringSubmatch(s)
	if m == nil {
		return nil, nil, fmt.Errorf("automata: invalid rule string %q", s)
	}
	for _, ch := range m[1] {
		n, _ := strconv.Atoi(string(ch))
		birth = append(birth, n)
	}
	for _, ch := range m[2] {
		n, _ := strconv.Atoi(string(ch))
		survive = append(survive, n)
	}
	return birth, survive, nil
}

// NewLifeRule precomputes the outer-totalistic binary rule given by birth
// and survive neighbor-sum sets, sized to the kernel's weight sum. A dead
// cell whose aggregate is in the birth set becomes live; a live cell whose
// aggregate is in the survive set stays live; everything else dies.
func NewLifeRule(birth, survive []int, k *Kernel) (*TableRule, error) {
	span := k.Sum() + 1
	if span < 1 {
		return nil, &KernelError{Reason: "non-positive weight sum"}
	}
	for _, n := range birth {
		if n < 0 {
			return nil, fmt.Errorf("automata: negative birth count %d", n)
		}
	}
	for _, n := range survive {
		if n < 0 {
			return nil, fmt.Errorf("automata: negative survive count %d", n)
		}
	}
	r := NewTableRule(2, span)
	for a := 0; a < span; a++ {
		dead, live := uint8(0), uint8(0)
		if contains(birth, a) {
			dead = 1
		}
		if contains(survive, a) {
			live = 1
		}
		r.table[a] = int16(dead)
		r.table[span+a] = int16(live)
	}
	return r, nil
}

// NewWolframRule builds the elementary cellular automaton rule n as an
// 8-entry table over the Wolfram kernel's packed aggregate. The aggregate
// already encodes the cell's own state, so both state rows are identical.
func NewWolframRule(n uint8) *TableRule {
	r := NewTableRule(2, 8)
	for a := 0; a < 8; a++ {
		bit := int16((n >> a) & 1)
		r.table[a] = bit
		r.table[8+a] = bit
	}
	return r
}

// NewNonTotalisticRule precomputes an arbitrary update function over every
// full configuration of the named neighborhood ("moore", "vonneumann", or
// "extended"). The function receives the member cells in the digit order
// NonTotalisticKernel packs them and must return a state inside the base-b
// alphabet. The positional aggregate already encodes the cell's own state,
// so every state row of the table is identical. Table size is base^(size+1)
// entries; generous alphabets on the nine-cell neighborhoods are rejected
// before allocation.
func NewNonTotalisticRule(base int, neighborhood string, fn func(neighborhood []uint8) uint8) (*TableRule, error) {
	offsets, ok := neighborhoodOffsets(neighborhood)
	if !ok {
		return nil, &KernelError{Reason: "unknown neighborhood " + strconv.Quote(neighborhood)}
	}
	if base < 2 {
		return nil, &KernelError{Reason: "positional base must be at least 2"}
	}
	span, err := aggregateSpan(base, len(offsets))
	if err != nil {
		return nil, err
	}
	r := NewTableRule(base, span)
	cells := make([]uint8, len(offsets))
	for a := 0; a < span; a++ {
		v := a
		for p := range cells {
			cells[p] = uint8(v % base)
			v /= base
		}
		out := fn(cells)
		if int(out) >= base {
			return nil, &SymbolError{Index: -1, Value: out, States: base}
		}
		for s := 0; s < base; s++ {
			r.table[s*span+a] = int16(out)
		}
	}
	return r, nil
}

func contains(set []int, v int) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
