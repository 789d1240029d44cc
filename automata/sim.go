package automata

import "fmt"

// Simulation owns a grid exclusively and advances it under a kernel, rule,
// and aggregation backend. Kernel and rule are immutable and may be shared
// across simulations; the grid may not.
type Simulation struct {
	grid   *Grid
	kernel *Kernel
	rule   Rule
	agg    Aggregator
	gen    uint64

	sum    []int
	counts [][]int
	cell   []int
	next   []uint8
}

// Option configures a Simulation at construction.
type Option func(*Simulation)

// WithAggregator selects the aggregation backend. The default is a
// single-threaded DirectAggregator.
func WithAggregator(a Aggregator) Option {
	return func(s *Simulation) { s.agg = a }
}

// NewSimulation composes a grid, kernel, and rule into a runnable
// simulation. The rule's alphabet must match the grid's.
func NewSimulation(g *Grid, k *Kernel, r Rule, opts ...Option) (*Simulation, error) {
	if g == nil || k == nil || r == nil {
		return nil, fmt.Errorf("automata: simulation requires a grid, kernel, and rule")
	}
	if r.States() != g.states {
		return nil, fmt.Errorf("automata: rule alphabet %d does not match grid alphabet %d", r.States(), g.states)
	}
	s := &Simulation{
		grid:   g,
		kernel: k,
		rule:   r,
		agg:    DirectAggregator{},
		next:   make([]uint8, g.w*g.h),
	}
	switch r.Aggregation() {
	case WeightedSum:
		s.sum = make([]int, g.w*g.h)
	case PerSymbolCounts:
		s.counts = NewPerSymbolBuffer(g)
		s.cell = make([]int, g.states)
	default:
		return nil, fmt.Errorf("automata: unknown aggregation mode %d", r.Aggregation())
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Step advances the simulation by one generation: aggregate, apply the rule
// elementwise, validate, and swap in the new state atomically. On error the
// grid and generation counter are left untouched.
func (s *Simulation) Step() error {
	switch s.rule.Aggregation() {
	case WeightedSum:
		if err := s.agg.Aggregate(s.grid, s.kernel, s.sum); err != nil {
			return err
		}
	case PerSymbolCounts:
		if err := s.agg.AggregatePerSymbol(s.grid, s.kernel, s.counts); err != nil {
			return err
		}
	}
	cells := s.grid.cells
	states := s.rule.States()
	for i := range cells {
		var (
			v   uint8
			err error
		)
		if s.sum != nil {
			v, err = s.rule.Next(cells[i], s.sum[i], nil)
		} else {
			for sym := range s.cell {
				s.cell[sym] = s.counts[sym][i]
			}
			v, err = s.rule.Next(cells[i], 0, s.cell)
		}
		if err != nil {
			return err
		}
		if int(v) >= states {
			return &SymbolError{Index: i, Value: v, States: states}
		}
		s.next[i] = v
	}
	s.grid.cells, s.next = s.next, s.grid.cells
	s.gen++
	return nil
}

// StepN applies Step exactly n times in order. Steps are causally ordered;
// step k+1 always reads step k's committed output.
func (s *Simulation) StepN(n int) error {
	if n < 0 {
		return fmt.Errorf("automata: negative step count %d", n)
	}
	for i := 0; i < n; i++ {
		if err := s.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Generation returns the number of committed steps since construction.
func (s *Simulation) Generation() uint64 { return s.gen }

// State returns an independent snapshot of the current grid state.
func (s *Simulation) State() []uint8 { return s.grid.Snapshot() }

// Grid exposes the owned grid for read access and seeding before the run.
func (s *Simulation) Grid() *Grid { return s.grid }

// Kernel returns the shared, immutable kernel.
func (s *Simulation) Kernel() *Kernel { return s.kernel }

// Rule returns the shared, immutable rule.
func (s *Simulation) Rule() Rule { return s.rule }
