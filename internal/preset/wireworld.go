package preset

import (
	"image/color"

	"github.com/averyhiebert/vivludo/automata"
)

const (
	wireEmpty     = 0
	wireConductor = 1
	wireHead      = 2
	wireTail      = 3
)

// wireRule: heads become tails, tails become conductors, and a conductor
// becomes a head when one or two Moore neighbors are heads.
var wireRule = automata.NewFuncRule(4, automata.PerSymbolCounts,
	func(current uint8, _ int, counts []int) uint8 {
		switch current {
		case wireEmpty:
			return wireEmpty
		case wireHead:
			return wireTail
		case wireTail:
			return wireConductor
		}
		if heads := counts[wireHead]; heads == 1 || heads == 2 {
			return wireHead
		}
		return wireConductor
	})

var wirePalette = []color.RGBA{
	{R: 0, G: 0, B: 0, A: 255},
	{R: 255, G: 255, B: 255, A: 255},
	{R: 255, G: 0, B: 0, A: 255},
	{R: 255, G: 180, B: 0, A: 255},
}

func init() {
	Register("wireworld", func(cfg map[string]string) (Runner, error) {
		clock := automata.WireworldClock()
		w := intOpt(cfg, "w", clock.W+6)
		h := intOpt(cfg, "h", clock.H+6)
		// Fixed edges: signals must not wrap back into the circuit.
		boundary, err := boundaryOpt(cfg, automata.ZeroFill)
		if err != nil {
			return nil, err
		}
		kernel := automata.Moore(1)

		build := func(int64) (*automata.Simulation, error) {
			grid, err := automata.NewGrid(w, h, nil, 4, boundary)
			if err != nil {
				return nil, err
			}
			if err := automata.Stamp(grid, clock, (w-clock.W)/2, (h-clock.H)/2); err != nil {
				return nil, err
			}
			agg, err := aggregatorOpt(cfg, grid, kernel)
			if err != nil {
				return nil, err
			}
			return automata.NewSimulation(grid, kernel, wireRule, automata.WithAggregator(agg))
		}
		return newSimRunner("wireworld", wirePalette, build)
	})
}
