package preset

import (
	"image/color"

	"github.com/averyhiebert/vivludo/automata"
)

const (
	brainDead  = 0
	brainOn    = 1
	brainDying = 2
)

// brainRule: firing cells start dying, dying cells die, and a dead cell
// fires when exactly two neighbors are firing.
var brainRule = automata.NewFuncRule(3, automata.PerSymbolCounts,
	func(current uint8, _ int, counts []int) uint8 {
		switch current {
		case brainOn:
			return brainDying
		case brainDying:
			return brainDead
		}
		if counts[brainOn] == 2 {
			return brainOn
		}
		return brainDead
	})

var brainPalette = []color.RGBA{
	{R: 0, G: 0, B: 0, A: 255},
	{R: 255, G: 255, B: 255, A: 255},
	{R: 60, G: 120, B: 255, A: 255},
}

func init() {
	Register("briansbrain", func(cfg map[string]string) (Runner, error) {
		w := intOpt(cfg, "w", 256)
		h := intOpt(cfg, "h", 256)
		boundary, err := boundaryOpt(cfg, automata.Wrap)
		if err != nil {
			return nil, err
		}
		kernel := automata.Moore(1)
		defaultSeed := int64(intOpt(cfg, "seed", 42))

		build := func(seed int64) (*automata.Simulation, error) {
			if seed == 0 {
				seed = defaultSeed
			}
			grid, err := automata.NewGrid(w, h, nil, 3, boundary)
			if err != nil {
				return nil, err
			}
			rng := automata.NewRNG(seed)
			cells := grid.Cells()
			for i := range cells {
				if rng.IntN(8) == 0 {
					cells[i] = brainOn
				}
			}
			agg, err := aggregatorOpt(cfg, grid, kernel)
			if err != nil {
				return nil, err
			}
			return automata.NewSimulation(grid, kernel, brainRule, automata.WithAggregator(agg))
		}
		return newSimRunner("briansbrain", brainPalette, build)
	})
}
