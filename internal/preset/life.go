package preset

import (
	"fmt"
	"image/color"

	"github.com/averyhiebert/vivludo/automata"
)

// lifelike builds a factory for an outer-totalistic binary automaton. The
// rule string, neighborhood kernel, radius, boundary, fill density, and an
// optional named seed pattern are all overridable through the option map.
func lifelike(name, rule string, density float64) Factory {
	return func(cfg map[string]string) (Runner, error) {
		w := intOpt(cfg, "w", 256)
		h := intOpt(cfg, "h", 256)
		boundary, err := boundaryOpt(cfg, automata.Wrap)
		if err != nil {
			return nil, err
		}
		birth, survive, err := automata.ParseRuleString(strOpt(cfg, "rule", rule))
		if err != nil {
			return nil, err
		}
		kernel, err := automata.ParseKernel(strOpt(cfg, "kernel", "moore"), intOpt(cfg, "radius", 1))
		if err != nil {
			return nil, err
		}
		update, err := automata.NewLifeRule(birth, survive, kernel)
		if err != nil {
			return nil, err
		}
		fill := floatOpt(cfg, "density", density)
		pattern := strOpt(cfg, "pattern", "")
		noise := boolOpt(cfg, "noise", false)
		defaultSeed := int64(intOpt(cfg, "seed", 42))

		build := func(seed int64) (*automata.Simulation, error) {
			if seed == 0 {
				seed = defaultSeed
			}
			grid, err := automata.NewGrid(w, h, nil, 2, boundary)
			if err != nil {
				return nil, err
			}
			switch {
			case pattern != "":
				p, ok := automata.PatternByName(pattern)
				if !ok {
					return nil, fmt.Errorf("preset: unknown pattern %q", pattern)
				}
				if err := automata.Stamp(grid, p, (w-p.W)/2, (h-p.H)/2); err != nil {
					return nil, err
				}
			case noise:
				automata.FillNoise(grid.Cells(), w, h, seed, 0.1, 0.08)
			default:
				automata.FillDensity(automata.NewRNG(seed), grid.Cells(), fill)
			}
			agg, err := aggregatorOpt(cfg, grid, kernel)
			if err != nil {
				return nil, err
			}
			return automata.NewSimulation(grid, kernel, update, automata.WithAggregator(agg))
		}
		return newSimRunner(name, binaryPalette, build)
	}
}

var binaryPalette = []color.RGBA{
	{R: 0, G: 0, B: 0, A: 255},
	{R: 0, G: 200, B: 80, A: 255},
}

func init() {
	Register("life", lifelike("life", "B3/S23", 0.5))
	Register("highlife", lifelike("highlife", "B36/S23", 0.5))
	Register("seeds", lifelike("seeds", "B2/S", 0.02))
	Register("anneal", lifelike("anneal", "B4678/S35678", 0.5))
	Register("majority", lifelike("majority", "B5678/S45678", 0.5))
}
