package preset

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/averyhiebert/vivludo/automata"
)

// scrollRunner drives a one-row elementary automaton and presents its
// history as a scrolling 2D frame, newest generation on top.
type scrollRunner struct {
	name    string
	w, h    int
	sim     *automata.Simulation
	build   func() (*automata.Simulation, error)
	display []uint8
}

func (r *scrollRunner) Name() string { return r.name }

func (r *scrollRunner) Size() (int, int) { return r.w, r.h }

func (r *scrollRunner) Palette() []color.RGBA { return binaryPalette }

func (r *scrollRunner) Reset(int64) error {
	sim, err := r.build()
	if err != nil {
		return err
	}
	r.sim = sim
	for i := range r.display {
		r.display[i] = 0
	}
	copy(r.display, r.sim.Grid().Cells())
	return nil
}

func (r *scrollRunner) Step() error {
	if err := r.sim.Step(); err != nil {
		return err
	}
	copy(r.display[r.w:], r.display[:r.w*(r.h-1)])
	copy(r.display, r.sim.Grid().Cells())
	return nil
}

func (r *scrollRunner) Frame() []uint8 { return r.display }

func (r *scrollRunner) Generation() uint64 { return r.sim.Generation() }

func init() {
	Register("elementary", func(cfg map[string]string) (Runner, error) {
		w := intOpt(cfg, "w", 256)
		h := intOpt(cfg, "h", 256)
		code := 110
		if v, ok := cfg["rule"]; ok && v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return nil, fmt.Errorf("preset: elementary rule %q is not an integer", v)
			}
			code = n
		}
		if code < 0 || code > 255 {
			return nil, fmt.Errorf("preset: elementary rule %d outside [0, 255]", code)
		}
		boundary, err := boundaryOpt(cfg, automata.Wrap)
		if err != nil {
			return nil, err
		}
		kernel := automata.Wolfram()
		update := automata.NewWolframRule(uint8(code))

		r := &scrollRunner{
			name:    fmt.Sprintf("rule %d", code),
			w:       w,
			h:       h,
			display: make([]uint8, w*h),
			build: func() (*automata.Simulation, error) {
				grid, err := automata.NewGrid(w, 1, nil, 2, boundary)
				if err != nil {
					return nil, err
				}
				// Single live cell in the middle of the top row.
				grid.Cells()[w/2] = 1
				agg, err := aggregatorOpt(cfg, grid, kernel)
				if err != nil {
					return nil, err
				}
				return automata.NewSimulation(grid, kernel, update, automata.WithAggregator(agg))
			},
		}
		if err := r.Reset(0); err != nil {
			return nil, err
		}
		return r, nil
	})
}
