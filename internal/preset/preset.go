package preset

import (
	"fmt"
	"image/color"
	"sort"
	"strconv"

	"github.com/averyhiebert/vivludo/automata"
)

// Runner is the contract the front ends drive: a simulation plus its
// presentation. Frame returns the display buffer for the current generation;
// for most presets that is the grid itself.
type Runner interface {
	Name() string
	Size() (w, h int)
	Palette() []color.RGBA
	Reset(seed int64) error
	Step() error
	Frame() []uint8
	Generation() uint64
}

// Factory constructs a runner using flag-style key/value options.
type Factory func(cfg map[string]string) (Runner, error)

var presets = map[string]Factory{}

// Register adds a preset factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	presets[name] = f
}

// Presets exposes the registry of available preset factories.
func Presets() map[string]Factory {
	return presets
}

// Names returns the registered preset names in sorted order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// simRunner adapts a plain simulation to the Runner contract. Reset rebuilds
// the simulation from scratch so the generation counter restarts at zero.
type simRunner struct {
	name    string
	palette []color.RGBA
	build   func(seed int64) (*automata.Simulation, error)
	sim     *automata.Simulation
}

func newSimRunner(name string, palette []color.RGBA, build func(seed int64) (*automata.Simulation, error)) (*simRunner, error) {
	r := &simRunner{name: name, palette: palette, build: build}
	if err := r.Reset(0); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *simRunner) Name() string { return r.name }

func (r *simRunner) Size() (int, int) {
	g := r.sim.Grid()
	return g.Width(), g.Height()
}

func (r *simRunner) Palette() []color.RGBA { return r.palette }

func (r *simRunner) Reset(seed int64) error {
	sim, err := r.build(seed)
	if err != nil {
		return err
	}
	r.sim = sim
	return nil
}

func (r *simRunner) Step() error { return r.sim.Step() }

func (r *simRunner) Frame() []uint8 { return r.sim.Grid().Cells() }

func (r *simRunner) Generation() uint64 { return r.sim.Generation() }

// Option parsing helpers, shared by all presets.

func intOpt(cfg map[string]string, key string, def int) int {
	if v, ok := cfg[key]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func floatOpt(cfg map[string]string, key string, def float64) float64 {
	if v, ok := cfg[key]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			return parsed
		}
	}
	return def
}

func boolOpt(cfg map[string]string, key string, def bool) bool {
	if v, ok := cfg[key]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}

func strOpt(cfg map[string]string, key, def string) string {
	if v, ok := cfg[key]; ok && v != "" {
		return v
	}
	return def
}

func boundaryOpt(cfg map[string]string, def automata.Boundary) (automata.Boundary, error) {
	v, ok := cfg["boundary"]
	if !ok || v == "" {
		return def, nil
	}
	b, ok := automata.ParseBoundary(v)
	if !ok {
		return def, fmt.Errorf("preset: unknown boundary policy %q", v)
	}
	return b, nil
}

// aggregatorOpt selects the aggregation backend from the "fft" and "workers"
// options.
func aggregatorOpt(cfg map[string]string, g *automata.Grid, k *automata.Kernel) (automata.Aggregator, error) {
	if boolOpt(cfg, "fft", false) {
		return automata.NewFFTAggregator(g, k)
	}
	return automata.DirectAggregator{Workers: intOpt(cfg, "workers", 1)}, nil
}
