package app

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config represents the command-line and config-file parameters for a run.
// Zero values for grid size, density, and radius mean "use the preset's
// default".
type Config struct {
	Preset      string  `yaml:"preset"`
	Width       int     `yaml:"w"`
	Height      int     `yaml:"h"`
	Boundary    string  `yaml:"boundary"`
	Rule        string  `yaml:"rule"`
	Kernel      string  `yaml:"kernel"`
	Radius      int     `yaml:"radius"`
	Pattern     string  `yaml:"pattern"`
	Noise       bool    `yaml:"noise"`
	Density     float64 `yaml:"density"`
	Seed        int64   `yaml:"seed"`
	Generations int     `yaml:"generations"`
	FFT         bool    `yaml:"fft"`
	Workers     int     `yaml:"workers"`
	Scale       int     `yaml:"scale"`
	TPS         int     `yaml:"tps"`
	Quiet       bool    `yaml:"quiet"`
	File        string  `yaml:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Preset: "life", Seed: 42, Generations: 200, Scale: 3, TPS: 30}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Preset, "preset", c.Preset, "automaton preset to run")
	fs.IntVar(&c.Width, "w", c.Width, "grid width (0 = preset default)")
	fs.IntVar(&c.Height, "h", c.Height, "grid height (0 = preset default)")
	fs.StringVar(&c.Boundary, "boundary", c.Boundary, "boundary policy: wrap, zerofill, or clamp")
	fs.StringVar(&c.Rule, "rule", c.Rule, "rule override (B/S string, or Wolfram code for elementary)")
	fs.StringVar(&c.Kernel, "kernel", c.Kernel, "neighborhood: moore, vonneumann, extended, or weight rows like 1,1,1;1,0,1;1,1,1")
	fs.IntVar(&c.Radius, "radius", c.Radius, "neighborhood radius for lifelike presets")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "named seed pattern instead of a random fill")
	fs.BoolVar(&c.Noise, "noise", c.Noise, "seed from thresholded Perlin noise")
	fs.Float64Var(&c.Density, "density", c.Density, "random fill density (0 = preset default)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial state")
	fs.IntVar(&c.Generations, "generations", c.Generations, "generations to run headless")
	fs.BoolVar(&c.FFT, "fft", c.FFT, "use the FFT aggregation backend (wrap boundary only)")
	fs.IntVar(&c.Workers, "workers", c.Workers, "aggregation worker goroutines")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier (GUI build)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.BoolVar(&c.Quiet, "quiet", c.Quiet, "print only the final state")
	fs.StringVar(&c.File, "config", c.File, "YAML config file; explicit flags win")
}

// Finalize loads the -config file, if any, and reapplies explicitly passed
// flags over it so the command line always wins.
func (c *Config) Finalize(fs *flag.FlagSet) error {
	if c.File == "" {
		return nil
	}
	data, err := os.ReadFile(c.File)
	if err != nil {
		return err
	}
	merged := NewConfig()
	if err := yaml.Unmarshal(data, merged); err != nil {
		return fmt.Errorf("config %s: %w", c.File, err)
	}
	merged.File = c.File
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "preset":
			merged.Preset = c.Preset
		case "w":
			merged.Width = c.Width
		case "h":
			merged.Height = c.Height
		case "boundary":
			merged.Boundary = c.Boundary
		case "rule":
			merged.Rule = c.Rule
		case "kernel":
			merged.Kernel = c.Kernel
		case "radius":
			merged.Radius = c.Radius
		case "pattern":
			merged.Pattern = c.Pattern
		case "noise":
			merged.Noise = c.Noise
		case "density":
			merged.Density = c.Density
		case "seed":
			merged.Seed = c.Seed
		case "generations":
			merged.Generations = c.Generations
		case "fft":
			merged.FFT = c.FFT
		case "workers":
			merged.Workers = c.Workers
		case "scale":
			merged.Scale = c.Scale
		case "tps":
			merged.TPS = c.TPS
		case "quiet":
			merged.Quiet = c.Quiet
		}
	})
	*c = *merged
	return nil
}

// Options converts the configuration into the key/value map preset factories
// consume. Unset values are omitted so presets keep their own defaults.
func (c *Config) Options() map[string]string {
	opts := map[string]string{"seed": strconv.FormatInt(c.Seed, 10)}
	if c.Width > 0 {
		opts["w"] = strconv.Itoa(c.Width)
	}
	if c.Height > 0 {
		opts["h"] = strconv.Itoa(c.Height)
	}
	if c.Boundary != "" {
		opts["boundary"] = c.Boundary
	}
	if c.Rule != "" {
		opts["rule"] = c.Rule
	}
	if c.Kernel != "" {
		opts["kernel"] = c.Kernel
	}
	if c.Radius > 0 {
		opts["radius"] = strconv.Itoa(c.Radius)
	}
	if c.Pattern != "" {
		opts["pattern"] = c.Pattern
	}
	if c.Noise {
		opts["noise"] = "true"
	}
	if c.Density > 0 {
		opts["density"] = strconv.FormatFloat(c.Density, 'f', -1, 64)
	}
	if c.FFT {
		opts["fft"] = "true"
	}
	if c.Workers > 1 {
		opts["workers"] = strconv.Itoa(c.Workers)
	}
	return opts
}
