//go:build !ebiten

package main

import (
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"github.com/averyhiebert/vivludo/internal/app"
	"github.com/averyhiebert/vivludo/internal/preset"
	"github.com/averyhiebert/vivludo/internal/render"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Finalize(flag.CommandLine); err != nil {
		log.Fatal(err)
	}

	factory, ok := preset.Presets()[cfg.Preset]
	if !ok {
		log.Fatalf("unknown preset %q (have: %s)", cfg.Preset, strings.Join(preset.Names(), ", "))
	}
	runner, err := factory(cfg.Options())
	if err != nil {
		log.Fatal(err)
	}
	if err := runner.Reset(cfg.Seed); err != nil {
		log.Fatal(err)
	}
	if cfg.Generations < 0 {
		log.Fatalf("generations must be non-negative, got %d", cfg.Generations)
	}

	w, h := runner.Size()
	term := render.NewTerminal(w, h, os.Stdout)

	if cfg.Quiet {
		for i := 0; i < cfg.Generations; i++ {
			if err := runner.Step(); err != nil {
				log.Fatal(err)
			}
		}
		term.Print(runner.Frame(), runner.Generation(), runner.Name())
		return
	}

	pacer := app.NewFixedStep(cfg.TPS)
	term.Frame(runner.Frame(), runner.Generation(), runner.Name())
	for done := 0; done < cfg.Generations; {
		if !pacer.ShouldStep() {
			time.Sleep(time.Millisecond)
			continue
		}
		if err := runner.Step(); err != nil {
			log.Fatal(err)
		}
		term.Frame(runner.Frame(), runner.Generation(), runner.Name())
		done++
	}
}
