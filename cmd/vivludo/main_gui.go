//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strings"

	"github.com/averyhiebert/vivludo/internal/app"
	"github.com/averyhiebert/vivludo/internal/preset"

	"github.com/hajimehoshi/ebiten/v2"
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

	game := app.New(runner, cfg.Scale, cfg.Seed)
	w, h := runner.Size()

	ebiten.SetWindowTitle("vivludo - " + runner.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w*cfg.Scale, h*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
