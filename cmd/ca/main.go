//go:build ebiten

package main

import (
	"errors"
	"log"

	"eca/internal/app"
	"eca/internal/config"
	"eca/internal/core"
	"eca/pkg/eca"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"
)

func main() {
	cfg := config.DefaultConfig()
	cfg.Width = 256
	cfg.Generations = 256
	cfg.Bind(pflag.CommandLine)
	scale := pflag.Int("scale", 3, "pixel scale multiplier")
	rate := pflag.Int("rate", 60, "generations revealed per second")
	pflag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	seed, ok := core.Seeds()[cfg.SeedName]
	if !ok {
		log.Fatalf("unknown seed %q (have %v)", cfg.SeedName, core.SeedNames())
	}
	rule, err := eca.RuleNumber(cfg.Rule)
	if err != nil {
		log.Fatal(err)
	}

	a := eca.New(rule, seed(cfg.Width, cfg.Seed))
	a.Simulate(cfg.Generations)

	game, err := app.New(a, *scale, *rate)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("eca — " + rule.String())
	ebiten.SetWindowSize(cfg.Width*(*scale), cfg.Generations*(*scale))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
