//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strings"

	"lifeca/internal/app"
	"lifeca/pkg/core"
	"lifeca/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	settings, err := cfg.Settings()
	if err != nil {
		log.Printf("using defaults: %v", err)
	}

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (have %s)", cfg.Sim, strings.Join(core.SimNames(), ", "))
	}
	s, err := factory(settings)
	if err != nil {
		log.Fatalf("create %s: %v", cfg.Sim, err)
	}
	sim := s.(*life.Simulation)
	defer sim.Close()

	ctrl := app.NewController(sim, life.Slots{Dir: sim.Config().SlotDir}, sim.Config().Seed)
	game := app.New(ctrl, cfg.Scale)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("Game of Life — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
