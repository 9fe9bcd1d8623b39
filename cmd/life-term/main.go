package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"lifeca/internal/app"
	"lifeca/internal/term"
	"lifeca/pkg/core"
	"lifeca/pkg/sims/life"
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

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err = screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	tps := cfg.TPS
	if tps <= 0 {
		tps = 60
	}
	ctrl := app.NewController(sim, life.Slots{Dir: sim.Config().SlotDir}, sim.Config().Seed)
	if err := term.New(screen, ctrl).Run(ctx, time.Second/time.Duration(tps)); err != nil {
		screen.Fini()
		log.Fatal(err)
	}
}
