// Command life-run advances a Game of Life field without a window: it loads
// an optional pattern file, steps a number of generations and writes the
// result in the same live-cell format.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"lifeca/pkg/core"
	"lifeca/pkg/sims/life"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	configPath := flag.String("config", "config.json", "JSON file with fieldSize and stepDelay")
	in := flag.String("in", "", "pattern file to load (default: built-in start pattern)")
	out := flag.String("out", "", "pattern file to write after the last step")
	steps := flag.Int("steps", 100, "generations to simulate")
	every := flag.Int("every", 10, "report population every n generations (0 disables)")
	random := flag.Float64("random", 0, "fill with this live-cell density instead of a pattern")
	var overrides kvList
	flag.Var(&overrides, "set", "config override in key=value form (repeatable)")
	flag.Parse()
	if *steps < 0 {
		log.Fatalf("-steps must not be negative")
	}

	settings, err := life.LoadConfigMap(*configPath)
	if err != nil {
		log.Printf("using defaults: %v", err)
		settings = map[string]string{}
	}
	for _, kv := range overrides {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			log.Printf("ignoring override %q: want key=value", kv)
			continue
		}
		settings[parts[0]] = parts[1]
	}
	cfg := life.FromMap(settings)

	sim, err := life.NewSimulation(cfg)
	if err != nil {
		log.Fatalf("create simulation: %v", err)
	}
	defer sim.Close()

	switch {
	case *random > 0:
		sim.Randomize(cfg.Seed, *random)
	case *in != "":
		if err := sim.DecodeFromFile(*in); err != nil {
			log.Fatalf("load %s: %v", *in, err)
		}
	default:
		if err := sim.LoadPattern(life.DefaultPattern()); err != nil && !errors.Is(err, core.ErrIndex) {
			log.Fatalf("seed pattern: %v", err)
		}
	}

	fmt.Printf("field %dx%d  %s  workers=%d  population=%d\n",
		cfg.FieldSize, cfg.FieldSize, cfg.Policy, cfg.Workers, sim.Population())

	start := time.Now()
	for i := 1; i <= *steps; i++ {
		if err := sim.Advance(); err != nil {
			log.Fatalf("generation %d: %v", i, err)
		}
		if *every > 0 && i%*every == 0 {
			fmt.Printf("gen %6d  population %d\n", sim.Generation(), sim.Population())
		}
	}
	elapsed := time.Since(start)
	rate := 0.0
	if elapsed > 0 {
		rate = float64(*steps) / elapsed.Seconds()
	}
	fmt.Printf("done: %d generations in %v (%.0f gen/s), population %d\n", *steps, elapsed.Round(time.Microsecond), rate, sim.Population())

	if *out != "" {
		if err := sim.EncodeToFile(*out); err != nil {
			log.Fatalf("write %s: %v", *out, err)
		}
		fmt.Printf("wrote %s\n", *out)
	}
}
