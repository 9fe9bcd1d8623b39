package app

import (
	"flag"
	"strconv"

	"lifeca/pkg/sims/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim        string
	Scale      int
	TPS        int
	Seed       int64
	ConfigPath string
	SlotDir    string
	Workers    int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "life", Scale: 20, TPS: 60, Seed: 42, ConfigPath: "config.json"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run (life, life-torus)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random fills")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "JSON file with fieldSize and stepDelay")
	fs.StringVar(&c.SlotDir, "slots", c.SlotDir, "directory holding save slots (overrides config)")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines per generation (overrides config)")
}

// Settings reads the config file and layers flag overrides on top. The map is
// usable even when err is non-nil; err then wraps core.ErrConfigParse.
func (c *Config) Settings() (map[string]string, error) {
	settings, err := life.LoadConfigMap(c.ConfigPath)
	if settings == nil {
		settings = map[string]string{}
	}
	if _, ok := settings["seed"]; !ok {
		settings["seed"] = strconv.FormatInt(c.Seed, 10)
	}
	if c.SlotDir != "" {
		settings["slotDir"] = c.SlotDir
	}
	if c.Workers > 0 {
		settings["workers"] = strconv.Itoa(c.Workers)
	}
	return settings, err
}
