package life

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"lifeca/pkg/core"
)

// Config controls the Life simulation.
type Config struct {
	// FieldSize is the side length of the square grid.
	FieldSize int
	// StepDelay is the minimum time between generations, in seconds.
	StepDelay float64

	Policy  Policy
	Workers int
	Seed    int64
	Density float64
	SlotDir string
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		FieldSize: 30,
		StepDelay: 0.05,
		Policy:    Bounded,
		Workers:   1,
		Seed:      42,
		Density:   0.25,
		SlotDir:   ".",
	}
}

// StepInterval converts StepDelay to a time.Duration.
func (c Config) StepInterval() time.Duration {
	return time.Duration(c.StepDelay * float64(time.Second))
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	return DefaultConfig().Apply(cfg)
}

// Apply overrides the fields of c named in cfg. Unknown keys and values that
// fail to parse leave the current value in place.
func (c Config) Apply(cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["fieldSize"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.FieldSize = parsed
		}
	}
	if v, ok := cfg["stepDelay"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.StepDelay = parsed
		}
	}
	if v, ok := cfg["policy"]; ok {
		if parsed, err := ParsePolicy(v); err == nil {
			c.Policy = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["slotDir"]; ok && v != "" {
		c.SlotDir = v
	}
	return c
}

// ParseConfigMap flattens a JSON object into the string map read by FromMap.
// Values may be strings, numbers or booleans.
func ParseConfigMap(data []byte) (map[string]string, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrConfigParse, err)
	}
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		switch val := v.(type) {
		case string:
			out[k] = val
		case float64:
			out[k] = strconv.FormatFloat(val, 'f', -1, 64)
		case bool:
			out[k] = strconv.FormatBool(val)
		default:
			return nil, fmt.Errorf("%w: key %q has unsupported value %v", core.ErrConfigParse, k, v)
		}
	}
	return out, nil
}

// LoadConfigMap reads a JSON config file into a string map.
func LoadConfigMap(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrConfigParse, err)
	}
	return ParseConfigMap(data)
}

// LoadConfig reads path on top of the defaults. On error the defaults are
// returned together with an ErrConfigParse error.
func LoadConfig(path string) (Config, error) {
	m, err := LoadConfigMap(path)
	if err != nil {
		return DefaultConfig(), err
	}
	return FromMap(m), nil
}
