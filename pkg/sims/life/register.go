package life

import (
	"errors"

	"lifeca/pkg/core"
)

// NewFromMap builds a Simulation from flag-style settings and seeds it with
// DefaultPattern when the field is large enough to hold it.
func NewFromMap(cfg map[string]string) (*Simulation, error) {
	sim, err := NewSimulation(FromMap(cfg))
	if err != nil {
		return nil, err
	}
	if err := sim.LoadPattern(DefaultPattern()); err != nil && !errors.Is(err, core.ErrIndex) {
		return nil, err
	}
	return sim, nil
}

func init() {
	core.Register("life", factory(Bounded))
	core.Register("life-torus", factory(Toroidal))
}

func factory(p Policy) core.Factory {
	return func(cfg map[string]string) (core.Sim, error) {
		sim, err := NewFromMap(withPolicy(cfg, p))
		if err != nil {
			return nil, err
		}
		return sim, nil
	}
}

func withPolicy(cfg map[string]string, p Policy) map[string]string {
	out := make(map[string]string, len(cfg)+1)
	for k, v := range cfg {
		out[k] = v
	}
	out["policy"] = p.String()
	return out
}
