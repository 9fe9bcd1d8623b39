package life

import (
	"strconv"

	"lifeca/pkg/core"
)

// Parameters reports the configuration and run state for front ends.
func (s *Simulation) Parameters() core.ParameterSnapshot {
	snapshot := "none"
	if s.HasSnapshot() {
		snapshot = "saved"
	}
	groups := []core.ParameterGroup{
		{
			Name: "Field",
			Params: []core.Parameter{
				intParam("fieldSize", "Field size", s.cfg.FieldSize),
				stringParam("policy", "Edges", s.cfg.Policy.String()),
			},
		},
		{
			Name: "Timing",
			Params: []core.Parameter{
				floatParam("stepDelay", "Step delay (s)", s.cfg.StepDelay),
				boolParam("paused", "Paused", s.paused),
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				intParam("generation", "Generation", s.Generation()),
				intParam("population", "Population", s.Population()),
				stringParam("snapshot", "Snapshot", snapshot),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the values front ends may adjust.
func (s *Simulation) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "stepDelay", Label: "Step delay", Type: core.ParamTypeFloat, Step: 0.01, Min: 0.01, Max: 2, HasMin: true, HasMax: true},
		{Key: "fieldSize", Label: "Field size", Type: core.ParamTypeInt, Step: 1, Min: 3, Max: 512, HasMin: true, HasMax: true},
	}
}

// SetFloatParameter updates stepDelay.
func (s *Simulation) SetFloatParameter(key string, value float64) bool {
	if key != "stepDelay" || value <= 0 {
		return false
	}
	return s.Configure(0, value) == nil
}

// SetIntParameter updates fieldSize.
func (s *Simulation) SetIntParameter(key string, value int) bool {
	if key != "fieldSize" || value <= 0 {
		return false
	}
	return s.Configure(value, 0) == nil
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
