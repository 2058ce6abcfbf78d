package core

// SimulationRequest is the advanced request shape: full control over
// horizon, scope, style, constraints and temperature. Immutable once
// constructed; lifecycle is request-scoped.
type SimulationRequest struct {
	WhatIf      string   `json:"what_if"`
	TimeHorizon string   `json:"time_horizon"`
	Scope       string   `json:"scope"`
	Style       string   `json:"style"`
	Constraints []string `json:"constraints,omitempty"`
	Temperature float64  `json:"temperature"`
}

// Request defaults applied when fields are absent.
const (
	DefaultTimeHorizon = "50y"
	DefaultScope       = "mixed"
	DefaultStyle       = "brief"
	DefaultTemperature = 0.7
)

// WithDefaults fills absent fields with the documented defaults.
// Temperature is left alone: the decoding layer distinguishes absent
// from zero and applies DefaultTemperature itself.
func (r SimulationRequest) WithDefaults() SimulationRequest {
	if r.TimeHorizon == "" {
		r.TimeHorizon = DefaultTimeHorizon
	}
	if r.Scope == "" {
		r.Scope = DefaultScope
	}
	if r.Style == "" {
		r.Style = DefaultStyle
	}
	return r
}

// SimpleSimulationRequest is the friendly request shape: a premise plus
// a few closed-vocabulary knobs. It is expanded into a
// SimulationRequest before the prompt builder ever sees it.
type SimpleSimulationRequest struct {
	WhatIf  string `json:"what_if"`
	Preset  string `json:"preset"`
	Horizon string `json:"horizon"`
	Focus   string `json:"focus"`
}

// Closed vocabularies for the simple shape.
var (
	Presets  = []string{"default", "cinematic", "academic", "risk", "optimistic", "pessimistic"}
	Horizons = []string{"short", "medium", "long"}
	Focuses  = []string{"mixed", "tech", "history", "economics", "culture", "geopolitics", "science"}
)

// ScenarioDocument is the final output shape. The model constructs it
// and the normalizer repairs it; it is handled as a plain mapping so
// normalization can operate on whatever shape the model produced.
type ScenarioDocument = map[string]interface{}
