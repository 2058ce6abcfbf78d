package core

// presetConfig bundles the style/temperature/constraint defaults behind
// a named preset.
type presetConfig struct {
	Style       string
	Temperature float64
	Constraints []string
}

// horizonByLabel maps the friendly horizon vocabulary to horizon strings.
var horizonByLabel = map[string]string{
	"short":  "5y",
	"medium": "25y",
	"long":   "50y",
}

// presetByName resolves a preset label. Unknown names fall back to the
// default configuration.
func presetByName(preset string) presetConfig {
	switch preset {
	case "cinematic":
		return presetConfig{Style: "cinematic", Temperature: 0.9}
	case "academic":
		return presetConfig{Style: "paper", Temperature: 0.4}
	case "risk":
		return presetConfig{Style: "bullet", Temperature: 0.6, Constraints: []string{"call out major risks explicitly"}}
	case "optimistic":
		return presetConfig{Style: "brief", Temperature: 0.8}
	case "pessimistic":
		return presetConfig{Style: "brief", Temperature: 0.6}
	}
	return presetConfig{Style: DefaultStyle, Temperature: DefaultTemperature}
}

// ExpandSimple produces a full SimulationRequest from the simple shape
// plus the resolved preset configuration.
func ExpandSimple(s SimpleSimulationRequest) SimulationRequest {
	cfg := presetByName(s.Preset)
	horizon, ok := horizonByLabel[s.Horizon]
	if !ok {
		horizon = DefaultTimeHorizon
	}
	scope := s.Focus
	if scope == "" {
		scope = DefaultScope
	}
	return SimulationRequest{
		WhatIf:      s.WhatIf,
		TimeHorizon: horizon,
		Scope:       scope,
		Style:       cfg.Style,
		Constraints: cfg.Constraints,
		Temperature: cfg.Temperature,
	}
}
