package core

import "math"

// DefaultDisclaimer is the boilerplate attached when the model omits one.
const DefaultDisclaimer = "Speculative scenario generation; not factual prediction."

// probTolerance is how far scenario probabilities may drift from
// summing to 1.0 before they are rescaled.
const probTolerance = 0.05

// Normalize fills absent top-level fields with request-derived defaults
// and rescales scenario probabilities when their sum drifts from 1.0.
// It never fails: it only fills gaps and rescales, operating on
// whatever shape the model produced.
func Normalize(doc ScenarioDocument, req SimulationRequest) ScenarioDocument {
	if doc == nil {
		doc = ScenarioDocument{}
	}

	setDefault(doc, "premise", req.WhatIf)
	setDefault(doc, "time_horizon", req.TimeHorizon)
	style := req.Style
	if style == "" {
		style = DefaultStyle
	}
	setDefault(doc, "style", style)
	setDefault(doc, "disclaimer", DefaultDisclaimer)
	for _, key := range []string{"assumptions", "scenarios", "tradeoffs", "red_team"} {
		setDefault(doc, key, []interface{}{})
	}

	if scenarios, ok := doc["scenarios"].([]interface{}); ok {
		renormalizeProbabilities(scenarios)
	}
	return doc
}

func setDefault(doc ScenarioDocument, key string, value interface{}) {
	if _, ok := doc[key]; !ok {
		doc[key] = value
	}
}

// renormalizeProbabilities rescales every numeric probability by the
// total when the sum deviates from 1.0 by more than the tolerance.
// Non-numeric and missing probabilities contribute 0 to the sum and are
// left as-is. A sum of exactly zero leaves everything untouched.
func renormalizeProbabilities(scenarios []interface{}) {
	var total float64
	for _, s := range scenarios {
		entry, ok := s.(map[string]interface{})
		if !ok {
			continue
		}
		if p, ok := asFloat(entry["probability"]); ok {
			total += p
		}
	}
	if total == 0 || math.Abs(total-1.0) <= probTolerance {
		return
	}
	for _, s := range scenarios {
		entry, ok := s.(map[string]interface{})
		if !ok {
			continue
		}
		if p, ok := asFloat(entry["probability"]); ok {
			entry["probability"] = p / total
		}
	}
}

func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
