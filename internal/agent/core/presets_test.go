package core

import "testing"

func TestExpandSimpleRiskPreset(t *testing.T) {
	req := ExpandSimple(SimpleSimulationRequest{
		WhatIf:  "What if X",
		Preset:  "risk",
		Horizon: "medium",
		Focus:   "economics",
	})

	if req.Style != "bullet" {
		t.Fatalf("expected bullet style, got %q", req.Style)
	}
	if req.Temperature != 0.6 {
		t.Fatalf("expected temperature 0.6, got %v", req.Temperature)
	}
	if req.TimeHorizon != "25y" {
		t.Fatalf("expected 25y horizon, got %q", req.TimeHorizon)
	}
	if req.Scope != "economics" {
		t.Fatalf("expected economics scope, got %q", req.Scope)
	}
	var found bool
	for _, c := range req.Constraints {
		if c == "call out major risks explicitly" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected risk constraint, got %v", req.Constraints)
	}
}

func TestExpandSimpleUnknownPresetFallsBack(t *testing.T) {
	req := ExpandSimple(SimpleSimulationRequest{WhatIf: "What if X", Preset: "unknown_value"})

	if req.Style != "brief" {
		t.Fatalf("expected brief style, got %q", req.Style)
	}
	if req.Temperature != 0.7 {
		t.Fatalf("expected temperature 0.7, got %v", req.Temperature)
	}
	if req.Constraints != nil {
		t.Fatalf("expected no constraints, got %v", req.Constraints)
	}
}

func TestExpandSimpleHorizonTable(t *testing.T) {
	cases := map[string]string{"short": "5y", "medium": "25y", "long": "50y", "": "50y"}
	for label, want := range cases {
		req := ExpandSimple(SimpleSimulationRequest{WhatIf: "x", Horizon: label})
		if req.TimeHorizon != want {
			t.Errorf("horizon %q: expected %q, got %q", label, want, req.TimeHorizon)
		}
	}
}

func TestExpandSimplePresetTable(t *testing.T) {
	cases := []struct {
		preset string
		style  string
		temp   float64
	}{
		{"cinematic", "cinematic", 0.9},
		{"academic", "paper", 0.4},
		{"optimistic", "brief", 0.8},
		{"pessimistic", "brief", 0.6},
		{"default", "brief", 0.7},
	}
	for _, tc := range cases {
		req := ExpandSimple(SimpleSimulationRequest{WhatIf: "x", Preset: tc.preset})
		if req.Style != tc.style || req.Temperature != tc.temp {
			t.Errorf("preset %q: expected (%s, %v), got (%s, %v)",
				tc.preset, tc.style, tc.temp, req.Style, req.Temperature)
		}
	}
}
