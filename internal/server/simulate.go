package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	agentcore "github.com/chronoscribe/chronoscribe/internal/agent/core"
)

// SimulateHandler serves POST /simulate. The body may match either the
// simple or the advanced request shape; shapes are tried strictly
// (unknown fields rejected) in that priority order and the first match
// wins.
type SimulateHandler struct {
	Agent *agentcore.Agent
}

func (h *SimulateHandler) Register(e *echo.Echo) {
	e.POST("/simulate", h.simulate)
}

// Example bodies:
//
//	{"what_if": "What if the printing press was never invented?"}
//	{"what_if": "...", "preset": "cinematic", "horizon": "long", "focus": "tech"}
//	{"what_if": "...", "time_horizon": "50y", "scope": "mixed", "style": "brief",
//	 "constraints": ["stay physically plausible"], "temperature": 0.7}
func (h *SimulateHandler) simulate(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	simple, advanced, err := decodeRequestBody(body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	var doc agentcore.ScenarioDocument
	if simple != nil {
		doc, err = h.Agent.SimulateSimple(ctx, *simple)
	} else {
		doc, err = h.Agent.Simulate(ctx, *advanced)
	}
	if err != nil {
		if agentcore.IsGatewayError(err) {
			return echo.NewHTTPError(http.StatusBadGateway, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, doc)
}

// simpleBody and advancedBody are the wire shapes; temperature is a
// pointer so an absent field can take the documented default while an
// explicit 0 remains valid.
type simpleBody struct {
	WhatIf  string `json:"what_if"`
	Preset  string `json:"preset"`
	Horizon string `json:"horizon"`
	Focus   string `json:"focus"`
}

type advancedBody struct {
	WhatIf      string   `json:"what_if"`
	TimeHorizon string   `json:"time_horizon"`
	Scope       string   `json:"scope"`
	Style       string   `json:"style"`
	Constraints []string `json:"constraints"`
	Temperature *float64 `json:"temperature"`
}

// decodeRequestBody resolves the tagged union: strict-decode as the
// simple shape first, then the advanced shape. Exactly one of the
// returned pointers is non-nil on success.
func decodeRequestBody(body []byte) (*agentcore.SimpleSimulationRequest, *agentcore.SimulationRequest, error) {
	var s simpleBody
	if err := strictDecode(body, &s); err == nil {
		if req, ok := validateSimple(s); ok {
			return &req, nil, nil
		}
	}

	var a advancedBody
	if err := strictDecode(body, &a); err != nil {
		return nil, nil, fmt.Errorf("body matches neither request shape: %v", err)
	}
	req, err := validateAdvanced(a)
	if err != nil {
		return nil, nil, err
	}
	return nil, &req, nil
}

func strictDecode(body []byte, target interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(target); err != nil {
		return err
	}
	// Reject trailing content after the object.
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return fmt.Errorf("unexpected trailing content")
	}
	return nil
}

func validateSimple(s simpleBody) (agentcore.SimpleSimulationRequest, bool) {
	if strings.TrimSpace(s.WhatIf) == "" {
		return agentcore.SimpleSimulationRequest{}, false
	}
	if s.Preset == "" {
		s.Preset = "default"
	}
	if s.Horizon == "" {
		s.Horizon = "long"
	}
	if s.Focus == "" {
		s.Focus = "mixed"
	}
	if !contains(agentcore.Presets, s.Preset) ||
		!contains(agentcore.Horizons, s.Horizon) ||
		!contains(agentcore.Focuses, s.Focus) {
		return agentcore.SimpleSimulationRequest{}, false
	}
	return agentcore.SimpleSimulationRequest{
		WhatIf:  s.WhatIf,
		Preset:  s.Preset,
		Horizon: s.Horizon,
		Focus:   s.Focus,
	}, true
}

func validateAdvanced(a advancedBody) (agentcore.SimulationRequest, error) {
	if strings.TrimSpace(a.WhatIf) == "" {
		return agentcore.SimulationRequest{}, fmt.Errorf("what_if is required")
	}
	temperature := agentcore.DefaultTemperature
	if a.Temperature != nil {
		if *a.Temperature < 0.0 || *a.Temperature > 2.0 {
			return agentcore.SimulationRequest{}, fmt.Errorf("temperature must be within [0.0, 2.0]")
		}
		temperature = *a.Temperature
	}
	return agentcore.SimulationRequest{
		WhatIf:      a.WhatIf,
		TimeHorizon: a.TimeHorizon,
		Scope:       a.Scope,
		Style:       a.Style,
		Constraints: a.Constraints,
		Temperature: temperature,
	}.WithDefaults(), nil
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
