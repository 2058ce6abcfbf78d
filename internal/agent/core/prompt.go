package core

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/chronoscribe/chronoscribe/internal/agent/tools"
	"github.com/chronoscribe/chronoscribe/provider"
)

const systemPromptTemplate = `
You are %s — a what-if simulation agent.
Current year is %d.
You may call tools to improve realism: use make_timeline_anchors to set consistent time labels,
and wiki_summary to ground assumptions. Respond ONLY with a single json object. No prose, no
code fences, no markdown.

The json MUST match this shape exactly:
{
  "premise": "...",
  "assumptions": ["..."],
  "time_horizon": "...",
  "scenarios": [
    {
      "name": "Baseline",
      "probability": 0.5,
      "summary": "...",
      "timeline": [
        {"year_or_period": "T+1y", "event": "...", "rationale": "..."},
        {"year_or_period": "T+5y", "event": "...", "rationale": "..."}
      ],
      "second_order_effects": ["..."]
    },
    {
      "name": "Best Case",
      "probability": 0.25,
      "summary": "...",
      "timeline": [],
      "second_order_effects": []
    },
    {
      "name": "Worst Case",
      "probability": 0.25,
      "summary": "...",
      "timeline": [],
      "second_order_effects": []
    }
  ],
  "tradeoffs": ["..."],
  "red_team": ["Key uncertainties or failure modes..."],
  "speculative_realism_score": 0.0,
  "style": "brief|cinematic|bullet|paper",
  "disclaimer": "Short reminder that this is speculative."
}

Guidelines:
- Prefer calling tools early to get anchors and a brief background.
- Keep it concise and information-dense.
- Ensure scenario probabilities sum to ~1.0.
- Use realistic causal chains; avoid impossibilities.
- Output must be valid json and ONLY a json object.
`

// systemPrompt renders the fixed policy/persona instructions.
func (a *Agent) systemPrompt() string {
	return fmt.Sprintf(systemPromptTemplate, a.name, a.currentYear)
}

// userPrompt assembles the per-request user message from the validated
// request fields.
func (a *Agent) userPrompt(req SimulationRequest) string {
	parts := []string{
		fmt.Sprintf("Premise: %s", req.WhatIf),
		fmt.Sprintf("Scope: %s", req.Scope),
		fmt.Sprintf("Time Horizon: %s", req.TimeHorizon),
		fmt.Sprintf("Style: %s", req.Style),
		fmt.Sprintf("Current year: %d", a.currentYear),
	}
	if len(req.Constraints) > 0 {
		parts = append(parts, "Constraints:\n- "+strings.Join(req.Constraints, "\n- "))
	}
	parts = append(parts, "Return only a json object as specified above.")
	return strings.Join(parts, "\n")
}

// toolDefinitions advertises the two tools with their typed parameter
// schemas.
func toolDefinitions() []provider.Tool {
	return []provider.Tool{
		{
			Type: "function",
			Function: provider.FunctionDef{
				Name:        tools.NameTimelineAnchors,
				Description: "Compute timeline anchors (T+Ny) and absolute years for the given horizon.",
				Parameters: json.RawMessage(`{
					"type": "object",
					"properties": {
						"start_year": {"type": "integer"},
						"horizon": {"type": "string", "description": "e.g., '5y', '25y', '50y'"},
						"intervals": {"type": "array", "items": {"type": "integer"}}
					},
					"required": ["start_year", "horizon"]
				}`),
			},
		},
		{
			Type: "function",
			Function: provider.FunctionDef{
				Name:        tools.NameWikiSummary,
				Description: "Fetch a short neutral background summary from Wikipedia given a topic.",
				Parameters: json.RawMessage(`{
					"type": "object",
					"properties": {
						"topic": {"type": "string"},
						"sentences": {"type": "integer", "default": 3}
					},
					"required": ["topic"]
				}`),
			},
		},
	}
}
