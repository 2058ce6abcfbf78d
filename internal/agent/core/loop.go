package core

import (
	"context"
	"encoding/json"

	"github.com/chronoscribe/chronoscribe/provider"
)

// runLoop drives the bounded tool-calling loop: each round sends the
// conversation so far; tool-call requests are executed via the
// dispatcher and fed back, otherwise the content is the final answer.
//
// Invariant: an assistant message carrying tool calls is appended
// before any of its tool results, and every tool result carries the
// identifier of the call it answers.
func (a *Agent) runLoop(ctx context.Context, req SimulationRequest) (ScenarioDocument, error) {
	messages := []provider.ChatMessage{
		{Role: "system", Content: a.systemPrompt()},
		{Role: "user", Content: a.userPrompt(req)},
	}
	var toolset []provider.Tool
	if a.toolsEnabled {
		toolset = toolDefinitions()
	}

	for round := 0; round < a.maxRounds; round++ {
		resp, err := a.llm.ChatJSON(ctx, provider.ChatRequest{
			Messages:    messages,
			Temperature: req.Temperature,
			Tools:       toolset,
		})
		if err != nil {
			a.telemetry.RecordLLMRequest("error", 0, 0)
			return nil, &UpstreamError{Err: err}
		}
		a.telemetry.RecordLLMRequest("ok", resp.PromptTokens, resp.CompletionTokens)

		if len(resp.ToolCalls) > 0 {
			// The assistant message, with its verbatim tool-call
			// requests, must precede the tool results.
			messages = append(messages, provider.ChatMessage{
				Role:      "assistant",
				Content:   resp.Content,
				ToolCalls: resp.ToolCalls,
			})
			for _, tc := range resp.ToolCalls {
				out := a.dispatcher.Dispatch(ctx, tc.Function.Name, tc.Function.Arguments)
				a.telemetry.RecordToolExecution(tc.Function.Name)
				messages = append(messages, provider.ChatMessage{
					Role:       "tool",
					ToolCallID: tc.ID,
					Name:       tc.Function.Name,
					Content:    out,
				})
			}
			continue
		}

		var doc ScenarioDocument
		if err := json.Unmarshal([]byte(resp.Content), &doc); err != nil {
			return nil, &ResponseFormatError{Err: err}
		}
		return doc, nil
	}

	return nil, ErrLoopExhausted
}
