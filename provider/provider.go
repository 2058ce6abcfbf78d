package provider

import (
	"context"
	"encoding/json"
)

// ChatMessage is one entry in a conversation. Assistant messages may
// carry tool calls; tool messages answer them via ToolCallID.
type ChatMessage struct {
	Role       string     `json:"role"`
	Content    string     `json:"content"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
	ToolCallID string     `json:"tool_call_id,omitempty"`
	Name       string     `json:"name,omitempty"`
}

// Tool represents a function tool definition advertised to the model.
type Tool struct {
	Type     string      `json:"type"`
	Function FunctionDef `json:"function"`
}

// FunctionDef describes a callable function for the model.
type FunctionDef struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  json.RawMessage `json:"parameters"`
}

// ToolCall represents a tool invocation requested by the model.
type ToolCall struct {
	ID       string           `json:"id"`
	Type     string           `json:"type"`
	Function ToolCallFunction `json:"function"`
}

// ToolCallFunction contains the function name and arguments for a tool call.
type ToolCallFunction struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// ChatRequest carries one round of a conversation to the model.
type ChatRequest struct {
	Messages    []ChatMessage
	Temperature float64
	Tools       []Tool
}

// ChatResponse is the model's answer: either final content or tool calls.
type ChatResponse struct {
	Content          string
	ToolCalls        []ToolCall
	PromptTokens     int64
	CompletionTokens int64
}

// Provider is the interface all chat-completion implementations satisfy.
// Implementations must request a JSON-object response mode from the model.
type Provider interface {
	ChatJSON(ctx context.Context, req ChatRequest) (ChatResponse, error)
}
