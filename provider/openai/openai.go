package openai_provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/chronoscribe/chronoscribe/config"
	"github.com/chronoscribe/chronoscribe/provider"
)

const maxErrorBodyBytes = 2048

// client implements provider.Provider against the OpenAI
// chat-completions API (or any compatible endpoint).
type client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// request represents a request to the chat-completions API
type request struct {
	Model          string                 `json:"model"`
	Messages       []provider.ChatMessage `json:"messages"`
	Temperature    float64                `json:"temperature"`
	ResponseFormat responseFormat         `json:"response_format"`
	Tools          []provider.Tool        `json:"tools,omitempty"`
	ToolChoice     string                 `json:"tool_choice,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

// response represents a response from the chat-completions API
type response struct {
	Choices []struct {
		Message struct {
			Content   string              `json:"content"`
			ToolCalls []provider.ToolCall `json:"tool_calls"`
		} `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int64 `json:"prompt_tokens"`
		CompletionTokens int64 `json:"completion_tokens"`
	} `json:"usage"`
}

// NewOpenAIClient creates a new OpenAI chat-completions client
func NewOpenAIClient(cfg config.OpenAIConfig) provider.Provider {
	return &client{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// ChatJSON sends one conversation round with a forced JSON-object
// response mode. Tool choice is automatic whenever tools are advertised.
func (c *client) ChatJSON(ctx context.Context, req provider.ChatRequest) (provider.ChatResponse, error) {
	body := request{
		Model:          c.model,
		Messages:       req.Messages,
		Temperature:    req.Temperature,
		ResponseFormat: responseFormat{Type: "json_object"},
	}
	if len(req.Tools) > 0 {
		body.Tools = req.Tools
		body.ToolChoice = "auto"
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		return provider.ChatResponse{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return provider.ChatResponse{}, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return provider.ChatResponse{}, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return provider.ChatResponse{}, fmt.Errorf("API returned status %d: %s", resp.StatusCode, detail)
	}

	var out response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return provider.ChatResponse{}, fmt.Errorf("failed to parse response: %w", err)
	}
	if len(out.Choices) == 0 {
		return provider.ChatResponse{}, fmt.Errorf("no choices in response")
	}

	msg := out.Choices[0].Message
	return provider.ChatResponse{
		Content:          msg.Content,
		ToolCalls:        msg.ToolCalls,
		PromptTokens:     out.Usage.PromptTokens,
		CompletionTokens: out.Usage.CompletionTokens,
	}, nil
}
