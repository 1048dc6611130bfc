package summary

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/manav03panchal/milkledger/internal/config"
)

const (
	// DefaultAnthropicModel is used when no model is configured.
	DefaultAnthropicModel = "claude-3-haiku-20240307"
	anthropicBaseURL      = "https://api.anthropic.com"
	anthropicVersion      = "2023-06-01"
	anthropicMaxTokens    = 1024
)

// AnthropicGenerator calls the Anthropic Messages API.
type AnthropicGenerator struct {
	httpClient *resty.Client
	model      string
}

// NewAnthropicGenerator creates an Anthropic client.
func NewAnthropicGenerator(cfg config.AIConfig) *AnthropicGenerator {
	base := cfg.BaseURL
	if base == "" {
		base = anthropicBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = DefaultAnthropicModel
	}

	client := newHTTPClient(base, cfg.Timeout).
		SetHeader("x-api-key", cfg.APIKey).
		SetHeader("anthropic-version", anthropicVersion)

	return &AnthropicGenerator{httpClient: client, model: model}
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

type anthropicError struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Name implements Generator.
func (g *AnthropicGenerator) Name() string { return config.ProviderAnthropic }

// Generate implements Generator.
func (g *AnthropicGenerator) Generate(ctx context.Context, system, prompt string) (string, error) {
	reqBody := anthropicRequest{
		Model:     g.model,
		MaxTokens: anthropicMaxTokens,
		System:    system,
		Messages:  []anthropicMessage{{Role: "user", Content: prompt}},
	}

	result := new(anthropicResponse)
	apiErr := new(anthropicError)

	resp, err := g.httpClient.R().
		SetContext(ctx).
		SetBody(reqBody).
		SetResult(result).
		SetError(apiErr).
		Post("/v1/messages")
	if err != nil {
		return "", fmt.Errorf("anthropic request: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return "", fmt.Errorf("anthropic api error: code=%d, type=%s, message=%s",
			resp.StatusCode(), apiErr.Error.Type, apiErr.Error.Message)
	}

	var sb strings.Builder
	for _, block := range result.Content {
		if block.Type == "" || block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	return strings.TrimSpace(sb.String()), nil
}
