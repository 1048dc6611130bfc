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
	// DefaultGeminiModel is used when no model is configured.
	DefaultGeminiModel = "gemini-3-flash-preview"
	geminiBaseURL      = "https://generativelanguage.googleapis.com"
)

// GeminiGenerator calls the Gemini generateContent REST endpoint.
type GeminiGenerator struct {
	httpClient *resty.Client
	model      string
}

// NewGeminiGenerator creates a Gemini client.
func NewGeminiGenerator(cfg config.AIConfig) *GeminiGenerator {
	base := cfg.BaseURL
	if base == "" {
		base = geminiBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = DefaultGeminiModel
	}

	client := newHTTPClient(base, cfg.Timeout).
		SetHeader("x-goog-api-key", cfg.APIKey)

	return &GeminiGenerator{httpClient: client, model: model}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	SystemInstruction geminiContent   `json:"systemInstruction"`
	Contents          []geminiContent `json:"contents"`
	GenerationConfig  struct {
		ThinkingConfig struct {
			ThinkingBudget int `json:"thinkingBudget"`
		} `json:"thinkingConfig"`
	} `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

type geminiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Name implements Generator.
func (g *GeminiGenerator) Name() string { return config.ProviderGemini }

// Generate implements Generator. Thinking is disabled to keep answers fast.
func (g *GeminiGenerator) Generate(ctx context.Context, system, prompt string) (string, error) {
	var reqBody geminiRequest
	reqBody.SystemInstruction = geminiContent{Parts: []geminiPart{{Text: system}}}
	reqBody.Contents = []geminiContent{{Role: "user", Parts: []geminiPart{{Text: prompt}}}}
	reqBody.GenerationConfig.ThinkingConfig.ThinkingBudget = 0

	result := new(geminiResponse)
	apiErr := new(geminiError)

	resp, err := g.httpClient.R().
		SetContext(ctx).
		SetBody(reqBody).
		SetResult(result).
		SetError(apiErr).
		SetPathParam("model", g.model).
		Post("/v1beta/models/{model}:generateContent")
	if err != nil {
		return "", fmt.Errorf("gemini request: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return "", fmt.Errorf("gemini api error: code=%d, status=%s, message=%s",
			resp.StatusCode(), apiErr.Error.Status, apiErr.Error.Message)
	}

	if len(result.Candidates) == 0 {
		return "", nil
	}

	// Only the first candidate is shown.
	var sb strings.Builder
	for _, p := range result.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return strings.TrimSpace(sb.String()), nil
}
