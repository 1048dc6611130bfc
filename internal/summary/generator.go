package summary

import (
	"context"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/manav03panchal/milkledger/internal/config"
	"github.com/manav03panchal/milkledger/internal/errors"
)

// Generator is an external text-generation service.
type Generator interface {
	// Generate returns the model's text for a prompt. An empty string with a
	// nil error means the service answered without any text.
	Generate(ctx context.Context, system, prompt string) (string, error)
	// Name identifies the provider in logs.
	Name() string
}

// NewGenerator builds the generator selected by the configuration. Without an
// API key it returns a generator that always fails with ErrAINotConfigured.
func NewGenerator(cfg config.AIConfig) Generator {
	if !cfg.Enabled() {
		return unconfigured{}
	}
	if cfg.Provider == config.ProviderAnthropic {
		return NewAnthropicGenerator(cfg)
	}
	return NewGeminiGenerator(cfg)
}

type unconfigured struct{}

func (unconfigured) Generate(context.Context, string, string) (string, error) {
	return "", errors.ErrAINotConfigured
}

func (unconfigured) Name() string { return "none" }

func newHTTPClient(baseURL string, timeout time.Duration) *resty.Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout)
}
