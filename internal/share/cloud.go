package share

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/manav03panchal/milkledger/internal/config"
	"github.com/manav03panchal/milkledger/internal/errors"
	"github.com/manav03panchal/milkledger/internal/logging"
)

// CloudSink sends the text as a WhatsApp message through the Meta Cloud API.
type CloudSink struct {
	httpClient    *resty.Client
	phoneNumberID string
	to            string
}

// NewCloudSink builds a Cloud API sink. It fails with ErrShareNotConfigured
// when the token, phone number ID or recipient is missing.
func NewCloudSink(cfg config.WhatsAppConfig) (*CloudSink, error) {
	if !cfg.Enabled() {
		return nil, &errors.UserError{
			Message:    errors.ErrShareNotConfigured.Error(),
			Suggestion: errors.Suggestions[errors.ErrShareNotConfigured],
			Cause:      errors.ErrShareNotConfigured,
		}
	}

	base := strings.TrimSuffix(cfg.BaseURL, "/")

	client := resty.New().
		SetBaseURL(fmt.Sprintf("%s/%s", base, cfg.APIVersion)).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.AccessToken)).
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	return &CloudSink{
		httpClient:    client,
		phoneNumberID: cfg.PhoneNumberID,
		to:            strings.TrimPrefix(cfg.To, "+"),
	}, nil
}

type sendResponse struct {
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
}

// apiError represents a WhatsApp Cloud API error payload.
type apiError struct {
	Error struct {
		Message   string `json:"message"`
		Type      string `json:"type"`
		Code      int    `json:"code"`
		FBTraceID string `json:"fbtrace_id"`
	} `json:"error"`
}

// Share implements Sink.
func (s *CloudSink) Share(ctx context.Context, text string) (Outcome, error) {
	payload := map[string]any{
		"messaging_product": "whatsapp",
		"to":                s.to,
		"type":              "text",
		"text": map[string]any{
			"body":        text,
			"preview_url": false,
		},
	}

	result := new(sendResponse)
	apiErr := new(apiError)

	resp, err := s.httpClient.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(result).
		SetError(apiErr).
		Post(fmt.Sprintf("%s/messages", s.phoneNumberID))
	if err != nil {
		return Outcome{}, errors.WithContext(err, "send whatsapp message")
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		code := resp.StatusCode()
		if apiErr.Error.Code != 0 {
			code = apiErr.Error.Code
		}
		return Outcome{}, fmt.Errorf("whatsapp api error: code=%d, message=%s", code, apiErr.Error.Message)
	}

	var out Outcome
	if len(result.Messages) > 0 {
		out.MessageID = result.Messages[0].ID
	}
	logging.DebugLog("whatsapp message sent", "message_id", out.MessageID)
	return out, nil
}
