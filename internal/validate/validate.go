// Package validate provides input validation helpers for milkledger.
package validate

import (
	"math"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/manav03panchal/milkledger/internal/errors"
	"github.com/manav03panchal/milkledger/internal/model"
)

const (
	// MaxReasonLength is the maximum length of a reason, in characters.
	MaxReasonLength = 500
	// MaxURLLength is the maximum length for a URL.
	MaxURLLength = 2048
	// MaxPrice is an upper bound that catches typos like an extra zero run.
	MaxPrice = 1_000_000
)

// Date validates a stored-form record date (YYYY-MM-DD).
func Date(date string) error {
	if _, ok := model.ParseDate(date); !ok {
		return errors.NewInvalidInput(errors.ErrInvalidDate, "date", date)
	}
	return nil
}

// Milk validates a milk type.
func Milk(m model.Milk) error {
	if m != model.MilkCow && m != model.MilkBuffalo {
		return errors.NewInvalidInput(errors.ErrInvalidMilk, "milk", string(m))
	}
	return nil
}

// Price parses and validates a single per-day price.
func Price(field, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v > MaxPrice {
		return 0, errors.NewInvalidInput(errors.ErrInvalidPrice, field, raw)
	}
	return v, nil
}

// Prices validates a complete price configuration.
func Prices(p model.Prices) error {
	if !p.Valid() || p.Cow > MaxPrice || p.Buffalo > MaxPrice {
		return errors.NewInvalidInput(errors.ErrInvalidPrice, "prices",
			model.FormatAmount(p.Cow)+"/"+model.FormatAmount(p.Buffalo))
	}
	return nil
}

// Reason cleans a free-text reason and checks its length.
// An empty result is valid and clears the reason.
func Reason(reason string) (string, error) {
	clean := SanitizeReason(reason)
	if utf8.RuneCountInString(clean) > MaxReasonLength {
		return "", errors.NewInvalidInput(errors.ErrReasonTooLong, "reason", Truncate(clean, 20))
	}
	return clean, nil
}

// Answer parses a yes/no answer.
func Answer(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes", "y", "true", "1", "on", "હા", "ha":
		return true, nil
	case "no", "n", "false", "0", "off", "ના", "na":
		return false, nil
	}
	return false, errors.NewInvalidInput(errors.ErrInvalidAnswer, "answer", raw)
}

// BaseURL validates an API base URL override.
func BaseURL(rawURL string) error {
	if rawURL == "" {
		return nil
	}
	if len(rawURL) > MaxURLLength {
		return errors.NewUserError("URL too long", "URLs must be 2048 characters or fewer")
	}

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Hostname() == "" {
		return errors.NewUserErrorWithField("url", rawURL,
			"Invalid URL format",
			"Provide a valid URL starting with https://")
	}

	isLocalhost := parsed.Hostname() == "localhost" || parsed.Hostname() == "127.0.0.1" || parsed.Hostname() == "::1"
	if parsed.Scheme != "https" && !(parsed.Scheme == "http" && isLocalhost) {
		return errors.NewUserErrorWithField("url", rawURL,
			"Invalid URL scheme",
			"Use https:// (http:// is only allowed for localhost)")
	}
	return nil
}

// PhoneNumber validates an international phone number in WhatsApp form:
// digits only, country code first, no leading plus.
func PhoneNumber(field, number string) error {
	n := strings.TrimPrefix(strings.TrimSpace(number), "+")
	if len(n) < 8 || len(n) > 15 {
		return errors.NewUserErrorWithField(field, number,
			"Invalid phone number",
			"Use the full number with country code, e.g. 919876543210")
	}
	for _, c := range n {
		if c < '0' || c > '9' {
			return errors.NewUserErrorWithField(field, number,
				"Invalid phone number",
				"Use digits only, e.g. 919876543210")
		}
	}
	return nil
}
