package summary

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/manav03panchal/milkledger/internal/locale"
	"github.com/manav03panchal/milkledger/internal/logging"
)

// Result is what a summary call produced.
type Result struct {
	Text string `json:"text"`
	// Fallback is true when Text is one of the fixed fallback messages.
	Fallback bool `json:"fallback"`
	// RequestID correlates the call with its log lines.
	RequestID string `json:"requestId"`
}

// Service turns summary requests into display text.
type Service struct {
	gen     Generator
	timeout time.Duration
	seq     atomic.Uint64
}

// NewService wraps a generator. A non-positive timeout means no deadline
// beyond the caller's context.
func NewService(gen Generator, timeout time.Duration) *Service {
	return &Service{gen: gen, timeout: timeout}
}

// Begin starts a new request generation and returns its token. Responses
// carrying an older token are stale.
func (s *Service) Begin() uint64 {
	return s.seq.Add(1)
}

// IsCurrent reports whether token is the most recently issued one.
func (s *Service) IsCurrent(token uint64) bool {
	return s.seq.Load() == token
}

// Provider names the underlying generator.
func (s *Service) Provider() string {
	return s.gen.Name()
}

// Summarize asks the generator for a summary. It never fails: a transport or
// service error yields the connection apology, an empty answer yields the
// "could not fetch" message.
func (s *Service) Summarize(ctx context.Context, req Request) Result {
	ctx = logging.NewRequestContext(ctx)
	result := Result{RequestID: logging.RequestIDFromContext(ctx)}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := s.gen.Generate(ctx, SystemInstruction, BuildPrompt(req))
	elapsed := time.Since(start).Milliseconds()

	switch {
	case err != nil:
		logging.WarnContext(ctx, "summary request failed",
			logging.KeyProvider, s.gen.Name(),
			logging.KeyError, err,
			logging.KeyDuration, elapsed)
		result.Text = locale.SummaryFailed
		result.Fallback = true
	case text == "":
		logging.WarnContext(ctx, "summary response was empty", logging.KeyProvider, s.gen.Name())
		result.Text = locale.SummaryEmpty
		result.Fallback = true
	default:
		logging.DebugContext(ctx, "summary generated",
			logging.KeyProvider, s.gen.Name(),
			logging.KeyMonth, req.MonthLabel,
			logging.KeyCount, len(req.Records),
			logging.KeyDuration, elapsed)
		result.Text = text
	}

	return result
}
