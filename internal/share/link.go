package share

import (
	"context"
	"strings"
)

// WhatsAppURL is the click-to-chat endpoint that opens WhatsApp with a
// prefilled message and lets the user pick the chat.
const WhatsAppURL = "https://wa.me/"

// Outcome describes what a sink did with the text.
type Outcome struct {
	// Link is set when the user still has to open a URL to send the text.
	Link string `json:"link,omitempty"`
	// MessageID is set when the text was delivered by the API.
	MessageID string `json:"messageId,omitempty"`
}

// Sink delivers the share text somewhere.
type Sink interface {
	Share(ctx context.Context, text string) (Outcome, error)
}

// LinkSink produces a wa.me link. It never fails.
type LinkSink struct{}

// Share implements Sink.
func (LinkSink) Share(_ context.Context, text string) (Outcome, error) {
	return Outcome{Link: Link(text)}, nil
}

// Link returns the wa.me URL that opens WhatsApp with text prefilled.
func Link(text string) string {
	return WhatsAppURL + "?text=" + EncodeComponent(text)
}

// EncodeComponent percent-encodes every byte except the unreserved URI
// characters and !*'(), matching what browsers produce for a query component.
func EncodeComponent(s string) string {
	const hex = "0123456789ABCDEF"

	var sb strings.Builder
	sb.Grow(len(s) * 3)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnescaped(c) {
			sb.WriteByte(c)
			continue
		}
		sb.WriteByte('%')
		sb.WriteByte(hex[c>>4])
		sb.WriteByte(hex[c&0x0f])
	}
	return sb.String()
}

func isUnescaped(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}
