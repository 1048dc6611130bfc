// Package summary asks a text-generation service for a Gujarati summary of
// a month of milk records. Failures never reach the caller as errors: the
// caller always gets text to show.
package summary

import (
	"fmt"
	"strings"

	"github.com/manav03panchal/milkledger/internal/locale"
	"github.com/manav03panchal/milkledger/internal/model"
)

// SystemInstruction frames the model's role for every request.
const SystemInstruction = `You are a smart assistant for a Gujarati household milk tracker app.
Your role is to analyze the milk collection data (Yes/No records) and provide a summary in GUJARATI language only.
You should calculate the total estimated bill based on the "Price Per Day" provided.
If there are reasons mentioned for not taking milk, summarize them as well.
Be polite, helpful and concise.`

// Request is the input of one summary call.
type Request struct {
	MonthLabel string
	Records    []model.DailyRecord
	Prices     model.Prices
}

// BuildPrompt renders the user prompt: one line per record with the status of
// each milk and any reason, followed by the prices and the questions to answer.
func BuildPrompt(req Request) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "અહીં %s મહિના માટે દૂધનો હિસાબ (હા/ના) છે:\n\n", req.MonthLabel)

	for _, r := range req.Records {
		fmt.Fprintf(&sb, "%s: %s, %s\n", r.Date, recordPart(r, model.MilkCow), recordPart(r, model.MilkBuffalo))
	}

	sb.WriteString("\nભાવ (રોજનો ફિક્સ ભાવ):\n")
	fmt.Fprintf(&sb, "- ગાયનું દૂધ: %s/દિવસ\n", locale.Money(req.Prices.Cow))
	fmt.Fprintf(&sb, "- ભેંસનું દૂધ: %s/દિવસ\n", locale.Money(req.Prices.Buffalo))

	sb.WriteString(`
મહેરબાની કરીને મને નીચેની વિગતો ગુજરાતીમાં જણાવો:
1. ગાયનું દૂધ કેટલા દિવસ લીધું?
2. ભેંસનું દૂધ કેટલા દિવસ લીધું?
3. ગાય અને ભેંસ બંનેનું મળીને કુલ અનુમાનિત બિલ.
4. દૂધ ન લેવાના મુખ્ય કારણો (જો કોઈ હોય તો).
5. અન્ય કોઈ મહત્વની નોંધ.

જવાબ માત્ર ગુજરાતી ભાષામાં જ આપો.
`)

	return sb.String()
}

func recordPart(r model.DailyRecord, m model.Milk) string {
	part := locale.MilkName(m) + ": " + locale.YesNo(r.Received(m))
	if reason := r.VisibleReason(m); reason != "" {
		part += fmt.Sprintf(" (%s: %s)", locale.Reason, reason)
	}
	return part
}
