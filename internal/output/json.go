package output

import (
	"github.com/manav03panchal/milkledger/internal/backup"
	"github.com/manav03panchal/milkledger/internal/errors"
	"github.com/manav03panchal/milkledger/internal/ledger"
	"github.com/manav03panchal/milkledger/internal/model"
)

// JSONFormatter provides JSON-specific formatting.
type JSONFormatter struct {
	*Formatter
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{Formatter: f}
}

// DayOutput represents a day in JSON output.
type DayOutput struct {
	model.DailyRecord
	Cost float64 `json:"cost"`
}

// NewDayOutput creates a DayOutput from a record.
func NewDayOutput(r model.DailyRecord, prices model.Prices) DayOutput {
	return DayOutput{DailyRecord: r, Cost: ledger.DayCost(r, prices)}
}

// MonthResponse represents the month command output in JSON.
type MonthResponse struct {
	Label   string              `json:"label"`
	Stats   ledger.MonthlyStats `json:"stats"`
	Days    []DayOutput         `json:"days,omitempty"`
	Reasons []DayOutput         `json:"reasons"`
}

// NewMonthResponse builds the JSON view of a month.
func NewMonthResponse(label string, records []model.DailyRecord, period ledger.Period, prices model.Prices, withDays bool) MonthResponse {
	resp := MonthResponse{
		Label:   label,
		Stats:   ledger.Aggregate(records, period, prices),
		Reasons: []DayOutput{},
	}
	if withDays {
		for _, d := range ledger.MonthDays(records, period) {
			resp.Days = append(resp.Days, NewDayOutput(d, prices))
		}
	}
	for _, r := range ledger.Reasons(records, period) {
		resp.Reasons = append(resp.Reasons, NewDayOutput(r, prices))
	}
	return resp
}

// StatusResponse is a generic status reply.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// ImportResponse represents the import command output in JSON.
type ImportResponse struct {
	Status string               `json:"status"`
	DryRun bool                 `json:"dryRun"`
	Result *backup.ImportResult `json:"result"`
}

// ErrorResponse represents an error in JSON output.
type ErrorResponse struct {
	Status     string `json:"status"`
	Category   string `json:"category"`
	Error      string `json:"error"`
	Suggestion string   `json:"suggestion,omitempty"`
	Examples   []string `json:"examples,omitempty"`
}

// PrintOK prints a success status with optional data.
func (j *JSONFormatter) PrintOK(message string, data any) error {
	return j.JSON(StatusResponse{Status: "ok", Message: message, Data: data})
}

// PrintError prints an error response.
func (j *JSONFormatter) PrintError(err error) error {
	return j.JSON(ErrorResponse{
		Status:     "error",
		Category:   errors.Classify(err).String(),
		Error:      err.Error(),
		Suggestion: errors.GetSuggestion(err),
		Examples:   errors.GetExamples(err),
	})
}
