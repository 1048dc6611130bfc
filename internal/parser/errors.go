package parser

import (
	"fmt"
	"strings"

	"github.com/manav03panchal/milkledger/internal/errors"
)

// DateExamples provides example date formats.
var DateExamples = []string{
	"today",
	"yesterday",
	"2024-01-15",
	"15/01/2024",
	"3 days ago",
	"last monday",
}

// MonthExamples provides example month formats.
var MonthExamples = []string{
	"this month",
	"last month",
	"2024-01",
	"jan 2024",
	"જાન્યુઆરી 2024",
}

// ParseError represents a date or month parsing error with example inputs.
type ParseError struct {
	Input    string
	Field    string
	Examples []string
	Cause    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse %s '%s'", e.Field, e.Input)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// ToUserError converts a ParseError to a UserError for consistent handling.
func (e *ParseError) ToUserError() *errors.UserError {
	ue := errors.NewInvalidInput(e.Cause, e.Field, e.Input)
	if len(e.Examples) > 0 {
		ue.Suggestion = strings.Join(e.Examples[:min(3, len(e.Examples))], ", ")
	}
	return ue
}

func newDateError(input string) *errors.UserError {
	return (&ParseError{Input: input, Field: "date", Examples: DateExamples, Cause: errors.ErrInvalidDate}).ToUserError()
}

func newMonthError(input string) *errors.UserError {
	return (&ParseError{Input: input, Field: "month", Examples: MonthExamples, Cause: errors.ErrInvalidMonth}).ToUserError()
}
