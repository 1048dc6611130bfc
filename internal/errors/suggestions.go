package errors

import "errors"

// Suggestions maps common errors to helpful suggestions.
var Suggestions = map[error]string{
	// User input errors
	ErrInvalidDate:        "Use YYYY-MM-DD or phrases like 'today', 'yesterday', '3 days ago'.",
	ErrInvalidMonth:       "Use YYYY-MM, a month name like 'jan 2024', or 'this month' / 'last month'.",
	ErrInvalidMilk:        "Use 'cow' or 'buffalo'.",
	ErrInvalidPrice:       "Prices must be non-negative numbers, e.g. 60 or 62.5.",
	ErrInvalidAnswer:      "Use yes/no (also y/n, true/false, 1/0, હા/ના).",
	ErrReasonTooLong:      "Keep reasons under 500 characters.",
	ErrImportParse:        "Check that the file is a milkledger backup (JSON).",
	ErrImportNotArray:     "Backups are JSON arrays of day records. Use 'milkledger export' to create one.",
	ErrImportRejected:     "Fix the listed rows, or re-run with --skip-invalid to import only the valid ones.",
	ErrAINotConfigured:    "Set GEMINI_API_KEY (or ANTHROPIC_API_KEY with ai.provider: anthropic).",
	ErrShareNotConfigured: "Set WHATSAPP_TOKEN, WHATSAPP_PHONE_NUMBER_ID and WHATSAPP_TO, or share the link instead.",
	ErrUnknownFormat:      "Supported formats: json, csv, xlsx.",

	// System errors
	ErrRecordsCorrupted: "Restore a backup with 'milkledger import <backup.json>'.",
	ErrDiskFull:         "Free up disk space and try again. No change was saved.",
	ErrLockHeld:         "Another milkledger instance is running (is the dashboard open?). Close it and try again.",
	ErrPermissionDenied: "Check file permissions in your data directory (~/.local/share/milkledger/).",
}

// GetSuggestion returns a suggestion for an error, if available.
// It walks the error chain to find matching suggestions.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	// Check if it's a UserError with a suggestion
	if ue, ok := AsUserError(err); ok && ue.Suggestion != "" {
		return ue.Suggestion
	}

	for knownErr, suggestion := range Suggestions {
		if errors.Is(err, knownErr) {
			return suggestion
		}
	}

	return ""
}

// CommandExamples provides example commands for common errors.
var CommandExamples = map[error][]string{
	ErrInvalidDate: {
		"milkledger mark cow yes --date yesterday",
		"milkledger day 2024-01-15",
	},
	ErrInvalidMonth: {
		"milkledger month 2024-01",
		"milkledger month last month",
	},
	ErrInvalidPrice: {
		"milkledger price set --cow 60 --buffalo 80",
	},
}

// GetExamples returns example commands for an error.
func GetExamples(err error) []string {
	for knownErr, examples := range CommandExamples {
		if errors.Is(err, knownErr) {
			return examples
		}
	}
	return nil
}
