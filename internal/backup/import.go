package backup

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/manav03panchal/milkledger/internal/errors"
	"github.com/manav03panchal/milkledger/internal/ledger"
	"github.com/manav03panchal/milkledger/internal/model"
	"github.com/manav03panchal/milkledger/internal/validate"
)

// Rejection explains why one element of a backup was not accepted.
type Rejection struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// ImportResult is a parsed backup.
type ImportResult struct {
	Records  []model.DailyRecord `json:"-"`
	Total    int                 `json:"total"`
	Accepted int                 `json:"accepted"`
	Migrated int                 `json:"migrated"`
	Rejected []Rejection         `json:"rejected,omitempty"`
}

// Parse decodes a backup file. Each element goes through the legacy
// migration and must carry a valid date; elements that fail are listed in
// Rejected instead of Records. A later element repeating an earlier date is
// rejected as a duplicate.
func Parse(data []byte) (*ImportResult, error) {
	var top any
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, errors.NewInvalidInput(errors.ErrImportParse, "file", err.Error())
	}
	if _, ok := top.([]any); !ok {
		return nil, &errors.UserError{
			Message:    errors.ErrImportNotArray.Error(),
			Suggestion: errors.Suggestions[errors.ErrImportNotArray],
			Cause:      errors.ErrImportNotArray,
		}
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		return nil, errors.NewInvalidInput(errors.ErrImportParse, "file", err.Error())
	}

	result := &ImportResult{Total: len(elements)}
	seen := make(map[string]int, len(elements))

	for i, element := range elements {
		record, migrated, err := ledger.MigrateRecord(element)
		if err != nil {
			result.reject(i, err.Error())
			continue
		}
		if err := validate.Date(record.Date); err != nil {
			result.reject(i, fmt.Sprintf("invalid date %q", record.Date))
			continue
		}
		if first, dup := seen[record.Date]; dup {
			result.reject(i, fmt.Sprintf("duplicate date %s (first at element %d)", record.Date, first))
			continue
		}
		seen[record.Date] = i

		if migrated {
			result.Migrated++
		}
		result.Records = append(result.Records, record)
	}
	result.Accepted = len(result.Records)

	return result, nil
}

func (r *ImportResult) reject(index int, reason string) {
	r.Rejected = append(r.Rejected, Rejection{Index: index, Reason: reason})
}

// Err returns ErrImportRejected wrapped in a user error when any element was
// rejected, or nil when the whole file is clean.
func (r *ImportResult) Err() error {
	if len(r.Rejected) == 0 {
		return nil
	}

	var sb strings.Builder
	for i, rej := range r.Rejected {
		if i == 5 {
			fmt.Fprintf(&sb, "\n  ... and %d more", len(r.Rejected)-i)
			break
		}
		fmt.Fprintf(&sb, "\n  element %d: %s", rej.Index, rej.Reason)
	}

	return &errors.UserError{
		Message:    fmt.Sprintf("%d of %d records are invalid:%s", len(r.Rejected), r.Total, sb.String()),
		Suggestion: errors.Suggestions[errors.ErrImportRejected],
		Cause:      errors.ErrImportRejected,
	}
}

// Options controls how an import is applied.
type Options struct {
	// SkipInvalid imports the valid elements even when some were rejected.
	SkipInvalid bool
	// DryRun validates without touching the store.
	DryRun bool
}

// Replacer is the part of the record store an import needs.
type Replacer interface {
	BulkReplace(records []model.DailyRecord) error
}

// Apply replaces the stored records with the parsed ones. Unless
// SkipInvalid is set, any rejected element aborts the import and nothing
// changes.
func Apply(store Replacer, result *ImportResult, opts Options) error {
	if !opts.SkipInvalid {
		if err := result.Err(); err != nil {
			return err
		}
	}
	if opts.DryRun {
		return nil
	}
	return store.BulkReplace(result.Records)
}
