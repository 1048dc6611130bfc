package ledger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/manav03panchal/milkledger/internal/errors"
	"github.com/manav03panchal/milkledger/internal/model"
)

// MigrationReport describes what Migrate did to a persisted record list.
type MigrationReport struct {
	Total    int // Elements read
	Migrated int // Elements converted from the legacy quantity shape
}

// NeedsWriteBack reports whether the migrated list differs from what is stored.
func (r MigrationReport) NeedsWriteBack() bool {
	return r.Migrated > 0
}

// Migrate decodes a persisted record list, converting legacy quantity-shaped
// objects into the boolean shape. Empty input yields an empty list.
// The result has the same length and order as the input.
func Migrate(raw []byte) ([]model.DailyRecord, MigrationReport, error) {
	var report MigrationReport

	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, report, nil
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		return nil, report, errors.Wrap(errors.ErrRecordsCorrupted, err.Error())
	}

	records := make([]model.DailyRecord, 0, len(elements))
	for i, element := range elements {
		record, migrated, err := MigrateRecord(element)
		if err != nil {
			return nil, report, errors.Wrapf(errors.ErrRecordsCorrupted, "element %d: %v", i, err)
		}
		if migrated {
			report.Migrated++
		}
		records = append(records, record)
	}
	report.Total = len(records)

	return records, report, nil
}

// MigrateRecord converts one persisted element. An element whose "cow" field
// is a boolean is already in the current shape and is kept as is. Anything
// else is legacy: cow is received when cowQty or quantity is positive,
// buffalo when buffaloQty is positive, and both reasons start empty.
// The second result reports whether the legacy conversion was applied.
func MigrateRecord(element json.RawMessage) (model.DailyRecord, bool, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(element, &fields); err != nil || fields == nil {
		return model.DailyRecord{}, false, fmt.Errorf("not an object")
	}

	record := model.DailyRecord{Date: stringField(fields["date"])}

	if cow, ok := boolField(fields["cow"]); ok {
		record.Cow = cow
		record.Buffalo, _ = boolField(fields["buffalo"])
		record.CowReason = stringField(fields["cowReason"])
		record.BuffaloReason = stringField(fields["buffaloReason"])
		return record, false, nil
	}

	record.Cow = positive(fields["cowQty"]) || positive(fields["quantity"])
	record.Buffalo = positive(fields["buffaloQty"])
	return record, true, nil
}

func boolField(raw json.RawMessage) (bool, bool) {
	var v bool
	if raw == nil || json.Unmarshal(raw, &v) != nil {
		return false, false
	}
	return v, true
}

func stringField(raw json.RawMessage) string {
	var v string
	if raw == nil || json.Unmarshal(raw, &v) != nil {
		return ""
	}
	return v
}

// positive reports whether a legacy quantity is greater than zero. Numbers,
// numeric strings and booleans are understood; anything else counts as zero.
func positive(raw json.RawMessage) bool {
	if raw == nil {
		return false
	}

	var n float64
	if json.Unmarshal(raw, &n) == nil {
		return n > 0
	}

	var s string
	if json.Unmarshal(raw, &s) == nil {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		return err == nil && f > 0
	}

	var b bool
	if json.Unmarshal(raw, &b) == nil {
		return b
	}

	return false
}
