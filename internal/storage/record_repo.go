package storage

import (
	"encoding/json"

	"github.com/manav03panchal/milkledger/internal/errors"
	"github.com/manav03panchal/milkledger/internal/model"
)

// RecordRepo persists the whole record list under a single key.
type RecordRepo struct {
	db *DB
}

// NewRecordRepo creates a new record repository.
func NewRecordRepo(db *DB) *RecordRepo {
	return &RecordRepo{db: db}
}

// LoadRaw returns the stored record list exactly as persisted.
// It returns nil and no error when nothing has been stored yet.
func (r *RecordRepo) LoadRaw() ([]byte, error) {
	data, err := r.db.GetBytes(model.KeyRecords)
	if err != nil {
		if IsErrKeyNotFound(err) {
			return nil, nil
		}
		return nil, errors.FromStorage("load records", err)
	}
	return data, nil
}

// SaveRecords replaces the stored record list.
func (r *RecordRepo) SaveRecords(records []model.DailyRecord) error {
	if records == nil {
		records = []model.DailyRecord{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}
	if err := r.db.SetBytes(model.KeyRecords, data); err != nil {
		return errors.FromStorage("save records", err)
	}
	return nil
}
