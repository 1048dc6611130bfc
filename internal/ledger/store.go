// Package ledger holds the day records in memory and derives monthly
// statistics from them.
package ledger

import (
	"sort"
	"sync"

	"github.com/manav03panchal/milkledger/internal/logging"
	"github.com/manav03panchal/milkledger/internal/model"
	"github.com/manav03panchal/milkledger/internal/validate"
)

// Persister saves the complete record list.
type Persister interface {
	SaveRecords(records []model.DailyRecord) error
}

// Store is the set of day records keyed by date. Every mutation persists the
// whole list before the in-memory state changes, so a failed write leaves
// the store exactly as it was.
type Store struct {
	mu      sync.RWMutex
	records map[string]model.DailyRecord
	persist Persister
}

// NewStore creates a store over already decoded records. When a date occurs
// more than once the first occurrence wins.
func NewStore(records []model.DailyRecord, persist Persister) *Store {
	s := &Store{
		records: make(map[string]model.DailyRecord, len(records)),
		persist: persist,
	}

	dropped := 0
	for _, r := range records {
		if _, exists := s.records[r.Date]; exists {
			dropped++
			continue
		}
		s.records[r.Date] = r
	}
	if dropped > 0 {
		logging.Warn("dropped duplicate day records", logging.KeyCount, dropped)
	}

	return s
}

// Load decodes and migrates persisted bytes into a store. When any legacy
// element was converted, the migrated list is written back once.
func Load(raw []byte, persist Persister) (*Store, MigrationReport, error) {
	records, report, err := Migrate(raw)
	if err != nil {
		return nil, report, err
	}

	s := NewStore(records, persist)

	if report.NeedsWriteBack() && persist != nil {
		logging.Info("migrated legacy day records", logging.KeyCount, report.Migrated)
		if err := persist.SaveRecords(s.snapshot()); err != nil {
			return nil, report, err
		}
	}

	return s, report, nil
}

// Get returns the record for a date, or the empty record when none exists.
func (s *Store) Get(date string) model.DailyRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if r, ok := s.records[date]; ok {
		return r
	}
	return model.EmptyRecord(date)
}

// Has reports whether a record exists for the date.
func (s *Store) Has(date string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.records[date]
	return ok
}

// SetBoolean marks a milk as received or not on a date. A new record starts
// with the other milk false and both reasons empty.
func (s *Store) SetBoolean(date string, m model.Milk, value bool) (model.DailyRecord, error) {
	if err := validate.Date(date); err != nil {
		return model.DailyRecord{}, err
	}
	if err := validate.Milk(m); err != nil {
		return model.DailyRecord{}, err
	}

	return s.upsert(date, func(r model.DailyRecord) model.DailyRecord {
		return r.WithReceived(m, value)
	})
}

// SetReason stores the reason a milk was not received on a date. The text is
// cleaned first; an empty reason clears it. A new record starts with both
// milks false.
func (s *Store) SetReason(date string, m model.Milk, text string) (model.DailyRecord, error) {
	if err := validate.Date(date); err != nil {
		return model.DailyRecord{}, err
	}
	if err := validate.Milk(m); err != nil {
		return model.DailyRecord{}, err
	}
	reason, err := validate.Reason(text)
	if err != nil {
		return model.DailyRecord{}, err
	}

	return s.upsert(date, func(r model.DailyRecord) model.DailyRecord {
		return r.WithReason(m, reason)
	})
}

// Set marks a milk and stores its reason in one write. Either both changes
// are persisted or neither is.
func (s *Store) Set(date string, m model.Milk, value bool, text string) (model.DailyRecord, error) {
	if err := validate.Date(date); err != nil {
		return model.DailyRecord{}, err
	}
	if err := validate.Milk(m); err != nil {
		return model.DailyRecord{}, err
	}
	reason, err := validate.Reason(text)
	if err != nil {
		return model.DailyRecord{}, err
	}

	return s.upsert(date, func(r model.DailyRecord) model.DailyRecord {
		return r.WithReceived(m, value).WithReason(m, reason)
	})
}

// BulkReplace discards every record and stores the given ones instead.
func (s *Store) BulkReplace(records []model.DailyRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make(map[string]model.DailyRecord, len(records))
	for _, r := range records {
		if _, exists := next[r.Date]; !exists {
			next[r.Date] = r
		}
	}

	if err := s.save(next); err != nil {
		return err
	}
	s.records = next
	logging.LogOperation("bulk_replace", logging.KeyCount, len(next))
	return nil
}

// Records returns a copy of all records sorted by date.
func (s *Store) Records() []model.DailyRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func (s *Store) upsert(date string, change func(model.DailyRecord) model.DailyRecord) (model.DailyRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.records[date]
	if !ok {
		current = model.EmptyRecord(date)
	}
	updated := change(current)

	next := make(map[string]model.DailyRecord, len(s.records)+1)
	for k, v := range s.records {
		next[k] = v
	}
	next[date] = updated

	if err := s.save(next); err != nil {
		return current, err
	}
	s.records = next
	logging.LogOperation("upsert_day", logging.KeyDate, date)
	return updated, nil
}

func (s *Store) save(records map[string]model.DailyRecord) error {
	if s.persist == nil {
		return nil
	}
	return s.persist.SaveRecords(sortedRecords(records))
}

// snapshot must be called with the lock held.
func (s *Store) snapshot() []model.DailyRecord {
	return sortedRecords(s.records)
}

func sortedRecords(m map[string]model.DailyRecord) []model.DailyRecord {
	out := make([]model.DailyRecord, 0, len(m))
	for _, r := range m {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out
}
