// Package ledger implements the in-memory collection of income records.
package ledger

import (
	"errors"
	"strings"
	"sync"

	"github.com/income-recorder/backend/internal/models"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
)

var (
	ErrRecordNotFound = errors.New("there is no record with this code")
	ErrCodeExists     = errors.New("a record with this code already exists")
)

// Ledger holds income records keyed by their code.
//
// The ledger owns the lifetime of its records and enforces code uniqueness.
// It is safe for concurrent use, the records themselves are plain values.
type Ledger struct {
	mu      sync.RWMutex
	records map[string]models.Record
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{
		records: make(map[string]models.Record),
	}
}

// Add inserts a record. Records with a code that is already present are
// rejected.
func (l *Ledger) Add(record models.Record) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.records[record.Code]; ok {
		return ErrCodeExists
	}

	l.records[record.Code] = record
	return nil
}

// Put inserts a record, replacing any record with the same code.
// Used when loading from a data file, where the last line wins.
func (l *Ledger) Put(record models.Record) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.records[record.Code] = record
}

// Get returns the record with the given code.
// The code is matched case-insensitively.
func (l *Ledger) Get(code string) (models.Record, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	record, ok := l.records[canonical(code)]
	if !ok {
		return models.Record{}, ErrRecordNotFound
	}

	return record, nil
}

// Update applies a partial update to the record with the given code and
// returns the updated record.
func (l *Ledger) Update(code string, update models.RecordUpdate) (models.Record, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	record, ok := l.records[canonical(code)]
	if !ok {
		return models.Record{}, ErrRecordNotFound
	}

	if err := record.Update(update); err != nil {
		return models.Record{}, err
	}

	l.records[record.Code] = record
	return record, nil
}

// Delete removes the record with the given code.
func (l *Ledger) Delete(code string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	c := canonical(code)
	if _, ok := l.records[c]; !ok {
		return ErrRecordNotFound
	}

	delete(l.records, c)
	return nil
}

// Len returns the number of records in the ledger.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.records)
}

// All returns all records, sorted by code.
func (l *Ledger) All() []models.Record {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.sorted()
}

// Search returns all records whose code or description matches the glob
// pattern, sorted by code. Codes match case-insensitively.
func (l *Ledger) Search(pattern string) []models.Record {
	l.mu.RLock()
	defer l.mu.RUnlock()

	records := make([]models.Record, 0)
	for _, record := range l.sorted() {
		if glob.Glob(canonical(pattern), record.Code) || glob.Glob(pattern, record.Description) {
			records = append(records, record)
		}
	}

	return records
}

// sorted returns all records ordered by code. Callers must hold the lock.
func (l *Ledger) sorted() []models.Record {
	codes := make([]string, 0, len(l.records))
	for code := range l.records {
		codes = append(codes, code)
	}
	slices.Sort(codes)

	records := make([]models.Record, 0, len(codes))
	for _, code := range codes {
		records = append(records, l.records[code])
	}

	return records
}

// canonical normalizes a code for lookups the same way record validation
// does, so that lookups succeed for any input the validators would accept.
func canonical(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
