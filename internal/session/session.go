// Package session holds the working set of transactions between
// ingestion and export: id assignment, date ordering, user edits and
// soft deletion.
package session

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"dmunoz/cartola-csv/internal/dateformat"
	"dmunoz/cartola-csv/internal/models"
)

// ErrNotFound means no transaction with the given id exists in the
// session.
var ErrNotFound = errors.New("transaction not found")

// Session is the mutable working set. Safe for concurrent use.
// Transactions stay sorted by date ascending; rows sharing a date keep
// their ingestion order.
type Session struct {
	mu           sync.RWMutex
	nextID       int
	transactions []models.Transaction
	deleted      map[int]models.Transaction
}

// New creates an empty session. Ids start at 1.
func New() *Session {
	return &Session{
		nextID:  1,
		deleted: make(map[int]models.Transaction),
	}
}

// Ingest assigns ids to the given transactions, adds them and re-sorts.
// The stored copies are returned in session order.
func (s *Session) Ingest(transactions []models.Transaction) []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range transactions {
		transactions[i].ID = s.nextID
		s.nextID++
		s.transactions = append(s.transactions, transactions[i])
	}
	s.sortLocked()

	return s.snapshotLocked()
}

// All returns a copy of the live transactions in date order.
func (s *Session) All() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Get returns the transaction with the given id.
func (s *Session) Get(id int) (models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexLocked(id); i != -1 {
		return s.transactions[i], nil
	}
	return models.Transaction{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
}

// Count returns the number of live transactions.
func (s *Session) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.transactions)
}

// UpdateCategory sets the selected category of one transaction.
func (s *Session) UpdateCategory(id int, category string) error {
	return s.update(id, func(tx *models.Transaction) {
		tx.SelectedCategory = category
	})
}

// UpdateType flips the direction of one transaction.
func (s *Session) UpdateType(id int, txType models.TransactionType) error {
	return s.update(id, func(tx *models.Transaction) {
		tx.Type = txType
	})
}

// SetRecurring marks or unmarks one transaction as recurring.
func (s *Session) SetRecurring(id int, recurring bool) error {
	return s.update(id, func(tx *models.Transaction) {
		tx.IsRecurring = recurring
	})
}

// Delete removes a transaction from the working set but keeps it
// restorable.
func (s *Session) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i == -1 {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	s.deleted[id] = s.transactions[i]
	s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
	return nil
}

// Restore brings a deleted transaction back, keeping its id and edits.
func (s *Session) Restore(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, ok := s.deleted[id]
	if !ok {
		return fmt.Errorf("%w: id %d not in deleted set", ErrNotFound, id)
	}
	delete(s.deleted, id)
	s.transactions = append(s.transactions, tx)
	s.sortLocked()
	return nil
}

// BatchUpdateCategory applies one category to several transactions.
// Unknown ids are skipped; the count of updated rows is returned.
func (s *Session) BatchUpdateCategory(ids []int, category string) int {
	return s.batchUpdate(ids, func(tx *models.Transaction) {
		tx.SelectedCategory = category
	})
}

// BatchSetRecurring marks several transactions at once.
func (s *Session) BatchSetRecurring(ids []int, recurring bool) int {
	return s.batchUpdate(ids, func(tx *models.Transaction) {
		tx.IsRecurring = recurring
	})
}

// BatchDelete removes several transactions, returning how many existed.
func (s *Session) BatchDelete(ids []int) int {
	deleted := 0
	for _, id := range ids {
		if err := s.Delete(id); err == nil {
			deleted++
		}
	}
	return deleted
}

// Clear drops everything, including the restorable set. Ids keep
// counting up so stale references never alias new rows.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = nil
	s.deleted = make(map[int]models.Transaction)
}

func (s *Session) update(id int, apply func(*models.Transaction)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i == -1 {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	apply(&s.transactions[i])
	return nil
}

func (s *Session) batchUpdate(ids []int, apply func(*models.Transaction)) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := 0
	for _, id := range ids {
		if i := s.indexLocked(id); i != -1 {
			apply(&s.transactions[i])
			updated++
		}
	}
	return updated
}

func (s *Session) indexLocked(id int) int {
	for i := range s.transactions {
		if s.transactions[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Session) sortLocked() {
	sort.SliceStable(s.transactions, func(i, j int) bool {
		return dateformat.ParseDay(s.transactions[i].Date).
			Before(dateformat.ParseDay(s.transactions[j].Date))
	})
}

func (s *Session) snapshotLocked() []models.Transaction {
	out := make([]models.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}
