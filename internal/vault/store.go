package vault

import (
	"fmt"
	"sync"

	verrors "github.com/agevault/agevault/internal/errors"
)

// Store is a working set of key records loaded from a vault file. It is an
// explicit handle owned by the caller, guarded for shared use; nothing in
// this package holds one globally.
type Store struct {
	mu      sync.Mutex
	records []KeyRecord
}

// NewStore creates a store over the given records. The slice is copied.
func NewStore(records []KeyRecord) *Store {
	s := &Store{}
	s.records = append(s.records, records...)
	return s
}

// Records returns a copy of the current record set in insertion order.
func (s *Store) Records() []KeyRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]KeyRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Names returns the names of all records, in order.
func (s *Store) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, len(s.records))
	for i, r := range s.records {
		names[i] = r.Name
	}
	return names
}

// Len returns the number of records.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Add appends a record. Ids are unique within a store.
func (s *Store) Add(record KeyRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.records {
		if r.ID == record.ID {
			return fmt.Errorf("%w: id %s", verrors.ErrDuplicateKey, record.ID)
		}
	}

	s.records = append(s.records, record)
	return nil
}

// Find looks up a record by id first, then by the first matching name.
func (s *Store) Find(idOrName string) (KeyRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(idOrName); i >= 0 {
		return s.records[i], nil
	}
	return KeyRecord{}, fmt.Errorf("%w: %s", verrors.ErrKeyNotFound, idOrName)
}

// Remove deletes a record by id or name and returns the removed record.
func (s *Store) Remove(idOrName string) (KeyRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(idOrName)
	if i < 0 {
		return KeyRecord{}, fmt.Errorf("%w: %s", verrors.ErrKeyNotFound, idOrName)
	}

	removed := s.records[i]
	s.records = append(s.records[:i], s.records[i+1:]...)
	return removed, nil
}

// Rename changes a record's name and returns the updated record.
func (s *Store) Rename(idOrName, newName string) (KeyRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(idOrName)
	if i < 0 {
		return KeyRecord{}, fmt.Errorf("%w: %s", verrors.ErrKeyNotFound, idOrName)
	}

	s.records[i].Name = newName
	return s.records[i], nil
}

// Merge adds incoming records whose ids are not already present.
// Returns how many were added and how many were skipped as duplicates.
func (s *Store) Merge(incoming []KeyRecord) (added, skipped int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := make(map[string]bool, len(s.records))
	for _, r := range s.records {
		existing[r.ID] = true
	}

	for _, r := range incoming {
		if existing[r.ID] {
			skipped++
			continue
		}
		s.records = append(s.records, r)
		existing[r.ID] = true
		added++
	}

	return added, skipped
}

// Replace swaps the entire record set.
func (s *Store) Replace(records []KeyRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = make([]KeyRecord, len(records))
	copy(s.records, records)
}

// indexOf must be called with the lock held. Id matches take priority over
// name matches so a record named like another record's id stays reachable.
func (s *Store) indexOf(idOrName string) int {
	for i, r := range s.records {
		if r.ID == idOrName {
			return i
		}
	}
	for i, r := range s.records {
		if r.Name == idOrName {
			return i
		}
	}
	return -1
}
