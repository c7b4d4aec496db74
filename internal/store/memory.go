// ABOUTME: In-memory record store guarded by a single RWMutex
// ABOUTME: Owns the insertion-ordered person list and the append-only id counter

package store

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// MemoryStore implements Store over an insertion-ordered slice.
// One lock guards both the slice and the id counter, so concurrent creates
// never share an id and readers see either the pre- or post-mutation state.
type MemoryStore struct {
	mu     sync.RWMutex
	people []*Person
	next   int32

	journal Journal
	logger  *slog.Logger
}

// NewMemoryStore creates an empty store. journal may be nil, in which case
// mutations are not recorded anywhere.
func NewMemoryStore(journal Journal, logger *slog.Logger) *MemoryStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &MemoryStore{
		journal: journal,
		logger:  logger.With("component", "store"),
	}
}

// Create assigns the next id to a copy of p and appends it.
func (s *MemoryStore) Create(ctx context.Context, p *Person) int32 {
	s.mu.Lock()
	rec := p.clone()
	rec.ID = s.next
	s.next++
	s.people = append(s.people, rec)
	s.mu.Unlock()

	s.record(ctx, &AuditEntry{
		Action:   AuditCreatePerson,
		PersonID: rec.ID,
		Detail:   map[string]any{"name": rec.Name},
	})
	return rec.ID
}

// FindByID returns a copy of the first record with the given id.
func (s *MemoryStore) FindByID(id int32) (*Person, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOfLocked(id)
	if i < 0 {
		return nil, false
	}
	return s.people[i].clone(), true
}

// ListRange returns copies of the records in [start, end) together with the
// collection size observed under the same read lock. An end of
// EndOfCollection reads through the last record. Bounds are clamped, so an
// out-of-range or inverted window yields an empty result rather than an error.
func (s *MemoryStore) ListRange(start, end int) ([]*Person, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := len(s.people)
	if end == EndOfCollection || end > count {
		end = count
	}
	start = max(start, 0)
	if start >= end {
		return []*Person{}, count
	}

	out := make([]*Person, 0, end-start)
	for _, p := range s.people[start:end] {
		out = append(out, p.clone())
	}
	return out, count
}

// Update applies patch to the record with the given id and returns the result.
func (s *MemoryStore) Update(ctx context.Context, id int32, patch PersonPatch) (*Person, bool) {
	s.mu.Lock()
	i := s.indexOfLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return nil, false
	}

	rec := s.people[i]
	if patch.Name != nil {
		rec.Name = *patch.Name
	}
	if patch.Email != nil {
		rec.Email = *patch.Email
	}
	if len(patch.Phones) > 0 {
		rec.Phones = make([]PhoneNumber, len(patch.Phones))
		copy(rec.Phones, patch.Phones)
	}
	updated := rec.clone()
	s.mu.Unlock()

	s.record(ctx, &AuditEntry{
		Action:   AuditUpdatePerson,
		PersonID: id,
		Detail:   map[string]any{"fields": patch.fields()},
	})
	return updated, true
}

// Remove deletes the record with the given id and returns it with the number
// of records left. When id is absent the current count is returned.
func (s *MemoryStore) Remove(ctx context.Context, id int32) (*Person, int, bool) {
	s.mu.Lock()
	i := s.indexOfLocked(id)
	if i < 0 {
		count := len(s.people)
		s.mu.Unlock()
		return nil, count, false
	}
	removed := s.removeLocked(i)
	remaining := len(s.people)
	s.mu.Unlock()

	s.record(ctx, &AuditEntry{
		Action:   AuditDeletePerson,
		PersonID: removed.ID,
		Detail:   map[string]any{"name": removed.Name},
	})
	return removed, remaining, true
}

// RemoveAt deletes the record at the given position in insertion order and
// reports the number of records left, or the current count on error.
func (s *MemoryStore) RemoveAt(ctx context.Context, index int) (*Person, int, error) {
	s.mu.Lock()
	if index < 0 || index >= len(s.people) {
		count := len(s.people)
		s.mu.Unlock()
		return nil, count, fmt.Errorf("removing index %d of %d: %w", index, count, ErrIndexOutOfRange)
	}
	removed := s.removeLocked(index)
	remaining := len(s.people)
	s.mu.Unlock()

	s.record(ctx, &AuditEntry{
		Action:   AuditDeletePerson,
		PersonID: removed.ID,
		Detail:   map[string]any{"name": removed.Name, "index": index},
	})
	return removed, remaining, nil
}

// Count returns the number of records currently held.
func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.people)
}

// NextID returns the id the next create will receive.
func (s *MemoryStore) NextID() int32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.next
}

// indexOfLocked must be called with mu held.
func (s *MemoryStore) indexOfLocked(id int32) int {
	for i, p := range s.people {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// removeLocked must be called with mu held and a valid index.
func (s *MemoryStore) removeLocked(i int) *Person {
	removed := s.people[i]
	copy(s.people[i:], s.people[i+1:])
	s.people[len(s.people)-1] = nil
	s.people = s.people[:len(s.people)-1]
	return removed
}

// record appends to the journal outside the lock. Failures are logged only;
// the in-memory mutation has already happened and stays authoritative.
func (s *MemoryStore) record(ctx context.Context, e *AuditEntry) {
	if s.journal == nil {
		return
	}
	if err := s.journal.Append(ctx, e); err != nil {
		s.logger.Warn("failed to append audit entry",
			"action", e.Action,
			"person_id", e.PersonID,
			"error", err,
		)
	}
}
