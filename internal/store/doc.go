// Package store holds person records for the gateway and journals their mutations.
//
// # Architecture
//
// Two pieces live here:
//
//   - MemoryStore: the record store. An insertion-ordered slice of Person plus an
//     append-only id counter, both guarded by one sync.RWMutex. It implements
//     the Store interface the request handlers depend on.
//   - SQLiteJournal: an audit journal in SQLite (modernc.org/sqlite). MemoryStore
//     appends an AuditEntry after every successful mutation when a Journal is
//     configured.
//
// Records are never loaded back from the journal; the in-memory collection is
// the only source of truth and starts empty on every process start.
//
// # Identifiers
//
// Ids start at 0 and grow by one on every Create. Removing a record never
// decrements the counter, so an id is never handed out twice.
//
// # Lookups and absence
//
// FindByID, Update and Remove report absence with a false second return rather
// than an error; an absent id is an expected outcome. RemoveAt is positional and
// returns ErrIndexOutOfRange when the index is not within [0, Count()).
// Remove and RemoveAt also report how many records are left, read under the
// lock that performed the removal.
//
// # Ranges
//
// ListRange(start, end) returns records in [start, end). EndOfCollection (-1) as
// end reads through the last record. Bounds are clamped, so an out-of-range or
// inverted window is simply empty. The second return is the collection size
// from the same snapshot as the window.
//
// # Audit journal
//
//	j, err := store.NewSQLiteJournal(store.MemoryPath)
//	s := store.NewMemoryStore(j, logger)
//	s.Create(ctx, &store.Person{Name: "Ada"})
//	entries, err := j.ListAudit(ctx, store.AuditFilter{})
package store
