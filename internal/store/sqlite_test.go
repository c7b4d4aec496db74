// ABOUTME: Tests for the SQLite audit journal
// ABOUTME: Covers schema creation, appends, filtering and ordering of entries

package store

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJournal(t *testing.T) *SQLiteJournal {
	t.Helper()
	j, err := NewSQLiteJournal(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = j.Close() })
	return j
}

func TestNewSQLiteJournal_CreatesDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "nested", "journal.db")

	j, err := NewSQLiteJournal(dbPath)
	if err != nil {
		t.Fatalf("NewSQLiteJournal failed: %v", err)
	}
	defer j.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created in nested directory")
	}
}

func TestJournal_AppendGeneratesIDAndTimestamp(t *testing.T) {
	j := newTestJournal(t)
	ctx := context.Background()

	e := &AuditEntry{Action: AuditCreatePerson, PersonID: 3, Detail: map[string]any{"name": "Ada"}}
	require.NoError(t, j.Append(ctx, e))

	assert.NotEmpty(t, e.ID)
	assert.False(t, e.Timestamp.IsZero())

	entries, err := j.ListAudit(ctx, AuditFilter{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, e.ID, entries[0].ID)
	assert.Equal(t, AuditCreatePerson, entries[0].Action)
	assert.Equal(t, int32(3), entries[0].PersonID)
	assert.Equal(t, "Ada", entries[0].Detail["name"])
	assert.WithinDuration(t, e.Timestamp, entries[0].Timestamp, time.Millisecond)
}

func TestJournal_ListAuditFilters(t *testing.T) {
	j := newTestJournal(t)
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	seed := []*AuditEntry{
		{Action: AuditCreatePerson, PersonID: 1, Timestamp: base},
		{Action: AuditCreatePerson, PersonID: 2, Timestamp: base.Add(time.Second)},
		{Action: AuditUpdatePerson, PersonID: 1, Timestamp: base.Add(2 * time.Second)},
		{Action: AuditDeletePerson, PersonID: 1, Timestamp: base.Add(3 * time.Second)},
	}
	for _, e := range seed {
		require.NoError(t, j.Append(ctx, e))
	}

	t.Run("newest first", func(t *testing.T) {
		entries, err := j.ListAudit(ctx, AuditFilter{})
		require.NoError(t, err)
		require.Len(t, entries, 4)
		assert.Equal(t, AuditDeletePerson, entries[0].Action)
		assert.Equal(t, int32(1), entries[3].PersonID)
		assert.Equal(t, AuditCreatePerson, entries[3].Action)
	})

	t.Run("by person", func(t *testing.T) {
		id := int32(1)
		entries, err := j.ListAudit(ctx, AuditFilter{PersonID: &id})
		require.NoError(t, err)
		assert.Len(t, entries, 3)
	})

	t.Run("by action", func(t *testing.T) {
		action := AuditCreatePerson
		entries, err := j.ListAudit(ctx, AuditFilter{Action: &action})
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("limit", func(t *testing.T) {
		entries, err := j.ListAudit(ctx, AuditFilter{Limit: 1})
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("no match returns empty slice", func(t *testing.T) {
		id := int32(404)
		entries, err := j.ListAudit(ctx, AuditFilter{PersonID: &id})
		require.NoError(t, err)
		assert.NotNil(t, entries)
		assert.Empty(t, entries)
	})
}

func TestJournal_RecordsMemoryStoreMutations(t *testing.T) {
	j := newTestJournal(t)
	s := NewMemoryStore(j, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()

	first := s.Create(ctx, &Person{Name: "Ada"})
	second := s.Create(ctx, &Person{Name: "Grace"})
	_, _, err := s.RemoveAt(ctx, 0)
	require.NoError(t, err)

	entries, err := j.ListAudit(ctx, AuditFilter{PersonID: &first})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, AuditDeletePerson, entries[0].Action)
	assert.EqualValues(t, 0, entries[0].Detail["index"])

	entries, err = j.ListAudit(ctx, AuditFilter{PersonID: &second})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Grace", entries[0].Detail["name"])
}

func TestNormalizeAuditLimit(t *testing.T) {
	assert.Equal(t, 100, normalizeAuditLimit(0))
	assert.Equal(t, 100, normalizeAuditLimit(-5))
	assert.Equal(t, 25, normalizeAuditLimit(25))
	assert.Equal(t, 1000, normalizeAuditLimit(5000))
}
