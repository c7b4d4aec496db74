// ABOUTME: Audit journal entity and SQLite methods for recording person mutations
// ABOUTME: Records which person was created, updated or deleted, and when

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// timestampLayout is fixed-width so stored timestamps sort chronologically as text.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// AuditAction represents an auditable mutation.
type AuditAction string

const (
	AuditCreatePerson AuditAction = "create_person"
	AuditUpdatePerson AuditAction = "update_person"
	AuditDeletePerson AuditAction = "delete_person"
)

// AuditEntry represents a single audit journal entry.
type AuditEntry struct {
	ID        string         // UUID v4
	Action    AuditAction    // what happened
	PersonID  int32          // the affected record
	Timestamp time.Time      // when it happened
	Detail    map[string]any // additional context
}

// AuditFilter specifies filtering options for listing audit entries.
type AuditFilter struct {
	PersonID *int32       // filter by person
	Action   *AuditAction // filter by action type
	Limit    int          // max results (default 100, max 1000)
}

// Journal receives an entry for every successful mutation of the record store.
type Journal interface {
	Append(ctx context.Context, e *AuditEntry) error
}

// Append adds a new entry to the audit journal.
// Generates ID and Timestamp if not set.
func (j *SQLiteJournal) Append(ctx context.Context, e *AuditEntry) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}

	var detailJSON *string
	if e.Detail != nil {
		data, err := json.Marshal(e.Detail)
		if err != nil {
			return fmt.Errorf("marshaling audit detail: %w", err)
		}
		str := string(data)
		detailJSON = &str
	}

	query := `
		INSERT INTO audit_log (audit_id, action, person_id, ts, detail_json)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := j.db.ExecContext(ctx, query,
		e.ID,
		string(e.Action),
		e.PersonID,
		e.Timestamp.UTC().Format(timestampLayout),
		detailJSON,
	)
	if err != nil {
		return fmt.Errorf("inserting audit entry: %w", err)
	}

	j.logger.Debug("appended audit entry",
		"id", e.ID,
		"action", e.Action,
		"person_id", e.PersonID,
	)
	return nil
}

// normalizeAuditLimit applies default (100) and cap (1000) to audit limit.
func normalizeAuditLimit(limit int) int {
	switch {
	case limit <= 0:
		return 100
	case limit > 1000:
		return 1000
	default:
		return limit
	}
}

// scanAuditEntry scans a row into an AuditEntry.
func scanAuditEntry(scanner interface{ Scan(dest ...any) error }) (AuditEntry, error) {
	var e AuditEntry
	var actionStr, tsStr string
	var detailJSON *string

	if err := scanner.Scan(&e.ID, &actionStr, &e.PersonID, &tsStr, &detailJSON); err != nil {
		return e, fmt.Errorf("scanning audit entry: %w", err)
	}

	e.Action = AuditAction(actionStr)
	var err error
	e.Timestamp, err = time.Parse(timestampLayout, tsStr)
	if err != nil {
		return e, fmt.Errorf("parsing timestamp: %w", err)
	}

	if detailJSON != nil {
		if err := json.Unmarshal([]byte(*detailJSON), &e.Detail); err != nil {
			return e, fmt.Errorf("unmarshaling detail: %w", err)
		}
	}
	return e, nil
}

const auditLogQuery = `
	SELECT audit_id, action, person_id, ts, detail_json
	FROM audit_log
	WHERE (? IS NULL OR person_id = ?)
	  AND (? IS NULL OR action = ?)
	ORDER BY ts DESC, rowid DESC
	LIMIT ?
`

// ListAudit returns audit entries matching the filter criteria, newest first.
func (j *SQLiteJournal) ListAudit(ctx context.Context, f AuditFilter) ([]AuditEntry, error) {
	limit := normalizeAuditLimit(f.Limit)

	var actionStr *string
	if f.Action != nil {
		a := string(*f.Action)
		actionStr = &a
	}

	rows, err := j.db.QueryContext(ctx, auditLogQuery,
		f.PersonID, f.PersonID,
		actionStr, actionStr,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying audit log: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []AuditEntry
	for rows.Next() {
		e, err := scanAuditEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating audit entries: %w", err)
	}

	if entries == nil {
		entries = []AuditEntry{}
	}
	return entries, nil
}
