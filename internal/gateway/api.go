// ABOUTME: HTTP API handlers for the people gateway
// ABOUTME: Serves the read-only audit journal as JSON

package gateway

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/2389/people-gateway/internal/store"
)

// AuditEntryResponse is the JSON shape of one audit journal entry.
type AuditEntryResponse struct {
	ID        string         `json:"id"`
	Action    string         `json:"action"`
	PersonID  int32          `json:"person_id"`
	Timestamp string         `json:"timestamp"`
	Detail    map[string]any `json:"detail,omitempty"`
}

// handleListAudit handles GET /api/audit requests.
// Supports optional ?person_id=N, ?action=create_person|update_person|delete_person
// and ?limit=N (default 100, max 1000). Entries are newest first.
func (g *Gateway) handleListAudit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	filter, msg := parseAuditFilter(r)
	if msg != "" {
		g.sendJSONError(w, http.StatusBadRequest, msg)
		return
	}

	entries, err := g.journal.ListAudit(r.Context(), filter)
	if err != nil {
		g.logger.Error("failed to list audit entries", "error", err)
		g.sendJSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	response := make([]AuditEntryResponse, len(entries))
	for i, e := range entries {
		response[i] = AuditEntryResponse{
			ID:        e.ID,
			Action:    string(e.Action),
			PersonID:  e.PersonID,
			Timestamp: e.Timestamp.Format(time.RFC3339Nano),
			Detail:    e.Detail,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(response)
}

// parseAuditFilter builds an AuditFilter from query parameters.
// A non-empty message describes the first invalid parameter.
func parseAuditFilter(r *http.Request) (store.AuditFilter, string) {
	var filter store.AuditFilter
	q := r.URL.Query()

	if v := q.Get("person_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return filter, "person_id must be an integer"
		}
		pid := int32(id)
		filter.PersonID = &pid
	}

	if v := q.Get("action"); v != "" {
		action := store.AuditAction(v)
		switch action {
		case store.AuditCreatePerson, store.AuditUpdatePerson, store.AuditDeletePerson:
			filter.Action = &action
		default:
			return filter, "action must be one of create_person, update_person, delete_person"
		}
	}

	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 1 {
			return filter, "limit must be a positive integer"
		}
		filter.Limit = limit
	}

	return filter, ""
}

// sendJSONError writes a JSON error response.
func (g *Gateway) sendJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
