package api

import (
	"net/http"
	"time"

	"salonhub/internal/domain"
)

type auditResponse struct {
	ID        string    `json:"id"`
	ActorID   string    `json:"actor_id"`
	Action    string    `json:"action"`
	SalonID   *string   `json:"salon_id,omitempty"`
	SessionID *string   `json:"session_id,omitempty"`
	Reason    *string   `json:"reason,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// ListAudit returns audit entries, filterable by ?actor_id=, ?action=, ?salon_id=.
func (h *APIHandler) ListAudit(w http.ResponseWriter, r *http.Request) {
	filter := domain.AuditFilter{Page: pageFromQuery(r)}
	if v := r.URL.Query().Get("actor_id"); v != "" {
		filter.ActorID = &v
	}
	if v := r.URL.Query().Get("action"); v != "" {
		filter.Action = &v
	}
	if v := r.URL.Query().Get("salon_id"); v != "" {
		filter.SalonID = &v
	}

	entries, total, err := h.audit.List(r.Context(), filter)
	if err != nil {
		h.writeError(w, err)
		return
	}

	items := make([]auditResponse, len(entries))
	for i, e := range entries {
		items[i] = auditResponse{
			ID:        e.ID,
			ActorID:   e.ActorID,
			Action:    e.Action,
			SalonID:   e.SalonID,
			SessionID: e.SessionID,
			Reason:    e.Reason,
			Status:    e.Status,
			CreatedAt: e.CreatedAt,
		}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"entries":         items,
		"total":           total,
		"next_page_token": domain.NextPageToken(filter.Page.Offset(), filter.Page.Limit(), total),
	})
}
