package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"salonhub/internal/domain"
)

type sessionResponse struct {
	ID         string     `json:"id"`
	SalonID    string     `json:"salon_id"`
	CreatedBy  string     `json:"created_by"`
	Reason     string     `json:"reason"`
	IssuedAt   time.Time  `json:"issued_at"`
	ExpiresAt  time.Time  `json:"expires_at"`
	ConsumedAt *time.Time `json:"consumed_at,omitempty"`
	RevokedAt  *time.Time `json:"revoked_at,omitempty"`
}

// sessionToResponse renders a session. The token hash never leaves the server.
func sessionToResponse(s *domain.SupportSession) sessionResponse {
	return sessionResponse{
		ID:         s.ID,
		SalonID:    s.SalonID,
		CreatedBy:  s.CreatedBy,
		Reason:     s.Reason,
		IssuedAt:   s.IssuedAt,
		ExpiresAt:  s.ExpiresAt,
		ConsumedAt: s.ConsumedAt,
		RevokedAt:  s.RevokedAt,
	}
}

// CreateSupportSession opens a delegated support session for one salon and
// returns the one-time token. The token is shown exactly once.
func (h *APIHandler) CreateSupportSession(w http.ResponseWriter, r *http.Request) {
	var body struct {
		SalonID string `json:"salon_id"`
		Reason  string `json:"reason"`
	}
	if err := decodeJSON(r, &body); err != nil {
		h.writeError(w, err)
		return
	}

	session, rawToken, err := h.sessions.Create(r.Context(), domain.CreateSupportSessionRequest{
		SalonID: body.SalonID,
		Reason:  body.Reason,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"session": sessionToResponse(session),
		"token":   rawToken,
	})
}

// ExchangeSupportToken consumes a one-time support token for an acting-as
// credential. The route is public: the token itself is the authentication.
func (h *APIHandler) ExchangeSupportToken(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Token string `json:"token"`
	}
	if err := decodeJSON(r, &body); err != nil {
		h.writeError(w, err)
		return
	}

	result, err := h.sessions.Exchange(r.Context(), body.Token)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"access_token":    result.AccessToken,
		"token_type":      "Bearer",
		"expires_at":      result.ExpiresAt,
		"acting_salon_id": result.Session.SalonID,
	})
}

// RevokeSupportSession marks a pending session unusable.
func (h *APIHandler) RevokeSupportSession(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Revoke(r.Context(), chi.URLParam(r, "sessionID")); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListSupportSessions returns sessions, optionally filtered by ?salon_id=.
func (h *APIHandler) ListSupportSessions(w http.ResponseWriter, r *http.Request) {
	var salonID *string
	if v := r.URL.Query().Get("salon_id"); v != "" {
		salonID = &v
	}
	page := pageFromQuery(r)

	sessions, total, err := h.sessions.List(r.Context(), salonID, page)
	if err != nil {
		h.writeError(w, err)
		return
	}

	items := make([]sessionResponse, len(sessions))
	for i := range sessions {
		items[i] = sessionToResponse(&sessions[i])
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"sessions":        items,
		"total":           total,
		"next_page_token": domain.NextPageToken(page.Offset(), page.Limit(), total),
	})
}
