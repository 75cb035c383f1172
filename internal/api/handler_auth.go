package api

import "net/http"

// Healthz is the public liveness endpoint.
func (h *APIHandler) Healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// DevToken mints a staff credential by email. Registered only outside
// production; in production an external identity provider issues credentials.
func (h *APIHandler) DevToken(w http.ResponseWriter, r *http.Request) {
	if h.auth == nil {
		writeJSON(w, http.StatusNotFound, map[string]interface{}{
			"code":    "NOT_FOUND",
			"message": "dev token issuance is disabled",
		})
		return
	}

	var body struct {
		Email string `json:"email"`
	}
	if err := decodeJSON(r, &body); err != nil {
		h.writeError(w, err)
		return
	}

	token, expires, err := h.auth.IssueForEmail(r.Context(), body.Email)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"access_token": token,
		"token_type":   "Bearer",
		"expires_at":   expires,
	})
}
