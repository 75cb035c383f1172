package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"salonhub/internal/domain"
)

type salonResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Timezone  string    `json:"timezone"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

type staffResponse struct {
	ID        string    `json:"id"`
	SalonID   string    `json:"salon_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func salonToResponse(s *domain.Salon) salonResponse {
	return salonResponse{ID: s.ID, Name: s.Name, Timezone: s.Timezone, Active: s.Active, CreatedAt: s.CreatedAt}
}

func staffToResponse(s *domain.Staff) staffResponse {
	return staffResponse{ID: s.ID, SalonID: s.SalonID, Name: s.Name, Email: s.Email, Role: string(s.Role), CreatedAt: s.CreatedAt}
}

// GetSalon returns the caller's salon.
func (h *APIHandler) GetSalon(w http.ResponseWriter, r *http.Request) {
	salon, err := h.salons.Get(r.Context(), chi.URLParam(r, "salonID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, salonToResponse(salon))
}

// ListStaff returns the salon's roster.
func (h *APIHandler) ListStaff(w http.ResponseWriter, r *http.Request) {
	page := pageFromQuery(r)
	members, total, err := h.salons.ListStaff(r.Context(), chi.URLParam(r, "salonID"), page)
	if err != nil {
		h.writeError(w, err)
		return
	}

	items := make([]staffResponse, len(members))
	for i := range members {
		items[i] = staffToResponse(&members[i])
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"staff":           items,
		"total":           total,
		"next_page_token": domain.NextPageToken(page.Offset(), page.Limit(), total),
	})
}

// AddStaff hires a staff member into the salon.
func (h *APIHandler) AddStaff(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	if err := decodeJSON(r, &body); err != nil {
		h.writeError(w, err)
		return
	}

	member, err := h.salons.AddStaff(r.Context(), domain.CreateStaffRequest{
		SalonID: chi.URLParam(r, "salonID"),
		Name:    body.Name,
		Email:   body.Email,
		Role:    domain.Role(body.Role),
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, staffToResponse(member))
}
