package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"salonhub/internal/domain"
)

type appointmentResponse struct {
	ID         string    `json:"id"`
	SalonID    string    `json:"salon_id"`
	StylistID  string    `json:"stylist_id"`
	ClientName string    `json:"client_name"`
	Service    string    `json:"service"`
	StartsAt   time.Time `json:"starts_at"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func appointmentToResponse(a *domain.Appointment) appointmentResponse {
	return appointmentResponse{
		ID:         a.ID,
		SalonID:    a.SalonID,
		StylistID:  a.StylistID,
		ClientName: a.ClientName,
		Service:    a.Service,
		StartsAt:   a.StartsAt,
		Status:     a.Status,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

// BookAppointment creates a booking in the salon.
func (h *APIHandler) BookAppointment(w http.ResponseWriter, r *http.Request) {
	var body struct {
		StylistID  string    `json:"stylist_id"`
		ClientName string    `json:"client_name"`
		Service    string    `json:"service"`
		StartsAt   time.Time `json:"starts_at"`
	}
	if err := decodeJSON(r, &body); err != nil {
		h.writeError(w, err)
		return
	}

	appt, err := h.appointments.Book(r.Context(), domain.CreateAppointmentRequest{
		SalonID:    chi.URLParam(r, "salonID"),
		StylistID:  body.StylistID,
		ClientName: body.ClientName,
		Service:    body.Service,
		StartsAt:   body.StartsAt,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, appointmentToResponse(appt))
}

// ListAppointments returns the salon's bookings.
func (h *APIHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	page := pageFromQuery(r)
	appts, total, err := h.appointments.ListBySalon(r.Context(), chi.URLParam(r, "salonID"), page)
	if err != nil {
		h.writeError(w, err)
		return
	}

	items := make([]appointmentResponse, len(appts))
	for i := range appts {
		items[i] = appointmentToResponse(&appts[i])
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"appointments":    items,
		"total":           total,
		"next_page_token": domain.NextPageToken(page.Offset(), page.Limit(), total),
	})
}

// GetAppointment returns one booking.
func (h *APIHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	appt, err := h.appointments.Get(r.Context(), chi.URLParam(r, "appointmentID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, appointmentToResponse(appt))
}

// UpdateAppointment advances a booking's status.
func (h *APIHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status string `json:"status"`
	}
	if err := decodeJSON(r, &body); err != nil {
		h.writeError(w, err)
		return
	}

	appt, err := h.appointments.UpdateStatus(r.Context(), chi.URLParam(r, "appointmentID"), body.Status)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, appointmentToResponse(appt))
}

// DeleteAppointment removes a booking.
func (h *APIHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	if err := h.appointments.Delete(r.Context(), chi.URLParam(r, "appointmentID")); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
