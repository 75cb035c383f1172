// Package api provides HTTP handlers for the salon platform REST API.
package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"salonhub/internal/domain"
	"salonhub/internal/service"
)

// salonService defines the salon operations used by the API handler.
type salonService interface {
	Get(ctx context.Context, id string) (*domain.Salon, error)
	AddStaff(ctx context.Context, req domain.CreateStaffRequest) (*domain.Staff, error)
	ListStaff(ctx context.Context, salonID string, page domain.PageRequest) ([]domain.Staff, int64, error)
}

// appointmentService defines the appointment operations used by the API handler.
type appointmentService interface {
	Book(ctx context.Context, req domain.CreateAppointmentRequest) (*domain.Appointment, error)
	Get(ctx context.Context, id string) (*domain.Appointment, error)
	ListBySalon(ctx context.Context, salonID string, page domain.PageRequest) ([]domain.Appointment, int64, error)
	UpdateStatus(ctx context.Context, id, status string) (*domain.Appointment, error)
	Delete(ctx context.Context, id string) error
}

// supportSessionService defines the support session operations used by the API handler.
type supportSessionService interface {
	Create(ctx context.Context, req domain.CreateSupportSessionRequest) (*domain.SupportSession, string, error)
	Exchange(ctx context.Context, rawToken string) (*service.ExchangeResult, error)
	Revoke(ctx context.Context, id string) error
	List(ctx context.Context, salonID *string, page domain.PageRequest) ([]domain.SupportSession, int64, error)
}

// auditService defines the audit operations used by the API handler.
type auditService interface {
	List(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditEntry, int64, error)
}

// authService defines the dev-mode credential operations used by the API handler.
type authService interface {
	IssueForEmail(ctx context.Context, email string) (string, time.Time, error)
}

// APIHandler serves the REST API.
type APIHandler struct {
	salons       salonService
	appointments appointmentService
	sessions     supportSessionService
	audit        auditService
	auth         authService // nil in production
	logger       *slog.Logger
}

// NewHandler creates an APIHandler. auth may be nil, which removes the
// dev-mode token route.
func NewHandler(
	salons salonService,
	appointments appointmentService,
	sessions supportSessionService,
	audit auditService,
	auth authService,
	logger *slog.Logger,
) *APIHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &APIHandler{
		salons:       salons,
		appointments: appointments,
		sessions:     sessions,
		audit:        audit,
		auth:         auth,
		logger:       logger.With("component", "api"),
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps err to an HTTP status and writes the structured decision.
func (h *APIHandler) writeError(w http.ResponseWriter, err error) {
	status := httpStatusFromDomainError(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("internal error", "error", err)
		writeJSON(w, status, map[string]interface{}{
			"code":    "INTERNAL",
			"message": "internal server error",
		})
		return
	}
	writeJSON(w, status, map[string]interface{}{
		"code":    errorCode(err),
		"message": err.Error(),
	})
}

// decodeJSON decodes a request body, rejecting unknown fields.
func decodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return domain.ErrValidation("invalid request body: %v", err)
	}
	return nil
}

// pageFromQuery builds a PageRequest from ?max_results= and ?page_token=.
func pageFromQuery(r *http.Request) domain.PageRequest {
	page := domain.PageRequest{PageToken: r.URL.Query().Get("page_token")}
	if v := r.URL.Query().Get("max_results"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			page.MaxResults = n
		}
	}
	return page
}
