//go:build integration

package integration

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"salonhub/internal/api"
	"salonhub/internal/db"
	"salonhub/internal/db/repository"
	"salonhub/internal/domain"
	"salonhub/internal/middleware"
	"salonhub/internal/service"
)

const testSecret = "integration-test-secret"

// testEnv is a full server stack over a throwaway SQLite database.
type testEnv struct {
	srv     *httptest.Server
	writeDB *sql.DB
	issuer  *service.TokenIssuer
	salons  *repository.SalonRepo
	staff   *repository.StaffRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	writeDB, _ := db.OpenTestSQLite(t)

	salonRepo := repository.NewSalonRepo(writeDB)
	staffRepo := repository.NewStaffRepo(writeDB)
	apptRepo := repository.NewAppointmentRepo(writeDB)
	sessionRepo := repository.NewSupportSessionRepo(writeDB)
	auditRepo := repository.NewAuditRepo(writeDB)

	issuer, err := service.NewTokenIssuer(testSecret, time.Hour)
	require.NoError(t, err)

	salonSvc := service.NewSalonService(salonRepo, staffRepo)
	apptSvc := service.NewAppointmentService(apptRepo, staffRepo)
	sessionSvc := service.NewSupportSessionService(sessionRepo, salonRepo, auditRepo, issuer, nil)
	auditSvc := service.NewAuditService(auditRepo)

	handler := api.NewHandler(salonSvc, apptSvc, sessionSvc, auditSvc, nil, nil)

	validator, err := middleware.NewHS256Validator(testSecret)
	require.NoError(t, err)

	router := api.NewRouter(handler, api.RouterConfig{
		Authenticator:      middleware.NewAuthenticator(validator, nil),
		RateLimit:          middleware.RateLimitConfig{RequestsPerSecond: 1000, Burst: 1000},
		CORSAllowedOrigins: []string{"*"},
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testEnv{
		srv:     srv,
		writeDB: writeDB,
		issuer:  issuer,
		salons:  salonRepo,
		staff:   staffRepo,
	}
}

// seedSalon inserts a salon and one staff member with the given role, and
// returns the salon plus a bearer token for that staff member.
func (e *testEnv) seedSalon(t *testing.T, name string, role domain.Role) (*domain.Salon, string) {
	t.Helper()

	ctx := context.Background()
	salon := &domain.Salon{Name: name, Timezone: "UTC", Active: true}
	require.NoError(t, e.salons.Create(ctx, salon))

	member := &domain.Staff{
		SalonID: salon.ID,
		Name:    name + " staff",
		Email:   name + "-staff@example.test",
		Role:    role,
	}
	require.NoError(t, e.staff.Create(ctx, member))

	token, _, err := e.issuer.IssueStaff(member)
	require.NoError(t, err)
	return salon, token
}

// superAdminToken mints a platform token with no home salon.
func (e *testEnv) superAdminToken(t *testing.T) string {
	t.Helper()
	token, _, err := e.issuer.IssueStaff(&domain.Staff{
		ID:   "admin-" + t.Name(),
		Role: domain.RoleSuperAdmin,
	})
	require.NoError(t, err)
	return token
}

func (e *testEnv) request(t *testing.T, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, e.srv.URL+path, reader)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]interface{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &decoded)
	}
	return resp, decoded
}

// expireSession rewinds a session's expiry directly in the database.
func (e *testEnv) expireSession(t *testing.T, sessionID string) {
	t.Helper()
	_, err := e.writeDB.Exec(
		`UPDATE support_sessions SET expires_at = ? WHERE id = ?`,
		time.Now().UTC().Add(-time.Minute), sessionID,
	)
	require.NoError(t, err)
}
