package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salonhub/internal/domain"
)

// === Test JWT Validator ===

type stubValidator struct {
	claims *JWTClaims
	err    error
}

func (v *stubValidator) Validate(_ context.Context, _ string) (*JWTClaims, error) {
	return v.claims, v.err
}

// nextHandler is a simple handler that records the context identity.
func nextHandler() (http.Handler, func() (domain.Identity, bool)) {
	var id domain.Identity
	var found bool
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, found = domain.IdentityFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	return h, func() (domain.Identity, bool) { return id, found }
}

func serve(t *testing.T, a *Authenticator, policy domain.RoutePolicy, authHeader string) (*httptest.ResponseRecorder, func() (domain.Identity, bool)) {
	t.Helper()
	next, identity := nextHandler()
	handler := a.Pipeline(policy)(next)

	req := httptest.NewRequest(http.MethodGet, "/v1/salons/s-1", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec, identity
}

func TestPipeline_PublicRouteSkipsAuth(t *testing.T) {
	a := NewAuthenticator(&stubValidator{err: context.DeadlineExceeded}, nil)

	rec, identity := serve(t, a, domain.PublicRoute(), "")
	assert.Equal(t, http.StatusOK, rec.Code)

	_, found := identity()
	assert.False(t, found, "public routes must not attach an identity")
}

func TestPipeline_PublicRouteIgnoresGarbageHeader(t *testing.T) {
	a := NewAuthenticator(&stubValidator{err: context.DeadlineExceeded}, nil)

	rec, _ := serve(t, a, domain.PublicRoute(), "Bearer not-even-a-jwt")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPipeline_MissingHeader(t *testing.T) {
	a := NewAuthenticator(&stubValidator{}, nil)

	rec, _ := serve(t, a, domain.AnyAuthenticated(), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), string(domain.KindMalformedCredential))
}

func TestPipeline_MalformedHeader(t *testing.T) {
	a := NewAuthenticator(&stubValidator{}, nil)

	for _, header := range []string{"Basic dXNlcg==", "Bearer", "Bearer ", "token-without-scheme"} {
		rec, _ := serve(t, a, domain.AnyAuthenticated(), header)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
		assert.Contains(t, rec.Body.String(), string(domain.KindMalformedCredential), "header %q", header)
	}
}

func TestPipeline_RejectedToken(t *testing.T) {
	a := NewAuthenticator(&stubValidator{err: assert.AnError}, nil)

	rec, _ := serve(t, a, domain.AnyAuthenticated(), "Bearer expired-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), string(domain.KindUnauthenticated))
}

func TestPipeline_MissingSubject(t *testing.T) {
	a := NewAuthenticator(&stubValidator{claims: &JWTClaims{Role: "OWNER", SalonID: "s-1"}}, nil)

	rec, _ := serve(t, a, domain.AnyAuthenticated(), "Bearer t")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPipeline_UnknownRole(t *testing.T) {
	a := NewAuthenticator(&stubValidator{claims: &JWTClaims{Subject: "u-1", Role: "WIZARD", SalonID: "s-1"}}, nil)

	rec, _ := serve(t, a, domain.AnyAuthenticated(), "Bearer t")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPipeline_MissingSalonClaim(t *testing.T) {
	a := NewAuthenticator(&stubValidator{claims: &JWTClaims{Subject: "u-1", Role: "STYLIST"}}, nil)

	rec, _ := serve(t, a, domain.AnyAuthenticated(), "Bearer t")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPipeline_SuperAdminNeedsNoSalonClaim(t *testing.T) {
	a := NewAuthenticator(&stubValidator{claims: &JWTClaims{Subject: "admin-1", Role: "SUPER_ADMIN"}}, nil)

	rec, identity := serve(t, a, domain.AnyAuthenticated(), "Bearer t")
	require.Equal(t, http.StatusOK, rec.Code)

	id, found := identity()
	require.True(t, found)
	assert.Equal(t, domain.RoleSuperAdmin, id.Role)
	assert.Empty(t, id.SalonID)
}

func TestPipeline_RoleAllowed(t *testing.T) {
	a := NewAuthenticator(&stubValidator{claims: &JWTClaims{Subject: "u-1", Role: "MANAGER", SalonID: "s-1"}}, nil)
	policy := domain.RequireRoles(domain.RoleOwner, domain.RoleManager)

	rec, identity := serve(t, a, policy, "Bearer t")
	require.Equal(t, http.StatusOK, rec.Code)

	id, found := identity()
	require.True(t, found)
	assert.Equal(t, "u-1", id.UserID)
	assert.Equal(t, "s-1", id.SalonID)
}

func TestPipeline_RoleDenied(t *testing.T) {
	a := NewAuthenticator(&stubValidator{claims: &JWTClaims{Subject: "u-1", Role: "STYLIST", SalonID: "s-1"}}, nil)
	policy := domain.RequireRoles(domain.RoleOwner, domain.RoleManager)

	rec, identity := serve(t, a, policy, "Bearer t")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), string(domain.KindForbiddenRole))

	_, found := identity()
	assert.False(t, found, "denied requests must not reach the handler")
}

func TestPipeline_EmptyRoleSetAllowsAnyAuthenticated(t *testing.T) {
	a := NewAuthenticator(&stubValidator{claims: &JWTClaims{Subject: "u-1", Role: "STYLIST", SalonID: "s-1"}}, nil)

	rec, _ := serve(t, a, domain.AnyAuthenticated(), "Bearer t")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPipeline_ActingSalonClaimCarriedThrough(t *testing.T) {
	acting := "s-9"
	a := NewAuthenticator(&stubValidator{claims: &JWTClaims{Subject: "admin-1", Role: "SUPER_ADMIN", ActingSalonID: &acting}}, nil)

	rec, identity := serve(t, a, domain.AnyAuthenticated(), "Bearer t")
	require.Equal(t, http.StatusOK, rec.Code)

	id, found := identity()
	require.True(t, found)
	require.NotNil(t, id.ActingSalonID)
	assert.Equal(t, "s-9", *id.ActingSalonID)
}
