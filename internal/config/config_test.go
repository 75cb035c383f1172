package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable LoadFromEnv reads so tests are hermetic.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DB_PATH", "LISTEN_ADDR", "TLS_CERT_FILE", "TLS_KEY_FILE", "LOG_LEVEL",
		"ENV", "SEED_FILE", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
		"CORS_ALLOWED_ORIGINS", "ALLOW_INSECURE_HTTP", "AUTH_ISSUER_URL",
		"AUTH_JWKS_URL", "AUTH_AUDIENCE", "JWT_SECRET", "AUTH_ALLOWED_ISSUERS",
		"AUTH_TOKEN_TTL", "SUPPORT_SESSION_RETENTION",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "salonhub.sqlite", cfg.DBPath)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 100.0, cfg.RateLimitRPS)
	assert.Equal(t, 200, cfg.RateLimitBurst)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 720*time.Hour, cfg.SupportSessionRetention)
	assert.NotEmpty(t, cfg.Warnings, "insecure default secret must warn")
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_PATH", "/tmp/test.sqlite")
	t.Setenv("LISTEN_ADDR", ":9090")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("RATE_LIMIT_RPS", "5.5")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("SUPPORT_SESSION_RETENTION", "48h")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/test.sqlite", cfg.DBPath)
	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, 5.5, cfg.RateLimitRPS)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 48*time.Hour, cfg.SupportSessionRetention)
	assert.Empty(t, cfg.Warnings)
}

func TestLoadFromEnv_TLSRequiresBothFiles(t *testing.T) {
	clearEnv(t)
	t.Setenv("TLS_CERT_FILE", "/tmp/cert.pem")

	_, err := LoadFromEnv()
	assert.Error(t, err)
}

func TestLoadFromEnv_IssuerRequiresAudience(t *testing.T) {
	clearEnv(t)
	t.Setenv("AUTH_ISSUER_URL", "https://idp.example")

	_, err := LoadFromEnv()
	assert.Error(t, err)
}

func TestLoadFromEnv_ProductionRejectsDevSecret(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENV", "production")
	t.Setenv("ALLOW_INSECURE_HTTP", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example")

	_, err := LoadFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoadFromEnv_ProductionRejectsCORSWildcard(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENV", "production")
	t.Setenv("JWT_SECRET", "real-secret")
	t.Setenv("ALLOW_INSECURE_HTTP", "true")

	_, err := LoadFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CORS")
}

func TestLoadFromEnv_ProductionRequiresTLS(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENV", "production")
	t.Setenv("JWT_SECRET", "real-secret")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example")

	_, err := LoadFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TLS")
}

func TestLoadFromEnv_ProductionWithInsecureOptIn(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENV", "production")
	t.Setenv("JWT_SECRET", "real-secret")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example")
	t.Setenv("ALLOW_INSECURE_HTTP", "true")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
}

func TestSlogLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", (&Config{LogLevel: "debug"}).SlogLevel().String())
	assert.Equal(t, "WARN", (&Config{LogLevel: "WARN"}).SlogLevel().String())
	assert.Equal(t, "INFO", (&Config{LogLevel: "bogus"}).SlogLevel().String())
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte(
		"# comment\n\nDB_PATH=/tmp/from-dotenv.sqlite\nLOG_LEVEL=\"debug\"\n",
	), 0o600))

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "/tmp/from-dotenv.sqlite", os.Getenv("DB_PATH"))
	assert.Equal(t, "debug", os.Getenv("LOG_LEVEL"), "quotes are stripped")
}

func TestLoadDotEnv_EnvWins(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_PATH", "/tmp/from-env.sqlite")

	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("DB_PATH=/tmp/from-dotenv.sqlite\n"), 0o600))

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "/tmp/from-env.sqlite", os.Getenv("DB_PATH"))
}

func TestLoadDotEnv_MissingFileIsNotAnError(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "nope.env")))
}
