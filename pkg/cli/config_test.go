package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserConfig_ActiveProfile(t *testing.T) {
	cfg := &UserConfig{
		CurrentProfile: "dev",
		Profiles: map[string]Profile{
			"dev":  {Host: "http://localhost:8080", Output: "table"},
			"prod": {Host: "https://api.example.com", Token: "tok"},
		},
	}

	assert.Equal(t, "http://localhost:8080", cfg.ActiveProfile("").Host)
	assert.Equal(t, "https://api.example.com", cfg.ActiveProfile("prod").Host)
	assert.Equal(t, Profile{}, cfg.ActiveProfile("missing"))
}

func TestSaveAndLoadUserConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := &UserConfig{
		CurrentProfile: "dev",
		Profiles: map[string]Profile{
			"dev": {Host: "http://localhost:8080", Token: "secret"},
		},
	}
	require.NoError(t, SaveUserConfig(cfg))

	info, err := os.Stat(ConfigPath())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	assert.Equal(t, filepath.Join(os.Getenv("HOME"), ".salonhub", "config.yaml"), ConfigPath())

	loaded, err := LoadUserConfig()
	require.NoError(t, err)
	assert.Equal(t, "dev", loaded.CurrentProfile)
	assert.Equal(t, "secret", loaded.Profiles["dev"].Token)
}

func TestLoadUserConfig_Missing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := LoadUserConfig()
	assert.Error(t, err)
}
