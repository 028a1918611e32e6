package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("CONSULTANCY_CONFIG_DIR", t.TempDir())
	t.Setenv("CONSULTANCY_API_BASE_URL", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "default", cfg.Profile)
	require.Equal(t, "warn", cfg.LogLevel)
	require.Equal(t, "text", cfg.LogFormat)
	require.Empty(t, cfg.BaseURL)
}

func TestLoadConfigFileThenEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CONSULTANCY_CONFIG_DIR", dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(
		"base_url: https://agency.example.com/api\n"+
			"profile: staging\n"+
			"log_level: debug\n",
	), 0o644))

	t.Setenv("CONSULTANCY_API_BASE_URL", "")
	t.Setenv("LOG_LEVEL", "")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "https://agency.example.com/api", cfg.BaseURL)
	require.Equal(t, "staging", cfg.Profile)
	require.Equal(t, "debug", cfg.LogLevel)

	// Environment wins over the file.
	t.Setenv("CONSULTANCY_API_BASE_URL", "https://override.example.com/api")
	cfg, err = LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "https://override.example.com/api", cfg.BaseURL)
	require.Equal(t, "staging", cfg.Profile)
}

func TestLoadConfigBadFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CONSULTANCY_CONFIG_DIR", dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("{not yaml"), 0o644))

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestEffectiveSessionDirFollowsProfile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CONSULTANCY_CONFIG_DIR", dir)
	t.Setenv("CONSULTANCY_SESSION_DIR", "")

	cfg := Config{Profile: "alpha"}
	require.Equal(t, filepath.Join(dir, "sessions", "alpha"), cfg.EffectiveSessionDir())

	cfg.SessionDir = "/tmp/explicit"
	require.Equal(t, "/tmp/explicit", cfg.EffectiveSessionDir())
}

func TestInstallationIDStable(t *testing.T) {
	t.Setenv("CONSULTANCY_CONFIG_DIR", t.TempDir())

	first := InstallationID()
	_, err := uuid.Parse(first)
	require.NoError(t, err)

	// Minted once, then reused.
	require.Equal(t, first, InstallationID())
}
