package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoad_MissingKeyFails(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("WELL_API_KEY", "")

	_, err := Load()
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestLoad_FromEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("WELL_API_KEY", "env-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestLoad_FromDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("WELL_API_KEY=dotenv-key\n"), 0o600))
	chdir(t, dir)
	t.Setenv("WELL_API_KEY", "")
	os.Unsetenv("WELL_API_KEY")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "dotenv-key", cfg.APIKey)
}

func TestLoad_ConfigFileOverrides(t *testing.T) {
	dir := t.TempDir()
	content := "base_url: http://localhost:9999/well\neditor: vim\ntimeout: 5s\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))
	chdir(t, dir)
	t.Setenv("WELL_API_KEY", "k")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999/well", cfg.BaseURL)
	assert.Equal(t, "vim", cfg.Editor)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}
