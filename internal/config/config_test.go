package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets the LINKEDIN_* variables for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"LINKEDIN_TRANSPORT", "LINKEDIN_PORT", "LINKEDIN_DATA_DIR", "LINKEDIN_DB_FILE", "LINKEDIN_LOG_ENV",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "stdio", cfg.Server.Transport)
	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, "./data", cfg.Storage.DataDir)
	assert.Equal(t, filepath.Join("data", "linkedin.db"), cfg.DBPath())
	assert.Equal(t, "development", cfg.Log.Env)
}

func TestLoadConfigFileAndEnvPriority(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(`
server:
  transport: http
  port: "9000"
storage:
  data_dir: /var/lib/linkedin
`), 0o644))
	t.Setenv("LINKEDIN_PORT", "9100")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "http", cfg.Server.Transport)
	assert.Equal(t, "9100", cfg.Server.Port, "environment wins over config.yaml")
	assert.Equal(t, "/var/lib/linkedin", cfg.Storage.DataDir)
	assert.Equal(t, "linkedin.db", cfg.Storage.DBFile)
}

func TestLoadConfigReadsDotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LINKEDIN_LOG_ENV=production\n"), 0o644))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Log.Env)
}

func TestLoadConfigRejectsMalformedFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server: [oops"), 0o644))

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}
