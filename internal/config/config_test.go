package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
[development]
api_url = "http://localhost:4000"
log_level = "debug"

[production]
api_url = "https://lift.example.com"
session_backend = "redis"
redis_url = "redis://localhost:6379/0"
http_timeout = "10s"
calendar_url = "https://calendar.example.com/plan.ics"
`

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"LIFTLOG_CONFIG", "ENV", "LIFTLOG_API_URL", "LIFTLOG_SESSION_BACKEND", "LIFTLOG_DB_PATH",
		"REDIS_URL", "LIFTLOG_LOG_LEVEL", "LIFTLOG_LOG_FILE", "LIFTLOG_CALENDAR_URL",
		"LIFTLOG_HTTP_TIMEOUT", "LIFTLOG_CATALOG_TTL",
	} {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T) string {
	t.Helper()
	return writeConfigText(t, sample)
}

func writeConfigText(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, defaultAPIURL, cfg.APIURL)
	assert.Equal(t, BackendDatabase, cfg.SessionBackend)
	assert.NotEmpty(t, cfg.DBPath)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "localhost:3000", cfg.BaseURL().Host)
}

func TestLoadFileSections(t *testing.T) {
	clearEnv(t)
	t.Setenv("LIFTLOG_CONFIG", writeConfig(t))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://lift.example.com", cfg.APIURL)
	assert.Equal(t, BackendRedis, cfg.SessionBackend)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "https://calendar.example.com/plan.ics", cfg.CalendarURL)

	t.Setenv("ENV", "development")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:4000", cfg.APIURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, BackendDatabase, cfg.SessionBackend)

	t.Setenv("ENV", "staging")
	_, err = Load()
	assert.EqualError(t, err, "unknown env: staging")
}

func TestLoadZeroDurationsFromFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("LIFTLOG_CONFIG", writeConfigText(t, `
[development]
catalog_ttl = "0s"

[production]
http_timeout = "0s"
catalog_ttl = "0s"
`))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Zero(t, cfg.HTTPTimeout)
	assert.Zero(t, cfg.CatalogTTL)

	t.Setenv("ENV", "development")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Zero(t, cfg.CatalogTTL)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout, "an absent key keeps the default")
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("LIFTLOG_CONFIG", writeConfig(t))
	t.Setenv("LIFTLOG_API_URL", "https://other.example.com/api")
	t.Setenv("LIFTLOG_SESSION_BACKEND", "database")
	t.Setenv("LIFTLOG_HTTP_TIMEOUT", "2s")
	t.Setenv("LIFTLOG_CATALOG_TTL", "0s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://other.example.com/api", cfg.APIURL)
	assert.Equal(t, BackendDatabase, cfg.SessionBackend)
	assert.Equal(t, 2*time.Second, cfg.HTTPTimeout)
	assert.Zero(t, cfg.CatalogTTL)
}

func TestLoadErrors(t *testing.T) {
	cases := map[string]map[string]string{
		"bad duration":      {"LIFTLOG_HTTP_TIMEOUT": "soon"},
		"bad url":           {"LIFTLOG_API_URL": "not a url"},
		"unknown backend":   {"LIFTLOG_SESSION_BACKEND": "keychain"},
		"redis without url": {"LIFTLOG_SESSION_BACKEND": "redis"},
		"missing file":      {"LIFTLOG_CONFIG": "/nonexistent/config.toml"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
