package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearCareerEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"CAREER_API_BASE_URL", "CAREER_AI_CHAT_URL", "CAREER_DATA_DIR", "CAREER_STORAGE",
		"CAREER_REDIS_ADDR", "CAREER_POLL_INTERVAL", "CAREER_REQUEST_TIMEOUT",
		"CAREER_CHAT_TIMEOUT", "CAREER_RATE_LIMIT", "CAREER_LOG_LEVEL",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:8080", c.APIBaseURL)
	assert.Equal(t, "http://localhost:8000/api/ai-chat", c.AIChatURL)
	assert.Equal(t, ".careercli", c.DataDir)
	assert.Equal(t, StorageSQLite, c.StorageBackend)
	assert.Equal(t, 15*time.Second, c.PollInterval)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, 30*time.Second, c.ChatTimeout)
	assert.Equal(t, 10.0, c.RateLimit)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	clearCareerEnv(t)
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"careercli"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://localhost:8080", cfg.APIBaseURL)
	assert.Equal(t, 15*time.Second, cfg.PollInterval)
}

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	clearCareerEnv(t)
	t.Setenv("CAREER_API_BASE_URL", "http://from-env:1")
	t.Setenv("CAREER_LOG_LEVEL", "debug")

	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"careercli", "-u", "http://from-flag:2"}

	cfg := LoadConfig()

	assert.Equal(t, "http://from-flag:2", cfg.APIBaseURL)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_KeepsSubSecondDurations(t *testing.T) {
	clearCareerEnv(t)
	t.Setenv("CAREER_POLL_INTERVAL", "500ms")
	t.Setenv("CAREER_REQUEST_TIMEOUT", "1500ms")

	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"careercli"}

	cfg := LoadConfig()

	assert.Equal(t, 500*time.Millisecond, cfg.PollInterval)
	assert.Equal(t, 1500*time.Millisecond, cfg.RequestTimeout)
}

func TestLoadConfig_JSONSubSecondDurationSurvivesFlags(t *testing.T) {
	clearCareerEnv(t)
	path := writeTempJSON(t, t.TempDir(), map[string]any{"poll_interval": "500ms"})

	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"careercli", "-c", path, "-t", "3"}

	cfg := LoadConfig()

	assert.Equal(t, 500*time.Millisecond, cfg.PollInterval)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
}
