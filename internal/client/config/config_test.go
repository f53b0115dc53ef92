package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8000/api/v1", c.ServerURL)
	assert.Equal(t, 60*time.Second, c.RequestTimeout)
	assert.Equal(t, 120*time.Second, c.GenerateTimeout)
	assert.Equal(t, "session.db", c.StorePath)
	assert.False(t, c.Ephemeral)
	assert.Equal(t, "warn", c.LogLevel)
	assert.Equal(t, "auto", c.Color)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://127.0.0.1:8000/api/v1", cfg.ServerURL)
	assert.Equal(t, 60*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_Precedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, "", "", map[string]any{
		"server_url":      "http://json:8000/api/v1",
		"request_timeout": "5s",
		"store_path":      "json.db",
	})
	t.Setenv("WEPUB_REQUEST_TIMEOUT", "7s")
	t.Setenv("WEPUB_STORE_PATH", "env.db")
	os.Args = []string{"testbin", "-c", path, "-s", "flag.db"}

	cfg := LoadConfig()

	assert.Equal(t, "http://json:8000/api/v1", cfg.ServerURL, "json over defaults")
	assert.Equal(t, 7*time.Second, cfg.RequestTimeout, "env over json")
	assert.Equal(t, "flag.db", cfg.StorePath, "flags over env")
	assert.Equal(t, 120*time.Second, cfg.GenerateTimeout, "untouched default")
}
