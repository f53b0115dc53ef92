package config

import (
	"time"

	"github.com/dmitrijs2005/wepub/internal/client/api"
	"github.com/dmitrijs2005/wepub/internal/client/transport"
)

// Config holds runtime settings for the wepub CLI.
//
// Fields:
//   - ServerURL: API base address including the version prefix.
//   - RequestTimeout: bound for ordinary calls.
//   - GenerateTimeout: bound for article generation.
//   - StorePath: SQLite file holding the session credential.
//   - Ephemeral: keep the credential in memory only.
//   - LogLevel: debug, info, warn or error.
//   - Color: auto, always or never.
type Config struct {
	ServerURL       string        `env:"WEPUB_SERVER_URL"`
	RequestTimeout  time.Duration `env:"WEPUB_REQUEST_TIMEOUT"`
	GenerateTimeout time.Duration `env:"WEPUB_GENERATE_TIMEOUT"`
	StorePath       string        `env:"WEPUB_STORE_PATH"`
	Ephemeral       bool          `env:"WEPUB_EPHEMERAL"`
	LogLevel        string        `env:"WEPUB_LOG_LEVEL"`
	Color           string        `env:"WEPUB_COLOR"`
}

// LoadDefaults populates c with defaults for a local backend.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:8000/api/v1"
	c.RequestTimeout = transport.DefaultTimeout
	c.GenerateTimeout = api.DefaultGenerateTimeout
	c.StorePath = "session.db"
	c.Ephemeral = false
	c.LogLevel = "warn"
	c.Color = "auto"
}

// LoadConfig applies defaults, then the JSON file, then WEPUB_* environment
// variables, then flags. Later sources win.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
