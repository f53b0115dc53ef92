package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/wepub/internal/flagx"
	"github.com/dmitrijs2005/wepub/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Durations may be
// strings like "60s" or integer nanoseconds. Pointer fields distinguish
// "absent" from "zero".
type JsonConfig struct {
	ServerURL       string          `json:"server_url"`
	RequestTimeout  *timex.Duration `json:"request_timeout"`
	GenerateTimeout *timex.Duration `json:"generate_timeout"`
	StorePath       string          `json:"store_path"`
	Ephemeral       *bool           `json:"ephemeral"`
	LogLevel        string          `json:"log_level"`
	Color           string          `json:"color"`
}

// parseJson overlays cfg with the file named by -c or -config. Fields absent
// from the file keep their current values. Panics on read or decode errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerURL != "" {
		cfg.ServerURL = jc.ServerURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.GenerateTimeout != nil {
		cfg.GenerateTimeout = jc.GenerateTimeout.Duration
	}
	if jc.StorePath != "" {
		cfg.StorePath = jc.StorePath
	}
	if jc.Ephemeral != nil {
		cfg.Ephemeral = *jc.Ephemeral
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.Color != "" {
		cfg.Color = jc.Color
	}
}
