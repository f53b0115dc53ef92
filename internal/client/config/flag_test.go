package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"cmd", "-a", "http://10.0.0.5:8000/api/v1", "-t", "30s", "-g", "5m", "-s", "/tmp/s.db", "-l", "debug", "-e", "-color", "never"},
			expected: &Config{
				ServerURL:       "http://10.0.0.5:8000/api/v1",
				RequestTimeout:  30 * time.Second,
				GenerateTimeout: 5 * time.Minute,
				StorePath:       "/tmp/s.db",
				LogLevel:        "debug",
				Ephemeral:       true,
				Color:           "never",
			},
		},
		{
			name:     "switch does not eat the next flag",
			args:     []string{"cmd", "-e", "-a", "http://h/api/v1", "-x", "ignored"},
			expected: &Config{ServerURL: "http://h/api/v1", Ephemeral: true},
		},
		{name: "incorrect timeout", args: []string{"cmd", "-t", "abc"}, expectPanic: true, expected: &Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
