// Package config loads runtime configuration for the wepub CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. WEPUB_* environment variables.
//  4. Command-line flags.
//
// Supported flags
//
//	-a string     API base address (default http://127.0.0.1:8000/api/v1)
//	-t duration   request timeout (default 60s)
//	-g duration   article generation timeout (default 2m)
//	-s string     credential store file (default session.db)
//	-l string     log level (default warn)
//	-e            keep the credential in memory only
//	-color string auto, always or never (default auto)
//
// # JSON schema
//
//	{
//	  "server_url": "https://wepub.example.com/api/v1",
//	  "request_timeout": "30s",
//	  "generate_timeout": "3m",
//	  "store_path": "/home/me/.wepub/session.db",
//	  "ephemeral": false,
//	  "log_level": "info",
//	  "color": "never"
//	}
//
// Environment
//
//	WEPUB_SERVER_URL, WEPUB_REQUEST_TIMEOUT, WEPUB_GENERATE_TIMEOUT,
//	WEPUB_STORE_PATH, WEPUB_EPHEMERAL, WEPUB_LOG_LEVEL, WEPUB_COLOR
package config
