// Package config loads runtime configuration for the finboard CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A dotenv file (default ".env", override with FINBOARD_ENV_FILE) and
//     the process environment (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string           database file
//	-ttl duration       session lifetime, 0 for no expiry
//	-model string       Gemini model
//	-timeout duration   categorization timeout
//	-log-level string   debug, info, warn, error
//	-log-format string  text or json
//	-style string       table rendering style
//
// # JSON schema
//
// The JSON loader uses timex.Duration for durations, so values can be either
// strings like "3s" or integer nanoseconds:
//
//	{
//	  "database_path": "/home/ama/.local/share/finboard.db",
//	  "session_ttl": "720h",
//	  "gemini_model": "gemini-2.0-flash",
//	  "categorize_timeout": "30s",
//	  "log_level": "info",
//	  "log_format": "json",
//	  "render_style": "dark"
//	}
//
// Primary API
//
//   - type Config                                - runtime settings
//   - func LoadConfig(args) (*Config, error)     - defaults, env, JSON, then flags
//   - func (*Config) LoadDefaults()              - sets sensible defaults
//   - var FlagNames                              - flags owned by this package
package config
