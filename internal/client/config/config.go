package config

import (
	"time"

	"github.com/dmitrijs2005/finboard/internal/client/categorizer"
)

// Config holds runtime settings for the finboard CLI.
//
// Fields:
//   - DatabasePath: SQLite file (or ":memory:") holding all local data.
//   - SessionTTL: lifetime of a login; zero keeps the session until logout.
//   - GeminiAPIKey, GeminiModel: credentials and model of the categorizer.
//     An empty key disables categorization.
//   - CategorizeTimeout: upper bound of one categorization call.
//   - LogLevel, LogFormat: slog level name and "text" or "json".
//   - RenderStyle: glamour style for tables ("auto", "dark", "light",
//     "notty", "ascii").
//   - EnvFile: dotenv file read before the environment is consulted.
type Config struct {
	DatabasePath      string
	SessionTTL        time.Duration
	GeminiAPIKey      string
	GeminiModel       string
	CategorizeTimeout time.Duration
	LogLevel          string
	LogFormat         string
	RenderStyle       string
	EnvFile           string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "finboard.db"
	c.SessionTTL = 0
	c.GeminiAPIKey = ""
	c.GeminiModel = categorizer.DefaultModel
	c.CategorizeTimeout = 30 * time.Second
	c.LogLevel = "warn"
	c.LogFormat = "text"
	c.RenderStyle = "auto"
	c.EnvFile = ".env"
}

// LoadConfig constructs a Config from args (os.Args[1:] in production).
// Sources are applied in increasing precedence: defaults, dotenv file and
// environment, JSON file selected with -c/-config, command-line flags.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
