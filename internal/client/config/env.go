package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by parseEnv.
const (
	EnvDatabasePath      = "FINBOARD_DB"
	EnvSessionTTL        = "FINBOARD_SESSION_TTL"
	EnvGeminiModel       = "FINBOARD_GEMINI_MODEL"
	EnvCategorizeTimeout = "FINBOARD_CATEGORIZE_TIMEOUT"
	EnvLogLevel          = "FINBOARD_LOG_LEVEL"
	EnvLogFormat         = "FINBOARD_LOG_FORMAT"
	EnvRenderStyle       = "FINBOARD_RENDER_STYLE"
	EnvEnvFile           = "FINBOARD_ENV_FILE"
	EnvGeminiAPIKey      = "GEMINI_API_KEY"
)

// lookupEnv is a test seam.
var lookupEnv = os.LookupEnv

// parseEnv loads the dotenv file, if any, into the process environment
// (variables already set win) and overlays cfg with the variables above.
func parseEnv(cfg *Config) error {
	if v, ok := lookupEnv(EnvEnvFile); ok {
		cfg.EnvFile = v
	}
	if cfg.EnvFile != "" {
		if err := godotenv.Load(cfg.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", cfg.EnvFile, err)
		}
	}

	setString(&cfg.DatabasePath, EnvDatabasePath)
	setString(&cfg.GeminiAPIKey, EnvGeminiAPIKey)
	setString(&cfg.GeminiModel, EnvGeminiModel)
	setString(&cfg.LogLevel, EnvLogLevel)
	setString(&cfg.LogFormat, EnvLogFormat)
	setString(&cfg.RenderStyle, EnvRenderStyle)

	if err := setDuration(&cfg.SessionTTL, EnvSessionTTL); err != nil {
		return err
	}
	return setDuration(&cfg.CategorizeTimeout, EnvCategorizeTimeout)
}

func setString(dst *string, name string) {
	if v, ok := lookupEnv(name); ok && v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, name string) error {
	v, ok := lookupEnv(name)
	if !ok || v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*dst = d
	return nil
}
