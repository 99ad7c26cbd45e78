package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/finboard/internal/flagx"
	"github.com/dmitrijs2005/finboard/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify durations either as
// strings like "3s" or as integer nanoseconds. Pointer fields tell an
// absent key from a zero value, so only keys present in the file override
// earlier sources.
type JsonConfig struct {
	DatabasePath      *string         `json:"database_path"`
	SessionTTL        *timex.Duration `json:"session_ttl"`
	GeminiAPIKey      *string         `json:"gemini_api_key"`
	GeminiModel       *string         `json:"gemini_model"`
	CategorizeTimeout *timex.Duration `json:"categorize_timeout"`
	LogLevel          *string         `json:"log_level"`
	LogFormat         *string         `json:"log_format"`
	RenderStyle       *string         `json:"render_style"`
}

// parseJson overlays cfg with values loaded from the JSON file named by -c
// or -config in args. Without either flag nothing is loaded.
func parseJson(cfg *Config, args []string) error {
	jsonConfigFile := flagx.ConfigPath(args)
	if jsonConfigFile == "" {
		return nil
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", jsonConfigFile, err)
	}

	overlay(&cfg.DatabasePath, jc.DatabasePath)
	overlay(&cfg.GeminiAPIKey, jc.GeminiAPIKey)
	overlay(&cfg.GeminiModel, jc.GeminiModel)
	overlay(&cfg.LogLevel, jc.LogLevel)
	overlay(&cfg.LogFormat, jc.LogFormat)
	overlay(&cfg.RenderStyle, jc.RenderStyle)
	if jc.SessionTTL != nil {
		cfg.SessionTTL = jc.SessionTTL.Duration
	}
	if jc.CategorizeTimeout != nil {
		cfg.CategorizeTimeout = jc.CategorizeTimeout.Duration
	}
	return nil
}

func overlay[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
