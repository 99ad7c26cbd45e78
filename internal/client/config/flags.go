package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/finboard/internal/flagx"
)

// FlagNames lists the command-line flags owned by the configuration,
// including the JSON file selectors.
var FlagNames = []string{"c", "config", "d", "ttl", "model", "timeout", "log-level", "log-format", "style"}

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-d string          database file
//	-ttl duration      session lifetime, 0 for no expiry
//	-model string      Gemini model used by categorize
//	-timeout duration  categorization timeout
//	-log-level string  debug, info, warn or error
//	-log-format string text or json
//	-style string      table rendering style
//
// args is filtered with flagx.FilterArgs first, so flags owned by other
// components (subcommands, their arguments) do not interfere.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, FlagNames)

	fs := flag.NewFlagSet("finboard", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var configPath string
	fs.StringVar(&configPath, "c", "", "path to JSON config file")
	fs.StringVar(&configPath, "config", "", "path to JSON config file")

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "database file")
	fs.DurationVar(&cfg.SessionTTL, "ttl", cfg.SessionTTL, "session lifetime (0 keeps sessions until logout)")
	fs.StringVar(&cfg.GeminiModel, "model", cfg.GeminiModel, "Gemini model used for categorization")
	fs.DurationVar(&cfg.CategorizeTimeout, "timeout", cfg.CategorizeTimeout, "categorization timeout")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format (text or json)")
	fs.StringVar(&cfg.RenderStyle, "style", cfg.RenderStyle, "table rendering style")

	return fs.Parse(args)
}
