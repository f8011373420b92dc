package config

import (
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"
)

// Validate checks cfg and reports every invalid value at once.
func Validate(cfg *Config) error {
	var problems []string

	if cfg.Log.Level != "" {
		if _, err := zapcore.ParseLevel(cfg.Log.Level); err != nil {
			problems = append(problems, fmt.Sprintf("log.level must be one of debug, info, warn, error, got: %q", cfg.Log.Level))
		}
	}

	switch cfg.Log.Format {
	case "json", "console":
	default:
		problems = append(problems, fmt.Sprintf("log.format must be json or console, got: %q", cfg.Log.Format))
	}

	if strings.TrimSpace(cfg.Server.Addr) == "" {
		problems = append(problems, "server.addr must not be empty")
	}

	if cfg.Server.ShutdownTimeout <= 0 {
		problems = append(problems, fmt.Sprintf("server.shutdown_timeout must be positive, got: %v", cfg.Server.ShutdownTimeout))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration:\n  - %s", strings.Join(problems, "\n  - "))
	}

	return nil
}
