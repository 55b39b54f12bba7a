package env

import (
	"os"
	"royal_casino/internal/config"
)

const (
	logLevelEnvName  = "LOG_LEVEL"
	logFormatEnvName = "LOG_FORMAT"
)

type logConfig struct {
	level  string
	format string
}

func NewLogConfig() (config.LogConfig, error) {
	cfg := &logConfig{
		level:  os.Getenv(logLevelEnvName),
		format: os.Getenv(logFormatEnvName),
	}
	if cfg.level == "" {
		cfg.level = "info"
	}
	if cfg.format == "" {
		cfg.format = "text"
	}
	return cfg, nil
}

func (cfg *logConfig) Level() string {
	return cfg.level
}

func (cfg *logConfig) Format() string {
	return cfg.format
}
