package logger

import (
	"log/slog"
	"strings"
)

// Config represents logger configuration
type Config struct {
	Level       string // "debug", "info", "warn", "error"
	Format      string // "json", "text"
	ServiceName string
	Version     string
	Environment string // "dev", "staging", "prod", "test"
	AddSource   bool
}

// ForEnvironment builds the server logger config. Source locations are only
// attached in dev, where the text handler makes them readable.
func ForEnvironment(level, format, serviceName, version, environment string) Config {
	return Config{
		Level:       level,
		Format:      format,
		ServiceName: serviceName,
		Version:     version,
		Environment: environment,
		AddSource:   strings.EqualFold(environment, EnvironmentDev) || strings.EqualFold(environment, EnvironmentDevelopment),
	}
}

// DevelopmentConfig is used by tests that want to see every record.
func DevelopmentConfig() Config {
	return ForEnvironment(LogLevelDebug, LogFormatText, DefaultServiceName, DefaultVersion, EnvironmentDev)
}

// DefaultConfig returns defaults (fallback when no config provided).
func DefaultConfig() Config {
	return Config{
		Level:       LogLevelInfo,
		Format:      LogFormatText,
		ServiceName: DefaultServiceName,
		Version:     DefaultVersion,
		Environment: EnvironmentDev,
	}
}

// CLIConfig keeps command output clean: warnings only unless verbose.
func CLIConfig(verbose bool) Config {
	cfg := DefaultConfig()
	cfg.ServiceName = CLIServiceName
	cfg.Level = LogLevelWarn
	if verbose {
		cfg.Level = LogLevelDebug
	}
	return cfg
}

// LogLevel converts string level to slog.Level
func (c Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelInfo:
		return slog.LevelInfo
	case LogLevelWarn, LogLevelWarning:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (c Config) IsJSON() bool {
	return strings.EqualFold(c.Format, LogFormatJSON)
}

// BaseAttributes are attached to every record.
func (c Config) BaseAttributes() []slog.Attr {
	return []slog.Attr{
		slog.String(AttrKeyService, c.ServiceName),
		slog.String(AttrKeyVersion, c.Version),
		slog.String(AttrKeyEnvironment, c.Environment),
	}
}
