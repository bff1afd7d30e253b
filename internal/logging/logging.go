// Package logging builds the shared zap logger used by every termtools binary.
// Logs go to a file only; tool output on stdout/stderr stays clean for
// pipelines and status lines. Use `tail -f ~/.termtools/termtools.log` to
// watch logs in real-time.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"termtools/internal/core"
)

// NewLogger creates a file-backed logger at the given level.
// Unknown level strings fall back to info.
func NewLogger(level string) (*zap.Logger, error) {
	logLevel := ParseLevel(level)

	loggerConfig := zap.NewProductionConfig()
	loggerConfig.Level = logLevel
	loggerConfig.OutputPaths = []string{
		core.LogFile(),
	}
	loggerConfig.ErrorOutputPaths = []string{
		core.LogFile(),
	}

	return loggerConfig.Build()
}

// ParseLevel converts a config level string into a zap atomic level.
func ParseLevel(level string) zap.AtomicLevel {
	switch level {
	case "debug":
		return zap.NewAtomicLevelAt(zapcore.DebugLevel)
	case "warn":
		return zap.NewAtomicLevelAt(zapcore.WarnLevel)
	case "error":
		return zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	default:
		return zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
}
