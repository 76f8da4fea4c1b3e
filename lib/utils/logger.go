package utils

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// SetupLogger builds the shared sugared logger. level accepts the config
// file's spelling (INFO, DEBUG, WARN, ERROR); anything unknown means INFO.
func SetupLogger(level string) *zap.SugaredLogger {
	cfg := zap.NewDevelopmentConfig()
	switch strings.ToUpper(level) {
	case "DEBUG":
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	case "WARN", "WARNING":
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	case "ERROR":
		cfg.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	default:
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	logger := zap.Must(cfg.Build())
	return logger.Sugar()
}
