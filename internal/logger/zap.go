package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.SugaredLogger

// Get returns the process-wide logger, creating it on first use.
// Diagnostics stay at info level unless MAILGRAB_DEBUG is set.
func Get() *zap.SugaredLogger {
	if log == nil {
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		if os.Getenv("MAILGRAB_DEBUG") != "" {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		zaplog, err := cfg.Build()
		if err != nil {
			zaplog = zap.NewNop()
		}
		log = zaplog.Sugar()
	}
	return log
}
