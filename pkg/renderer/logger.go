package renderer

import (
	"fmt"

	"go.uber.org/zap"
)

// DefaultLogger implements core.Logger by writing to stdout, with no structured fields.
// Kept for callers (tests, simple embeddings) that don't want a zap dependency.
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() *DefaultLogger {
	return &DefaultLogger{}
}

// ZapLogger adapts a zap.SugaredLogger to core.Logger, so the render pipeline logs
// structured, leveled output without depending on zap directly.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger builds a production zap logger (JSON, Info level and above) and wraps it.
func NewZapLogger() (*ZapLogger, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, fmt.Errorf("failed to build zap logger: %w", err)
	}
	return &ZapLogger{sugar: logger.Sugar()}, nil
}

// Printf implements core.Logger by emitting an Info-level message through zap, with the
// formatted text as a single "msg" field.
func (zl *ZapLogger) Printf(format string, args ...interface{}) {
	zl.sugar.Infof(format, args...)
}

// Warnf logs a non-fatal failure (resource I/O, per error kind 3) at Warn level.
func (zl *ZapLogger) Warnf(format string, args ...interface{}) {
	zl.sugar.Warnf(format, args...)
}

// Sync flushes any buffered log entries; callers should defer it after construction.
func (zl *ZapLogger) Sync() error {
	return zl.sugar.Sync()
}
