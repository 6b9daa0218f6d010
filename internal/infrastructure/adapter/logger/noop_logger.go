package logger

import (
	"sync/atomic"

	"github.com/amirhossein-jamali/stars-roulette/internal/domain/port/core"
)

// NoopLogger discards everything. Used in tests and when logging is disabled.
type NoopLogger struct {
	level atomic.Int32
}

// NewNoopLogger creates a new no-op logger
func NewNoopLogger() *NoopLogger {
	l := &NoopLogger{}
	l.level.Store(int32(core.LogLevelInfo))
	return l
}

func (l *NoopLogger) SetLevel(level core.LogLevel) { l.level.Store(int32(level)) }

func (l *NoopLogger) GetLevel() core.LogLevel { return core.LogLevel(l.level.Load()) }

func (*NoopLogger) Debug(string, map[string]any) {}

func (*NoopLogger) Info(string, map[string]any) {}

func (*NoopLogger) Warn(string, map[string]any) {}

func (*NoopLogger) Error(string, map[string]any) {}

func (*NoopLogger) Flush() error { return nil }
