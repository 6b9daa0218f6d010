package logger

import (
	"errors"
	"testing"

	"github.com/amirhossein-jamali/stars-roulette/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_SetLevelFiltersOutput(t *testing.T) {
	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	obsCore, logs := observer.New(level)
	l := newWithCore(obsCore, level)

	l.Debug("hidden", nil)
	l.Info("shown", map[string]any{"user_id": int64(7)})
	require.Equal(t, 1, logs.Len())

	l.SetLevel(core.LogLevelError)
	assert.Equal(t, core.LogLevelError, l.GetLevel())
	l.Warn("hidden too", nil)
	l.Error("failure", map[string]any{"error": errors.New("boom")})
	require.Equal(t, 2, logs.Len())

	entry := logs.All()[1]
	assert.Equal(t, "failure", entry.Message)
	assert.Equal(t, "boom", entry.ContextMap()["error"])

	l.SetLevel(core.LogLevelDebug)
	l.Debug("now visible", nil)
	assert.Equal(t, 3, logs.Len())
	assert.Equal(t, int64(7), logs.All()[0].ContextMap()["user_id"])
}

func TestNoopLogger(t *testing.T) {
	l := NewNoopLogger()
	assert.Equal(t, core.LogLevelInfo, l.GetLevel())
	l.SetLevel(core.LogLevelWarn)
	assert.Equal(t, core.LogLevelWarn, l.GetLevel())
	l.Error("ignored", nil)
	assert.NoError(t, l.Flush())
}
