package database

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	mockcore "github.com/amirhossein-jamali/stars-roulette/mocks/port/core"
)

func TestConnectionPoolMonitor_WarnsNearExhaustion(t *testing.T) {
	coreLogger := mockcore.NewMockLogger(t)
	coreLogger.EXPECT().Warn("Database connection pool nearly exhausted", mock.Anything).Once()

	m := NewConnectionPoolMonitor(func() (sql.DBStats, error) {
		return sql.DBStats{MaxOpenConnections: 10, InUse: 9, OpenConnections: 10, Idle: 1, WaitDuration: time.Second}, nil
	}, coreLogger)

	require.NoError(t, m.collectMetrics())
	got := m.GetMetrics()
	assert.Equal(t, 9, got.InUse)
	assert.Equal(t, int64(1000), got.WaitDurationMs)
}

func TestConnectionPoolMonitor_StartFailsWithoutStats(t *testing.T) {
	coreLogger := mockcore.NewMockLogger(t)
	m := NewConnectionPoolMonitor(func() (sql.DBStats, error) {
		return sql.DBStats{}, errors.New("closed")
	}, coreLogger)

	assert.Error(t, m.Start(time.Minute))
	m.Stop()
	m.Stop()
}
