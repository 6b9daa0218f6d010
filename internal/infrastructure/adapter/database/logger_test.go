package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	mockcore "github.com/amirhossein-jamali/stars-roulette/mocks/port/core"
)

func TestDatabaseLogger_TraceSlowQuery(t *testing.T) {
	coreLogger := mockcore.NewMockLogger(t)
	coreLogger.EXPECT().Warn("Slow SQL Query", mock.MatchedBy(func(f map[string]any) bool {
		return f["table"] == "users" && f["type"] == "SELECT" && f["trace_id"] == "req-1"
	})).Once()

	l := NewDatabaseLogger(coreLogger, nil, "warn", 10*time.Millisecond)
	ctx := WithTraceID(context.Background(), "req-1")
	l.Trace(ctx, time.Now().Add(-time.Second), func() (string, int64) {
		return `SELECT * FROM "users" WHERE id = 1`, 1
	}, nil)
}

func TestDatabaseLogger_TraceError(t *testing.T) {
	coreLogger := mockcore.NewMockLogger(t)
	coreLogger.EXPECT().Error("SQL Error", mock.MatchedBy(func(f map[string]any) bool {
		return f["error"] == "boom" && f["table"] == "transactions"
	})).Once()

	l := NewDatabaseLogger(coreLogger, nil, "warn", time.Second)
	l.Trace(context.Background(), time.Now(), func() (string, int64) {
		return `INSERT INTO "transactions" ("user_id") VALUES (1)`, 0
	}, errors.New("boom"))
}

func TestDatabaseLogger_IgnoresNotFoundAndSilent(t *testing.T) {
	coreLogger := mockcore.NewMockLogger(t)

	l := NewDatabaseLogger(coreLogger, nil, "warn", time.Second)
	l.Trace(context.Background(), time.Now(), func() (string, int64) {
		return `SELECT * FROM "users"`, 0
	}, gorm.ErrRecordNotFound)

	silent := l.LogMode(logger.Silent)
	silent.Trace(context.Background(), time.Now().Add(-time.Hour), func() (string, int64) {
		return `SELECT 1`, 0
	}, errors.New("boom"))
}

func TestExtractTableName(t *testing.T) {
	assert.Equal(t, "user_locks", extractTableName(`UPDATE "user_locks" SET x = 1`))
	assert.Equal(t, "payments", extractTableName(`INSERT INTO "payments" ("id") VALUES (1)`))
	assert.Equal(t, "users", extractTableName("SELECT * FROM users\nWHERE id = 1"))
	assert.Equal(t, "", extractTableName("BEGIN"))
	assert.Equal(t, "WITH", extractQueryType("  with lots AS (SELECT 1)"))
}
