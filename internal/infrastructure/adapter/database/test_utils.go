package database

import (
	"context"
	"os"
	"strconv"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/stars-roulette/internal/domain/port/core"
	timeprovider "github.com/amirhossein-jamali/stars-roulette/internal/infrastructure/adapter/time"
	"gorm.io/gorm"
)

// TestDBManager provides utilities for integration tests against a real
// PostgreSQL. Tests are skipped unless SR_TEST_DB_HOST is set.
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager connects to the test database and migrates a clean schema
func NewTestDBManager(t *testing.T, logger coreport.Logger) *TestDBManager {
	t.Helper()

	host := os.Getenv("SR_TEST_DB_HOST")
	if host == "" {
		t.Skip("SR_TEST_DB_HOST not set, skipping database integration test")
	}

	cfg := DefaultConfig()
	cfg.Host = host
	cfg.Port = getEnvIntOrDefault("SR_TEST_DB_PORT", 5432)
	cfg.Username = getEnvOrDefault("SR_TEST_DB_USERNAME", "postgres")
	cfg.Password = getEnvOrDefault("SR_TEST_DB_PASSWORD", "postgres")
	cfg.Database = getEnvOrDefault("SR_TEST_DB_NAME", "stars_roulette_test")
	cfg.MaxOpenConns = 10
	cfg.MaxIdleConns = 5
	cfg.LogLevel = "silent"
	cfg.RetryAttempts = 1

	timeProvider := timeprovider.NewRealTimeProvider()
	manager := NewManager(cfg, logger, timeProvider)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if _, err := manager.Connect(ctx); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() {
		if err := manager.Close(); err != nil {
			t.Logf("Warning: Failed to close test database connection: %v", err)
		}
	})

	if err := dropAllTables(manager.DB()); err != nil {
		t.Fatalf("Failed to drop tables: %v", err)
	}
	if err := manager.Migrate(ctx); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return &TestDBManager{
		Manager:      manager,
		Config:       cfg,
		Logger:       logger,
		TimeProvider: timeProvider,
	}
}

func dropAllTables(db *gorm.DB) error {
	return db.Exec(`
		DO $$ DECLARE
			r RECORD;
		BEGIN
			FOR r IN (SELECT tablename FROM pg_tables WHERE schemaname = current_schema()) LOOP
				EXECUTE 'DROP TABLE IF EXISTS ' || quote_ident(r.tablename) || ' CASCADE';
			END LOOP;
		END $$;
	`).Error
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}
