// Package testutil opens a throwaway database for repo integration tests.
// Tests skip unless TEST_POSTGRES_DSN is set, so the unit suite stays green
// on machines without postgres.
package testutil

import (
	"context"
	"os"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/yungbote/glowstack-backend/internal/data/db"
	"github.com/yungbote/glowstack-backend/internal/pkg/dbctx"
	"github.com/yungbote/glowstack-backend/internal/platform/logger"
)

func Logger(t *testing.T) *logger.Logger {
	t.Helper()
	logg, err := logger.New("dev")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return logg
}

// DB connects to TEST_POSTGRES_DSN and migrates the full schema. Each caller
// shares the same database, so tests must use Tx for isolation.
func DB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set; skipping integration test")
	}
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	if err := gdb.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		t.Fatalf("uuid-ossp: %v", err)
	}
	if err := db.AutoMigrateAll(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gdb
}

// Tx yields a dbctx bound to a transaction that is rolled back when the test
// finishes, keeping the shared test database clean.
func Tx(t *testing.T, gdb *gorm.DB) dbctx.Context {
	t.Helper()
	tx := gdb.Begin()
	if tx.Error != nil {
		t.Fatalf("begin tx: %v", tx.Error)
	}
	t.Cleanup(func() { tx.Rollback() })
	return dbctx.Context{Ctx: context.Background(), Tx: tx}
}
