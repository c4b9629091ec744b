package repo

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/uptrace/bun"

	"github.com/padraicbc/gymapi/config"
	bundb "github.com/padraicbc/gymapi/db"
)

func setupTestDB(t *testing.T) *bun.DB {
	t.Helper()
	cfg := &config.Config{
		DBDriver: config.DriverSQLite,
		DBName:   filepath.Join(t.TempDir(), "test.db"),
	}
	bdb, err := bundb.Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := bundb.CreateTables(context.Background(), bdb); err != nil {
		t.Fatalf("failed to create tables: %v", err)
	}
	t.Cleanup(func() { bdb.Close() })
	return bdb
}
