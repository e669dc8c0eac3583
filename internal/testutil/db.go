package testutil

import (
	"path/filepath"
	"testing"

	"github.com/chenhoward456-hash/coach-system/internal/config"
	"github.com/chenhoward456-hash/coach-system/internal/database"
)

// SetupDB points database.DB at a fresh migrated sqlite file for one test.
func SetupDB(t *testing.T) {
	t.Helper()

	cfg := &config.Config{
		DatabaseURL: filepath.Join(t.TempDir(), "coach_test.db"),
		LogMode:     "test",
	}
	if err := database.Connect(cfg); err != nil {
		t.Fatalf("connect: %v", err)
	}
	if err := database.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := database.DB.DB(); err == nil {
			sqlDB.Close()
		}
		database.DB = nil
	})
}
