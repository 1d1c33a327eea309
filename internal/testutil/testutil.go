package testutil

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/haldenworks/contact-manager/internal/config"
	dbpkg "github.com/haldenworks/contact-manager/internal/db"
)

// OpenTestDB opens a named in-memory SQLite database with the full schema
// applied. The shared cache keeps the database alive across pooled
// connections; capping the pool at one connection avoids table locks.
func OpenTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := dbpkg.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	return db
}

// TestConfig returns a config suitable for unit tests: no Redis, no S3,
// short-lived reset tokens.
func TestConfig() *config.Config {
	return &config.Config{
		JWTSecret:     "test-secret",
		TokenTTL:      time.Hour,
		ResetTokenTTL: time.Hour,
		ServerPort:    "0",
	}
}
