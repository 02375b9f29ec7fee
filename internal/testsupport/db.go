// Package testsupport builds throwaway stores for package tests.
package testsupport

import (
	"io"
	"path/filepath"
	"testing"

	"inventory-backend/internal/config"
	"inventory-backend/internal/database"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Logger discards output so test runs stay quiet.
func Logger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// NewDB opens a migrated SQLite file under t.TempDir and closes it on cleanup.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Open(config.DatabaseConfig{
		Driver: database.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "inventory.db"),
	}, Logger())
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() { _ = database.Close(db) })
	return db
}
