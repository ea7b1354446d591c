// Package testutil provides fixtures shared by package tests.
package testutil

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"bus_transport/internal/config"
)

// NewDB opens a fresh, migrated in-memory sqlite database that is closed
// when the test ends.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{DBDriver: config.DriverSQLite, SQLitePath: ":memory:"}
	db, err := config.OpenDB(cfg, gormlogger.Discard)
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// NewLogger returns a logger that drops everything.
func NewLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
