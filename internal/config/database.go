package config

import (
	"errors"
	"fmt"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"bus_transport/internal/store"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

var errEmptyAddr = errors.New("config: SERVER_ADDR must not be empty")

// UnsupportedDriverError is returned for an unknown DB_DRIVER value.
type UnsupportedDriverError struct {
	Driver string
}

func (e *UnsupportedDriverError) Error() string {
	return fmt.Sprintf("config: unsupported DB_DRIVER %q (want %q or %q)", e.Driver, DriverPostgres, DriverSQLite)
}

// DSN builds the connection string for the configured driver.
func (c *Config) DSN() string {
	if c.DBDriver == DriverSQLite {
		// mattn/go-sqlite3 leaves foreign keys off unless asked
		return c.SQLitePath + "?_foreign_keys=on"
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode, c.DBTimezone,
	)
}

// OpenDB connects to the configured database and applies migrations.
func OpenDB(cfg *Config, gormLog gormlogger.Interface) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case DriverSQLite:
		dialector = sqlite.Open(cfg.DSN())
	default:
		// lib/pq is registered under "postgres" so driver errors surface as *pq.Error
		dialector = postgres.New(postgres.Config{
			DriverName: "postgres",
			DSN:        cfg.DSN(),
		})
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormLog, TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.DBDriver == DriverSQLite {
		// sqlite serialises writers; one connection avoids "database is locked"
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := store.Migrate(db); err != nil {
		return nil, fmt.Errorf("auto-migration failed: %w", err)
	}
	return db, nil
}
