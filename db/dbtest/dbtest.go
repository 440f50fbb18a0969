// Package dbtest opens migrated in-memory databases for tests.
package dbtest

import (
	"context"

	"github.com/frahmantamala/hr-portal/db"
	"github.com/frahmantamala/hr-portal/internal"
	"gorm.io/gorm"
)

// Open returns a fresh in-memory SQLite database with every migration applied.
func Open() (*gorm.DB, error) {
	gdb, err := db.Open(internal.DatabaseConfig{
		Driver: internal.DriverSQLite,
		Source: ":memory:",
	}, nil)
	if err != nil {
		return nil, err
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(context.Background(), sqlDB, internal.DriverSQLite); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return gdb, nil
}

// Close releases the connection behind gdb.
func Close(gdb *gorm.DB) {
	if gdb == nil {
		return
	}
	if sqlDB, err := gdb.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
