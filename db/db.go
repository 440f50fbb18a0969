// Package db owns the schema and connection setup for both supported drivers.
package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"time"

	"github.com/frahmantamala/hr-portal/internal"

	"github.com/pressly/goose/v3"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

//go:embed migrations/*/*.sql
var migrations embed.FS

const migrationTable = "schema_migrations"

// Open connects gorm to the configured database. SQLite is pinned to a single
// connection so that ":memory:" databases are shared by every query.
func Open(cfg internal.DatabaseConfig, lg *slog.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case internal.DriverPostgres:
		dialector = postgres.Open(cfg.Source)
	case internal.DriverSQLite, "":
		dialector = sqlite.Open(cfg.Source)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{
		Logger:         newGormLogger(lg),
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access sql.DB: %w", err)
	}

	if cfg.Driver == internal.DriverPostgres {
		if cfg.MaxOpenConns > 0 {
			sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		}
		if cfg.MaxIdleConns > 0 {
			sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		}
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	} else {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		if err := gdb.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return gdb, nil
}

// Migrate applies every pending migration for driver.
func Migrate(ctx context.Context, sqlDB *sql.DB, driver string) error {
	dir, err := prepareGoose(driver)
	if err != nil {
		return err
	}
	if err := goose.UpContext(ctx, sqlDB, dir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

// Rollback reverts the most recent migration for driver.
func Rollback(ctx context.Context, sqlDB *sql.DB, driver string) error {
	dir, err := prepareGoose(driver)
	if err != nil {
		return err
	}
	if err := goose.DownContext(ctx, sqlDB, dir); err != nil {
		return fmt.Errorf("goose down: %w", err)
	}
	return nil
}

func prepareGoose(driver string) (string, error) {
	goose.SetBaseFS(migrations)
	goose.SetTableName(migrationTable)
	goose.SetLogger(goose.NopLogger())

	switch driver {
	case internal.DriverPostgres:
		if err := goose.SetDialect("postgres"); err != nil {
			return "", err
		}
		return "migrations/postgres", nil
	case internal.DriverSQLite, "":
		if err := goose.SetDialect("sqlite3"); err != nil {
			return "", err
		}
		return "migrations/sqlite", nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", driver)
	}
}

func newGormLogger(lg *slog.Logger) gormlogger.Interface {
	if lg == nil {
		return gormlogger.Default.LogMode(gormlogger.Silent)
	}
	return gormlogger.NewSlogLogger(lg, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
	})
}
