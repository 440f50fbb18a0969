package cmd

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/frahmantamala/hr-portal/db"
	"github.com/frahmantamala/hr-portal/internal"
	"github.com/frahmantamala/hr-portal/pkg/logger"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
)

var (
	migrateCmd = &cobra.Command{
		RunE:  runMigration,
		Use:   "migrate",
		Short: "to run the embedded db migrations for the configured driver",
	}
	migrateRollback bool
)

func init() {
	migrateCmd.Flags().BoolVarP(&migrateRollback, "rollback", "r", false, "to rollback the latest version of sql migration")
}

func runMigration(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	cfg, err := loadConfig(configDir)
	if err != nil {
		return err
	}
	lg := logger.Init(cfg.Observability.Logging.Level, cfg.Observability.Logging.Format)

	sqlDB, err := openMigrationDB(cfg.Database)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if migrateRollback {
		if err := db.Rollback(ctx, sqlDB, cfg.Database.Driver); err != nil {
			return err
		}
		lg.Info("rolled back latest migration", "driver", cfg.Database.Driver)
		return nil
	}

	if err := db.Migrate(ctx, sqlDB, cfg.Database.Driver); err != nil {
		return err
	}
	lg.Info("migrations applied", "driver", cfg.Database.Driver)
	return nil
}

func openMigrationDB(cfg internal.DatabaseConfig) (*sql.DB, error) {
	if cfg.Driver == internal.DriverPostgres {
		sqlDB, err := goose.OpenDBWithDriver("pgx", cfg.Source)
		if err != nil {
			return nil, fmt.Errorf("goose: failed to open DB: %w", err)
		}
		return sqlDB, nil
	}

	gdb, err := db.Open(cfg, nil)
	if err != nil {
		return nil, err
	}
	return gdb.DB()
}
