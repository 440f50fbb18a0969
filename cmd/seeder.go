package cmd

import (
	"context"
	"time"

	"github.com/frahmantamala/hr-portal/db"
	"github.com/frahmantamala/hr-portal/db/seed"
	"github.com/frahmantamala/hr-portal/internal/auth"
	authpg "github.com/frahmantamala/hr-portal/internal/auth/postgres"
	"github.com/frahmantamala/hr-portal/pkg/logger"
	"github.com/spf13/cobra"
)

var clearData bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with a demo organisation and the default admin login. Running it again is safe.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}
		lg := logger.Init(cfg.Observability.Logging.Level, cfg.Observability.Logging.Format)

		gdb, err := db.Open(cfg.Database, lg)
		if err != nil {
			return err
		}
		if sqlDB, err := gdb.DB(); err == nil {
			defer sqlDB.Close()
		}

		authService := auth.NewService(authpg.NewRepository(gdb), cfg.Security.BCryptCost, lg)
		err = seed.New(gdb, lg).Run(context.Background(), seed.Options{
			Clear:        clearData,
			Now:          time.Now(),
			HashPassword: authService.HashPassword,
		})
		if err != nil {
			return err
		}

		cmd.Printf("Seed data ready. Sign in as %s / %s\n", seed.AdminEmail, seed.AdminPassword)
		return nil
	},
}

func init() {
	seedCmd.Flags().BoolVar(&clearData, "clear", false, "Clear existing people records before seeding")
}
