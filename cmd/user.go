package cmd

import (
	"context"

	"github.com/frahmantamala/hr-portal/db"
	"github.com/frahmantamala/hr-portal/internal/auth"
	authpg "github.com/frahmantamala/hr-portal/internal/auth/postgres"
	"github.com/frahmantamala/hr-portal/pkg/logger"
	"github.com/spf13/cobra"
)

var newUser auth.NewUserDTO

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage admin logins",
}

var addUserCmd = &cobra.Command{
	Use:   "add",
	Short: "Create an admin login",
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

		u, err := auth.NewService(authpg.NewRepository(gdb), cfg.Security.BCryptCost, lg).
			CreateUser(context.Background(), newUser)
		if err != nil {
			return err
		}
		cmd.Printf("Created user %s (id %d)\n", u.Email, u.ID)
		return nil
	},
}

func init() {
	addUserCmd.Flags().StringVar(&newUser.Email, "email", "", "login email")
	addUserCmd.Flags().StringVar(&newUser.FullName, "name", "", "display name")
	addUserCmd.Flags().StringVar(&newUser.Password, "password", "", "initial password")
	_ = addUserCmd.MarkFlagRequired("email")
	_ = addUserCmd.MarkFlagRequired("password")

	userCmd.AddCommand(addUserCmd)
}
