package main

import (
	"github.com/deppfellow/employee-service/internal/config"
	"github.com/deppfellow/employee-service/internal/database"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations and exit",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, loggerService, log, err := bootstrap()
		if err != nil {
			return err
		}
		defer loggerService.Shutdown()

		if cfg.Database.Driver == config.DriverSQLite {
			// Opening the SQLite store applies its migrations.
			db, err := database.NewSQLite(cfg, &log)
			if err != nil {
				return err
			}
			return db.Close()
		}

		return database.Migrate(cmd.Context(), &log, cfg)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
