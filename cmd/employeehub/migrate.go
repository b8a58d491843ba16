package main

import (
	"github.com/spf13/cobra"

	"employeehub/internal/config"
	applog "employeehub/internal/log"
	"employeehub/internal/repos"
)

func newMigrateCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := repos.OpenDB(cfg.DBDSN)
			if err != nil {
				applog.Error(nil, "db.migrate.fail", err, map[string]any{"dsn": cfg.DBDSN})
				return err
			}
			applog.Info(nil, "db.migrate.done", map[string]any{"dsn": cfg.DBDSN})
			return db.Close()
		},
	}
}
