package main

import (
	"errors"
	"log/slog"

	"github.com/phrazzld/recruitbook/internal/platform/logger"
	"github.com/phrazzld/recruitbook/internal/platform/postgres"
	"github.com/phrazzld/recruitbook/internal/redact"
	"github.com/spf13/cobra"
)

func (c *cli) migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate [up|down|status|version|reset]",
		Short: "Manage the PostgreSQL schema",
		Long: "Applies or inspects the embedded database migrations. " +
			"Requires database.url (RECRUITBOOK_DATABASE_URL). Defaults to up.",
		Args: cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{
			postgres.MigrateUp,
			postgres.MigrateDown,
			postgres.MigrateStatus,
			postgres.MigrateVersion,
			postgres.MigrateReset,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			migration := postgres.MigrateUp
			if len(args) == 1 {
				migration = args[0]
			}

			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if cfg.Database.URL == "" {
				return errors.New("database.url must be set to run migrations")
			}
			log, err := c.setupLogger(cfg)
			if err != nil {
				return err
			}
			ctx := logger.WithLogger(cmd.Context(), log)

			db, err := postgres.Open(ctx, cfg.Database.URL)
			if err != nil {
				return err
			}
			defer func() {
				if err := db.Close(); err != nil {
					log.Warn("failed to close database", slog.String("error", err.Error()))
				}
			}()

			log.Info("running migrations",
				slog.String("command", migration),
				slog.String("database", redact.DatabaseURL(cfg.Database.URL)))
			return postgres.Migrate(ctx, db, migration, log)
		},
	}
}
