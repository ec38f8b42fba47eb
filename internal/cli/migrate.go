package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"campus_connect/internal/config"
	"campus_connect/migrations"
)

// NewMigrateCommand creates the migrate command.
func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(rootOpts.ConfigPath)
			if err != nil {
				return err
			}
			logger := setupLogger(os.Stdout, cfg.SlogLevel())

			db, err := connectDatabase(cmd.Context(), cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			applied, err := migrations.Apply(cmd.Context(), db, logger)
			if err != nil {
				return fmt.Errorf("apply migrations: %w", err)
			}
			logger.Info("migrations complete", "applied", len(applied))
			return nil
		},
	}
}
