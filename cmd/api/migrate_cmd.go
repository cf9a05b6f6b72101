package main

import (
	"errors"
	"strings"

	pg "vet-clinic/internal/adapters/storage/postgres"

	"github.com/spf13/cobra"
)

type migrateOptions struct {
	Status bool
}

func newMigrateCmd(root *rootOptions) *cobra.Command {
	var opts migrateOptions

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Aplica las migraciones pendientes (DB_DSN requerido)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := loadConfig(root)
			if err != nil {
				return err
			}
			if strings.TrimSpace(cfg.DBDSN) == "" {
				return errors.New("DB_DSN is required")
			}

			db, err := pg.Open(cfg.DBDSN)
			if err != nil {
				return err
			}
			defer db.Close()

			if opts.Status {
				return pg.MigrationStatus(cmd.Context(), db)
			}
			if err := pg.Migrate(cmd.Context(), db); err != nil {
				return err
			}
			log.Info("migrations applied", nil)
			return nil
		},
	}
	cmd.Flags().BoolVar(&opts.Status, "status", false, "solo muestra el estado de las migraciones")
	return cmd
}
