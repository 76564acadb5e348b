package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okian/gigmatch/internal/adapters/repository"
	"github.com/okian/gigmatch/pkg/logger"
)

var errNoDatabase = errors.New("database_url is not configured")

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import CATALOG",
		Short: "Validate a YAML catalog and upsert it into Postgres",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := loadConfig(ctx, logger.WithOutput(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}
			if cfg.DatabaseURL == "" {
				return errNoDatabase
			}
			listings, err := repository.LoadCatalog(args[0])
			if err != nil {
				return err
			}

			store, err := repository.Connect(ctx, cfg.DatabaseURL, repository.WithLogger(logger.Named("postgres")))
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.EnsureSchema(ctx); err != nil {
				return err
			}
			if err := store.Upsert(ctx, listings); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "imported %d listings\n", len(listings))
			return err
		},
	}
}
