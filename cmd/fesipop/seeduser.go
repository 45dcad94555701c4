package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/m02xime/fesipopApi/internal/auth"
	"github.com/m02xime/fesipopApi/internal/config"
	"github.com/m02xime/fesipopApi/internal/db"
	"github.com/m02xime/fesipopApi/internal/store"
)

// There is deliberately no signup endpoint; accounts are provisioned here,
// out of band, by an operator with database access.
func newSeedUserCmd() *cobra.Command {
	var name, password string

	cmd := &cobra.Command{
		Use:   "seed-user",
		Short: "Create a user account (no signup endpoint exists)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" || password == "" {
				return fmt.Errorf("--name and --password are required")
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			database, err := db.New(cfg.DB.Driver, cfg.DB.DSN)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			if err := db.Migrate(database, cfg.DB.Driver); err != nil {
				return err
			}

			hash, err := auth.HashPassword(password)
			if err != nil {
				return fmt.Errorf("hash password: %w", err)
			}

			users := store.NewUserStore(database)
			if err := users.Create(cmd.Context(), name, hash); err != nil {
				return fmt.Errorf("create user %q: %w", name, err)
			}

			logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
			logger.Info().Str("name", name).Msg("user created")
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "login name (unique)")
	cmd.Flags().StringVar(&password, "password", "", "plaintext password, stored as a bcrypt hash")
	return cmd
}
