package main

import (
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/m02xime/fesipopApi/internal/api"
	"github.com/m02xime/fesipopApi/internal/auth"
	"github.com/m02xime/fesipopApi/internal/config"
	"github.com/m02xime/fesipopApi/internal/db"
	"github.com/m02xime/fesipopApi/internal/store"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

			database, err := db.New(cfg.DB.Driver, cfg.DB.DSN)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			if err := db.Migrate(database, cfg.DB.Driver); err != nil {
				return err
			}

			jwtManager := auth.NewJWTManager(cfg.JWT.Secrets, cfg.JWT.Expiry, "fesipop")

			router := api.NewRouter(api.Deps{
				Logger:           logger,
				AuthMiddleware:   auth.NewMiddleware(jwtManager),
				JWT:              jwtManager,
				UserStore:        store.NewUserStore(database),
				ArtistStore:      store.NewArtistStore(database),
				EventStore:       store.NewEventStore(database),
				DescriptionStore: store.NewDescriptionStore(database),
			})

			logger.Info().Str("addr", cfg.HTTP.Addr).Msg("listening")
			return http.ListenAndServe(cfg.HTTP.Addr, router)
		},
	}
}
