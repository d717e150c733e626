package main

import (
	"context"
	"os"
	"time"

	"github.com/dafibh/liftlog/liftlog-backend/db"
	"github.com/dafibh/liftlog/liftlog-backend/internal/config"
	"github.com/dafibh/liftlog/liftlog-backend/internal/repository/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer pool.Close()

	applied, err := postgres.Migrate(ctx, pool, db.Migrations)
	if err != nil {
		log.Fatal().Err(err).Strs("applied", applied).Msg("Migration failed")
	}

	if len(applied) == 0 {
		log.Info().Msg("Schema is up to date")
		return
	}
	log.Info().Strs("applied", applied).Msg("Migrations applied")
}
