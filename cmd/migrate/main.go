// Command migrate prepares the transaction store schema for the configured
// backend.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/fkhayef/splitledger/internal/config"
	"github.com/fkhayef/splitledger/internal/store/postgres"
	"github.com/fkhayef/splitledger/internal/store/sqlite"
	"github.com/fkhayef/splitledger/pkg/logging"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	logging.Setup()
	cfg := config.Load()

	switch cfg.Backend {
	case "postgres":
		s, err := postgres.New(cfg.DatabaseURL)
		if err != nil {
			slog.Error("failed to connect to postgres", "error", err)
			os.Exit(1)
		}
		defer s.Close()
		if err := s.Migrate(context.Background()); err != nil {
			slog.Error("failed to migrate postgres schema", "error", err)
			os.Exit(1)
		}
		slog.Info("postgres schema ready", "url", cfg.DatabaseURL)

	case "sqlite":
		// Opening the sqlite store runs its migrations.
		s, err := sqlite.New(cfg.SQLitePath)
		if err != nil {
			slog.Error("failed to prepare sqlite store", "error", err)
			os.Exit(1)
		}
		defer s.Close()
		slog.Info("sqlite schema ready", "path", cfg.SQLitePath)

	default:
		slog.Error("unknown store backend", "backend", cfg.Backend)
		os.Exit(1)
	}
}
