// Package cli provides common CLI initialization utilities.
// This package consolidates repeated initialization patterns across
// cmd/financeai, cmd/financeai-train, and cmd/financeai-worker.
package cli

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"financeai/internal/classifier"
	"financeai/internal/config"
	"financeai/internal/storage"
)

// SetupLogger initializes structured logging at the level named by the
// LOG_LEVEL environment variable, defaulting to info.
// Returns the configured logger and sets it as the default logger.
func SetupLogger() *slog.Logger {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(os.Getenv("LOG_LEVEL")),
	}))
	slog.SetDefault(logger)
	return logger
}

func parseLogLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *slog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	return cfg
}

// InitSQLite initializes a SQLite repository with the given path.
// Returns the repository or exits the process on failure.
func InitSQLite(logger *slog.Logger, dbPath string) *storage.SQLiteRepository {
	sqliteRepo, err := storage.NewSQLiteRepository(dbPath)
	if err != nil {
		logger.Error("Failed to initialize SQLite repository", "error", err, "path", dbPath)
		os.Exit(1)
	}
	return sqliteRepo
}

// InitClassifier clears any legacy artifact, then loads the persisted model
// or trains a fresh one from the corpus.
// Returns the manager or exits the process when training fails.
func InitClassifier(logger *slog.Logger, cfg *config.Config) *classifier.Manager {
	classifier.RemoveLegacyArtifact(cfg.LegacyModelPath())

	manager := classifier.NewManager(cfg.ModelPath, classifier.TrainOptions{})
	if _, err := manager.LoadOrTrain(context.Background()); err != nil {
		logger.Error("Failed to initialize classifier", "error", err, "path", cfg.ModelPath)
		os.Exit(1)
	}
	return manager
}
