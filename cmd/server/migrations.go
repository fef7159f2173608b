package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/taskdeck-api/internal/platform/postgres"
)

// handleMigrations runs a goose command against db and reports the outcome.
func handleMigrations(ctx context.Context, db *sql.DB, command string, logger *slog.Logger) error {
	if !postgres.IsMigrationCommand(command) {
		return fmt.Errorf("unknown migration command %q", command)
	}

	logger.Info("Executing migrations", slog.String("command", command))
	if err := postgres.Migrate(ctx, db, command, logger); err != nil {
		return fmt.Errorf("migration %q failed: %w", command, err)
	}
	logger.Info("Migrations finished", slog.String("command", command))
	return nil
}
