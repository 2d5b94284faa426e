package main

import (
	"fmt"
	"log/slog"

	"github.com/Veraticus/gofinances/internal/cli"
	"github.com/Veraticus/gofinances/internal/config"
	"github.com/Veraticus/gofinances/internal/storage"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long: `Initialize or update the database schema to the latest version.

The schema version is kept in the SQLite user_version pragma.`,
		Args: cobra.NoArgs,
		RunE: runMigrate,
	}

	cmd.Flags().Bool("status", false, "show the current schema version without applying changes")

	return cmd
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	status, _ := cmd.Flags().GetBool("status")

	settings, err := loadSettings()
	if err != nil {
		return err
	}
	if settings.StorageDriver != config.DriverSQLite {
		return fmt.Errorf("migrate needs the sqlite driver, got %q", settings.StorageDriver)
	}

	slog.Info("Starting database migration",
		"database", settings.StoragePath,
		"status_only", status)

	store, err := storage.NewSQLiteStorage(settings.StoragePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = store.Close() }()

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if status {
		current, err := store.SchemaVersion(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, cli.FormatInfo(fmt.Sprintf("Database: %s", settings.StoragePath)))
		fmt.Fprintln(out, cli.FormatInfo(fmt.Sprintf("Schema version: %d (latest %d)", current, storage.ExpectedSchemaVersion)))
		if current < storage.ExpectedSchemaVersion {
			fmt.Fprintln(out, cli.FormatWarning("Migrations pending: run gofinances migrate"))
		}
		return nil
	}

	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	fmt.Fprintln(out, cli.FormatSuccess("Database migrations completed successfully"))
	return nil
}
