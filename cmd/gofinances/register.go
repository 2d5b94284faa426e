package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Veraticus/gofinances/internal/service"
	"github.com/Veraticus/gofinances/internal/tui"
	"github.com/Veraticus/gofinances/internal/tui/themes"
	"github.com/spf13/cobra"
)

func registerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "register",
		Aliases: []string{"cadastro", "tui"},
		Short:   "Open the interactive register screen",
		Long: `Open the "Cadastro" screen to register an income or an expense.

After a successful save the "Listagem" screen shows every transaction
of the user. Logs are written to logging.file while the screen is open.`,
		Args: cobra.NoArgs,
		RunE: runRegister,
	}

	cmd.Flags().Bool("listing", false, "start on the listing screen")
	cmd.Flags().Bool("inline", false, "render inline instead of using the alternate screen")

	return cmd
}

func runRegister(cmd *cobra.Command, _ []string) error {
	settings, err := loadUserSettings()
	if err != nil {
		return err
	}

	// the TUI owns the terminal, so logs go to a file
	logFile, err := openLogFile(settings.LogFile)
	if err != nil {
		return err
	}
	defer func() { _ = logFile.Close() }()
	if err := setupLogging(logFile); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	ctx := cmd.Context()
	gateway, closeStore, err := openGateway(ctx, settings)
	if err != nil {
		return err
	}
	defer closeStore()

	start := service.ScreenRegister
	if listing, _ := cmd.Flags().GetBool("listing"); listing {
		start = service.ScreenListing
	}
	inline, _ := cmd.Flags().GetBool("inline")

	slog.Info("starting TUI",
		"user_id", settings.User.ID,
		"start_screen", start,
		"theme", settings.Theme)

	return tui.Run(ctx,
		tui.WithStore(gateway),
		tui.WithUser(settings.User),
		tui.WithTheme(themes.GetTheme(settings.Theme)),
		tui.WithStartScreen(start),
		tui.WithAltScreen(!inline),
	)
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}
