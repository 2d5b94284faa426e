package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Veraticus/gofinances/internal/config"
	"github.com/Veraticus/gofinances/internal/service"
	"github.com/Veraticus/gofinances/internal/storage"
	"github.com/spf13/viper"
)

// envKeyReplacer maps nested keys such as user.id to GOFINANCES_USER_ID.
var envKeyReplacer = strings.NewReplacer(".", "_", "-", "_")

// loadSettings resolves the configuration gathered by initConfig.
func loadSettings() (*config.Settings, error) {
	return config.Load(viper.GetViper())
}

// loadUserSettings is loadSettings for commands that act on a user's list.
func loadUserSettings() (*config.Settings, error) {
	settings, err := loadSettings()
	if err != nil {
		return nil, err
	}
	if err := settings.RequireUser(); err != nil {
		return nil, err
	}
	return settings, nil
}

// openGateway opens and migrates the configured store.
// The returned close function must be called when done.
func openGateway(ctx context.Context, settings *config.Settings) (*storage.TransactionGateway, func(), error) {
	store, err := storage.Open(ctx, settings.StorageDriver, settings.StoragePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open storage: %w", err)
	}

	slog.Debug("storage opened",
		"driver", settings.StorageDriver,
		"path", settings.StoragePath)

	closeFn := func() {
		if err := store.Close(); err != nil {
			slog.Warn("Failed to close storage", "error", err)
		}
	}
	return storage.NewTransactionGateway(store), closeFn, nil
}

// existingIDs indexes the ids already stored for userID.
func existingIDs(ctx context.Context, lister service.TransactionLister, userID string) (map[string]bool, error) {
	list, err := lister.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := make(map[string]bool, len(list))
	for _, txn := range list {
		ids[txn.ID] = true
	}
	return ids, nil
}
