// Package config provides configuration utilities for the application.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Veraticus/gofinances/internal/common"
	"github.com/Veraticus/gofinances/internal/model"
	"github.com/spf13/viper"
)

// Storage drivers.
const (
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// Default values applied when nothing is configured.
const (
	DefaultStoragePath = "$HOME/.local/share/gofinances/gofinances.db"
	DefaultLogFile     = "$HOME/.local/share/gofinances/gofinances.log"
)

// Settings is the resolved application configuration.
type Settings struct {
	User          model.User
	StorageDriver string
	StoragePath   string
	Theme         string
	LogLevel      string
	LogFormat     string
	LogFile       string
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("storage.driver", DriverSQLite)
	v.SetDefault("storage.path", DefaultStoragePath)
	v.SetDefault("tui.theme", "default")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file", DefaultLogFile)
}

// Load reads settings from v. Paths are expanded but not created.
func Load(v *viper.Viper) (*Settings, error) {
	s := &Settings{
		User: model.User{
			ID:   strings.TrimSpace(v.GetString("user.id")),
			Name: v.GetString("user.name"),
		},
		StorageDriver: strings.ToLower(v.GetString("storage.driver")),
		StoragePath:   ExpandPath(v.GetString("storage.path")),
		Theme:         v.GetString("tui.theme"),
		LogLevel:      v.GetString("logging.level"),
		LogFormat:     v.GetString("logging.format"),
		LogFile:       ExpandPath(v.GetString("logging.file")),
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the settings that do not depend on the command being run.
func (s *Settings) Validate() error {
	switch s.StorageDriver {
	case DriverSQLite:
		if s.StoragePath == "" {
			return fmt.Errorf("%w: storage.path is required for the sqlite driver", common.ErrMissingConfig)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("%w: unknown storage driver %q", common.ErrInvalidConfig, s.StorageDriver)
	}
	return nil
}

// RequireUser fails when no user id is configured.
func (s *Settings) RequireUser() error {
	if s.User.ID == "" {
		return fmt.Errorf("%w: user id (set user.id, GOFINANCES_USER_ID or --user)", common.ErrMissingConfig)
	}
	return nil
}

// ExpandPath expands a leading ~ and any $VAR references in path.
func ExpandPath(path string) string {
	switch {
	case path == "":
		return path
	case path == "~":
		if home, err := os.UserHomeDir(); err == nil {
			path = home
		}
	case strings.HasPrefix(path, "~/"):
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	return os.ExpandEnv(path)
}
