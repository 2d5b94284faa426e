package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Veraticus/gofinances/internal/common"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	v := viper.New()
	SetDefaults(v)

	s, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, s.StorageDriver)
	assert.Equal(t, "/home/tester/.local/share/gofinances/gofinances.db", s.StoragePath)
	assert.Equal(t, "/home/tester/.local/share/gofinances/gofinances.log", s.LogFile)
	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, "console", s.LogFormat)
	assert.Equal(t, "default", s.Theme)
	assert.ErrorIs(t, s.RequireUser(), common.ErrMissingConfig)
}

func TestLoad_Overrides(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("user.id", " user-42 ")
	v.Set("user.name", "Maria")
	v.Set("storage.driver", "MEMORY")

	s, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "user-42", s.User.ID)
	assert.Equal(t, "Maria", s.User.Name)
	assert.Equal(t, DriverMemory, s.StorageDriver)
	assert.NoError(t, s.RequireUser())
}

func TestLoad_InvalidDriver(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("storage.driver", "postgres")

	_, err := Load(v)
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestLoad_SQLiteNeedsPath(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("storage.path", "")

	_, err := Load(v)
	assert.ErrorIs(t, err, common.ErrMissingConfig)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("GOFINANCES_TEST_DIR", "/tmp/gofinances")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "tilde", input: "~", want: home},
		{name: "tilde prefix", input: "~/data/db.sqlite", want: filepath.Join(home, "data/db.sqlite")},
		{name: "env var", input: "$GOFINANCES_TEST_DIR/db.sqlite", want: "/tmp/gofinances/db.sqlite"},
		{name: "absolute", input: "/var/lib/db.sqlite", want: "/var/lib/db.sqlite"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.input))
		})
	}
}
