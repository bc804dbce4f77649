package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSearchLevel(t *testing.T) {
	level, err := ParseSearchLevel("3")
	require.NoError(t, err)
	require.Equal(t, 3, level)

	for _, value := range []string{"", "two", "0", "-1", "9"} {
		_, err = ParseSearchLevel(value)
		require.Error(t, err, "value %q", value)
	}
}

func TestLoadServerConfigDefaults(t *testing.T) {
	t.Setenv("REVERSI_SERVER_HOST", "localhost")
	t.Setenv("REVERSI_SERVER_PORT", "3000")
	t.Setenv("REVERSI_SERVER_BASIC_AUTH_USER", "user")
	t.Setenv("REVERSI_SERVER_BASIC_AUTH_PASS", "pass")
	t.Setenv("REVERSI_SERVER_TOKEN", "token")
	t.Setenv("REVERSI_SERVER_PREFORK", "")
	t.Setenv("REVERSI_STORE", "")
	t.Setenv("REVERSI_SEARCH_LEVEL", "")

	cfg := LoadServerConfig()

	require.Equal(t, &ServerConfig{
		ServerHost:        "localhost",
		ServerPort:        "3000",
		BasicAuthUsername: "user",
		BasicAuthPassword: "pass",
		Token:             "token",
		Prefork:           false,
		Store:             StoreMemory,
		SearchLevel:       2,
	}, cfg)
}

func TestLoadServerConfigRedis(t *testing.T) {
	t.Setenv("REVERSI_SERVER_HOST", "localhost")
	t.Setenv("REVERSI_SERVER_PORT", "3000")
	t.Setenv("REVERSI_SERVER_BASIC_AUTH_USER", "user")
	t.Setenv("REVERSI_SERVER_BASIC_AUTH_PASS", "pass")
	t.Setenv("REVERSI_SERVER_TOKEN", "token")
	t.Setenv("REVERSI_SERVER_PREFORK", "true")
	t.Setenv("REVERSI_STORE", StoreRedis)
	t.Setenv("REVERSI_REDIS_URL", "redis://localhost:6379")
	t.Setenv("REVERSI_SEARCH_LEVEL", "4")

	cfg := LoadServerConfig()

	require.True(t, cfg.Prefork)
	require.Equal(t, StoreRedis, cfg.Store)
	require.Equal(t, "redis://localhost:6379", cfg.RedisURL)
	require.Equal(t, 4, cfg.SearchLevel)
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":      slog.LevelInfo,
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"Warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}

	for name, expected := range tests {
		level, err := ParseLogLevel(name)
		require.NoError(t, err)
		require.Equal(t, expected, level, "name %q", name)
	}

	_, err := ParseLogLevel("verbose")
	require.Error(t, err)
}
