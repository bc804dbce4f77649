package config

import (
	"log/slog"
	"os"
)

const (
	defaultSearchLevel = 2

	// MaxSearchLevel caps the search depth; the search cannot be interrupted.
	MaxSearchLevel = 8
)

// Supported game stores.
const (
	StoreMemory   = "memory"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
)

// ServerConfig holds all configuration values loaded from environment variables.
type ServerConfig struct {
	ServerHost        string
	ServerPort        string
	BasicAuthUsername string
	BasicAuthPassword string
	Token             string
	Prefork           bool
	Store             string
	RedisURL          string
	PostgresURL       string
	SearchLevel       int
}

// LoadServerConfig loads configuration from environment variables.
func LoadServerConfig() *ServerConfig {
	cfg := &ServerConfig{
		ServerHost:        getEnvMust("REVERSI_SERVER_HOST"),
		ServerPort:        getEnvMust("REVERSI_SERVER_PORT"),
		BasicAuthUsername: getEnvMust("REVERSI_SERVER_BASIC_AUTH_USER"),
		BasicAuthPassword: getEnvMust("REVERSI_SERVER_BASIC_AUTH_PASS"),
		Token:             getEnvMust("REVERSI_SERVER_TOKEN"),
		Prefork:           getEnvBool("REVERSI_SERVER_PREFORK", false),
		Store:             getEnv("REVERSI_STORE", StoreMemory),
		SearchLevel:       getEnvSearchLevel(),
	}

	switch cfg.Store {
	case StoreMemory:
	case StoreRedis:
		cfg.RedisURL = getEnvMust("REVERSI_REDIS_URL")
	case StorePostgres:
		cfg.PostgresURL = getEnvMust("REVERSI_POSTGRES_URL")
	default:
		slog.Error("Invalid game store", "key", "REVERSI_STORE", "value", cfg.Store)
		os.Exit(1)
	}

	return cfg
}

// PlayConfig configures the terminal client.
type PlayConfig struct {
	SearchLevel int
}

func LoadPlayConfig() *PlayConfig {
	return &PlayConfig{
		SearchLevel: getEnvSearchLevel(),
	}
}

// getEnvMust either returns the environment variable or logs a fatal error if it is not set.
func getEnvMust(key string) string {
	value := os.Getenv(key)
	if value == "" {
		slog.Error("Environment variable is not set", "key", key)
		os.Exit(1)
	}
	return value
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	if value != "true" && value != "false" {
		slog.Error("Cannot load environment variable, it must be \"true\" or \"false\"", "key", key, "value", value)
		os.Exit(1)
	}

	return value == "true"
}

func getEnvSearchLevel() int {
	const key = "REVERSI_SEARCH_LEVEL"

	value := os.Getenv(key)
	if value == "" {
		return defaultSearchLevel
	}

	level, err := ParseSearchLevel(value)
	if err != nil {
		slog.Error("Cannot load environment variable", "key", key, "value", value, "error", err)
		os.Exit(1)
	}

	return level
}
