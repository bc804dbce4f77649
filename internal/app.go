package internal

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/satoshiokita/reversi/internal/config"
	"github.com/satoshiokita/reversi/internal/middleware"
	"github.com/satoshiokita/reversi/internal/repository"
	"github.com/satoshiokita/reversi/internal/routes"
	"github.com/satoshiokita/reversi/internal/services"
)

const (
	defaultConcurrency  = 256 * 1024 // Maximum number of concurrent connections per worker
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 30 * time.Second // deep searches answer slowly
	defaultIdleTimeout  = 5 * time.Second
	defaultBodyLimit    = 64 * 1024
	startupTimeout      = 10 * time.Second
)

// BuildApp creates the fiber app serving games from the given repository.
func BuildApp(cfg *config.ServerConfig, games *repository.GameRepository) *fiber.App {
	app := fiber.New(fiber.Config{
		Prefork:      cfg.Prefork,
		Concurrency:  defaultConcurrency,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		IdleTimeout:  defaultIdleTimeout,
		BodyLimit:    defaultBodyLimit,
	})

	// Make the game repository and config available to handlers
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("games", games)
		c.Locals("config", cfg)
		return c.Next()
	})

	// Add logging middleware
	app.Use(middleware.Logging())

	// Setup all routes
	routes.SetupRoutes(app, cfg)

	return app
}

// SetupApp loads the configuration, connects to the configured store and builds the app.
func SetupApp() (*fiber.App, *config.ServerConfig, *services.Services) {
	cfg := config.LoadServerConfig()

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	services, err := services.InitServices(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize services", "error", err)
		os.Exit(1)
	}

	store, err := repository.NewGameStore(ctx, cfg, services)
	if err != nil {
		slog.Error("Failed to initialize game store", "error", err)
		os.Exit(1)
	}

	games := repository.NewGameRepository(store, cfg.SearchLevel)

	return BuildApp(cfg, games), cfg, services
}
