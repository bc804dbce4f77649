package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/satoshiokita/reversi/internal/config"
	"github.com/satoshiokita/reversi/internal/middleware"
)

// SetupRoutes sets up the API routes.
func SetupRoutes(app *fiber.App, cfg *config.ServerConfig) {
	apiGroup := app.Group("/api", middleware.AuthOrToken(cfg))

	apiGroup.Post("/games", CreateGame)
	apiGroup.Get("/games/:id", GetGame)
	apiGroup.Delete("/games/:id", DeleteGame)
	apiGroup.Post("/games/:id/moves", PlayMove)
	apiGroup.Post("/games/:id/pass", PassMove)
}
