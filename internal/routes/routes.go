package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/satoshiokita/reversi/internal/config"
	"github.com/satoshiokita/reversi/internal/routes/api"
	"github.com/satoshiokita/reversi/internal/routes/version"
	"github.com/satoshiokita/reversi/internal/routes/ws"
)

func SetupRoutes(app *fiber.App, cfg *config.ServerConfig) {
	// Serve API routes
	api.SetupRoutes(app, cfg)

	// Serve websocket
	ws.SetupRoutes(app, cfg)

	// Serve version info
	version.SetupRoutes(app)
}
