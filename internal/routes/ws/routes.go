package ws

import (
	"log/slog"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/satoshiokita/reversi/internal/config"
	"github.com/satoshiokita/reversi/internal/middleware"
	"github.com/satoshiokita/reversi/internal/repository"
	"github.com/satoshiokita/reversi/internal/ws"
)

func handleWs(c *websocket.Conn) {
	games := c.Locals("games").(*repository.GameRepository) //nolint: errcheck

	h := ws.NewHandler(c, games)
	if err := h.Handle(); err != nil {
		slog.Debug("ws connection closed", "error", err)
	}
}

func upgradeRequired(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// SetupRoutes sets up the routes for the websocket.
func SetupRoutes(app *fiber.App, cfg *config.ServerConfig) {
	app.Get("/ws", middleware.AuthOrToken(cfg), upgradeRequired, websocket.New(handleWs))
}
