package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/satoshiokita/reversi/internal/config"
)

// TokenHeader is the header checked by AuthOrToken.
const TokenHeader = "x-token"

func unauthorized(c *fiber.Ctx) error {
	c.Set("WWW-Authenticate", `Basic realm="Reversi"`)

	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "Unauthorized",
	})
}

// BasicAuth checks for the configured basic auth credentials.
func BasicAuth(cfg *config.ServerConfig) fiber.Handler {
	return basicauth.New(basicauth.Config{
		Users: map[string]string{
			cfg.BasicAuthUsername: cfg.BasicAuthPassword,
		},
		Realm:        "Reversi",
		Unauthorized: unauthorized,
	})
}

// AuthOrToken accepts either the configured token header or basic auth.
func AuthOrToken(cfg *config.ServerConfig) fiber.Handler {
	basicAuth := BasicAuth(cfg)

	return func(c *fiber.Ctx) error {
		token := c.Get(TokenHeader)
		if token != "" && subtle.ConstantTimeCompare([]byte(token), []byte(cfg.Token)) == 1 {
			return c.Next()
		}

		return basicAuth(c)
	}
}
