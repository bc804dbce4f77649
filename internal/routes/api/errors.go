package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/satoshiokita/reversi/internal/engine"
	"github.com/satoshiokita/reversi/internal/othello"
	"github.com/satoshiokita/reversi/internal/repository"
)

// errorStatus maps domain errors to HTTP status codes.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, repository.ErrInvalidGameID),
		errors.Is(err, othello.ErrInvalidCoordinate):
		return fiber.StatusBadRequest
	case errors.Is(err, repository.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, othello.ErrIllegalMove),
		errors.Is(err, engine.ErrNotYourTurn),
		errors.Is(err, engine.ErrGameOver):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

func errorResponse(c *fiber.Ctx, err error) error {
	return c.Status(errorStatus(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}
