package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/satoshiokita/reversi/internal/config"
	"github.com/satoshiokita/reversi/internal/models"
	"github.com/satoshiokita/reversi/internal/repository"
)

// CreateGame starts a new game. The body is optional.
func CreateGame(c *fiber.Ctx) error {
	var req models.NewGameRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body",
			})
		}
	}

	if err := req.Validate(config.MaxSearchLevel); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	repo := repository.NewGameRepositoryFromCtx(c)
	state, err := repo.Create(c.Context(), req.SearchLevel)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(state)
}

// GetGame returns the state of a game.
func GetGame(c *fiber.Ctx) error {
	repo := repository.NewGameRepositoryFromCtx(c)
	state, err := repo.State(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(state)
}

// DeleteGame removes a game.
func DeleteGame(c *fiber.Ctx) error {
	repo := repository.NewGameRepositoryFromCtx(c)
	if err := repo.Delete(c.Context(), c.Params("id")); err != nil {
		return errorResponse(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// PlayMove plays a human move followed by the computer's reply.
func PlayMove(c *fiber.Ctx) error {
	var req models.MoveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	move, err := req.Coord()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	repo := repository.NewGameRepositoryFromCtx(c)
	resp, err := repo.Move(c.Context(), c.Params("id"), move)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// PassMove passes for the human when no move is available.
func PassMove(c *fiber.Ctx) error {
	repo := repository.NewGameRepositoryFromCtx(c)
	resp, err := repo.Pass(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}
