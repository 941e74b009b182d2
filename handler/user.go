package handler

import (
	"github.com/gofiber/fiber/v2"
	"presence-api/helper"
)

// GetMe godoc
// @Summary      Get requester
// @Description  Get the authenticated user's own record.
// @Tags         users
// @Produce      json
// @Success      200  {object}  model.User
// @Failure      403  {object}  model.ErrorResponse
// @Security     Bearer
// @Router       /users/me [get]
func GetMe(c *fiber.Ctx) error {
	// Get requester
	requester, err := helper.GetRequester(c)
	if err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"status": "error", "message": "no requester", "data": nil})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "success", "message": "got user", "data": requester})
}
