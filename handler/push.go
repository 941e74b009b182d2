package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"presence-api/helper"
	"presence-api/push"
)

// BeamsAuth godoc
// @Summary      Beams token provider
// @Description  Issue a Pusher Beams token for the authenticated user so the device can register for push.
// @Tags         push
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  model.ErrorResponse
// @Failure      503  {object}  model.ErrorResponse
// @Security     Bearer
// @Router       /push/beams-auth [get]
func BeamsAuth(c *fiber.Ctx) error {
	requester, err := helper.GetRequester(c)
	if err != nil {
		logrus.Errorf("BeamsAuth: %s", err.Error())
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"status": "error", "message": "no requester", "data": nil})
	}

	// The Beams SDK appends the user it wants a token for; it must be the
	// caller itself.
	if userId := c.Query("user_id"); userId != "" && userId != requester.Id.String() {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"status": "error", "message": "not authorized", "data": nil})
	}

	if push.Beams == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "error", "message": "push is not configured", "data": nil})
	}

	token, err := push.Beams.GenerateToken(requester.Id.String())
	if err != nil {
		logrus.Errorf("BeamsAuth: failed to generate token: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "failed to generate token", "data": nil})
	}

	return c.Status(fiber.StatusOK).JSON(token)
}
