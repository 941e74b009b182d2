package apiSecret

import (
	"os"

	"github.com/gofiber/fiber/v2"
)

// New guards service-to-service routes (signup) with a shared secret header.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		envSecret := os.Getenv("SERVICE_SECRET")
		headers := c.GetReqHeaders()
		headerSecret := headers["X-Service-Key"]

		if envSecret != "" && envSecret == headerSecret {
			return c.Next()
		}

		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"status": "error", "message": "not authorized", "data": nil})
	}
}
