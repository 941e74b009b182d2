package middleware

import (
	"os"

	"github.com/gofiber/fiber/v2"
	jwtMiddleware "github.com/gofiber/jwt/v2"
	"presence-api/middleware/apiSecret"
)

var secret = os.Getenv("AUTH_SECRET")

func ProtectedApi() func(*fiber.Ctx) error {
	return apiSecret.New()
}

// ProtectedJwt guards authenticated procedures. Rejected requests never
// reach a handler, so no store access happens for them.
func ProtectedJwt() func(*fiber.Ctx) error {
	return jwtMiddleware.New(jwtMiddleware.Config{
		SigningKey:   []byte(secret),
		ErrorHandler: jwtError,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	c.Status(fiber.StatusUnauthorized)
	return c.JSON(fiber.Map{"status": "error", "message": err.Error(), "data": nil})
}
