package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/swagger"
	gf "github.com/shareed2k/goth_fiber"
	"presence-api/handler"
	"presence-api/middleware"
)

// SetupRoutes setup router api
func SetupRoutes(app *fiber.App) {
	app.Get("/swagger/*", swagger.New(swagger.Config{
		DocExpansion:         "list",
		PersistAuthorization: true,
	}))

	app.Get("/robots.txt", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("User-agent: *\nDisallow: /")
	})

	// Client page: geolocation PWA that calls the presence endpoints.
	app.Static("/", "./public")

	api := app.Group("/v2", logger.New())

	//region healthcheck
	api.Get("/health/check", handler.HealthCheck)
	//endregion

	//region Auth
	auth := api.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/signup", middleware.ProtectedApi(), handler.Signup)
	//endregion

	//region OAuth
	oauth := api.Group("/oauth")
	oauth.Get("/:provider/login", gf.BeginAuthHandler)
	oauth.Get("/:provider/callback", handler.OAuthCallback)
	oauth.Get("/:provider/logout", handler.OAuthLogout)
	//endregion

	//region Presence
	presence := api.Group("/presence")
	presence.Post("", middleware.ProtectedJwt(), handler.LogPresence)  // Log a check-in
	presence.Get("", middleware.ProtectedJwt(), handler.IndexPresence) // List recent check-ins with owners
	//endregion

	//region User
	user := api.Group("/users")
	user.Get("/me", middleware.ProtectedJwt(), handler.GetMe) // Get requester metadata
	//endregion

	//region Push
	push := api.Group("/push")
	push.Get("/beams-auth", middleware.ProtectedJwt(), handler.BeamsAuth)
	//endregion
}
