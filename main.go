package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/helmet/v2"
	"github.com/markbates/goth"
	"github.com/markbates/goth/providers/discord"
	"github.com/markbates/goth/providers/google"
	"github.com/sirupsen/logrus"
	"presence-api/database"
	_ "presence-api/docs"
	"presence-api/push"
	"presence-api/router"
	"presence-api/translation"
	"presence-api/validation"
)

//go:generate swag init

// @title Presence API
// @version 1.0.0
// @description Geolocation presence check-in API
// @basePath /v2/
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	const idleTimeout = 10 * time.Second
	const readTimeout = 30 * time.Second

	translation.InitTranslation()
	validation.RegisterValidations()

	app := fiber.New(fiber.Config{
		IdleTimeout: idleTimeout,
		ReadTimeout: readTimeout,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			logrus.Errorf("error: %s, request: %s %s", err.Error(), ctx.Method(), ctx.Path())
			return err
		},
		EnableTrustedProxyCheck: true,
	})

	app.Use(cors.New())
	app.Use(helmet.New())

	oAuthGoogleKey := os.Getenv("OAUTH_GOOGLE_ID")
	oAuthGoogleSecret := os.Getenv("OAUTH_GOOGLE_SECRET")
	oAuthDiscordKey := os.Getenv("OAUTH_DISCORD_ID")
	oAuthDiscordSecret := os.Getenv("OAUTH_DISCORD_SECRET")

	baseAddress := os.Getenv("API_ADDRESS")
	goth.UseProviders(
		google.New(oAuthGoogleKey, oAuthGoogleSecret, baseAddress+"/v2/oauth/google/callback"),
		discord.New(oAuthDiscordKey, oAuthDiscordSecret, baseAddress+"/v2/oauth/discord/callback", "identify", "email"),
	)

	limiterConfig := limiter.Config{
		Max:        10000,
		Expiration: 1 * time.Minute,
	}

	app.Use(limiter.New(limiterConfig))
	app.Use(logger.New())

	if err := database.Setup(); err != nil {
		log.Fatal(err)
	}

	if err := database.Migrate(context.Background()); err != nil {
		log.Fatal(err)
	}

	app.Use(database.NewMiddleware())

	if err := push.Setup(); err != nil {
		// Push registration is optional, the endpoint reports 503 without it.
		log.Println(err)
	}

	router.SetupRoutes(app)

	port := os.Getenv("API_PORT")
	portNum, err := strconv.Atoi(port)
	if err != nil {
		port = "3000"
	} else if portNum <= 0 || portNum > 65535 {
		port = "3000"
	}
	log.Fatal(app.Listen(":" + port))
}
