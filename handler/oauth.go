package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	gf "github.com/shareed2k/goth_fiber"
	"github.com/sirupsen/logrus"
	"presence-api/database"
	"presence-api/helper"
	"presence-api/model"
)

// OAuthCallback completes the identity provider round trip, upserts the
// account by provider-reported email and hands the bearer token to the
// client.
func OAuthCallback(ctx *fiber.Ctx) error {
	gothUser, err := gf.CompleteUserAuth(ctx)
	if err != nil {
		logrus.Errorf("failed to complete user auth: %v", err)
		return err
	}

	if gothUser.Email == "" {
		logrus.Errorf("provider returned no email")
		return ctx.Status(fiber.StatusBadRequest).SendString("error: failed to authenticate user with email")
	}

	db := database.FromContext(ctx.UserContext())
	if db == nil {
		logrus.Errorf("no database in context")
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}

	u, err := model.GetUserByEmail(ctx.UserContext(), db, gothUser.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// User not found, register user with email
			u, err = model.RegisterUserFromOAuth(ctx.UserContext(), db, gothUser.Email, gothUser.Name, gothUser.AvatarURL)
			if err != nil {
				logrus.Errorf("failed to register user: %v", err)
				return ctx.Status(fiber.StatusInternalServerError).SendString("error: failed to register user")
			}
		} else {
			logrus.Errorf("failed to get user by email: %v", err)
			return ctx.Status(fiber.StatusInternalServerError).SendString("error: failed to authenticate user with email")
		}
	}

	t, err := helper.SignToken(u)
	if err != nil {
		logrus.Errorf("failed to get jwt token: %v", err)
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}

	return ctx.JSON(fiber.Map{"status": "ok", "message": "ok", "data": t})
}

func OAuthLogout(ctx *fiber.Ctx) error {
	if err := gf.Logout(ctx); err != nil {
		logrus.Errorf("failed to logout: %v", err)
		return err
	}

	return ctx.SendString("logout")
}
