package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"
	"presence-api/database"
	"presence-api/helper"
	"presence-api/model"
	"presence-api/validation"
)

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,gte=6,hasUpper,hasLower,hasNumber"`
}

// Login godoc
// @Summary      Login
// @Description  Login using email and password.
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        request body handler.LoginInput true "Request JSON"
// @Success      200  {object}  string
// @Failure      401  {object}  model.ErrorResponse
// @Failure      500  {object}  model.ErrorResponse
// @Router       /auth/login [post]
func Login(c *fiber.Ctx) error {
	var input LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"status": "error", "message": "no credentials", "data": nil})
	}

	email := input.Email
	pass := input.Password

	if len(email) == 0 || len(pass) == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"status": "error", "message": "no credentials", "data": nil})
	}

	if !strings.Contains(email, "@") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"status": "error", "message": "invalid email", "data": nil})
	}

	db := database.FromContext(c.UserContext())
	if db == nil {
		logrus.Errorf("Login: no database in context")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "something went wrong", "data": nil})
	}

	user, err := model.GetUserByEmail(c.UserContext(), db, email)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"status": "error", "message": "no user", "data": nil})
	}

	if user.PasswordHash == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"status": "error", "message": "no password", "data": nil})
	}

	if !helper.CheckPasswordHash(pass, *user.PasswordHash) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"status": "error", "message": "invalid password", "data": nil})
	}

	t, err := helper.SignToken(user)
	if err != nil {
		logrus.Errorf("Login: failed to sign token: %v", err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.JSON(fiber.Map{"status": "ok", "message": "ok", "data": t})
}

// Signup godoc
// @Summary      Signup
// @Description  Register a new account with email and password.
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        request body handler.SignupInput true "Request JSON"
// @Success      200  {object}  model.User
// @Failure      400  {object}  model.ErrorResponse
// @Failure      500  {object}  model.ErrorResponse
// @Router       /auth/signup [post]
func Signup(c *fiber.Ctx) error {
	m := SignupInput{}
	if err := c.BodyParser(&m); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "failed to parse body", "data": nil})
	}

	if err := validation.Validator.Struct(m); err != nil {
		errs := model.GetErrors(err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "validation error", "data": errs})
	}

	db := database.FromContext(c.UserContext())
	if db == nil {
		logrus.Errorf("Signup: no database in context")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "something went wrong", "data": nil})
	}

	if _, err := model.GetUserByEmail(c.UserContext(), db, m.Email); err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "already registered", "data": nil})
	} else if !errors.Is(err, pgx.ErrNoRows) {
		logrus.Errorf("Signup: %s", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "something went wrong", "data": nil})
	}

	hash, err := helper.HashPassword(m.Password)
	if err != nil {
		logrus.Errorf("Signup: failed to hash password: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "something went wrong", "data": nil})
	}

	user, err := model.CreateUser(c.UserContext(), db, m.Name, m.Email, hash)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": err.Error(), "data": nil})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok", "message": "ok", "data": user})
}
