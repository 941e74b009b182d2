package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"presence-api/database"
	"presence-api/helper"
	"presence-api/model"
	"presence-api/validation"
)

// LogPresence godoc
// @Summary      Log presence
// @Description  Record a check-in with the device timestamp and an optional location fix.
// @Tags         presence
// @Accept       json
// @Produce      json
// @Param        request body model.LogPresenceRequest true "Request JSON"
// @Success      200  {object}  model.Presence
// @Failure      400  {object}  model.ErrorResponse
// @Failure      401  {object}  model.ErrorResponse
// @Failure      500  {object}  model.ErrorResponse
// @Security     Bearer
// @Router       /presence [post]
func LogPresence(c *fiber.Ctx) error {
	requester, err := helper.GetRequester(c)
	if err != nil {
		logrus.Errorf("LogPresence: %s", err.Error())
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"status": "error", "message": "no requester", "data": nil})
	}

	m := model.LogPresenceRequest{}
	if err = c.BodyParser(&m); err != nil {
		logrus.Errorf("LogPresence: %s", err.Error())
		if errors := model.GetParseErrors(err); errors != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "validation error", "data": errors})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "failed to parse body", "data": nil})
	}

	if err = validation.Validator.Struct(m); err != nil {
		errors := model.GetErrors(err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "validation error", "data": errors})
	}

	db := database.FromContext(c.UserContext())
	if db == nil {
		logrus.Errorf("LogPresence: no database in context")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "something went wrong", "data": nil})
	}

	presence, err := model.LogPresence(c.UserContext(), db, *requester.Id, m)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": err.Error(), "data": nil})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "success", "message": "presence logged", "data": presence})
}

// IndexPresence godoc
// @Summary      Index presence
// @Description  List the 50 most recent check-ins, newest first, each with its owning user.
// @Tags         presence
// @Produce      json
// @Success      200  {array}   model.Presence
// @Failure      401  {object}  model.ErrorResponse
// @Failure      500  {object}  model.ErrorResponse
// @Security     Bearer
// @Router       /presence [get]
func IndexPresence(c *fiber.Ctx) error {
	_, err := helper.GetRequester(c)
	if err != nil {
		logrus.Errorf("IndexPresence: %s", err.Error())
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"status": "error", "message": "no requester", "data": nil})
	}

	db := database.FromContext(c.UserContext())
	if db == nil {
		logrus.Errorf("IndexPresence: no database in context")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "something went wrong", "data": nil})
	}

	entities, err := model.IndexPresence(c.UserContext(), db)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": err.Error(), "data": nil})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "success", "message": "got entities", "data": entities})
}
