package tests

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"presence-api/database"
	"presence-api/router"
	"presence-api/translation"
	"presence-api/validation"
)

// createApp builds the full application against the database named by the
// DATABASE_* environment. Tests are skipped when no database is configured.
func createApp(t *testing.T) *fiber.App {
	t.Helper()

	if os.Getenv("DATABASE_HOST") == "" {
		t.Skip("DATABASE_HOST not set, skipping integration test")
	}

	translation.InitTranslation()
	validation.RegisterValidations()

	app := fiber.New()
	app.Use(logger.New())

	if err := database.Setup(); err != nil {
		t.Fatal(err)
	}

	app.Use(database.NewMiddleware())

	router.SetupRoutes(app)

	return app
}

// signupTestUser makes sure the TEST_USER account exists. "already
// registered" is fine, anything else is not.
func signupTestUser(app *fiber.App) error {
	requestBody, err := json.Marshal(map[string]string{
		"name":     "Test User",
		"email":    os.Getenv("TEST_USER_EMAIL"),
		"password": os.Getenv("TEST_USER_PASSWORD"),
	})
	if err != nil {
		return err
	}

	req := httptest.NewRequest("POST", "/v2/auth/signup", bytes.NewBuffer(requestBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Service-Key", os.Getenv("SERVICE_SECRET"))
	resp, err := app.Test(req, -1)
	if err != nil {
		return err
	}

	defer resp.Body.Close()

	if resp.StatusCode == fiber.StatusOK {
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var v map[string]interface{}
	if err = json.Unmarshal(body, &v); err != nil {
		return err
	}

	if msg, _ := v["message"].(string); msg == "already registered" {
		return nil
	}

	return fmt.Errorf("signup failed with status %d: %s", resp.StatusCode, body)
}

func login(app *fiber.App) (string, error) {
	requestBody, err := json.Marshal(map[string]string{
		"email":    os.Getenv("TEST_USER_EMAIL"),
		"password": os.Getenv("TEST_USER_PASSWORD"),
	})
	if err != nil {
		return "", err
	}

	req := httptest.NewRequest("POST", "/v2/auth/login", bytes.NewBuffer(requestBody))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		return "", err
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var v map[string]string
	if err = json.Unmarshal(body, &v); err != nil {
		return "", err
	}

	if v["status"] == "error" {
		return "", errors.New(fmt.Sprintf("authentication error %d: %s\n", resp.StatusCode, v["message"]))
	} else if v["status"] == "ok" {
		return v["data"], nil
	}

	return "", errors.New(v["message"])
}
