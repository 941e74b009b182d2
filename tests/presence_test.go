package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type presenceRecord struct {
	Id                string     `json:"id"`
	UserId            string     `json:"userId"`
	DeviceTimestamp   time.Time  `json:"deviceTimestamp"`
	ServerTimestamp   time.Time  `json:"serverTimestamp"`
	Latitude          *float64   `json:"latitude"`
	Longitude         *float64   `json:"longitude"`
	Accuracy          *float64   `json:"accuracy"`
	LocationTimestamp *time.Time `json:"locationTimestamp"`
	User              *struct {
		Id string `json:"id"`
	} `json:"user"`
}

func logPresence(t *testing.T, app *fiber.App, token string, body string) (int, envelope) {
	t.Helper()

	req := httptest.NewRequest("POST", "/v2/presence", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}

	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}

	var env envelope
	if err = json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("failed to parse response %s: %v", raw, err)
	}

	return resp.StatusCode, env
}

func TestLogPresenceWithLocation(t *testing.T) {
	app := createApp(t)

	if err := signupTestUser(app); err != nil {
		t.Fatal(err)
	}

	token, err := login(app)
	if err != nil {
		t.Fatal(err)
	}

	before := time.Now().UTC().Add(-time.Second)

	code, env := logPresence(t, app, token, `{
		"deviceTimestamp": "2024-01-01T00:00:00Z",
		"location": {"latitude": 10.0, "longitude": 20.0, "accuracy": 5.0, "locationTimestamp": "2024-01-01T00:00:00Z"}
	}`)

	if !assert.Equal(t, 200, code, env.Message) {
		return
	}

	var p presenceRecord
	if err = json.Unmarshal(env.Data, &p); err != nil {
		t.Fatal(err)
	}

	assert.NotEmpty(t, p.Id)
	assert.NotEmpty(t, p.UserId)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), p.DeviceTimestamp.UTC())
	if assert.NotNil(t, p.Latitude) {
		assert.Equal(t, 10.0, *p.Latitude)
	}
	if assert.NotNil(t, p.Longitude) {
		assert.Equal(t, 20.0, *p.Longitude)
	}
	if assert.NotNil(t, p.Accuracy) {
		assert.Equal(t, 5.0, *p.Accuracy)
	}
	if assert.NotNil(t, p.LocationTimestamp) {
		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), p.LocationTimestamp.UTC())
	}
	assert.False(t, p.ServerTimestamp.Before(before))
}

func TestLogPresenceWithNullLocation(t *testing.T) {
	app := createApp(t)

	if err := signupTestUser(app); err != nil {
		t.Fatal(err)
	}

	token, err := login(app)
	if err != nil {
		t.Fatal(err)
	}

	code, env := logPresence(t, app, token, `{"deviceTimestamp": "2024-01-01T00:00:00Z", "location": null}`)

	if !assert.Equal(t, 200, code, env.Message) {
		return
	}

	var p presenceRecord
	if err = json.Unmarshal(env.Data, &p); err != nil {
		t.Fatal(err)
	}

	assert.Nil(t, p.Latitude)
	assert.Nil(t, p.Longitude)
	assert.Nil(t, p.Accuracy)
	assert.Nil(t, p.LocationTimestamp)
}

func TestLogPresencePartialLocationRejected(t *testing.T) {
	app := createApp(t)

	if err := signupTestUser(app); err != nil {
		t.Fatal(err)
	}

	token, err := login(app)
	if err != nil {
		t.Fatal(err)
	}

	// accuracy is missing
	code, env := logPresence(t, app, token, `{
		"deviceTimestamp": "2024-01-01T00:00:00Z",
		"location": {"latitude": 10.0, "longitude": 20.0, "locationTimestamp": "2024-01-01T00:00:00Z"}
	}`)

	assert.Equal(t, 400, code)
	assert.Equal(t, "validation error", env.Message)

	var fieldErrors []struct {
		Field string `json:"Field"`
	}
	if err = json.Unmarshal(env.Data, &fieldErrors); err != nil {
		t.Fatal(err)
	}

	var fields []string
	for _, fe := range fieldErrors {
		fields = append(fields, fe.Field)
	}
	assert.Contains(t, fields, "Accuracy")
}

func TestLogPresenceTypeMismatchRejected(t *testing.T) {
	app := createApp(t)

	if err := signupTestUser(app); err != nil {
		t.Fatal(err)
	}

	token, err := login(app)
	if err != nil {
		t.Fatal(err)
	}

	// latitude is a string
	code, env := logPresence(t, app, token, `{
		"deviceTimestamp": "2024-01-01T00:00:00Z",
		"location": {"latitude": "oops", "longitude": 20.0, "accuracy": 5.0, "locationTimestamp": "2024-01-01T00:00:00Z"}
	}`)

	assert.Equal(t, 400, code)
	assert.Equal(t, "validation error", env.Message)

	var fieldErrors []struct {
		Field string `json:"Field"`
	}
	if err = json.Unmarshal(env.Data, &fieldErrors); err != nil {
		t.Fatal(err)
	}

	var fields []string
	for _, fe := range fieldErrors {
		fields = append(fields, fe.Field)
	}
	assert.Contains(t, fields, "location.latitude")
}

func TestIndexPresenceOrderAndLimit(t *testing.T) {
	app := createApp(t)

	if err := signupTestUser(app); err != nil {
		t.Fatal(err)
	}

	token, err := login(app)
	if err != nil {
		t.Fatal(err)
	}

	// Log one more record than the index returns so the cap is observable.
	for i := 0; i < 51; i++ {
		body := fmt.Sprintf(`{"deviceTimestamp": "2024-01-01T00:00:%02dZ"}`, i%60)
		code, env := logPresence(t, app, token, body)
		if !assert.Equal(t, 200, code, env.Message) {
			return
		}
	}

	req := httptest.NewRequest("GET", "/v2/presence", nil)
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}

	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}

	var listEnv envelope
	if err = json.Unmarshal(raw, &listEnv); err != nil {
		t.Fatal(err)
	}

	if !assert.Equal(t, 200, resp.StatusCode, listEnv.Message) {
		return
	}

	var records []presenceRecord
	if err = json.Unmarshal(listEnv.Data, &records); err != nil {
		t.Fatal(err)
	}

	// At least 51 rows exist now, so the index must truncate to exactly 50.
	assert.Equal(t, 50, len(records))

	for i := 1; i < len(records); i++ {
		assert.False(t, records[i-1].ServerTimestamp.Before(records[i].ServerTimestamp),
			"records must be ordered by serverTimestamp descending")
	}

	// Every record comes with its owning user.
	for _, r := range records {
		if assert.NotNil(t, r.User) {
			assert.Equal(t, r.UserId, r.User.Id)
		}
	}
}

func TestPresenceUnauthenticated(t *testing.T) {
	app := createApp(t)

	for _, method := range []string{"POST", "GET"} {
		req := httptest.NewRequest(method, "/v2/presence", bytes.NewBufferString(`{"deviceTimestamp": "2024-01-01T00:00:00Z"}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req, -1)
		if err != nil {
			t.Fatal(err)
		}

		assert.Equal(t, 401, resp.StatusCode)
	}
}
