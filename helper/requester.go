package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofrs/uuid"
	"github.com/golang-jwt/jwt/v4"
	"presence-api/database"
	"presence-api/model"
	"presence-api/sessionStore"
)

// GetRequesterId extracts the user id claim that the JWT middleware stored
// in the request locals. Empty string when the request carries no token.
func GetRequesterId(c *fiber.Ctx) string {
	user := c.Locals("user")
	if user != nil {
		token := user.(*jwt.Token)
		claims := token.Claims.(jwt.MapClaims)
		id, _ := claims["id"].(string)
		return id
	}
	return ""
}

// GetRequester resolves the authenticated caller to a user row. The row is
// cached in the fiber session for the duration of the session.
func GetRequester(c *fiber.Ctx) (*model.User, error) {
	id := GetRequesterId(c)
	if id == "" {
		return nil, errors.New("no requester")
	}

	sess, err := sessionStore.Session.Get(c)
	if err != nil {
		return nil, err
	}

	// The session cookie may have been issued for a different bearer token.
	// Only trust the cached row when it belongs to the JWT identity.
	if v, ok := sess.Get("requester").(model.User); ok {
		if v.Id != nil && v.Id.String() == id {
			return &v, nil
		}
		sess.Delete("requester")
	}

	userId, err := uuid.FromString(id)
	if err != nil {
		return nil, errors.New("no requester")
	}

	db := database.FromContext(c.UserContext())
	if db == nil {
		return nil, errors.New("no database")
	}

	user, err := model.GetUserById(c.UserContext(), db, userId)
	if err != nil {
		return nil, err
	}

	sess.Set("requester", *user)
	if err = sess.Save(); err != nil {
		return nil, err
	}

	return user, nil
}
