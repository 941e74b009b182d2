package helper

import (
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"presence-api/model"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("Correct1Horse")
	if err != nil {
		t.Fatal(err)
	}

	assert.True(t, CheckPasswordHash("Correct1Horse", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestSignToken(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	user := &model.User{}
	user.Id = &id
	user.IsAdmin = true

	signed, err := SignToken(user)
	if err != nil {
		t.Fatal(err)
	}

	token, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte(model.AUTH_SECRET), nil
	})
	if err != nil {
		t.Fatal(err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("unexpected claims type")
	}

	assert.Equal(t, id.String(), claims["id"])
	assert.Equal(t, true, claims["is_admin"])

	exp, ok := claims["exp"].(float64)
	if !ok {
		t.Fatal("missing exp claim")
	}
	assert.Greater(t, int64(exp), time.Now().Unix())
}
