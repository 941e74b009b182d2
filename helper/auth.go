package helper

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"presence-api/model"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// SignToken mints the bearer token handed out by login and the OAuth
// callback. Expiration comes from AUTH_EXPIRATION (hours).
func SignToken(u *model.User) (t string, err error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["id"] = u.Id
	claims["is_admin"] = u.IsAdmin

	var exp int
	exp, err = strconv.Atoi(model.AUTH_EXPIRATION)
	if err != nil {
		exp = 7 * 24 // Default to 7 days
	}
	claims["exp"] = time.Now().Add(time.Duration(exp) * time.Hour).Unix()

	t, err = token.SignedString([]byte(model.AUTH_SECRET))
	if err != nil {
		return "", err
	}

	return t, nil
}
