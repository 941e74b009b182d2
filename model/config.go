package model

import "os"

var (
	AUTH_SECRET     = os.Getenv("AUTH_SECRET")
	AUTH_EXPIRATION = os.Getenv("AUTH_EXPIRATION") // token lifetime in hours
)
