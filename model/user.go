package model

import (
	"context"
	"encoding/gob"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	"github.com/jackc/pgtype"
	pgtypeuuid "github.com/jackc/pgtype/ext/gofrs-uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"presence-api/reflect"
)

// User account. PasswordHash is never serialized.
type User struct {
	Identifier
	Timestamps

	Email        *string `json:"email,omitempty"`
	PasswordHash *string `json:"-"`
	Name         *string `json:"name"`
	Image        *string `json:"image,omitempty"`
	IsActive     bool    `json:"isActive,omitempty"`
	IsAdmin      bool    `json:"isAdmin,omitempty"`
}

const (
	UserSingular = "user"
	userPlural   = "users"
)

func init() {
	// register for session storage
	gob.Register(User{})
}

// GetUserById fetches a single user row. Returns pgx.ErrNoRows unwrapped so
// callers can distinguish a missing user from a store failure.
func GetUserById(ctx context.Context, db *pgxpool.Pool, id uuid.UUID) (*User, error) {
	q := `SELECT u.id, u.email, u.name, u.image, u.is_active, u.is_admin, u.created_at, u.updated_at FROM users u WHERE u.id = $1`

	row := db.QueryRow(ctx, q, id)

	user := new(User)

	var userId pgtypeuuid.UUID
	err := row.Scan(&userId, &user.Email, &user.Name, &user.Image, &user.IsActive, &user.IsAdmin, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if userId.Status != pgtype.Null {
		user.Id = &userId.UUID
	}

	return user, nil
}

// GetUserByEmail fetches a single user row by email. Returns pgx.ErrNoRows
// unwrapped, see GetUserById.
func GetUserByEmail(ctx context.Context, db *pgxpool.Pool, email string) (*User, error) {
	q := `SELECT u.id, u.email, u.hash, u.name, u.image, u.is_active, u.is_admin, u.created_at, u.updated_at FROM users u WHERE u.email = $1`

	row := db.QueryRow(ctx, q, email)

	user := new(User)

	var userId pgtypeuuid.UUID
	err := row.Scan(&userId, &user.Email, &user.PasswordHash, &user.Name, &user.Image, &user.IsActive, &user.IsAdmin, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if userId.Status != pgtype.Null {
		user.Id = &userId.UUID
	}

	return user, nil
}

// CreateUser registers a new account with a bcrypt password hash.
func CreateUser(ctx context.Context, db *pgxpool.Pool, name string, email string, hash string) (*User, error) {
	q := `INSERT INTO users (email, hash, name, is_active)
VALUES ($1, $2, $3, TRUE)
RETURNING id, created_at, updated_at`

	row := db.QueryRow(ctx, q, email, hash, name)

	var (
		userId    pgtypeuuid.UUID
		createdAt *time.Time
		updatedAt *time.Time
	)

	if err := row.Scan(&userId, &createdAt, &updatedAt); err != nil {
		logrus.Errorf("failed to insert %s @ %s: %v", UserSingular, reflect.FunctionName(), err)
		return nil, fmt.Errorf("failed to create user")
	}

	user := new(User)
	if userId.Status != pgtype.Null {
		user.Id = &userId.UUID
	}
	user.Email = &email
	user.Name = &name
	user.IsActive = true
	user.CreatedAt = createdAt
	user.UpdatedAt = updatedAt

	return user, nil
}

// RegisterUserFromOAuth upserts an account for a user authenticated by the
// external identity provider, keyed by the provider-reported email.
func RegisterUserFromOAuth(ctx context.Context, db *pgxpool.Pool, email string, name string, image string) (*User, error) {
	q := `INSERT INTO users (email, name, image, is_active)
VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), TRUE)
ON CONFLICT (email) DO UPDATE
	SET name = COALESCE(users.name, EXCLUDED.name),
	    image = COALESCE(EXCLUDED.image, users.image),
	    updated_at = now()
RETURNING id, name, image, is_active, is_admin, created_at, updated_at`

	row := db.QueryRow(ctx, q, email, name, image)

	user := new(User)

	var userId pgtypeuuid.UUID
	err := row.Scan(&userId, &user.Name, &user.Image, &user.IsActive, &user.IsAdmin, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		logrus.Errorf("failed to upsert %s @ %s: %v", UserSingular, reflect.FunctionName(), err)
		return nil, fmt.Errorf("failed to register user")
	}

	if userId.Status != pgtype.Null {
		user.Id = &userId.UUID
	}
	user.Email = &email

	return user, nil
}
