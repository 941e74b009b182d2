package model

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	"github.com/jackc/pgtype"
	pgtypeuuid "github.com/jackc/pgtype/ext/gofrs-uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"presence-api/database"
	"presence-api/reflect"
)

var (
	PresenceSingular = "presence"
	PresencePlural   = "presence records"
)

// PresenceIndexLimit caps how many records the index query returns.
const PresenceIndexLimit = 50

// LocationFix is a single geolocation reading. A request either carries no
// fix at all or a complete one, so every field is required once the fix is
// present.
type LocationFix struct {
	Longitude         *float64   `json:"longitude" validate:"required"`
	Latitude          *float64   `json:"latitude" validate:"required"`
	Accuracy          *float64   `json:"accuracy" validate:"required"`
	LocationTimestamp *time.Time `json:"locationTimestamp" validate:"required"`
}

// LogPresenceRequest is the body of the presence log mutation. Location may
// be absent or null, which counts as "no location", not as an error.
type LogPresenceRequest struct {
	DeviceTimestamp *time.Time   `json:"deviceTimestamp" validate:"required"`
	Location        *LocationFix `json:"location" validate:"omitempty"`
}

// Presence is one logged check-in. The four location columns are jointly set
// or jointly null; server_timestamp is assigned at insert time and is the
// authoritative ordering key.
type Presence struct {
	Id                *uuid.UUID `json:"id"`
	UserId            *uuid.UUID `json:"userId"`
	DeviceTimestamp   time.Time  `json:"deviceTimestamp"`
	ServerTimestamp   time.Time  `json:"serverTimestamp"`
	Latitude          *float64   `json:"latitude,omitempty"`
	Longitude         *float64   `json:"longitude,omitempty"`
	Accuracy          *float64   `json:"accuracy,omitempty"`
	LocationTimestamp *time.Time `json:"locationTimestamp,omitempty"`
	User              *User      `json:"user,omitempty"`
}

// LogPresence inserts a new presence row for the user and returns the stored
// record. Records are immutable, there is no corresponding update or delete.
func LogPresence(ctx context.Context, db *pgxpool.Pool, userId uuid.UUID, m LogPresenceRequest) (*Presence, error) {
	p := Presence{
		UserId:          &userId,
		DeviceTimestamp: *m.DeviceTimestamp,
		ServerTimestamp: time.Now().UTC(),
	}

	if m.Location != nil {
		p.Latitude = m.Location.Latitude
		p.Longitude = m.Location.Longitude
		p.Accuracy = m.Location.Accuracy
		p.LocationTimestamp = m.Location.LocationTimestamp
	}

	q := `INSERT INTO presence (user_id, device_timestamp, server_timestamp, latitude, longitude, accuracy, location_timestamp)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

	row := db.QueryRow(ctx, q,
		userId,
		p.DeviceTimestamp,
		p.ServerTimestamp,
		p.Latitude,
		p.Longitude,
		p.Accuracy,
		p.LocationTimestamp,
	)

	var id pgtypeuuid.UUID
	if err := row.Scan(&id); err != nil {
		logrus.Errorf("failed to insert %s @ %s: %v", PresenceSingular, reflect.FunctionName(), err)
		return nil, fmt.Errorf("failed to log presence")
	}

	p.Id = &id.UUID

	return &p, nil
}

// IndexPresence returns up to PresenceIndexLimit most recent records, newest
// first, each joined with its owning user in a single query.
func IndexPresence(ctx context.Context, db *pgxpool.Pool) (entities []Presence, err error) {
	q := `SELECT
p.id, p.user_id, p.device_timestamp, p.server_timestamp, p.latitude, p.longitude, p.accuracy, p.location_timestamp,
u.id, u.email, u.name, u.image, u.is_active, u.is_admin, u.created_at, u.updated_at
FROM presence p
	LEFT JOIN users u ON p.user_id = u.id
ORDER BY p.server_timestamp DESC
LIMIT $1`

	var rows pgx.Rows
	rows, err = db.Query(ctx, q, PresenceIndexLimit)
	if err != nil {
		logrus.Errorf("failed to query %s @ %s: %v", PresencePlural, reflect.FunctionName(), err)
		return nil, fmt.Errorf("failed to get presence records")
	}

	defer func() {
		rows.Close()
		database.LogPgxStat(db, "IndexPresence")
	}()

	for rows.Next() {
		var (
			p             Presence
			id            pgtypeuuid.UUID
			userId        pgtypeuuid.UUID
			joinedUserId  pgtypeuuid.UUID
			userEmail     *string
			userName      *string
			userImage     *string
			userIsActive  *bool
			userIsAdmin   *bool
			userCreatedAt *time.Time
			userUpdatedAt *time.Time
		)

		err = rows.Scan(
			&id,
			&userId,
			&p.DeviceTimestamp,
			&p.ServerTimestamp,
			&p.Latitude,
			&p.Longitude,
			&p.Accuracy,
			&p.LocationTimestamp,
			&joinedUserId,
			&userEmail,
			&userName,
			&userImage,
			&userIsActive,
			&userIsAdmin,
			&userCreatedAt,
			&userUpdatedAt,
		)
		if err != nil {
			logrus.Errorf("failed to scan %s @ %s: %v", PresencePlural, reflect.FunctionName(), err)
			return nil, fmt.Errorf("failed to get presence records")
		}

		if id.Status == pgtype.Null {
			continue
		}

		p.Id = &id.UUID

		if userId.Status != pgtype.Null {
			p.UserId = &userId.UUID
		}

		if joinedUserId.Status != pgtype.Null {
			user := new(User)
			user.Id = &joinedUserId.UUID
			user.Email = userEmail
			user.Name = userName
			user.Image = userImage

			if userIsActive != nil {
				user.IsActive = *userIsActive
			}

			if userIsAdmin != nil {
				user.IsAdmin = *userIsAdmin
			}

			user.CreatedAt = userCreatedAt
			user.UpdatedAt = userUpdatedAt

			p.User = user
		}

		entities = append(entities, p)
	}

	return entities, nil
}
