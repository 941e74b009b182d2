package database

import (
	"context"

	"github.com/sirupsen/logrus"
)

var schema = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`,
	`CREATE TABLE IF NOT EXISTS users (
	id uuid PRIMARY KEY DEFAULT uuid_generate_v4(),
	email text UNIQUE NOT NULL,
	hash text,
	name text,
	image text,
	is_active boolean NOT NULL DEFAULT TRUE,
	is_admin boolean NOT NULL DEFAULT FALSE,
	created_at timestamptz NOT NULL DEFAULT now(),
	updated_at timestamptz
)`,
	`CREATE TABLE IF NOT EXISTS presence (
	id uuid PRIMARY KEY DEFAULT uuid_generate_v4(),
	user_id uuid NOT NULL REFERENCES users (id),
	device_timestamp timestamptz NOT NULL,
	server_timestamp timestamptz NOT NULL,
	latitude double precision,
	longitude double precision,
	accuracy double precision,
	location_timestamp timestamptz
)`,
	`CREATE INDEX IF NOT EXISTS presence_server_timestamp_idx ON presence (server_timestamp DESC)`,
}

// Migrate applies the schema. Statements are idempotent so this runs on
// every start.
func Migrate(ctx context.Context) error {
	for _, q := range schema {
		if _, err := DB.Exec(ctx, q); err != nil {
			logrus.Errorf("failed to apply schema: %v", err)
			return err
		}
	}

	return nil
}
