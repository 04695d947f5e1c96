package database

import (
	"context"
	"fmt"
)

// Schema statements are idempotent so startup can run them unconditionally.
// The unique index on email is what enforces one booking per attendee; the
// application never does a read-then-write duplicate check.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS bookings (
		id UUID PRIMARY KEY,
		firstname TEXT NOT NULL DEFAULT '',
		lastname TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL UNIQUE,
		phone TEXT NOT NULL DEFAULT '',
		enrollment_number TEXT NOT NULL DEFAULT '',
		campus_bus BOOLEAN NOT NULL DEFAULT FALSE,
		boarding BOOLEAN NOT NULL DEFAULT FALSE,
		payment_status TEXT NOT NULL DEFAULT 'pending',
		ticket_number TEXT UNIQUE,
		qr_token TEXT UNIQUE,
		checked_in BOOLEAN NOT NULL DEFAULT FALSE,
		checked_in_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS counters (
		name TEXT PRIMARY KEY,
		seq BIGINT NOT NULL DEFAULT 0
	)`,
}

// EnsureSchema creates the tables on first startup
func EnsureSchema(ctx context.Context, db PgxIface) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}

	return nil
}
