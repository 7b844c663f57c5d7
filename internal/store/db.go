package store

import (
	"context"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

// schema is applied on startup, one statement per exec since pgx's extended
// protocol rejects multi-statement queries. Statements are idempotent so
// restarts are safe.
var schema = []string{`
CREATE TABLE IF NOT EXISTS users (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	role TEXT NOT NULL DEFAULT 'user',
	face_data TEXT,
	voice_data TEXT,
	fingerprint_data TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`, `
CREATE TABLE IF NOT EXISTS attendance_records (
	id UUID PRIMARY KEY,
	user_id UUID NOT NULL REFERENCES users (id),
	method TEXT NOT NULL,
	occurred_at TIMESTAMPTZ NOT NULL,
	status TEXT NOT NULL DEFAULT 'present',
	location_lat DOUBLE PRECISION,
	location_lng DOUBLE PRECISION,
	location_address TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`, `
CREATE INDEX IF NOT EXISTS idx_attendance_records_user_occurred
	ON attendance_records (user_id, occurred_at DESC)`,
}

// DB wraps sqlx.DB for Postgres using pgx.
type DB struct {
	Client *sqlx.DB
}

// NewDB creates a Postgres connection with sane defaults.
func NewDB(connString string) (*DB, error) {
	db, err := sqlx.Open("pgx", connString)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)
	return &DB{Client: db}, db.PingContext(context.Background())
}

// Migrate applies the schema.
func (d *DB) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := d.Client.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the underlying connection.
func (d *DB) Close() error {
	if d == nil || d.Client == nil {
		return nil
	}
	return d.Client.Close()
}
