package attendance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const recordColumns = `
	a.id, a.user_id, a.method, a.occurred_at, a.status,
	a.location_lat, a.location_lng, a.location_address, a.created_at,
	u.name AS user_name, u.email AS user_email`

// Repository persists attendance records in Postgres.
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates a repo.
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Insert writes a new record.
func (r *Repository) Insert(ctx context.Context, rec Record) (Record, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.OccurredAt.IsZero() {
		rec.OccurredAt = time.Now().UTC()
	}
	if rec.Status == "" {
		rec.Status = StatusPresent
	}
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO attendance_records (id, user_id, method, occurred_at, status, location_lat, location_lng, location_address)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING created_at
	`, rec.ID, rec.UserID, rec.Method, rec.OccurredAt, rec.Status, rec.Lat, rec.Lng, rec.Address)
	if err := row.Scan(&rec.CreatedAt); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// ListByUser returns the records of one user joined with the owner's name
// and email, newest first.
func (r *Repository) ListByUser(ctx context.Context, userID string) ([]Record, error) {
	var recs []Record
	err := r.db.SelectContext(ctx, &recs, `
		SELECT `+recordColumns+`
		FROM attendance_records a
		JOIN users u ON u.id = a.user_id
		WHERE a.user_id = $1
		ORDER BY a.occurred_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	for i := range recs {
		recs[i].fold()
	}
	return recs, nil
}

// ListAll returns every record across all users, newest first.
func (r *Repository) ListAll(ctx context.Context) ([]Record, error) {
	var recs []Record
	err := r.db.SelectContext(ctx, &recs, `
		SELECT `+recordColumns+`
		FROM attendance_records a
		JOIN users u ON u.id = a.user_id
		ORDER BY a.occurred_at DESC
	`)
	if err != nil {
		return nil, err
	}
	for i := range recs {
		recs[i].fold()
	}
	return recs, nil
}
