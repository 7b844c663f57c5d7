package user

import (
	"errors"
	"time"
)

// Role determines record visibility. Supervisors may list every user's
// attendance; regular users are the default at registration.
type Role string

const (
	RoleUser       Role = "user"
	RoleSupervisor Role = "supervisor"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleSupervisor
}

var (
	// ErrEmailTaken is returned when registering with an email that already exists.
	ErrEmailTaken = errors.New("email already registered")
	// ErrNotFound is returned when no user matches the lookup.
	ErrNotFound = errors.New("user not found")
	// ErrInvalidCredentials is returned on unknown email or password mismatch.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrMissingFields is returned when a required registration field is absent.
	ErrMissingFields = errors.New("name, email and password are required")
	// ErrInvalidRole is returned when registration names an unknown role.
	ErrInvalidRole = errors.New("invalid role")
)

// User is a registered account. Users are immutable once created.
type User struct {
	ID           string    `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         Role      `db:"role" json:"role"`
	FaceData     *string   `db:"face_data" json:"-"`
	VoiceData    *string   `db:"voice_data" json:"-"`
	Fingerprint  *string   `db:"fingerprint_data" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Public is the projection safe to return to clients. It never carries the
// password hash or enrollment blobs.
type Public struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Public returns the client-safe projection of the user.
func (u *User) Public() Public {
	return Public{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// Enrollment carries the opaque biometric blobs supplied at registration.
// They are stored verbatim and never matched against anything.
type Enrollment struct {
	Face        string
	Voice       string
	Fingerprint string
}
