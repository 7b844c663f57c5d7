package attendance

import (
	"errors"
	"time"
)

// Method identifies the biometric channel a submission claims to have used.
type Method string

const (
	MethodFingerprint Method = "fingerprint"
	MethodFace        Method = "face"
	MethodVoice       Method = "voice"
)

// Valid reports whether the method is one of the known values.
func (m Method) Valid() bool {
	switch m {
	case MethodFingerprint, MethodFace, MethodVoice:
		return true
	}
	return false
}

// Status of a recorded event. StatusAbsent exists in the data model but no
// code path currently produces it; every accepted submission is "present".
type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
)

// FingerprintSentinel is the payload a client sends after local on-device
// fingerprint authentication succeeded. There is no server-side matching.
const FingerprintSentinel = "fingerprint_authenticated"

var (
	// ErrVerificationFailed is returned when the acceptance check rejects a payload.
	ErrVerificationFailed = errors.New("biometric verification failed")
	// ErrInvalidMethod is returned for an unknown biometric method.
	ErrInvalidMethod = errors.New("invalid biometric method")
)

// Location is an optional client-supplied position, stored verbatim.
// Either all three fields accompany a record or the location is absent.
type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
}

// Record is one attendance event. Records are append-only: they are written
// exactly once on an accepted submission and never mutated or deleted.
type Record struct {
	ID         string    `db:"id" json:"id"`
	UserID     string    `db:"user_id" json:"user_id"`
	UserName   string    `db:"user_name" json:"user_name"`
	UserEmail  string    `db:"user_email" json:"user_email"`
	Method     Method    `db:"method" json:"method"`
	OccurredAt time.Time `db:"occurred_at" json:"timestamp"`
	Status     Status    `db:"status" json:"status"`
	Lat        *float64  `db:"location_lat" json:"-"`
	Lng        *float64  `db:"location_lng" json:"-"`
	Address    *string   `db:"location_address" json:"-"`
	Location   *Location `db:"-" json:"location,omitempty"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// fold lifts the flat location columns into the Location projection.
func (r *Record) fold() {
	if r.Lat != nil && r.Lng != nil && r.Address != nil {
		r.Location = &Location{Lat: *r.Lat, Lng: *r.Lng, Address: *r.Address}
	}
}

// setLocation spreads an optional location onto the flat columns.
func (r *Record) setLocation(loc *Location) {
	if loc == nil {
		return
	}
	lat, lng, addr := loc.Lat, loc.Lng, loc.Address
	r.Lat, r.Lng, r.Address = &lat, &lng, &addr
	r.Location = &Location{Lat: lat, Lng: lng, Address: addr}
}

// Accept is the placeholder acceptance check deciding whether a submitted
// method+payload pair counts as proof of attendance. Fingerprint submissions
// must carry the sentinel set by the device after local authentication;
// face and voice payloads only need to be non-empty. The content is never
// inspected — the device is trusted to have done any real verification.
func Accept(method Method, biometricData string) error {
	switch method {
	case MethodFingerprint:
		if biometricData != FingerprintSentinel {
			return ErrVerificationFailed
		}
	case MethodFace, MethodVoice:
		if biometricData == "" {
			return ErrVerificationFailed
		}
	default:
		return ErrInvalidMethod
	}
	return nil
}
