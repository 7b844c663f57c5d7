package attendance

import (
	"context"
	"time"

	"smartattend/internal/user"
)

// Store is the persistence surface the service needs.
type Store interface {
	Insert(ctx context.Context, rec Record) (Record, error)
	ListByUser(ctx context.Context, userID string) ([]Record, error)
	ListAll(ctx context.Context) ([]Record, error)
}

// UserDirectory resolves submitters. Submissions for a deleted user fail
// with user.ErrNotFound.
type UserDirectory interface {
	ByID(ctx context.Context, id string) (*user.User, error)
}

// Service records submissions and serves queries.
type Service struct {
	store Store
	users UserDirectory
}

// NewService creates a service backed by a store and a user directory.
func NewService(store Store, users UserDirectory) *Service {
	return &Service{store: store, users: users}
}

// Submit runs the acceptance check and, on success, persists one record with
// status "present" and a server-assigned timestamp. The optional location is
// stored verbatim. Repeated submissions are not deduplicated.
func (s *Service) Submit(ctx context.Context, userID string, method Method, biometricData string, loc *Location) error {
	if _, err := s.users.ByID(ctx, userID); err != nil {
		return err
	}
	if err := Accept(method, biometricData); err != nil {
		return err
	}

	rec := Record{
		UserID:     userID,
		Method:     method,
		OccurredAt: time.Now().UTC(),
		Status:     StatusPresent,
	}
	rec.setLocation(loc)

	_, err := s.store.Insert(ctx, rec)
	return err
}

// ListForUser returns the target user's records, newest first. Any
// authenticated caller may query any user id; there is no ownership check.
func (s *Service) ListForUser(ctx context.Context, targetID string) ([]Record, error) {
	return s.store.ListByUser(ctx, targetID)
}

// ListAll returns every record, newest first. The supervisor-only gate is
// enforced at the HTTP layer.
func (s *Service) ListAll(ctx context.Context) ([]Record, error) {
	return s.store.ListAll(ctx)
}
