package user

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

type mockStore struct {
	createFunc  func(ctx context.Context, u *User) error
	byEmailFunc func(ctx context.Context, email string) (*User, error)
	byIDFunc    func(ctx context.Context, id string) (*User, error)
}

func (m *mockStore) Create(ctx context.Context, u *User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, u)
	}
	return errors.New("not implemented")
}

func (m *mockStore) ByEmail(ctx context.Context, email string) (*User, error) {
	if m.byEmailFunc != nil {
		return m.byEmailFunc(ctx, email)
	}
	return nil, errors.New("not implemented")
}

func (m *mockStore) ByID(ctx context.Context, id string) (*User, error) {
	if m.byIDFunc != nil {
		return m.byIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func TestRegister_HashesPassword(t *testing.T) {
	var created *User
	store := &mockStore{
		createFunc: func(ctx context.Context, u *User) error {
			created = u
			return nil
		},
	}
	svc := NewService(store)

	u, err := svc.Register(context.Background(), "Alice", "a@x.com", "pw", "", Enrollment{Face: "blob"})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if created == nil {
		t.Fatal("store.Create not called")
	}
	if u.PasswordHash == "pw" {
		t.Error("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("pw")); err != nil {
		t.Errorf("hash does not verify: %v", err)
	}
	if u.Role != RoleUser {
		t.Errorf("Role = %q, want default %q", u.Role, RoleUser)
	}
	if u.FaceData == nil || *u.FaceData != "blob" {
		t.Error("face enrollment blob not stored verbatim")
	}
	if u.VoiceData != nil || u.Fingerprint != nil {
		t.Error("absent enrollment blobs should stay nil")
	}
}

func TestRegister_MissingFields(t *testing.T) {
	svc := NewService(&mockStore{})
	cases := []struct {
		name, userName, email, password string
	}{
		{"no name", "", "a@x.com", "pw"},
		{"no email", "Alice", "", "pw"},
		{"no password", "Alice", "a@x.com", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Register(context.Background(), tc.userName, tc.email, tc.password, "", Enrollment{}); !errors.Is(err, ErrMissingFields) {
				t.Errorf("expected ErrMissingFields, got %v", err)
			}
		})
	}
}

func TestRegister_InvalidRole(t *testing.T) {
	svc := NewService(&mockStore{})
	if _, err := svc.Register(context.Background(), "Alice", "a@x.com", "pw", "admin", Enrollment{}); !errors.Is(err, ErrInvalidRole) {
		t.Errorf("expected ErrInvalidRole, got %v", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	store := &mockStore{
		createFunc: func(ctx context.Context, u *User) error {
			return ErrEmailTaken
		},
	}
	svc := NewService(store)
	if _, err := svc.Register(context.Background(), "Alice", "a@x.com", "pw", "", Enrollment{}); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLogin_Success(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.DefaultCost)
	store := &mockStore{
		byEmailFunc: func(ctx context.Context, email string) (*User, error) {
			return &User{ID: "u1", Email: email, PasswordHash: string(hash), Role: RoleSupervisor}, nil
		},
	}
	svc := NewService(store)

	u, err := svc.Login(context.Background(), "a@x.com", "pw")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if u.ID != "u1" || u.Role != RoleSupervisor {
		t.Errorf("unexpected user: %+v", u)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	store := &mockStore{
		byEmailFunc: func(ctx context.Context, email string) (*User, error) {
			return nil, ErrNotFound
		},
	}
	svc := NewService(store)
	if _, err := svc.Login(context.Background(), "nobody@x.com", "pw"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.DefaultCost)
	store := &mockStore{
		byEmailFunc: func(ctx context.Context, email string) (*User, error) {
			return &User{ID: "u1", PasswordHash: string(hash)}, nil
		},
	}
	svc := NewService(store)
	if _, err := svc.Login(context.Background(), "a@x.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestPublic_OmitsSecrets(t *testing.T) {
	blob := "blob"
	u := User{ID: "u1", Name: "Alice", Email: "a@x.com", PasswordHash: "hash", Role: RoleUser, FaceData: &blob}
	p := u.Public()
	if p.ID != "u1" || p.Name != "Alice" || p.Email != "a@x.com" || p.Role != RoleUser {
		t.Errorf("unexpected projection: %+v", p)
	}
}
