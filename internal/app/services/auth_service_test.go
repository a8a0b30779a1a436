package services

import (
	"context"
	"errors"
	"testing"

	"github.com/scop/resourcehub/internal/app/models"
	"github.com/scop/resourcehub/internal/pkg/apperrors"
	"github.com/scop/resourcehub/internal/pkg/auth"
)

// mockUserStore is an in-memory UserStore.
type mockUserStore struct {
	users       map[string]*models.User
	errToReturn error
}

var _ UserStore = (*mockUserStore)(nil)

func (m *mockUserStore) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.errToReturn != nil {
		return nil, m.errToReturn
	}
	user, ok := m.users[username]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func newTestUser(t *testing.T, username, password string) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("failed to hash test password: %v", err)
	}
	return &models.User{
		ID:           1,
		Username:     username,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	}
}

func TestLoginSuccess(t *testing.T) {
	store := &mockUserStore{users: map[string]*models.User{
		"alice": newTestUser(t, "alice", "pw123"),
	}}
	svc := NewAuthService(store)

	user, err := svc.Login(context.Background(), "alice", "pw123")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if user.Username != "alice" || user.Role != models.RoleAdmin {
		t.Errorf("unexpected user returned: %+v", user)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	store := &mockUserStore{users: map[string]*models.User{
		"alice": newTestUser(t, "alice", "pw123"),
	}}
	svc := NewAuthService(store)

	_, err := svc.Login(context.Background(), "alice", "wrong")
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownUserMasked(t *testing.T) {
	store := &mockUserStore{users: map[string]*models.User{}}
	svc := NewAuthService(store)

	_, err := svc.Login(context.Background(), "nobody", "pw123")
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("unknown user should look like bad credentials, got %v", err)
	}
	if errors.Is(err, apperrors.ErrUserNotFound) {
		t.Error("ErrUserNotFound must not leak out of Login")
	}
}

func TestLoginEmptyCredentials(t *testing.T) {
	svc := NewAuthService(&mockUserStore{})

	for _, tc := range []struct{ username, password string }{
		{"", "pw123"},
		{"alice", ""},
		{"", ""},
	} {
		if _, err := svc.Login(context.Background(), tc.username, tc.password); !errors.Is(err, apperrors.ErrInvalidCredentials) {
			t.Errorf("Login(%q, %q): expected ErrInvalidCredentials, got %v", tc.username, tc.password, err)
		}
	}
}
