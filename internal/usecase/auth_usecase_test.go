package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"jobmatch/internal/domain/user"
	"jobmatch/internal/pkg/jwt"
	ucauth "jobmatch/internal/usecase/auth"
)

type memUsers struct {
	byID    map[uuid.UUID]user.User
	byEmail map[string]user.User
}

func newMemUsers() *memUsers {
	return &memUsers{
		byID:    make(map[uuid.UUID]user.User),
		byEmail: make(map[string]user.User),
	}
}

func (m *memUsers) Create(_ context.Context, u user.User) error {
	if _, ok := m.byEmail[u.Email]; ok {
		return errors.New("duplicate email")
	}
	m.byID[u.ID] = u
	m.byEmail[u.Email] = u
	return nil
}

func (m *memUsers) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *memUsers) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := m.byEmail[email]
	return ok, nil
}

func newTestAuth() (*Auth, jwt.Service) {
	jwtSvc := jwt.NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
	return NewAuthUsecase(newMemUsers(), jwtSvc), jwtSvc
}

func TestAuth_RegisterIssuesTokenPair(t *testing.T) {
	auth, jwtSvc := newTestAuth()

	u, access, refresh, err := auth.Register(context.Background(), ucauth.RegisterInput{
		Email:    "a@b.com",
		Password: "longenough",
		Role:     "EMPLOYER",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if access == "" || refresh == "" {
		t.Fatalf("expected both tokens")
	}

	claims, err := jwtSvc.ValidateToken(access)
	if err != nil {
		t.Fatalf("validate access: %v", err)
	}
	if claims.UserID != u.ID {
		t.Fatalf("access token bound to %s, want %s", claims.UserID, u.ID)
	}
	if claims.Role != string(user.RoleEmployer) {
		t.Fatalf("expected EMPLOYER role claim, got %q", claims.Role)
	}
	if jwtSvc.IsRefreshToken(claims) {
		t.Fatalf("access token classified as refresh")
	}

	rc, err := jwtSvc.ValidateToken(refresh)
	if err != nil {
		t.Fatalf("validate refresh: %v", err)
	}
	if !jwtSvc.IsRefreshToken(rc) {
		t.Fatalf("refresh token not classified as refresh")
	}
}

func TestAuth_RefreshRotatesTokens(t *testing.T) {
	auth, jwtSvc := newTestAuth()

	u, _, refresh, err := auth.Register(context.Background(), ucauth.RegisterInput{
		Email:    "a@b.com",
		Password: "longenough",
		Role:     "WORKER",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	access, newRefresh, err := auth.Refresh(context.Background(), refresh)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}

	claims, err := jwtSvc.ValidateToken(access)
	if err != nil {
		t.Fatalf("validate rotated access: %v", err)
	}
	if claims.UserID != u.ID || claims.Role != string(user.RoleWorker) {
		t.Fatalf("rotated access claims wrong: %+v", claims)
	}
	if newRefresh == "" {
		t.Fatalf("expected rotated refresh token")
	}
}

func TestAuth_RefreshRejections(t *testing.T) {
	auth, _ := newTestAuth()

	_, access, _, err := auth.Register(context.Background(), ucauth.RegisterInput{
		Email:    "a@b.com",
		Password: "longenough",
		Role:     "WORKER",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "empty token", token: "", wantErr: ErrUnauthorized},
		{name: "garbage token", token: "not-a-jwt", wantErr: ErrInvalidRefreshToken},
		{name: "access token used as refresh", token: access, wantErr: ErrInvalidRefreshToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := auth.Refresh(context.Background(), tt.token)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestAuth_RefreshForDeletedUser(t *testing.T) {
	users := newMemUsers()
	jwtSvc := jwt.NewHMACService("access-secret", "refresh-secret", 15*time.Minute, time.Hour)
	auth := NewAuthUsecase(users, jwtSvc)

	// A refresh token for a user that no longer exists.
	refresh, err := jwtSvc.GenerateRefreshToken(uuid.New())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	_, _, err = auth.Refresh(context.Background(), refresh)
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}
