package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"jobmatch/internal/domain/user"
)

type memUsers struct {
	byID      map[uuid.UUID]user.User
	byEmail   map[string]user.User
	createErr error
}

func newMemUsers() *memUsers {
	return &memUsers{
		byID:    make(map[uuid.UUID]user.User),
		byEmail: make(map[string]user.User),
	}
}

func (m *memUsers) Create(_ context.Context, u user.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	if _, ok := m.byEmail[u.Email]; ok {
		return errors.New("duplicate key value violates unique constraint")
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

func TestService_Register_Validation(t *testing.T) {
	svc := NewService(newMemUsers())

	tests := []struct {
		name string
		in   RegisterInput
	}{
		{name: "empty email", in: RegisterInput{Email: "", Password: "longenough", Role: "WORKER"}},
		{name: "malformed email", in: RegisterInput{Email: "no-at-sign", Password: "longenough", Role: "WORKER"}},
		{name: "short password", in: RegisterInput{Email: "a@b.com", Password: "short", Role: "WORKER"}},
		{name: "unknown role", in: RegisterInput{Email: "a@b.com", Password: "longenough", Role: "ADMIN"}},
		{name: "missing role", in: RegisterInput{Email: "a@b.com", Password: "longenough"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.in)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestService_Register_Success(t *testing.T) {
	repo := newMemUsers()
	svc := NewService(repo)

	u, err := svc.Register(context.Background(), RegisterInput{
		Email:    "  Ada@Example.COM ",
		Password: "correct horse",
		Role:     "worker",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.Email != "ada@example.com" {
		t.Fatalf("expected normalized email, got %q", u.Email)
	}
	if u.Role != user.RoleWorker {
		t.Fatalf("expected WORKER role, got %s", u.Role)
	}
	if u.PasswordHash != "" {
		t.Fatalf("password hash must not leave the service")
	}
	stored := repo.byEmail["ada@example.com"]
	if stored.PasswordHash == "" || stored.PasswordHash == "correct horse" {
		t.Fatalf("expected stored bcrypt hash, got %q", stored.PasswordHash)
	}
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	svc := NewService(newMemUsers())

	in := RegisterInput{Email: "a@b.com", Password: "longenough", Role: "EMPLOYER"}
	if _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, err := svc.Register(context.Background(), in)
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}

	// Same email with different casing is still a duplicate.
	in.Email = "A@B.COM"
	_, err = svc.Register(context.Background(), in)
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered for recased email, got %v", err)
	}
}

func TestService_Login(t *testing.T) {
	repo := newMemUsers()
	svc := NewService(repo)

	if _, err := svc.Register(context.Background(), RegisterInput{
		Email:    "a@b.com",
		Password: "correct horse",
		Role:     "WORKER",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	tests := []struct {
		name    string
		in      LoginInput
		wantErr error
	}{
		{name: "success", in: LoginInput{Email: "a@b.com", Password: "correct horse"}},
		{name: "recased email", in: LoginInput{Email: "A@B.com", Password: "correct horse"}},
		{name: "wrong password", in: LoginInput{Email: "a@b.com", Password: "wrong"}, wantErr: ErrInvalidCredentials},
		{name: "unknown email", in: LoginInput{Email: "x@b.com", Password: "correct horse"}, wantErr: ErrInvalidCredentials},
		{name: "empty password", in: LoginInput{Email: "a@b.com"}, wantErr: ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := svc.Login(context.Background(), tt.in)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if u.PasswordHash != "" {
				t.Fatalf("password hash must not leave the service")
			}
		})
	}
}
