package user

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleEmployer Role = "EMPLOYER"
	RoleWorker   Role = "WORKER"
)

// Opposite returns the role a user swipes on: workers see employers and
// employers see workers.
func (r Role) Opposite() Role {
	if r == RoleEmployer {
		return RoleWorker
	}
	return RoleEmployer
}

func (r Role) Valid() bool {
	return r == RoleEmployer || r == RoleWorker
}

func ParseRole(s string) (Role, bool) {
	r := Role(s)
	if !r.Valid() {
		return "", false
	}
	return r, true
}

type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
