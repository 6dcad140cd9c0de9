package profile

import (
	"time"

	"github.com/google/uuid"

	"jobmatch/internal/domain/user"
)

type Profile struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Role      user.Role
	Name      string
	Bio       string
	Skills    []string
	Location  string
	PhotoURL  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
