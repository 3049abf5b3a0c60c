package auth

import (
	"github.com/google/uuid"

	"github.com/hexbolt/taskboard-backend/internal/domain"
)

// Identity is the authenticated caller for one operation. It is built
// once by the auth middleware and travels with the request context; the
// core never reads it from any ambient/global source.
type Identity struct {
	UserID uuid.UUID
	OrgID  uuid.UUID
	Role   domain.Role
}
