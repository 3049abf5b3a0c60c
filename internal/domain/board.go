package domain

import (
	"time"

	"github.com/google/uuid"
)

// Board is the top-level container owned by an organization.
// Version increases by exactly one on every successful mutation.
type Board struct {
	ID        uuid.UUID
	OrgID     uuid.UUID
	Title     string
	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// List is a column within a board. Position is the ordering key
// among sibling lists.
type List struct {
	ID        uuid.UUID
	BoardID   uuid.UUID
	OrgID     uuid.UUID
	Title     string
	Position  float64
	CreatedAt time.Time
	UpdatedAt time.Time
}
