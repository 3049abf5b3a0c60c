package domain

import (
	"time"

	"github.com/google/uuid"
)

// Card is a unit of work. It belongs to exactly one list at a time;
// Position defines its total order within that list.
type Card struct {
	ID          uuid.UUID
	ListID      uuid.UUID
	BoardID     uuid.UUID
	OrgID       uuid.UUID
	Title       string
	Description *string
	Position    float64
	Version     int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CardUpdateParams carries the optional content changes for an update.
// A nil field means "leave unchanged".
type CardUpdateParams struct {
	Title       *string
	Description *string
}

// ApplyMove mutates the card in place the way a committed move would:
// new list, new position, version+1, refreshed UpdatedAt. Clients use
// the same projection to render a drag optimistically before the server
// confirms.
func (c *Card) ApplyMove(toListID uuid.UUID, position float64, now time.Time) {
	c.ListID = toListID
	c.Position = position
	c.Version++
	c.UpdatedAt = now
}

// CardSummary is the grounded AI summary of a card, written by the
// worker exactly once per job id.
type CardSummary struct {
	CardID    uuid.UUID
	OrgID     uuid.UUID
	JobID     uuid.UUID
	Summary   string
	Citations []Reference
	Model     string
	UpdatedAt time.Time
}

// CardCover holds the generated cover for a card: the model-produced
// spec and, once rendered, the SVG.
type CardCover struct {
	CardID    uuid.UUID
	OrgID     uuid.UUID
	JobID     uuid.UUID
	Spec      *CoverSpec
	SVG       *string
	Status    JobStatus
	UpdatedAt time.Time
}

// CoverSpec is the model's description of a card cover.
type CoverSpec struct {
	Palette []string `json:"palette"`
	Emoji   string   `json:"emoji"`
	Caption string   `json:"caption"`
}

// Validate checks a spec is renderable before it is persisted.
func (s *CoverSpec) Validate() error {
	if len(s.Palette) == 0 {
		return NewValidationError("palette", "required")
	}
	for _, color := range s.Palette {
		if len(color) != 7 || color[0] != '#' {
			return NewValidationError("palette", "colors must be #rrggbb")
		}
	}
	if s.Caption == "" {
		return NewValidationError("caption", "required")
	}
	return nil
}
