package kanban

import (
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/hexbolt/taskboard-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// CreateBoardInput
// ---------------------------------------------------------------------------

// CreateBoardInput holds the parameters for creating a board.
type CreateBoardInput struct {
	Title string
}

// Validate checks all fields and collects all errors.
func (i CreateBoardInput) Validate() error {
	var errs []domain.FieldError

	errs = appendTitleErrors(errs, i.Title)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ---------------------------------------------------------------------------
// CreateListInput
// ---------------------------------------------------------------------------

// CreateListInput holds the parameters for adding a list to a board.
type CreateListInput struct {
	BoardID uuid.UUID
	Title   string
}

// Validate checks all fields and collects all errors.
func (i CreateListInput) Validate() error {
	var errs []domain.FieldError

	if i.BoardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "board_id", Message: "required"})
	}
	errs = appendTitleErrors(errs, i.Title)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ---------------------------------------------------------------------------
// CreateCardInput
// ---------------------------------------------------------------------------

// CreateCardInput holds the parameters for adding a card to a list.
type CreateCardInput struct {
	ListID      uuid.UUID
	Title       string
	Description *string
}

// Validate checks all fields and collects all errors.
func (i CreateCardInput) Validate() error {
	var errs []domain.FieldError

	if i.ListID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "list_id", Message: "required"})
	}
	errs = appendTitleErrors(errs, i.Title)
	if i.Description != nil && len(*i.Description) > MaxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long (max 5000)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ---------------------------------------------------------------------------
// UpdateCardInput
// ---------------------------------------------------------------------------

// UpdateCardInput holds the parameters for updating a card's content.
// Nil fields are left unchanged; at least one field must be set.
type UpdateCardInput struct {
	CardID          uuid.UUID
	ExpectedVersion int64
	Title           *string
	Description     *string
}

// Validate checks all fields and collects all errors.
func (i UpdateCardInput) Validate() error {
	var errs []domain.FieldError

	if i.CardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "card_id", Message: "required"})
	}
	if i.ExpectedVersion < 0 {
		errs = append(errs, domain.FieldError{Field: "expected_version", Message: "must not be negative"})
	}
	if i.Title == nil && i.Description == nil {
		errs = append(errs, domain.FieldError{Field: "fields", Message: "at least one of title, description required"})
	}
	if i.Title != nil {
		errs = appendTitleErrors(errs, *i.Title)
	}
	if i.Description != nil && len(*i.Description) > MaxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long (max 5000)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ---------------------------------------------------------------------------
// MoveCardInput
// ---------------------------------------------------------------------------

// MoveCardInput holds the parameters for moving a card. The position is
// the client's choice and is persisted verbatim when the move commits.
type MoveCardInput struct {
	CardID          uuid.UUID
	ToListID        uuid.UUID
	Position        float64
	ExpectedVersion int64
}

// Validate checks all fields and collects all errors.
func (i MoveCardInput) Validate() error {
	var errs []domain.FieldError

	if i.CardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "card_id", Message: "required"})
	}
	if i.ToListID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "to_list_id", Message: "required"})
	}
	if i.Position <= 0 || math.IsNaN(i.Position) || math.IsInf(i.Position, 0) {
		errs = append(errs, domain.FieldError{Field: "position", Message: "must be a positive finite number"})
	}
	if i.ExpectedVersion < 0 {
		errs = append(errs, domain.FieldError{Field: "expected_version", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ---------------------------------------------------------------------------
// QueueCoverInput
// ---------------------------------------------------------------------------

// QueueCoverInput holds the parameters for queueing cover generation.
type QueueCoverInput struct {
	CardID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i QueueCoverInput) Validate() error {
	if i.CardID == uuid.Nil {
		return domain.NewValidationError("card_id", "required")
	}
	return nil
}

func appendTitleErrors(errs []domain.FieldError, title string) []domain.FieldError {
	if strings.TrimSpace(title) == "" {
		return append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > MaxTitleLen {
		return append(errs, domain.FieldError{Field: "title", Message: "too long (max 200)"})
	}
	return errs
}
