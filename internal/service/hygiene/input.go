package hygiene

import (
	"github.com/google/uuid"

	"github.com/hexbolt/taskboard-backend/internal/domain"
)

// QueueDetectStuckInput holds the parameters for queueing stuck-card
// detection. ThresholdDays nil means "use the configured default".
type QueueDetectStuckInput struct {
	BoardID       uuid.UUID
	ThresholdDays *int
}

// Validate checks all fields and collects all errors.
func (i QueueDetectStuckInput) Validate() error {
	var errs []domain.FieldError

	if i.BoardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "board_id", Message: "required"})
	}
	if i.ThresholdDays != nil && *i.ThresholdDays < 1 {
		errs = append(errs, domain.FieldError{Field: "threshold_days", Message: "must be at least 1"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
