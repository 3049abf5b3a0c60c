package domain

import (
	"time"

	"github.com/google/uuid"
)

// StuckCard is one entry of a completed hygiene report.
type StuckCard struct {
	CardID    uuid.UUID `json:"cardId"`
	ListID    uuid.UUID `json:"listId"`
	Title     string    `json:"title"`
	IdleDays  int       `json:"idleDays"`
	LastMoved time.Time `json:"lastMoved"`
}

// StuckCardReport is the per-board hygiene job result. One report per
// board; re-queueing resets it to queued under a fresh job id.
type StuckCardReport struct {
	BoardID       uuid.UUID
	OrgID         uuid.UUID
	JobID         uuid.UUID
	Status        JobStatus
	ThresholdDays int
	StuckCards    []StuckCard
	FailureReason *string
	QueuedAt      time.Time
	UpdatedAt     time.Time
}

// Validate enforces the structural invariant of terminal reports:
// completed implies a report body, failed implies a reason.
func (r *StuckCardReport) Validate() error {
	if !r.Status.IsValid() {
		return NewValidationError("status", "unknown status "+r.Status.String())
	}
	if r.Status == JobStatusCompleted && r.StuckCards == nil {
		return NewValidationError("stuckCards", "required for completed reports")
	}
	if r.Status == JobStatusFailed && (r.FailureReason == nil || *r.FailureReason == "") {
		return NewValidationError("failureReason", "required for failed reports")
	}
	return nil
}
