package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// OutboxEvent is the durable record of a state change, appended in the
// same transaction as the change it describes. ID doubles as the job id
// downstream consumers are tracked by, which makes redelivery detectable.
type OutboxEvent struct {
	ID        uuid.UUID
	Type      EventType
	OrgID     uuid.UUID
	BoardID   uuid.UUID
	Payload   json.RawMessage
	Status    OutboxStatus
	Retries   int
	LastError *string
	CreatedAt time.Time
}

// NewOutboxEvent builds a pending event. payload must be JSON-marshalable;
// a marshal failure is a programming error and panics.
func NewOutboxEvent(id uuid.UUID, t EventType, orgID, boardID uuid.UUID, payload any, now time.Time) *OutboxEvent {
	raw, err := json.Marshal(payload)
	if err != nil {
		panic("outbox payload not marshalable: " + err.Error())
	}
	return &OutboxEvent{
		ID:        id,
		Type:      t,
		OrgID:     orgID,
		BoardID:   boardID,
		Payload:   raw,
		Status:    OutboxStatusPending,
		CreatedAt: now,
	}
}

// DetectStuckPayload is the payload of hygiene.detect-stuck.requested.
type DetectStuckPayload struct {
	JobID         uuid.UUID `json:"jobId"`
	BoardID       uuid.UUID `json:"boardId"`
	RequestedBy   uuid.UUID `json:"requestedBy"`
	ThresholdDays int       `json:"thresholdDays"`
	AsOf          time.Time `json:"asOf"`
}

// CardEventPayload is the payload of card.created and the cover events.
type CardEventPayload struct {
	CardID  uuid.UUID `json:"cardId"`
	ListID  uuid.UUID `json:"listId"`
	BoardID uuid.UUID `json:"boardId"`
}

// CoverRenderPayload is the payload of cover.render.requested. It
// carries the originating job id so the render writes under the same
// guard as the spec that triggered it.
type CoverRenderPayload struct {
	CardID  uuid.UUID `json:"cardId"`
	BoardID uuid.UUID `json:"boardId"`
	JobID   uuid.UUID `json:"jobId"`
}

// BoardEventPayload is the payload of board.created.
type BoardEventPayload struct {
	BoardID uuid.UUID `json:"boardId"`
	Title   string    `json:"title"`
}

// JobAccepted acknowledges that an async job was queued. The JobID is
// the outbox event id; callers poll the read endpoints for the result.
type JobAccepted struct {
	JobID     uuid.UUID `json:"jobId"`
	EventType EventType `json:"eventType"`
	Status    JobStatus `json:"status"`
	QueuedAt  time.Time `json:"queuedAt"`
}
