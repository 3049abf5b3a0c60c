package domain

// Role is the caller's role within their organization.
type Role string

const (
	RoleViewer Role = "viewer"
	RoleEditor Role = "editor"
	RoleAdmin  Role = "admin"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleViewer, RoleEditor, RoleAdmin:
		return true
	}
	return false
}

// CanWrite reports whether the role permits mutating operations.
// Viewers are read-only; editors and admins may write.
func (r Role) CanWrite() bool {
	return r == RoleEditor || r == RoleAdmin
}

// EventType identifies an outbox event. The set is closed: the worker
// dispatcher only registers handlers for these values.
type EventType string

const (
	EventBoardCreated         EventType = "board.created"
	EventCardCreated          EventType = "card.created"
	EventDetectStuckRequested EventType = "hygiene.detect-stuck.requested"
	EventCoverSpecRequested   EventType = "cover.generate-spec.requested"
	EventCoverRenderRequested EventType = "cover.render.requested"
)

func (t EventType) String() string { return string(t) }

func (t EventType) IsValid() bool {
	switch t {
	case EventBoardCreated, EventCardCreated, EventDetectStuckRequested,
		EventCoverSpecRequested, EventCoverRenderRequested:
		return true
	}
	return false
}

// JobStatus is the lifecycle state of an asynchronous job result.
type JobStatus string

const (
	JobStatusQueued     JobStatus = "queued"
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
)

func (s JobStatus) String() string { return string(s) }

func (s JobStatus) IsValid() bool {
	switch s {
	case JobStatusQueued, JobStatusProcessing, JobStatusCompleted, JobStatusFailed:
		return true
	}
	return false
}

// IsTerminal reports whether a poller should stop at this status.
func (s JobStatus) IsTerminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// OutboxStatus is the delivery state of an outbox event.
type OutboxStatus string

const (
	OutboxStatusPending   OutboxStatus = "pending"
	OutboxStatusProcessed OutboxStatus = "processed"
	OutboxStatusFailed    OutboxStatus = "failed"
)

func (s OutboxStatus) String() string { return string(s) }
