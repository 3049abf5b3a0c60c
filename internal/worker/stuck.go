package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hexbolt/taskboard-backend/internal/domain"
)

type staleCardRepo interface {
	ListStale(ctx context.Context, boardID uuid.UUID, cutoff time.Time) ([]*domain.Card, error)
}

type reportRepo interface {
	SetProcessing(ctx context.Context, boardID, jobID uuid.UUID, now time.Time) error
	Complete(ctx context.Context, boardID, jobID uuid.UUID, stuck []domain.StuckCard, now time.Time) error
	Fail(ctx context.Context, boardID, jobID uuid.UUID, reason string, now time.Time) error
}

// StuckDetector handles hygiene.detect-stuck.requested events: it finds
// the board's cards untouched past the threshold and writes the report.
// All report writes are guarded by job id, so a redelivered event for a
// superseded or finished run changes nothing.
type StuckDetector struct {
	log     *slog.Logger
	cards   staleCardRepo
	reports reportRepo
	now     func() time.Time
}

// NewStuckDetector creates the stuck-card detection handler.
func NewStuckDetector(logger *slog.Logger, cards staleCardRepo, reports reportRepo) *StuckDetector {
	return &StuckDetector{
		log:     logger.With("handler", "detect-stuck"),
		cards:   cards,
		reports: reports,
		now:     time.Now,
	}
}

// Handle implements Handler for hygiene.detect-stuck.requested.
func (h *StuckDetector) Handle(ctx context.Context, ev domain.OutboxEvent) error {
	var payload domain.DetectStuckPayload
	if err := json.Unmarshal(ev.Payload, &payload); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}

	now := h.now().UTC()
	if err := h.reports.SetProcessing(ctx, payload.BoardID, payload.JobID, now); err != nil {
		return fmt.Errorf("mark processing: %w", err)
	}

	cutoff := payload.AsOf.AddDate(0, 0, -payload.ThresholdDays)
	stale, err := h.cards.ListStale(ctx, payload.BoardID, cutoff)
	if err != nil {
		// The report stays in processing: the event is redelivered and
		// the scan retried. Failed parks it once the budget runs out.
		return fmt.Errorf("list stale cards: %w", err)
	}

	// StuckCards must be non-nil on completed reports, an empty result
	// included: "checked, nothing stuck" and "never checked" differ.
	stuck := make([]domain.StuckCard, 0, len(stale))
	for _, card := range stale {
		stuck = append(stuck, domain.StuckCard{
			CardID:    card.ID,
			ListID:    card.ListID,
			Title:     card.Title,
			IdleDays:  int(payload.AsOf.Sub(card.UpdatedAt).Hours() / 24),
			LastMoved: card.UpdatedAt,
		})
	}

	report := domain.StuckCardReport{
		BoardID:       payload.BoardID,
		OrgID:         ev.OrgID,
		JobID:         payload.JobID,
		Status:        domain.JobStatusCompleted,
		ThresholdDays: payload.ThresholdDays,
		StuckCards:    stuck,
		QueuedAt:      ev.CreatedAt,
		UpdatedAt:     h.now().UTC(),
	}
	if err := report.Validate(); err != nil {
		return fmt.Errorf("report shape: %w", err)
	}

	if err := h.reports.Complete(ctx, payload.BoardID, payload.JobID, stuck, report.UpdatedAt); err != nil {
		return fmt.Errorf("complete report: %w", err)
	}

	h.log.DebugContext(ctx, "report completed",
		slog.String("board_id", payload.BoardID.String()),
		slog.String("job_id", payload.JobID.String()),
		slog.Int("stuck_cards", len(stuck)),
	)

	return nil
}

// Failed implements FailureHandler for hygiene.detect-stuck.requested:
// once the event exhausts its retry budget the report is parked as
// failed with the last error as its reason.
func (h *StuckDetector) Failed(ctx context.Context, ev domain.OutboxEvent, cause error) error {
	var payload domain.DetectStuckPayload
	if err := json.Unmarshal(ev.Payload, &payload); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}

	if err := h.reports.Fail(ctx, payload.BoardID, payload.JobID, cause.Error(), h.now().UTC()); err != nil {
		return fmt.Errorf("park report: %w", err)
	}

	h.log.WarnContext(ctx, "report parked as failed",
		slog.String("board_id", payload.BoardID.String()),
		slog.String("job_id", payload.JobID.String()),
		slog.Any("cause", cause),
	)

	return nil
}
