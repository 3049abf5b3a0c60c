package hygiene

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hexbolt/taskboard-backend/internal/domain"
	"github.com/hexbolt/taskboard-backend/pkg/ctxutil"
)

// QueueDetectStuck queues stuck-card detection for a board and returns
// an acceptance immediately. The queued report row and the
// hygiene.detect-stuck.requested event commit together; the event id is
// the job id. Re-queueing resets an existing report under a fresh job.
func (s *Service) QueueDetectStuck(ctx context.Context, input QueueDetectStuckInput) (*domain.JobAccepted, error) {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !identity.Role.CanWrite() {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	threshold := s.cfg.DefaultThresholdDays
	if input.ThresholdDays != nil {
		threshold = *input.ThresholdDays
	}
	if threshold > s.cfg.MaxThresholdDays {
		return nil, domain.NewValidationError("threshold_days",
			fmt.Sprintf("must not exceed %d", s.cfg.MaxThresholdDays))
	}

	now := s.now().UTC()
	var accepted *domain.JobAccepted

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		board, err := s.boards.GetByID(txCtx, identity.OrgID, input.BoardID)
		if err != nil {
			return err
		}

		jobID := uuid.New()
		report := &domain.StuckCardReport{
			BoardID:       board.ID,
			OrgID:         identity.OrgID,
			JobID:         jobID,
			Status:        domain.JobStatusQueued,
			ThresholdDays: threshold,
			QueuedAt:      now,
			UpdatedAt:     now,
		}
		if err := s.reports.Upsert(txCtx, report); err != nil {
			return fmt.Errorf("queue report: %w", err)
		}

		ev := domain.NewOutboxEvent(jobID, domain.EventDetectStuckRequested, identity.OrgID, board.ID,
			domain.DetectStuckPayload{
				JobID:         jobID,
				BoardID:       board.ID,
				RequestedBy:   identity.UserID,
				ThresholdDays: threshold,
				AsOf:          now,
			}, now)
		if err := s.outbox.Append(txCtx, ev); err != nil {
			return fmt.Errorf("append outbox event: %w", err)
		}

		accepted = &domain.JobAccepted{
			JobID:     jobID,
			EventType: ev.Type,
			Status:    domain.JobStatusQueued,
			QueuedAt:  now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.DebugContext(ctx, "stuck detection queued",
		slog.String("board_id", input.BoardID.String()),
		slog.String("job_id", accepted.JobID.String()),
		slog.Int("threshold_days", threshold),
	)

	return accepted, nil
}
