package kanban

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hexbolt/taskboard-backend/internal/domain"
)

// QueueCoverGeneration queues async cover generation for a card. The
// queued cover row and the cover.generate-spec.requested event commit
// together; the event id doubles as the job id. Requeueing an existing
// cover resets it and starts a fresh job.
func (s *Service) QueueCoverGeneration(ctx context.Context, input QueueCoverInput) (*domain.JobAccepted, error) {
	identity, err := writer(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	var accepted *domain.JobAccepted

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		card, err := s.cards.GetByID(txCtx, identity.OrgID, input.CardID)
		if err != nil {
			return err
		}

		ev := domain.NewOutboxEvent(uuid.New(), domain.EventCoverSpecRequested, identity.OrgID, card.BoardID,
			domain.CardEventPayload{CardID: card.ID, ListID: card.ListID, BoardID: card.BoardID}, now)

		if err := s.covers.UpsertQueued(txCtx, card.ID, identity.OrgID, ev.ID, now); err != nil {
			return fmt.Errorf("queue cover: %w", err)
		}
		if err := s.outbox.Append(txCtx, ev); err != nil {
			return fmt.Errorf("append outbox event: %w", err)
		}

		accepted = &domain.JobAccepted{
			JobID:     ev.ID,
			EventType: ev.Type,
			Status:    domain.JobStatusQueued,
			QueuedAt:  now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.DebugContext(ctx, "cover generation queued",
		slog.String("card_id", input.CardID.String()),
		slog.String("job_id", accepted.JobID.String()),
	)

	return accepted, nil
}
