package kanban

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/hexbolt/taskboard-backend/internal/domain"
)

// CreateCard appends a card to the end of a list and records a
// card.created event. Position computation, the insert, and the event
// share one transaction: either all of it commits or none of it does.
func (s *Service) CreateCard(ctx context.Context, input CreateCardInput) (*domain.Card, error) {
	identity, err := writer(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	var created *domain.Card

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		list, err := s.lists.GetByID(txCtx, identity.OrgID, input.ListID)
		if err != nil {
			return err
		}

		positions, err := s.cards.Positions(txCtx, input.ListID)
		if err != nil {
			return fmt.Errorf("card positions: %w", err)
		}

		card := &domain.Card{
			ID:          uuid.New(),
			ListID:      list.ID,
			BoardID:     list.BoardID,
			OrgID:       identity.OrgID,
			Title:       strings.TrimSpace(input.Title),
			Description: input.Description,
			Position:    domain.PositionForAppend(positions),
			Version:     0,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		created, err = s.cards.Create(txCtx, card)
		if err != nil {
			return fmt.Errorf("create card: %w", err)
		}

		ev := domain.NewOutboxEvent(uuid.New(), domain.EventCardCreated, identity.OrgID, list.BoardID,
			domain.CardEventPayload{CardID: created.ID, ListID: list.ID, BoardID: list.BoardID}, now)
		if err := s.outbox.Append(txCtx, ev); err != nil {
			return fmt.Errorf("append outbox event: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.DebugContext(ctx, "card created",
		slog.String("list_id", input.ListID.String()),
		slog.String("card_id", created.ID.String()),
	)

	return created, nil
}
