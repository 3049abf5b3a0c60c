package kanban

import (
	"context"
	"log/slog"

	"github.com/hexbolt/taskboard-backend/internal/domain"
)

// MoveCard moves a card to a list at a client-chosen fractional
// position. The write is version-guarded: a concurrent move since the
// caller last read the card surfaces as domain.ErrConflict. The
// position is persisted verbatim; the server never recomputes it.
func (s *Service) MoveCard(ctx context.Context, input MoveCardInput) (*domain.Card, error) {
	identity, err := writer(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	var moved *domain.Card

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		list, err := s.lists.GetByID(txCtx, identity.OrgID, input.ToListID)
		if err != nil {
			return err
		}

		card, err := s.cards.GetByID(txCtx, identity.OrgID, input.CardID)
		if err != nil {
			return err
		}
		if card.BoardID != list.BoardID {
			return domain.NewValidationError("to_list_id", "destination list is on another board")
		}

		moved, err = s.cards.Move(txCtx, identity.OrgID, input.CardID, input.ToListID, input.Position, input.ExpectedVersion, now)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.DebugContext(ctx, "card moved",
		slog.String("card_id", moved.ID.String()),
		slog.String("list_id", moved.ListID.String()),
		slog.Int64("version", moved.Version),
	)

	return moved, nil
}
