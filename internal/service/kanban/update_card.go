package kanban

import (
	"context"
	"log/slog"
	"strings"

	"github.com/hexbolt/taskboard-backend/internal/domain"
)

// UpdateCard changes a card's title and/or description if and only if
// the caller's expected version matches the persisted one. A stale
// version is reported as domain.ErrConflict and nothing is written.
func (s *Service) UpdateCard(ctx context.Context, input UpdateCardInput) (*domain.Card, error) {
	identity, err := writer(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.CardUpdateParams{Description: input.Description}
	if input.Title != nil {
		trimmed := strings.TrimSpace(*input.Title)
		params.Title = &trimmed
	}

	now := s.now().UTC()
	var updated *domain.Card

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		updated, err = s.cards.Update(txCtx, identity.OrgID, input.CardID, params, input.ExpectedVersion, now)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.DebugContext(ctx, "card updated",
		slog.String("card_id", updated.ID.String()),
		slog.Int64("version", updated.Version),
	)

	return updated, nil
}
