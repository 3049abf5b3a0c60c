package kanban

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/hexbolt/taskboard-backend/internal/domain"
)

// CreateList appends a list to the end of a board. The position is
// computed inside the transaction from the board's current last list so
// concurrent appends cannot collide.
func (s *Service) CreateList(ctx context.Context, input CreateListInput) (*domain.List, error) {
	identity, err := writer(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	var created *domain.List

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// Org-scoped lookup: a board in another org reads as absent.
		if _, err := s.boards.GetByID(txCtx, identity.OrgID, input.BoardID); err != nil {
			return err
		}

		positions, err := s.lists.Positions(txCtx, input.BoardID)
		if err != nil {
			return fmt.Errorf("list positions: %w", err)
		}

		list := &domain.List{
			ID:        uuid.New(),
			BoardID:   input.BoardID,
			OrgID:     identity.OrgID,
			Title:     strings.TrimSpace(input.Title),
			Position:  domain.PositionForAppend(positions),
			CreatedAt: now,
			UpdatedAt: now,
		}

		created, err = s.lists.Create(txCtx, list)
		if err != nil {
			return fmt.Errorf("create list: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.DebugContext(ctx, "list created",
		slog.String("board_id", input.BoardID.String()),
		slog.String("list_id", created.ID.String()),
	)

	return created, nil
}
