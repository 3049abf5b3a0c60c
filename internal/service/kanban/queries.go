package kanban

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/hexbolt/taskboard-backend/internal/domain"
)

// BoardView is a board with its lists and their cards, each level in
// position order.
type BoardView struct {
	Board *domain.Board `json:"board"`
	Lists []ListView    `json:"lists"`
}

// ListView is a list with its cards in position order.
type ListView struct {
	List  *domain.List   `json:"list"`
	Cards []*domain.Card `json:"cards"`
}

// GetBoard returns the full board view. Reads are open to every role;
// boards outside the caller's org read as absent.
func (s *Service) GetBoard(ctx context.Context, boardID uuid.UUID) (*BoardView, error) {
	identity, err := reader(ctx)
	if err != nil {
		return nil, err
	}

	board, err := s.boards.GetByID(ctx, identity.OrgID, boardID)
	if err != nil {
		return nil, err
	}

	lists, err := s.lists.ListByBoard(ctx, board.ID)
	if err != nil {
		return nil, fmt.Errorf("list lists: %w", err)
	}

	view := &BoardView{
		Board: board,
		Lists: make([]ListView, len(lists)),
	}

	// Card loads are independent per list; fan out on the pool.
	g, gctx := errgroup.WithContext(ctx)
	for i, list := range lists {
		g.Go(func() error {
			cards, err := s.cards.ListByList(gctx, list.ID)
			if err != nil {
				return fmt.Errorf("list cards: %w", err)
			}
			view.Lists[i] = ListView{List: list, Cards: cards}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return view, nil
}

// GetCardSummary returns the card's AI summary, or domain.ErrNotFound
// if none has been produced yet.
func (s *Service) GetCardSummary(ctx context.Context, cardID uuid.UUID) (*domain.CardSummary, error) {
	identity, err := reader(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.cards.GetByID(ctx, identity.OrgID, cardID); err != nil {
		return nil, err
	}

	return s.summaries.GetByCardID(ctx, identity.OrgID, cardID)
}

// GetCardCover returns the card's cover state, or domain.ErrNotFound if
// generation was never queued.
func (s *Service) GetCardCover(ctx context.Context, cardID uuid.UUID) (*domain.CardCover, error) {
	identity, err := reader(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.cards.GetByID(ctx, identity.OrgID, cardID); err != nil {
		return nil, err
	}

	return s.covers.GetByCardID(ctx, identity.OrgID, cardID)
}
