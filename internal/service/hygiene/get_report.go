package hygiene

import (
	"context"

	"github.com/google/uuid"

	"github.com/hexbolt/taskboard-backend/internal/domain"
	"github.com/hexbolt/taskboard-backend/pkg/ctxutil"
)

// GetReport returns the board's latest hygiene report. Reads are open
// to every role; a board whose detection was never queued, like a board
// outside the caller's org, reads as absent.
func (s *Service) GetReport(ctx context.Context, boardID uuid.UUID) (*domain.StuckCardReport, error) {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	return s.reports.GetByBoardID(ctx, identity.OrgID, boardID)
}
