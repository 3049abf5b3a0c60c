package hygiene

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/hexbolt/taskboard-backend/internal/domain"
)

var _ boardRepo = &boardRepoMock{}

type boardRepoMock struct {
	GetByIDFunc func(ctx context.Context, orgID, boardID uuid.UUID) (*domain.Board, error)

	calls struct {
		GetByID []struct {
			OrgID   uuid.UUID
			BoardID uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *boardRepoMock) GetByID(ctx context.Context, orgID, boardID uuid.UUID) (*domain.Board, error) {
	if mock.GetByIDFunc == nil {
		panic("boardRepoMock.GetByIDFunc: method is nil but boardRepo.GetByID was just called")
	}
	callInfo := struct {
		OrgID   uuid.UUID
		BoardID uuid.UUID
	}{OrgID: orgID, BoardID: boardID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, orgID, boardID)
}

func (mock *boardRepoMock) GetByIDCalls() []struct {
	OrgID   uuid.UUID
	BoardID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

var _ reportRepo = &reportRepoMock{}

type reportRepoMock struct {
	GetByBoardIDFunc func(ctx context.Context, orgID, boardID uuid.UUID) (*domain.StuckCardReport, error)
	UpsertFunc       func(ctx context.Context, report *domain.StuckCardReport) error

	calls struct {
		GetByBoardID []struct {
			OrgID   uuid.UUID
			BoardID uuid.UUID
		}
		Upsert []struct {
			Report *domain.StuckCardReport
		}
	}
	lockGetByBoardID sync.RWMutex
	lockUpsert       sync.RWMutex
}

func (mock *reportRepoMock) GetByBoardID(ctx context.Context, orgID, boardID uuid.UUID) (*domain.StuckCardReport, error) {
	if mock.GetByBoardIDFunc == nil {
		panic("reportRepoMock.GetByBoardIDFunc: method is nil but reportRepo.GetByBoardID was just called")
	}
	callInfo := struct {
		OrgID   uuid.UUID
		BoardID uuid.UUID
	}{OrgID: orgID, BoardID: boardID}
	mock.lockGetByBoardID.Lock()
	mock.calls.GetByBoardID = append(mock.calls.GetByBoardID, callInfo)
	mock.lockGetByBoardID.Unlock()
	return mock.GetByBoardIDFunc(ctx, orgID, boardID)
}

func (mock *reportRepoMock) Upsert(ctx context.Context, report *domain.StuckCardReport) error {
	if mock.UpsertFunc == nil {
		panic("reportRepoMock.UpsertFunc: method is nil but reportRepo.Upsert was just called")
	}
	callInfo := struct {
		Report *domain.StuckCardReport
	}{Report: report}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, report)
}

func (mock *reportRepoMock) UpsertCalls() []struct {
	Report *domain.StuckCardReport
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

var _ outboxRepo = &outboxRepoMock{}

type outboxRepoMock struct {
	AppendFunc func(ctx context.Context, ev *domain.OutboxEvent) error

	calls struct {
		Append []struct {
			Event *domain.OutboxEvent
		}
	}
	lockAppend sync.RWMutex
}

func (mock *outboxRepoMock) Append(ctx context.Context, ev *domain.OutboxEvent) error {
	if mock.AppendFunc == nil {
		panic("outboxRepoMock.AppendFunc: method is nil but outboxRepo.Append was just called")
	}
	callInfo := struct {
		Event *domain.OutboxEvent
	}{Event: ev}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, ev)
}

func (mock *outboxRepoMock) AppendCalls() []struct {
	Event *domain.OutboxEvent
} {
	mock.lockAppend.RLock()
	calls := mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct{}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct{}{})
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct{} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
