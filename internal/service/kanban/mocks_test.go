package kanban

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hexbolt/taskboard-backend/internal/domain"
)

var _ boardRepo = &boardRepoMock{}

type boardRepoMock struct {
	GetByIDFunc func(ctx context.Context, orgID, boardID uuid.UUID) (*domain.Board, error)
	CreateFunc  func(ctx context.Context, b *domain.Board) (*domain.Board, error)

	calls struct {
		GetByID []struct {
			OrgID   uuid.UUID
			BoardID uuid.UUID
		}
		Create []struct {
			Board *domain.Board
		}
	}
	lockGetByID sync.RWMutex
	lockCreate  sync.RWMutex
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

func (mock *boardRepoMock) Create(ctx context.Context, b *domain.Board) (*domain.Board, error) {
	if mock.CreateFunc == nil {
		panic("boardRepoMock.CreateFunc: method is nil but boardRepo.Create was just called")
	}
	callInfo := struct {
		Board *domain.Board
	}{Board: b}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, b)
}

func (mock *boardRepoMock) CreateCalls() []struct {
	Board *domain.Board
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

var _ listRepo = &listRepoMock{}

type listRepoMock struct {
	GetByIDFunc     func(ctx context.Context, orgID, listID uuid.UUID) (*domain.List, error)
	ListByBoardFunc func(ctx context.Context, boardID uuid.UUID) ([]*domain.List, error)
	PositionsFunc   func(ctx context.Context, boardID uuid.UUID) ([]float64, error)
	CreateFunc      func(ctx context.Context, l *domain.List) (*domain.List, error)

	calls struct {
		GetByID []struct {
			OrgID  uuid.UUID
			ListID uuid.UUID
		}
		ListByBoard []struct {
			BoardID uuid.UUID
		}
		Positions []struct {
			BoardID uuid.UUID
		}
		Create []struct {
			List *domain.List
		}
	}
	lockGetByID     sync.RWMutex
	lockListByBoard sync.RWMutex
	lockPositions   sync.RWMutex
	lockCreate      sync.RWMutex
}

func (mock *listRepoMock) GetByID(ctx context.Context, orgID, listID uuid.UUID) (*domain.List, error) {
	if mock.GetByIDFunc == nil {
		panic("listRepoMock.GetByIDFunc: method is nil but listRepo.GetByID was just called")
	}
	callInfo := struct {
		OrgID  uuid.UUID
		ListID uuid.UUID
	}{OrgID: orgID, ListID: listID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, orgID, listID)
}

func (mock *listRepoMock) GetByIDCalls() []struct {
	OrgID  uuid.UUID
	ListID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *listRepoMock) ListByBoard(ctx context.Context, boardID uuid.UUID) ([]*domain.List, error) {
	if mock.ListByBoardFunc == nil {
		panic("listRepoMock.ListByBoardFunc: method is nil but listRepo.ListByBoard was just called")
	}
	callInfo := struct {
		BoardID uuid.UUID
	}{BoardID: boardID}
	mock.lockListByBoard.Lock()
	mock.calls.ListByBoard = append(mock.calls.ListByBoard, callInfo)
	mock.lockListByBoard.Unlock()
	return mock.ListByBoardFunc(ctx, boardID)
}

func (mock *listRepoMock) Positions(ctx context.Context, boardID uuid.UUID) ([]float64, error) {
	if mock.PositionsFunc == nil {
		panic("listRepoMock.PositionsFunc: method is nil but listRepo.Positions was just called")
	}
	callInfo := struct {
		BoardID uuid.UUID
	}{BoardID: boardID}
	mock.lockPositions.Lock()
	mock.calls.Positions = append(mock.calls.Positions, callInfo)
	mock.lockPositions.Unlock()
	return mock.PositionsFunc(ctx, boardID)
}

func (mock *listRepoMock) Create(ctx context.Context, l *domain.List) (*domain.List, error) {
	if mock.CreateFunc == nil {
		panic("listRepoMock.CreateFunc: method is nil but listRepo.Create was just called")
	}
	callInfo := struct {
		List *domain.List
	}{List: l}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, l)
}

func (mock *listRepoMock) CreateCalls() []struct {
	List *domain.List
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

var _ cardRepo = &cardRepoMock{}

type cardRepoMock struct {
	GetByIDFunc    func(ctx context.Context, orgID, cardID uuid.UUID) (*domain.Card, error)
	ListByListFunc func(ctx context.Context, listID uuid.UUID) ([]*domain.Card, error)
	PositionsFunc  func(ctx context.Context, listID uuid.UUID) ([]float64, error)
	CreateFunc     func(ctx context.Context, c *domain.Card) (*domain.Card, error)
	UpdateFunc     func(ctx context.Context, orgID, cardID uuid.UUID, params domain.CardUpdateParams, expectedVersion int64, now time.Time) (*domain.Card, error)
	MoveFunc       func(ctx context.Context, orgID, cardID, toListID uuid.UUID, position float64, expectedVersion int64, now time.Time) (*domain.Card, error)

	calls struct {
		GetByID []struct {
			OrgID  uuid.UUID
			CardID uuid.UUID
		}
		ListByList []struct {
			ListID uuid.UUID
		}
		Positions []struct {
			ListID uuid.UUID
		}
		Create []struct {
			Card *domain.Card
		}
		Update []struct {
			OrgID           uuid.UUID
			CardID          uuid.UUID
			Params          domain.CardUpdateParams
			ExpectedVersion int64
		}
		Move []struct {
			OrgID           uuid.UUID
			CardID          uuid.UUID
			ToListID        uuid.UUID
			Position        float64
			ExpectedVersion int64
		}
	}
	lockGetByID    sync.RWMutex
	lockListByList sync.RWMutex
	lockPositions  sync.RWMutex
	lockCreate     sync.RWMutex
	lockUpdate     sync.RWMutex
	lockMove       sync.RWMutex
}

func (mock *cardRepoMock) GetByID(ctx context.Context, orgID, cardID uuid.UUID) (*domain.Card, error) {
	if mock.GetByIDFunc == nil {
		panic("cardRepoMock.GetByIDFunc: method is nil but cardRepo.GetByID was just called")
	}
	callInfo := struct {
		OrgID  uuid.UUID
		CardID uuid.UUID
	}{OrgID: orgID, CardID: cardID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, orgID, cardID)
}

func (mock *cardRepoMock) ListByList(ctx context.Context, listID uuid.UUID) ([]*domain.Card, error) {
	if mock.ListByListFunc == nil {
		panic("cardRepoMock.ListByListFunc: method is nil but cardRepo.ListByList was just called")
	}
	callInfo := struct {
		ListID uuid.UUID
	}{ListID: listID}
	mock.lockListByList.Lock()
	mock.calls.ListByList = append(mock.calls.ListByList, callInfo)
	mock.lockListByList.Unlock()
	return mock.ListByListFunc(ctx, listID)
}

func (mock *cardRepoMock) Positions(ctx context.Context, listID uuid.UUID) ([]float64, error) {
	if mock.PositionsFunc == nil {
		panic("cardRepoMock.PositionsFunc: method is nil but cardRepo.Positions was just called")
	}
	callInfo := struct {
		ListID uuid.UUID
	}{ListID: listID}
	mock.lockPositions.Lock()
	mock.calls.Positions = append(mock.calls.Positions, callInfo)
	mock.lockPositions.Unlock()
	return mock.PositionsFunc(ctx, listID)
}

func (mock *cardRepoMock) Create(ctx context.Context, c *domain.Card) (*domain.Card, error) {
	if mock.CreateFunc == nil {
		panic("cardRepoMock.CreateFunc: method is nil but cardRepo.Create was just called")
	}
	callInfo := struct {
		Card *domain.Card
	}{Card: c}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *cardRepoMock) CreateCalls() []struct {
	Card *domain.Card
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *cardRepoMock) Update(ctx context.Context, orgID, cardID uuid.UUID, params domain.CardUpdateParams, expectedVersion int64, now time.Time) (*domain.Card, error) {
	if mock.UpdateFunc == nil {
		panic("cardRepoMock.UpdateFunc: method is nil but cardRepo.Update was just called")
	}
	callInfo := struct {
		OrgID           uuid.UUID
		CardID          uuid.UUID
		Params          domain.CardUpdateParams
		ExpectedVersion int64
	}{OrgID: orgID, CardID: cardID, Params: params, ExpectedVersion: expectedVersion}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, orgID, cardID, params, expectedVersion, now)
}

func (mock *cardRepoMock) UpdateCalls() []struct {
	OrgID           uuid.UUID
	CardID          uuid.UUID
	Params          domain.CardUpdateParams
	ExpectedVersion int64
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *cardRepoMock) Move(ctx context.Context, orgID, cardID, toListID uuid.UUID, position float64, expectedVersion int64, now time.Time) (*domain.Card, error) {
	if mock.MoveFunc == nil {
		panic("cardRepoMock.MoveFunc: method is nil but cardRepo.Move was just called")
	}
	callInfo := struct {
		OrgID           uuid.UUID
		CardID          uuid.UUID
		ToListID        uuid.UUID
		Position        float64
		ExpectedVersion int64
	}{OrgID: orgID, CardID: cardID, ToListID: toListID, Position: position, ExpectedVersion: expectedVersion}
	mock.lockMove.Lock()
	mock.calls.Move = append(mock.calls.Move, callInfo)
	mock.lockMove.Unlock()
	return mock.MoveFunc(ctx, orgID, cardID, toListID, position, expectedVersion, now)
}

func (mock *cardRepoMock) MoveCalls() []struct {
	OrgID           uuid.UUID
	CardID          uuid.UUID
	ToListID        uuid.UUID
	Position        float64
	ExpectedVersion int64
} {
	mock.lockMove.RLock()
	calls := mock.calls.Move
	mock.lockMove.RUnlock()
	return calls
}

var _ coverRepo = &coverRepoMock{}

type coverRepoMock struct {
	GetByCardIDFunc  func(ctx context.Context, orgID, cardID uuid.UUID) (*domain.CardCover, error)
	UpsertQueuedFunc func(ctx context.Context, cardID, orgID, jobID uuid.UUID, now time.Time) error

	calls struct {
		GetByCardID []struct {
			OrgID  uuid.UUID
			CardID uuid.UUID
		}
		UpsertQueued []struct {
			CardID uuid.UUID
			OrgID  uuid.UUID
			JobID  uuid.UUID
		}
	}
	lockGetByCardID  sync.RWMutex
	lockUpsertQueued sync.RWMutex
}

func (mock *coverRepoMock) GetByCardID(ctx context.Context, orgID, cardID uuid.UUID) (*domain.CardCover, error) {
	if mock.GetByCardIDFunc == nil {
		panic("coverRepoMock.GetByCardIDFunc: method is nil but coverRepo.GetByCardID was just called")
	}
	callInfo := struct {
		OrgID  uuid.UUID
		CardID uuid.UUID
	}{OrgID: orgID, CardID: cardID}
	mock.lockGetByCardID.Lock()
	mock.calls.GetByCardID = append(mock.calls.GetByCardID, callInfo)
	mock.lockGetByCardID.Unlock()
	return mock.GetByCardIDFunc(ctx, orgID, cardID)
}

func (mock *coverRepoMock) UpsertQueued(ctx context.Context, cardID, orgID, jobID uuid.UUID, now time.Time) error {
	if mock.UpsertQueuedFunc == nil {
		panic("coverRepoMock.UpsertQueuedFunc: method is nil but coverRepo.UpsertQueued was just called")
	}
	callInfo := struct {
		CardID uuid.UUID
		OrgID  uuid.UUID
		JobID  uuid.UUID
	}{CardID: cardID, OrgID: orgID, JobID: jobID}
	mock.lockUpsertQueued.Lock()
	mock.calls.UpsertQueued = append(mock.calls.UpsertQueued, callInfo)
	mock.lockUpsertQueued.Unlock()
	return mock.UpsertQueuedFunc(ctx, cardID, orgID, jobID, now)
}

func (mock *coverRepoMock) UpsertQueuedCalls() []struct {
	CardID uuid.UUID
	OrgID  uuid.UUID
	JobID  uuid.UUID
} {
	mock.lockUpsertQueued.RLock()
	calls := mock.calls.UpsertQueued
	mock.lockUpsertQueued.RUnlock()
	return calls
}

var _ summaryRepo = &summaryRepoMock{}

type summaryRepoMock struct {
	GetByCardIDFunc func(ctx context.Context, orgID, cardID uuid.UUID) (*domain.CardSummary, error)

	calls struct {
		GetByCardID []struct {
			OrgID  uuid.UUID
			CardID uuid.UUID
		}
	}
	lockGetByCardID sync.RWMutex
}

func (mock *summaryRepoMock) GetByCardID(ctx context.Context, orgID, cardID uuid.UUID) (*domain.CardSummary, error) {
	if mock.GetByCardIDFunc == nil {
		panic("summaryRepoMock.GetByCardIDFunc: method is nil but summaryRepo.GetByCardID was just called")
	}
	callInfo := struct {
		OrgID  uuid.UUID
		CardID uuid.UUID
	}{OrgID: orgID, CardID: cardID}
	mock.lockGetByCardID.Lock()
	mock.calls.GetByCardID = append(mock.calls.GetByCardID, callInfo)
	mock.lockGetByCardID.Unlock()
	return mock.GetByCardIDFunc(ctx, orgID, cardID)
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
