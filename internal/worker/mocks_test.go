package worker

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hexbolt/taskboard-backend/internal/domain"
)

var _ outboxRepo = &outboxRepoMock{}

type outboxRepoMock struct {
	FetchPendingFunc  func(ctx context.Context, limit int) ([]domain.OutboxEvent, error)
	MarkProcessedFunc func(ctx context.Context, id uuid.UUID) error
	MarkFailedFunc    func(ctx context.Context, id uuid.UUID, reason string, terminal bool) error

	calls struct {
		FetchPending []struct {
			Limit int
		}
		MarkProcessed []struct {
			ID uuid.UUID
		}
		MarkFailed []struct {
			ID       uuid.UUID
			Reason   string
			Terminal bool
		}
	}
	lockFetchPending  sync.RWMutex
	lockMarkProcessed sync.RWMutex
	lockMarkFailed    sync.RWMutex
}

func (mock *outboxRepoMock) FetchPending(ctx context.Context, limit int) ([]domain.OutboxEvent, error) {
	if mock.FetchPendingFunc == nil {
		panic("outboxRepoMock.FetchPendingFunc: method is nil but outboxRepo.FetchPending was just called")
	}
	callInfo := struct {
		Limit int
	}{Limit: limit}
	mock.lockFetchPending.Lock()
	mock.calls.FetchPending = append(mock.calls.FetchPending, callInfo)
	mock.lockFetchPending.Unlock()
	return mock.FetchPendingFunc(ctx, limit)
}

func (mock *outboxRepoMock) FetchPendingCalls() []struct {
	Limit int
} {
	mock.lockFetchPending.RLock()
	calls := mock.calls.FetchPending
	mock.lockFetchPending.RUnlock()
	return calls
}

func (mock *outboxRepoMock) MarkProcessed(ctx context.Context, id uuid.UUID) error {
	if mock.MarkProcessedFunc == nil {
		panic("outboxRepoMock.MarkProcessedFunc: method is nil but outboxRepo.MarkProcessed was just called")
	}
	callInfo := struct {
		ID uuid.UUID
	}{ID: id}
	mock.lockMarkProcessed.Lock()
	mock.calls.MarkProcessed = append(mock.calls.MarkProcessed, callInfo)
	mock.lockMarkProcessed.Unlock()
	return mock.MarkProcessedFunc(ctx, id)
}

func (mock *outboxRepoMock) MarkProcessedCalls() []struct {
	ID uuid.UUID
} {
	mock.lockMarkProcessed.RLock()
	calls := mock.calls.MarkProcessed
	mock.lockMarkProcessed.RUnlock()
	return calls
}

func (mock *outboxRepoMock) MarkFailed(ctx context.Context, id uuid.UUID, reason string, terminal bool) error {
	if mock.MarkFailedFunc == nil {
		panic("outboxRepoMock.MarkFailedFunc: method is nil but outboxRepo.MarkFailed was just called")
	}
	callInfo := struct {
		ID       uuid.UUID
		Reason   string
		Terminal bool
	}{ID: id, Reason: reason, Terminal: terminal}
	mock.lockMarkFailed.Lock()
	mock.calls.MarkFailed = append(mock.calls.MarkFailed, callInfo)
	mock.lockMarkFailed.Unlock()
	return mock.MarkFailedFunc(ctx, id, reason, terminal)
}

func (mock *outboxRepoMock) MarkFailedCalls() []struct {
	ID       uuid.UUID
	Reason   string
	Terminal bool
} {
	mock.lockMarkFailed.RLock()
	calls := mock.calls.MarkFailed
	mock.lockMarkFailed.RUnlock()
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

var _ staleCardRepo = &staleCardRepoMock{}

type staleCardRepoMock struct {
	ListStaleFunc func(ctx context.Context, boardID uuid.UUID, cutoff time.Time) ([]*domain.Card, error)

	calls struct {
		ListStale []struct {
			BoardID uuid.UUID
			Cutoff  time.Time
		}
	}
	lockListStale sync.RWMutex
}

func (mock *staleCardRepoMock) ListStale(ctx context.Context, boardID uuid.UUID, cutoff time.Time) ([]*domain.Card, error) {
	if mock.ListStaleFunc == nil {
		panic("staleCardRepoMock.ListStaleFunc: method is nil but staleCardRepo.ListStale was just called")
	}
	callInfo := struct {
		BoardID uuid.UUID
		Cutoff  time.Time
	}{BoardID: boardID, Cutoff: cutoff}
	mock.lockListStale.Lock()
	mock.calls.ListStale = append(mock.calls.ListStale, callInfo)
	mock.lockListStale.Unlock()
	return mock.ListStaleFunc(ctx, boardID, cutoff)
}

func (mock *staleCardRepoMock) ListStaleCalls() []struct {
	BoardID uuid.UUID
	Cutoff  time.Time
} {
	mock.lockListStale.RLock()
	calls := mock.calls.ListStale
	mock.lockListStale.RUnlock()
	return calls
}

var _ reportRepo = &reportRepoMock{}

type reportRepoMock struct {
	SetProcessingFunc func(ctx context.Context, boardID, jobID uuid.UUID, now time.Time) error
	CompleteFunc      func(ctx context.Context, boardID, jobID uuid.UUID, stuck []domain.StuckCard, now time.Time) error
	FailFunc          func(ctx context.Context, boardID, jobID uuid.UUID, reason string, now time.Time) error

	calls struct {
		SetProcessing []struct {
			BoardID uuid.UUID
			JobID   uuid.UUID
		}
		Complete []struct {
			BoardID uuid.UUID
			JobID   uuid.UUID
			Stuck   []domain.StuckCard
		}
		Fail []struct {
			BoardID uuid.UUID
			JobID   uuid.UUID
			Reason  string
		}
	}
	lockSetProcessing sync.RWMutex
	lockComplete      sync.RWMutex
	lockFail          sync.RWMutex
}

func (mock *reportRepoMock) SetProcessing(ctx context.Context, boardID, jobID uuid.UUID, now time.Time) error {
	if mock.SetProcessingFunc == nil {
		panic("reportRepoMock.SetProcessingFunc: method is nil but reportRepo.SetProcessing was just called")
	}
	callInfo := struct {
		BoardID uuid.UUID
		JobID   uuid.UUID
	}{BoardID: boardID, JobID: jobID}
	mock.lockSetProcessing.Lock()
	mock.calls.SetProcessing = append(mock.calls.SetProcessing, callInfo)
	mock.lockSetProcessing.Unlock()
	return mock.SetProcessingFunc(ctx, boardID, jobID, now)
}

func (mock *reportRepoMock) Complete(ctx context.Context, boardID, jobID uuid.UUID, stuck []domain.StuckCard, now time.Time) error {
	if mock.CompleteFunc == nil {
		panic("reportRepoMock.CompleteFunc: method is nil but reportRepo.Complete was just called")
	}
	callInfo := struct {
		BoardID uuid.UUID
		JobID   uuid.UUID
		Stuck   []domain.StuckCard
	}{BoardID: boardID, JobID: jobID, Stuck: stuck}
	mock.lockComplete.Lock()
	mock.calls.Complete = append(mock.calls.Complete, callInfo)
	mock.lockComplete.Unlock()
	return mock.CompleteFunc(ctx, boardID, jobID, stuck, now)
}

func (mock *reportRepoMock) CompleteCalls() []struct {
	BoardID uuid.UUID
	JobID   uuid.UUID
	Stuck   []domain.StuckCard
} {
	mock.lockComplete.RLock()
	calls := mock.calls.Complete
	mock.lockComplete.RUnlock()
	return calls
}

func (mock *reportRepoMock) Fail(ctx context.Context, boardID, jobID uuid.UUID, reason string, now time.Time) error {
	if mock.FailFunc == nil {
		panic("reportRepoMock.FailFunc: method is nil but reportRepo.Fail was just called")
	}
	callInfo := struct {
		BoardID uuid.UUID
		JobID   uuid.UUID
		Reason  string
	}{BoardID: boardID, JobID: jobID, Reason: reason}
	mock.lockFail.Lock()
	mock.calls.Fail = append(mock.calls.Fail, callInfo)
	mock.lockFail.Unlock()
	return mock.FailFunc(ctx, boardID, jobID, reason, now)
}

func (mock *reportRepoMock) FailCalls() []struct {
	BoardID uuid.UUID
	JobID   uuid.UUID
	Reason  string
} {
	mock.lockFail.RLock()
	calls := mock.calls.Fail
	mock.lockFail.RUnlock()
	return calls
}

var _ cardGetter = &cardGetterMock{}

type cardGetterMock struct {
	GetByIDFunc func(ctx context.Context, orgID, cardID uuid.UUID) (*domain.Card, error)

	calls struct {
		GetByID []struct {
			OrgID  uuid.UUID
			CardID uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *cardGetterMock) GetByID(ctx context.Context, orgID, cardID uuid.UUID) (*domain.Card, error) {
	if mock.GetByIDFunc == nil {
		panic("cardGetterMock.GetByIDFunc: method is nil but cardGetter.GetByID was just called")
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

var _ retrieverRepo = &retrieverRepoMock{}

type retrieverRepoMock struct {
	ChunksFunc func(ctx context.Context, boardID, excludeCardID uuid.UUID, limit int) ([]domain.RetrievedChunk, error)

	calls struct {
		Chunks []struct {
			BoardID       uuid.UUID
			ExcludeCardID uuid.UUID
			Limit         int
		}
	}
	lockChunks sync.RWMutex
}

func (mock *retrieverRepoMock) Chunks(ctx context.Context, boardID, excludeCardID uuid.UUID, limit int) ([]domain.RetrievedChunk, error) {
	if mock.ChunksFunc == nil {
		panic("retrieverRepoMock.ChunksFunc: method is nil but retrieverRepo.Chunks was just called")
	}
	callInfo := struct {
		BoardID       uuid.UUID
		ExcludeCardID uuid.UUID
		Limit         int
	}{BoardID: boardID, ExcludeCardID: excludeCardID, Limit: limit}
	mock.lockChunks.Lock()
	mock.calls.Chunks = append(mock.calls.Chunks, callInfo)
	mock.lockChunks.Unlock()
	return mock.ChunksFunc(ctx, boardID, excludeCardID, limit)
}

func (mock *retrieverRepoMock) ChunksCalls() []struct {
	BoardID       uuid.UUID
	ExcludeCardID uuid.UUID
	Limit         int
} {
	mock.lockChunks.RLock()
	calls := mock.calls.Chunks
	mock.lockChunks.RUnlock()
	return calls
}

var _ summaryRepo = &summaryRepoMock{}

type summaryRepoMock struct {
	JobSeenFunc func(ctx context.Context, jobID uuid.UUID) (bool, error)
	UpsertFunc  func(ctx context.Context, s *domain.CardSummary) error

	calls struct {
		JobSeen []struct {
			JobID uuid.UUID
		}
		Upsert []struct {
			Summary *domain.CardSummary
		}
	}
	lockJobSeen sync.RWMutex
	lockUpsert  sync.RWMutex
}

func (mock *summaryRepoMock) JobSeen(ctx context.Context, jobID uuid.UUID) (bool, error) {
	if mock.JobSeenFunc == nil {
		panic("summaryRepoMock.JobSeenFunc: method is nil but summaryRepo.JobSeen was just called")
	}
	callInfo := struct {
		JobID uuid.UUID
	}{JobID: jobID}
	mock.lockJobSeen.Lock()
	mock.calls.JobSeen = append(mock.calls.JobSeen, callInfo)
	mock.lockJobSeen.Unlock()
	return mock.JobSeenFunc(ctx, jobID)
}

func (mock *summaryRepoMock) Upsert(ctx context.Context, s *domain.CardSummary) error {
	if mock.UpsertFunc == nil {
		panic("summaryRepoMock.UpsertFunc: method is nil but summaryRepo.Upsert was just called")
	}
	callInfo := struct {
		Summary *domain.CardSummary
	}{Summary: s}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, s)
}

func (mock *summaryRepoMock) UpsertCalls() []struct {
	Summary *domain.CardSummary
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

var _ answerGenerator = &answerGeneratorMock{}

type answerGeneratorMock struct {
	GenerateAnswerFunc func(ctx context.Context, cardTitle string, chunks []domain.RetrievedChunk) (*domain.ModelAnswer, error)

	calls struct {
		GenerateAnswer []struct {
			CardTitle string
		}
	}
	lockGenerateAnswer sync.RWMutex
}

func (mock *answerGeneratorMock) GenerateAnswer(ctx context.Context, cardTitle string, chunks []domain.RetrievedChunk) (*domain.ModelAnswer, error) {
	if mock.GenerateAnswerFunc == nil {
		panic("answerGeneratorMock.GenerateAnswerFunc: method is nil but answerGenerator.GenerateAnswer was just called")
	}
	callInfo := struct {
		CardTitle string
	}{CardTitle: cardTitle}
	mock.lockGenerateAnswer.Lock()
	mock.calls.GenerateAnswer = append(mock.calls.GenerateAnswer, callInfo)
	mock.lockGenerateAnswer.Unlock()
	return mock.GenerateAnswerFunc(ctx, cardTitle, chunks)
}

func (mock *answerGeneratorMock) GenerateAnswerCalls() []struct {
	CardTitle string
} {
	mock.lockGenerateAnswer.RLock()
	calls := mock.calls.GenerateAnswer
	mock.lockGenerateAnswer.RUnlock()
	return calls
}

var _ coverReader = &coverReaderMock{}

type coverReaderMock struct {
	GetByCardIDFunc func(ctx context.Context, orgID, cardID uuid.UUID) (*domain.CardCover, error)
	SetSVGFunc      func(ctx context.Context, cardID, jobID uuid.UUID, svg string, now time.Time) error
	FailFunc        func(ctx context.Context, cardID, jobID uuid.UUID, now time.Time) error

	calls struct {
		GetByCardID []struct {
			OrgID  uuid.UUID
			CardID uuid.UUID
		}
		SetSVG []struct {
			CardID uuid.UUID
			JobID  uuid.UUID
			SVG    string
		}
		Fail []struct {
			CardID uuid.UUID
			JobID  uuid.UUID
		}
	}
	lockGetByCardID sync.RWMutex
	lockSetSVG      sync.RWMutex
	lockFail        sync.RWMutex
}

func (mock *coverReaderMock) GetByCardID(ctx context.Context, orgID, cardID uuid.UUID) (*domain.CardCover, error) {
	if mock.GetByCardIDFunc == nil {
		panic("coverReaderMock.GetByCardIDFunc: method is nil but coverReader.GetByCardID was just called")
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

func (mock *coverReaderMock) SetSVG(ctx context.Context, cardID, jobID uuid.UUID, svg string, now time.Time) error {
	if mock.SetSVGFunc == nil {
		panic("coverReaderMock.SetSVGFunc: method is nil but coverReader.SetSVG was just called")
	}
	callInfo := struct {
		CardID uuid.UUID
		JobID  uuid.UUID
		SVG    string
	}{CardID: cardID, JobID: jobID, SVG: svg}
	mock.lockSetSVG.Lock()
	mock.calls.SetSVG = append(mock.calls.SetSVG, callInfo)
	mock.lockSetSVG.Unlock()
	return mock.SetSVGFunc(ctx, cardID, jobID, svg, now)
}

func (mock *coverReaderMock) SetSVGCalls() []struct {
	CardID uuid.UUID
	JobID  uuid.UUID
	SVG    string
} {
	mock.lockSetSVG.RLock()
	calls := mock.calls.SetSVG
	mock.lockSetSVG.RUnlock()
	return calls
}

func (mock *coverReaderMock) Fail(ctx context.Context, cardID, jobID uuid.UUID, now time.Time) error {
	if mock.FailFunc == nil {
		panic("coverReaderMock.FailFunc: method is nil but coverReader.Fail was just called")
	}
	callInfo := struct {
		CardID uuid.UUID
		JobID  uuid.UUID
	}{CardID: cardID, JobID: jobID}
	mock.lockFail.Lock()
	mock.calls.Fail = append(mock.calls.Fail, callInfo)
	mock.lockFail.Unlock()
	return mock.FailFunc(ctx, cardID, jobID, now)
}

func (mock *coverReaderMock) FailCalls() []struct {
	CardID uuid.UUID
	JobID  uuid.UUID
} {
	mock.lockFail.RLock()
	calls := mock.calls.Fail
	mock.lockFail.RUnlock()
	return calls
}

var _ coverRepo = &coverRepoMock{}

type coverRepoMock struct {
	SetSpecFunc func(ctx context.Context, cardID, jobID uuid.UUID, spec *domain.CoverSpec, now time.Time) error
	SetSVGFunc  func(ctx context.Context, cardID, jobID uuid.UUID, svg string, now time.Time) error
	FailFunc    func(ctx context.Context, cardID, jobID uuid.UUID, now time.Time) error

	calls struct {
		SetSpec []struct {
			CardID uuid.UUID
			JobID  uuid.UUID
			Spec   *domain.CoverSpec
		}
		SetSVG []struct {
			CardID uuid.UUID
			JobID  uuid.UUID
			SVG    string
		}
		Fail []struct {
			CardID uuid.UUID
			JobID  uuid.UUID
		}
	}
	lockSetSpec sync.RWMutex
	lockSetSVG  sync.RWMutex
	lockFail    sync.RWMutex
}

func (mock *coverRepoMock) SetSpec(ctx context.Context, cardID, jobID uuid.UUID, spec *domain.CoverSpec, now time.Time) error {
	if mock.SetSpecFunc == nil {
		panic("coverRepoMock.SetSpecFunc: method is nil but coverRepo.SetSpec was just called")
	}
	callInfo := struct {
		CardID uuid.UUID
		JobID  uuid.UUID
		Spec   *domain.CoverSpec
	}{CardID: cardID, JobID: jobID, Spec: spec}
	mock.lockSetSpec.Lock()
	mock.calls.SetSpec = append(mock.calls.SetSpec, callInfo)
	mock.lockSetSpec.Unlock()
	return mock.SetSpecFunc(ctx, cardID, jobID, spec, now)
}

func (mock *coverRepoMock) SetSpecCalls() []struct {
	CardID uuid.UUID
	JobID  uuid.UUID
	Spec   *domain.CoverSpec
} {
	mock.lockSetSpec.RLock()
	calls := mock.calls.SetSpec
	mock.lockSetSpec.RUnlock()
	return calls
}

func (mock *coverRepoMock) SetSVG(ctx context.Context, cardID, jobID uuid.UUID, svg string, now time.Time) error {
	if mock.SetSVGFunc == nil {
		panic("coverRepoMock.SetSVGFunc: method is nil but coverRepo.SetSVG was just called")
	}
	callInfo := struct {
		CardID uuid.UUID
		JobID  uuid.UUID
		SVG    string
	}{CardID: cardID, JobID: jobID, SVG: svg}
	mock.lockSetSVG.Lock()
	mock.calls.SetSVG = append(mock.calls.SetSVG, callInfo)
	mock.lockSetSVG.Unlock()
	return mock.SetSVGFunc(ctx, cardID, jobID, svg, now)
}

func (mock *coverRepoMock) Fail(ctx context.Context, cardID, jobID uuid.UUID, now time.Time) error {
	if mock.FailFunc == nil {
		panic("coverRepoMock.FailFunc: method is nil but coverRepo.Fail was just called")
	}
	callInfo := struct {
		CardID uuid.UUID
		JobID  uuid.UUID
	}{CardID: cardID, JobID: jobID}
	mock.lockFail.Lock()
	mock.calls.Fail = append(mock.calls.Fail, callInfo)
	mock.lockFail.Unlock()
	return mock.FailFunc(ctx, cardID, jobID, now)
}

func (mock *coverRepoMock) FailCalls() []struct {
	CardID uuid.UUID
	JobID  uuid.UUID
} {
	mock.lockFail.RLock()
	calls := mock.calls.Fail
	mock.lockFail.RUnlock()
	return calls
}

var _ outboxAppender = &outboxAppenderMock{}

type outboxAppenderMock struct {
	AppendFunc func(ctx context.Context, ev *domain.OutboxEvent) error

	calls struct {
		Append []struct {
			Ev *domain.OutboxEvent
		}
	}
	lockAppend sync.RWMutex
}

func (mock *outboxAppenderMock) Append(ctx context.Context, ev *domain.OutboxEvent) error {
	if mock.AppendFunc == nil {
		panic("outboxAppenderMock.AppendFunc: method is nil but outboxAppender.Append was just called")
	}
	callInfo := struct {
		Ev *domain.OutboxEvent
	}{Ev: ev}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, ev)
}

func (mock *outboxAppenderMock) AppendCalls() []struct {
	Ev *domain.OutboxEvent
} {
	mock.lockAppend.RLock()
	calls := mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}

var _ specGenerator = &specGeneratorMock{}

type specGeneratorMock struct {
	GenerateCoverSpecFunc func(ctx context.Context, cardTitle string, cardDescription string) (*domain.CoverSpec, error)

	calls struct {
		GenerateCoverSpec []struct {
			CardTitle       string
			CardDescription string
		}
	}
	lockGenerateCoverSpec sync.RWMutex
}

func (mock *specGeneratorMock) GenerateCoverSpec(ctx context.Context, cardTitle string, cardDescription string) (*domain.CoverSpec, error) {
	if mock.GenerateCoverSpecFunc == nil {
		panic("specGeneratorMock.GenerateCoverSpecFunc: method is nil but specGenerator.GenerateCoverSpec was just called")
	}
	callInfo := struct {
		CardTitle       string
		CardDescription string
	}{CardTitle: cardTitle, CardDescription: cardDescription}
	mock.lockGenerateCoverSpec.Lock()
	mock.calls.GenerateCoverSpec = append(mock.calls.GenerateCoverSpec, callInfo)
	mock.lockGenerateCoverSpec.Unlock()
	return mock.GenerateCoverSpecFunc(ctx, cardTitle, cardDescription)
}

func (mock *specGeneratorMock) GenerateCoverSpecCalls() []struct {
	CardTitle       string
	CardDescription string
} {
	mock.lockGenerateCoverSpec.RLock()
	calls := mock.calls.GenerateCoverSpec
	mock.lockGenerateCoverSpec.RUnlock()
	return calls
}
