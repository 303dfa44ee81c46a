package verification

import (
	"context"
	"sync"

	"github.com/heartmarshall/quizreview-backend/internal/domain"
)

var _ contentRepo = &contentRepoMock{}

var _ logRepo = &logRepoMock{}

var _ commentRepo = &commentRepoMock{}

var _ identityProvider = &identityProviderMock{}

var _ txManager = &txManagerMock{}

type contentRepoMock struct {
	GetByIDFunc      func(ctx context.Context, id string) (domain.ContentItem, error)
	GetForUpdateFunc func(ctx context.Context, id string) (domain.ContentItem, error)
	SetVerifiedFunc  func(ctx context.Context, id string, verified bool) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  string
		}
		GetForUpdate []struct {
			Ctx context.Context
			ID  string
		}
		SetVerified []struct {
			Ctx      context.Context
			ID       string
			Verified bool
		}
	}
	lockGetByID      sync.RWMutex
	lockGetForUpdate sync.RWMutex
	lockSetVerified  sync.RWMutex
}

func (mock *contentRepoMock) GetByID(ctx context.Context, id string) (domain.ContentItem, error) {
	if mock.GetByIDFunc == nil {
		panic("contentRepoMock.GetByIDFunc: method is nil but contentRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *contentRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  string
} {
	var calls []struct {
		Ctx context.Context
		ID  string
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *contentRepoMock) GetForUpdate(ctx context.Context, id string) (domain.ContentItem, error) {
	if mock.GetForUpdateFunc == nil {
		panic("contentRepoMock.GetForUpdateFunc: method is nil but contentRepo.GetForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetForUpdate.Lock()
	mock.calls.GetForUpdate = append(mock.calls.GetForUpdate, callInfo)
	mock.lockGetForUpdate.Unlock()
	return mock.GetForUpdateFunc(ctx, id)
}

func (mock *contentRepoMock) GetForUpdateCalls() []struct {
	Ctx context.Context
	ID  string
} {
	var calls []struct {
		Ctx context.Context
		ID  string
	}
	mock.lockGetForUpdate.RLock()
	calls = mock.calls.GetForUpdate
	mock.lockGetForUpdate.RUnlock()
	return calls
}

func (mock *contentRepoMock) SetVerified(ctx context.Context, id string, verified bool) error {
	if mock.SetVerifiedFunc == nil {
		panic("contentRepoMock.SetVerifiedFunc: method is nil but contentRepo.SetVerified was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ID       string
		Verified bool
	}{
		Ctx:      ctx,
		ID:       id,
		Verified: verified,
	}
	mock.lockSetVerified.Lock()
	mock.calls.SetVerified = append(mock.calls.SetVerified, callInfo)
	mock.lockSetVerified.Unlock()
	return mock.SetVerifiedFunc(ctx, id, verified)
}

func (mock *contentRepoMock) SetVerifiedCalls() []struct {
	Ctx      context.Context
	ID       string
	Verified bool
} {
	var calls []struct {
		Ctx      context.Context
		ID       string
		Verified bool
	}
	mock.lockSetVerified.RLock()
	calls = mock.calls.SetVerified
	mock.lockSetVerified.RUnlock()
	return calls
}

type logRepoMock struct {
	AppendFunc         func(ctx context.Context, e domain.VerificationLogEntry) (domain.VerificationLogEntry, error)
	HistoryFunc        func(ctx context.Context, contentID string, limit int, offset int) ([]domain.VerificationLogEntry, error)
	CountByContentFunc func(ctx context.Context, contentID string) (int, error)
	LatestFunc         func(ctx context.Context, contentID string) (*domain.VerificationLogEntry, error)

	calls struct {
		Append []struct {
			Ctx context.Context
			E   domain.VerificationLogEntry
		}
		History []struct {
			Ctx       context.Context
			ContentID string
			Limit     int
			Offset    int
		}
		CountByContent []struct {
			Ctx       context.Context
			ContentID string
		}
		Latest []struct {
			Ctx       context.Context
			ContentID string
		}
	}
	lockAppend         sync.RWMutex
	lockHistory        sync.RWMutex
	lockCountByContent sync.RWMutex
	lockLatest         sync.RWMutex
}

func (mock *logRepoMock) Append(ctx context.Context, e domain.VerificationLogEntry) (domain.VerificationLogEntry, error) {
	if mock.AppendFunc == nil {
		panic("logRepoMock.AppendFunc: method is nil but logRepo.Append was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   domain.VerificationLogEntry
	}{
		Ctx: ctx,
		E:   e,
	}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, e)
}

func (mock *logRepoMock) AppendCalls() []struct {
	Ctx context.Context
	E   domain.VerificationLogEntry
} {
	var calls []struct {
		Ctx context.Context
		E   domain.VerificationLogEntry
	}
	mock.lockAppend.RLock()
	calls = mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}

func (mock *logRepoMock) History(ctx context.Context, contentID string, limit int, offset int) ([]domain.VerificationLogEntry, error) {
	if mock.HistoryFunc == nil {
		panic("logRepoMock.HistoryFunc: method is nil but logRepo.History was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ContentID string
		Limit     int
		Offset    int
	}{
		Ctx:       ctx,
		ContentID: contentID,
		Limit:     limit,
		Offset:    offset,
	}
	mock.lockHistory.Lock()
	mock.calls.History = append(mock.calls.History, callInfo)
	mock.lockHistory.Unlock()
	return mock.HistoryFunc(ctx, contentID, limit, offset)
}

func (mock *logRepoMock) HistoryCalls() []struct {
	Ctx       context.Context
	ContentID string
	Limit     int
	Offset    int
} {
	var calls []struct {
		Ctx       context.Context
		ContentID string
		Limit     int
		Offset    int
	}
	mock.lockHistory.RLock()
	calls = mock.calls.History
	mock.lockHistory.RUnlock()
	return calls
}

func (mock *logRepoMock) CountByContent(ctx context.Context, contentID string) (int, error) {
	if mock.CountByContentFunc == nil {
		panic("logRepoMock.CountByContentFunc: method is nil but logRepo.CountByContent was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ContentID string
	}{
		Ctx:       ctx,
		ContentID: contentID,
	}
	mock.lockCountByContent.Lock()
	mock.calls.CountByContent = append(mock.calls.CountByContent, callInfo)
	mock.lockCountByContent.Unlock()
	return mock.CountByContentFunc(ctx, contentID)
}

func (mock *logRepoMock) CountByContentCalls() []struct {
	Ctx       context.Context
	ContentID string
} {
	var calls []struct {
		Ctx       context.Context
		ContentID string
	}
	mock.lockCountByContent.RLock()
	calls = mock.calls.CountByContent
	mock.lockCountByContent.RUnlock()
	return calls
}

func (mock *logRepoMock) Latest(ctx context.Context, contentID string) (*domain.VerificationLogEntry, error) {
	if mock.LatestFunc == nil {
		panic("logRepoMock.LatestFunc: method is nil but logRepo.Latest was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ContentID string
	}{
		Ctx:       ctx,
		ContentID: contentID,
	}
	mock.lockLatest.Lock()
	mock.calls.Latest = append(mock.calls.Latest, callInfo)
	mock.lockLatest.Unlock()
	return mock.LatestFunc(ctx, contentID)
}

func (mock *logRepoMock) LatestCalls() []struct {
	Ctx       context.Context
	ContentID string
} {
	var calls []struct {
		Ctx       context.Context
		ContentID string
	}
	mock.lockLatest.RLock()
	calls = mock.calls.Latest
	mock.lockLatest.RUnlock()
	return calls
}

type commentRepoMock struct {
	CreateFunc func(ctx context.Context, c domain.AuditComment) (domain.AuditComment, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			C   domain.AuditComment
		}
	}
	lockCreate sync.RWMutex
}

func (mock *commentRepoMock) Create(ctx context.Context, c domain.AuditComment) (domain.AuditComment, error) {
	if mock.CreateFunc == nil {
		panic("commentRepoMock.CreateFunc: method is nil but commentRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   domain.AuditComment
	}{
		Ctx: ctx,
		C:   c,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *commentRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   domain.AuditComment
} {
	var calls []struct {
		Ctx context.Context
		C   domain.AuditComment
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

type identityProviderMock struct {
	CanReviewFunc func(ctx context.Context, actorID string) (bool, error)

	calls struct {
		CanReview []struct {
			Ctx     context.Context
			ActorID string
		}
	}
	lockCanReview sync.RWMutex
}

func (mock *identityProviderMock) CanReview(ctx context.Context, actorID string) (bool, error) {
	if mock.CanReviewFunc == nil {
		panic("identityProviderMock.CanReviewFunc: method is nil but identityProvider.CanReview was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ActorID string
	}{
		Ctx:     ctx,
		ActorID: actorID,
	}
	mock.lockCanReview.Lock()
	mock.calls.CanReview = append(mock.calls.CanReview, callInfo)
	mock.lockCanReview.Unlock()
	return mock.CanReviewFunc(ctx, actorID)
}

func (mock *identityProviderMock) CanReviewCalls() []struct {
	Ctx     context.Context
	ActorID string
} {
	var calls []struct {
		Ctx     context.Context
		ActorID string
	}
	mock.lockCanReview.RLock()
	calls = mock.calls.CanReview
	mock.lockCanReview.RUnlock()
	return calls
}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{
		Ctx: ctx,
		Fn:  fn,
	}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	var calls []struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}
	mock.lockRunInTx.RLock()
	calls = mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
