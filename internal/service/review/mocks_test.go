package review

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/quizreview-backend/internal/domain"
)

var _ contentRepo = &contentRepoMock{}

var _ commentRepo = &commentRepoMock{}

var _ logRepo = &logRepoMock{}

type contentRepoMock struct {
	CountUnverifiedFunc func(ctx context.Context) (int, error)
	ListUnverifiedFunc  func(ctx context.Context, limit int) ([]domain.ReviewQueueItem, error)

	calls struct {
		CountUnverified []struct {
			Ctx context.Context
		}
		ListUnverified []struct {
			Ctx   context.Context
			Limit int
		}
	}
	lockCountUnverified sync.RWMutex
	lockListUnverified  sync.RWMutex
}

func (mock *contentRepoMock) CountUnverified(ctx context.Context) (int, error) {
	if mock.CountUnverifiedFunc == nil {
		panic("contentRepoMock.CountUnverifiedFunc: method is nil but contentRepo.CountUnverified was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockCountUnverified.Lock()
	mock.calls.CountUnverified = append(mock.calls.CountUnverified, callInfo)
	mock.lockCountUnverified.Unlock()
	return mock.CountUnverifiedFunc(ctx)
}

func (mock *contentRepoMock) CountUnverifiedCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockCountUnverified.RLock()
	calls = mock.calls.CountUnverified
	mock.lockCountUnverified.RUnlock()
	return calls
}

func (mock *contentRepoMock) ListUnverified(ctx context.Context, limit int) ([]domain.ReviewQueueItem, error) {
	if mock.ListUnverifiedFunc == nil {
		panic("contentRepoMock.ListUnverifiedFunc: method is nil but contentRepo.ListUnverified was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{
		Ctx:   ctx,
		Limit: limit,
	}
	mock.lockListUnverified.Lock()
	mock.calls.ListUnverified = append(mock.calls.ListUnverified, callInfo)
	mock.lockListUnverified.Unlock()
	return mock.ListUnverifiedFunc(ctx, limit)
}

func (mock *contentRepoMock) ListUnverifiedCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	var calls []struct {
		Ctx   context.Context
		Limit int
	}
	mock.lockListUnverified.RLock()
	calls = mock.calls.ListUnverified
	mock.lockListUnverified.RUnlock()
	return calls
}

type commentRepoMock struct {
	CountUnresolvedFunc func(ctx context.Context, g domain.Granularity) (int, error)

	calls struct {
		CountUnresolved []struct {
			Ctx context.Context
			G   domain.Granularity
		}
	}
	lockCountUnresolved sync.RWMutex
}

func (mock *commentRepoMock) CountUnresolved(ctx context.Context, g domain.Granularity) (int, error) {
	if mock.CountUnresolvedFunc == nil {
		panic("commentRepoMock.CountUnresolvedFunc: method is nil but commentRepo.CountUnresolved was just called")
	}
	callInfo := struct {
		Ctx context.Context
		G   domain.Granularity
	}{
		Ctx: ctx,
		G:   g,
	}
	mock.lockCountUnresolved.Lock()
	mock.calls.CountUnresolved = append(mock.calls.CountUnresolved, callInfo)
	mock.lockCountUnresolved.Unlock()
	return mock.CountUnresolvedFunc(ctx, g)
}

func (mock *commentRepoMock) CountUnresolvedCalls() []struct {
	Ctx context.Context
	G   domain.Granularity
} {
	var calls []struct {
		Ctx context.Context
		G   domain.Granularity
	}
	mock.lockCountUnresolved.RLock()
	calls = mock.calls.CountUnresolved
	mock.lockCountUnresolved.RUnlock()
	return calls
}

type logRepoMock struct {
	CountByActionBetweenFunc func(ctx context.Context, action domain.VerificationAction, from time.Time, to time.Time) (int, error)

	calls struct {
		CountByActionBetween []struct {
			Ctx    context.Context
			Action domain.VerificationAction
			From   time.Time
			To     time.Time
		}
	}
	lockCountByActionBetween sync.RWMutex
}

func (mock *logRepoMock) CountByActionBetween(ctx context.Context, action domain.VerificationAction, from time.Time, to time.Time) (int, error) {
	if mock.CountByActionBetweenFunc == nil {
		panic("logRepoMock.CountByActionBetweenFunc: method is nil but logRepo.CountByActionBetween was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Action domain.VerificationAction
		From   time.Time
		To     time.Time
	}{
		Ctx:    ctx,
		Action: action,
		From:   from,
		To:     to,
	}
	mock.lockCountByActionBetween.Lock()
	mock.calls.CountByActionBetween = append(mock.calls.CountByActionBetween, callInfo)
	mock.lockCountByActionBetween.Unlock()
	return mock.CountByActionBetweenFunc(ctx, action, from, to)
}

func (mock *logRepoMock) CountByActionBetweenCalls() []struct {
	Ctx    context.Context
	Action domain.VerificationAction
	From   time.Time
	To     time.Time
} {
	var calls []struct {
		Ctx    context.Context
		Action domain.VerificationAction
		From   time.Time
		To     time.Time
	}
	mock.lockCountByActionBetween.RLock()
	calls = mock.calls.CountByActionBetween
	mock.lockCountByActionBetween.RUnlock()
	return calls
}
