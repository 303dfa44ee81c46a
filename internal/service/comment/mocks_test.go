package comment

import (
	"context"
	"sync"

	"github.com/heartmarshall/quizreview-backend/internal/domain"
)

var _ commentRepo = &commentRepoMock{}

var _ contentRepo = &contentRepoMock{}

var _ identityProvider = &identityProviderMock{}

type commentRepoMock struct {
	CreateFunc                  func(ctx context.Context, c domain.AuditComment) (domain.AuditComment, error)
	ListByParentFunc            func(ctx context.Context, g domain.Granularity, parentID string, filter domain.CommentFilter) ([]domain.AuditComment, error)
	ResolveFunc                 func(ctx context.Context, g domain.Granularity, id string) error
	GetByIDFunc                 func(ctx context.Context, g domain.Granularity, id string) (domain.AuditComment, error)
	CountUnresolvedByParentFunc func(ctx context.Context, g domain.Granularity, parentID string) (int, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			C   domain.AuditComment
		}
		ListByParent []struct {
			Ctx      context.Context
			G        domain.Granularity
			ParentID string
			Filter   domain.CommentFilter
		}
		Resolve []struct {
			Ctx context.Context
			G   domain.Granularity
			ID  string
		}
		GetByID []struct {
			Ctx context.Context
			G   domain.Granularity
			ID  string
		}
		CountUnresolvedByParent []struct {
			Ctx      context.Context
			G        domain.Granularity
			ParentID string
		}
	}
	lockCreate                  sync.RWMutex
	lockListByParent            sync.RWMutex
	lockResolve                 sync.RWMutex
	lockGetByID                 sync.RWMutex
	lockCountUnresolvedByParent sync.RWMutex
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

func (mock *commentRepoMock) ListByParent(ctx context.Context, g domain.Granularity, parentID string, filter domain.CommentFilter) ([]domain.AuditComment, error) {
	if mock.ListByParentFunc == nil {
		panic("commentRepoMock.ListByParentFunc: method is nil but commentRepo.ListByParent was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		G        domain.Granularity
		ParentID string
		Filter   domain.CommentFilter
	}{
		Ctx:      ctx,
		G:        g,
		ParentID: parentID,
		Filter:   filter,
	}
	mock.lockListByParent.Lock()
	mock.calls.ListByParent = append(mock.calls.ListByParent, callInfo)
	mock.lockListByParent.Unlock()
	return mock.ListByParentFunc(ctx, g, parentID, filter)
}

func (mock *commentRepoMock) ListByParentCalls() []struct {
	Ctx      context.Context
	G        domain.Granularity
	ParentID string
	Filter   domain.CommentFilter
} {
	var calls []struct {
		Ctx      context.Context
		G        domain.Granularity
		ParentID string
		Filter   domain.CommentFilter
	}
	mock.lockListByParent.RLock()
	calls = mock.calls.ListByParent
	mock.lockListByParent.RUnlock()
	return calls
}

func (mock *commentRepoMock) Resolve(ctx context.Context, g domain.Granularity, id string) error {
	if mock.ResolveFunc == nil {
		panic("commentRepoMock.ResolveFunc: method is nil but commentRepo.Resolve was just called")
	}
	callInfo := struct {
		Ctx context.Context
		G   domain.Granularity
		ID  string
	}{
		Ctx: ctx,
		G:   g,
		ID:  id,
	}
	mock.lockResolve.Lock()
	mock.calls.Resolve = append(mock.calls.Resolve, callInfo)
	mock.lockResolve.Unlock()
	return mock.ResolveFunc(ctx, g, id)
}

func (mock *commentRepoMock) ResolveCalls() []struct {
	Ctx context.Context
	G   domain.Granularity
	ID  string
} {
	var calls []struct {
		Ctx context.Context
		G   domain.Granularity
		ID  string
	}
	mock.lockResolve.RLock()
	calls = mock.calls.Resolve
	mock.lockResolve.RUnlock()
	return calls
}

func (mock *commentRepoMock) GetByID(ctx context.Context, g domain.Granularity, id string) (domain.AuditComment, error) {
	if mock.GetByIDFunc == nil {
		panic("commentRepoMock.GetByIDFunc: method is nil but commentRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		G   domain.Granularity
		ID  string
	}{
		Ctx: ctx,
		G:   g,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, g, id)
}

func (mock *commentRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	G   domain.Granularity
	ID  string
} {
	var calls []struct {
		Ctx context.Context
		G   domain.Granularity
		ID  string
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *commentRepoMock) CountUnresolvedByParent(ctx context.Context, g domain.Granularity, parentID string) (int, error) {
	if mock.CountUnresolvedByParentFunc == nil {
		panic("commentRepoMock.CountUnresolvedByParentFunc: method is nil but commentRepo.CountUnresolvedByParent was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		G        domain.Granularity
		ParentID string
	}{
		Ctx:      ctx,
		G:        g,
		ParentID: parentID,
	}
	mock.lockCountUnresolvedByParent.Lock()
	mock.calls.CountUnresolvedByParent = append(mock.calls.CountUnresolvedByParent, callInfo)
	mock.lockCountUnresolvedByParent.Unlock()
	return mock.CountUnresolvedByParentFunc(ctx, g, parentID)
}

func (mock *commentRepoMock) CountUnresolvedByParentCalls() []struct {
	Ctx      context.Context
	G        domain.Granularity
	ParentID string
} {
	var calls []struct {
		Ctx      context.Context
		G        domain.Granularity
		ParentID string
	}
	mock.lockCountUnresolvedByParent.RLock()
	calls = mock.calls.CountUnresolvedByParent
	mock.lockCountUnresolvedByParent.RUnlock()
	return calls
}

type contentRepoMock struct {
	GetByIDFunc func(ctx context.Context, id string) (domain.ContentItem, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  string
		}
	}
	lockGetByID sync.RWMutex
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
