package news

import (
	"context"
	"sync"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

var (
	_ newsRepo = &newsRepoMock{}
)

type newsRepoMock struct {
	CountFunc  func(ctx context.Context) (int64, error)
	ListFunc   func(ctx context.Context, page domain.PageRequest) ([]domain.News, error)
	CreateFunc func(ctx context.Context, n domain.News) (domain.News, error)
	DeleteFunc func(ctx context.Context, id int64) error

	calls struct {
		Count []struct {
			Ctx context.Context
		}
		List []struct {
			Ctx  context.Context
			Page domain.PageRequest
		}
		Create []struct {
			Ctx context.Context
			N   domain.News
		}
		Delete []struct {
			Ctx context.Context
			Id  int64
		}
	}
	lockCount  sync.RWMutex
	lockList   sync.RWMutex
	lockCreate sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *newsRepoMock) Count(ctx context.Context) (int64, error) {
	if mock.CountFunc == nil {
		panic("newsRepoMock.CountFunc: method is nil but newsRepo.Count was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx)
}

func (mock *newsRepoMock) CountCalls() []struct {
	Ctx context.Context
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *newsRepoMock) List(ctx context.Context, page domain.PageRequest) ([]domain.News, error) {
	if mock.ListFunc == nil {
		panic("newsRepoMock.ListFunc: method is nil but newsRepo.List was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Page domain.PageRequest
	}{Ctx: ctx, Page: page}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, page)
}

func (mock *newsRepoMock) ListCalls() []struct {
	Ctx  context.Context
	Page domain.PageRequest
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *newsRepoMock) Create(ctx context.Context, n domain.News) (domain.News, error) {
	if mock.CreateFunc == nil {
		panic("newsRepoMock.CreateFunc: method is nil but newsRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		N   domain.News
	}{Ctx: ctx, N: n}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, n)
}

func (mock *newsRepoMock) CreateCalls() []struct {
	Ctx context.Context
	N   domain.News
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *newsRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("newsRepoMock.DeleteFunc: method is nil but newsRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{Ctx: ctx, Id: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *newsRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
