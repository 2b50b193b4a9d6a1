package deck

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

var (
	_ deckRepo   = &deckRepoMock{}
	_ knownCache = &knownCacheMock{}
	_ txManager  = &txManagerMock{}
)

type deckRepoMock struct {
	GetByIDFunc      func(ctx context.Context, ownerID uuid.UUID, deckID int64) (domain.Deck, error)
	CountByOwnerFunc func(ctx context.Context, ownerID uuid.UUID) (int64, error)
	ListByOwnerFunc  func(ctx context.Context, ownerID uuid.UUID, page domain.PageRequest) ([]domain.Deck, error)
	CreateFunc       func(ctx context.Context, deck domain.Deck) (domain.Deck, error)
	UpdateFunc       func(ctx context.Context, deck domain.Deck) (domain.Deck, error)
	DeleteFunc       func(ctx context.Context, ownerID uuid.UUID, deckID int64) error

	calls struct {
		GetByID []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			DeckID  int64
		}
		CountByOwner []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
		}
		ListByOwner []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Page    domain.PageRequest
		}
		Create []struct {
			Ctx  context.Context
			Deck domain.Deck
		}
		Update []struct {
			Ctx  context.Context
			Deck domain.Deck
		}
		Delete []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			DeckID  int64
		}
	}
	lockGetByID      sync.RWMutex
	lockCountByOwner sync.RWMutex
	lockListByOwner  sync.RWMutex
	lockCreate       sync.RWMutex
	lockUpdate       sync.RWMutex
	lockDelete       sync.RWMutex
}

func (mock *deckRepoMock) GetByID(ctx context.Context, ownerID uuid.UUID, deckID int64) (domain.Deck, error) {
	if mock.GetByIDFunc == nil {
		panic("deckRepoMock.GetByIDFunc: method is nil but deckRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		DeckID  int64
	}{Ctx: ctx, OwnerID: ownerID, DeckID: deckID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, ownerID, deckID)
}

func (mock *deckRepoMock) GetByIDCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	DeckID  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *deckRepoMock) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	if mock.CountByOwnerFunc == nil {
		panic("deckRepoMock.CountByOwnerFunc: method is nil but deckRepo.CountByOwner was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID}
	mock.lockCountByOwner.Lock()
	mock.calls.CountByOwner = append(mock.calls.CountByOwner, callInfo)
	mock.lockCountByOwner.Unlock()
	return mock.CountByOwnerFunc(ctx, ownerID)
}

func (mock *deckRepoMock) CountByOwnerCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
} {
	mock.lockCountByOwner.RLock()
	calls := mock.calls.CountByOwner
	mock.lockCountByOwner.RUnlock()
	return calls
}

func (mock *deckRepoMock) ListByOwner(ctx context.Context, ownerID uuid.UUID, page domain.PageRequest) ([]domain.Deck, error) {
	if mock.ListByOwnerFunc == nil {
		panic("deckRepoMock.ListByOwnerFunc: method is nil but deckRepo.ListByOwner was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Page    domain.PageRequest
	}{Ctx: ctx, OwnerID: ownerID, Page: page}
	mock.lockListByOwner.Lock()
	mock.calls.ListByOwner = append(mock.calls.ListByOwner, callInfo)
	mock.lockListByOwner.Unlock()
	return mock.ListByOwnerFunc(ctx, ownerID, page)
}

func (mock *deckRepoMock) ListByOwnerCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Page    domain.PageRequest
} {
	mock.lockListByOwner.RLock()
	calls := mock.calls.ListByOwner
	mock.lockListByOwner.RUnlock()
	return calls
}

func (mock *deckRepoMock) Create(ctx context.Context, deck domain.Deck) (domain.Deck, error) {
	if mock.CreateFunc == nil {
		panic("deckRepoMock.CreateFunc: method is nil but deckRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Deck domain.Deck
	}{Ctx: ctx, Deck: deck}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, deck)
}

func (mock *deckRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Deck domain.Deck
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *deckRepoMock) Update(ctx context.Context, deck domain.Deck) (domain.Deck, error) {
	if mock.UpdateFunc == nil {
		panic("deckRepoMock.UpdateFunc: method is nil but deckRepo.Update was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Deck domain.Deck
	}{Ctx: ctx, Deck: deck}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, deck)
}

func (mock *deckRepoMock) UpdateCalls() []struct {
	Ctx  context.Context
	Deck domain.Deck
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *deckRepoMock) Delete(ctx context.Context, ownerID uuid.UUID, deckID int64) error {
	if mock.DeleteFunc == nil {
		panic("deckRepoMock.DeleteFunc: method is nil but deckRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		DeckID  int64
	}{Ctx: ctx, OwnerID: ownerID, DeckID: deckID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, ownerID, deckID)
}

func (mock *deckRepoMock) DeleteCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	DeckID  int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

type knownCacheMock struct {
	InvalidateFunc func(deckID int64)

	calls struct {
		Invalidate []struct {
			DeckID int64
		}
	}
	lockInvalidate sync.RWMutex
}

func (mock *knownCacheMock) Invalidate(deckID int64) {
	if mock.InvalidateFunc == nil {
		panic("knownCacheMock.InvalidateFunc: method is nil but knownCache.Invalidate was just called")
	}
	callInfo := struct {
		DeckID int64
	}{DeckID: deckID}
	mock.lockInvalidate.Lock()
	mock.calls.Invalidate = append(mock.calls.Invalidate, callInfo)
	mock.lockInvalidate.Unlock()
	mock.InvalidateFunc(deckID)
}

func (mock *knownCacheMock) InvalidateCalls() []struct {
	DeckID int64
} {
	mock.lockInvalidate.RLock()
	calls := mock.calls.Invalidate
	mock.lockInvalidate.RUnlock()
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
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
