package card

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

var (
	_ cardRepo   = &cardRepoMock{}
	_ deckRepo   = &deckRepoMock{}
	_ knownRepo  = &knownRepoMock{}
	_ knownCache = &knownCacheMock{}
	_ txManager  = &txManagerMock{}
)

type cardRepoMock struct {
	CountFunc     func(ctx context.Context, criteria domain.FilterCriteria) (int64, error)
	FetchPageFunc func(ctx context.Context, criteria domain.FilterCriteria, page domain.PageRequest) ([]domain.Card, error)
	GetByIDFunc   func(ctx context.Context, deckID int64, cardID int64) (domain.Card, error)
	CreateFunc    func(ctx context.Context, card domain.Card) (domain.Card, error)
	UpdateFunc    func(ctx context.Context, card domain.Card) (domain.Card, error)
	DeleteFunc    func(ctx context.Context, deckID int64, cardID int64) error

	calls struct {
		Count []struct {
			Ctx      context.Context
			Criteria domain.FilterCriteria
		}
		FetchPage []struct {
			Ctx      context.Context
			Criteria domain.FilterCriteria
			Page     domain.PageRequest
		}
		GetByID []struct {
			Ctx    context.Context
			DeckID int64
			CardID int64
		}
		Create []struct {
			Ctx  context.Context
			Card domain.Card
		}
		Update []struct {
			Ctx  context.Context
			Card domain.Card
		}
		Delete []struct {
			Ctx    context.Context
			DeckID int64
			CardID int64
		}
	}
	lockCount     sync.RWMutex
	lockFetchPage sync.RWMutex
	lockGetByID   sync.RWMutex
	lockCreate    sync.RWMutex
	lockUpdate    sync.RWMutex
	lockDelete    sync.RWMutex
}

func (mock *cardRepoMock) Count(ctx context.Context, criteria domain.FilterCriteria) (int64, error) {
	if mock.CountFunc == nil {
		panic("cardRepoMock.CountFunc: method is nil but cardRepo.Count was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Criteria domain.FilterCriteria
	}{Ctx: ctx, Criteria: criteria}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx, criteria)
}

func (mock *cardRepoMock) CountCalls() []struct {
	Ctx      context.Context
	Criteria domain.FilterCriteria
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *cardRepoMock) FetchPage(ctx context.Context, criteria domain.FilterCriteria, page domain.PageRequest) ([]domain.Card, error) {
	if mock.FetchPageFunc == nil {
		panic("cardRepoMock.FetchPageFunc: method is nil but cardRepo.FetchPage was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Criteria domain.FilterCriteria
		Page     domain.PageRequest
	}{Ctx: ctx, Criteria: criteria, Page: page}
	mock.lockFetchPage.Lock()
	mock.calls.FetchPage = append(mock.calls.FetchPage, callInfo)
	mock.lockFetchPage.Unlock()
	return mock.FetchPageFunc(ctx, criteria, page)
}

func (mock *cardRepoMock) FetchPageCalls() []struct {
	Ctx      context.Context
	Criteria domain.FilterCriteria
	Page     domain.PageRequest
} {
	mock.lockFetchPage.RLock()
	calls := mock.calls.FetchPage
	mock.lockFetchPage.RUnlock()
	return calls
}

func (mock *cardRepoMock) GetByID(ctx context.Context, deckID int64, cardID int64) (domain.Card, error) {
	if mock.GetByIDFunc == nil {
		panic("cardRepoMock.GetByIDFunc: method is nil but cardRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		DeckID int64
		CardID int64
	}{Ctx: ctx, DeckID: deckID, CardID: cardID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, deckID, cardID)
}

func (mock *cardRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	DeckID int64
	CardID int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *cardRepoMock) Create(ctx context.Context, card domain.Card) (domain.Card, error) {
	if mock.CreateFunc == nil {
		panic("cardRepoMock.CreateFunc: method is nil but cardRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Card domain.Card
	}{Ctx: ctx, Card: card}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, card)
}

func (mock *cardRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Card domain.Card
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *cardRepoMock) Update(ctx context.Context, card domain.Card) (domain.Card, error) {
	if mock.UpdateFunc == nil {
		panic("cardRepoMock.UpdateFunc: method is nil but cardRepo.Update was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Card domain.Card
	}{Ctx: ctx, Card: card}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, card)
}

func (mock *cardRepoMock) UpdateCalls() []struct {
	Ctx  context.Context
	Card domain.Card
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *cardRepoMock) Delete(ctx context.Context, deckID int64, cardID int64) error {
	if mock.DeleteFunc == nil {
		panic("cardRepoMock.DeleteFunc: method is nil but cardRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		DeckID int64
		CardID int64
	}{Ctx: ctx, DeckID: deckID, CardID: cardID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, deckID, cardID)
}

func (mock *cardRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	DeckID int64
	CardID int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

type deckRepoMock struct {
	GetByIDFunc func(ctx context.Context, ownerID uuid.UUID, deckID int64) (domain.Deck, error)

	calls struct {
		GetByID []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			DeckID  int64
		}
	}
	lockGetByID sync.RWMutex
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

type knownRepoMock struct {
	MarkFunc   func(ctx context.Context, deckID int64, cardID int64) error
	UnmarkFunc func(ctx context.Context, deckID int64, cardID int64) error

	calls struct {
		Mark []struct {
			Ctx    context.Context
			DeckID int64
			CardID int64
		}
		Unmark []struct {
			Ctx    context.Context
			DeckID int64
			CardID int64
		}
	}
	lockMark   sync.RWMutex
	lockUnmark sync.RWMutex
}

func (mock *knownRepoMock) Mark(ctx context.Context, deckID int64, cardID int64) error {
	if mock.MarkFunc == nil {
		panic("knownRepoMock.MarkFunc: method is nil but knownRepo.Mark was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		DeckID int64
		CardID int64
	}{Ctx: ctx, DeckID: deckID, CardID: cardID}
	mock.lockMark.Lock()
	mock.calls.Mark = append(mock.calls.Mark, callInfo)
	mock.lockMark.Unlock()
	return mock.MarkFunc(ctx, deckID, cardID)
}

func (mock *knownRepoMock) MarkCalls() []struct {
	Ctx    context.Context
	DeckID int64
	CardID int64
} {
	mock.lockMark.RLock()
	calls := mock.calls.Mark
	mock.lockMark.RUnlock()
	return calls
}

func (mock *knownRepoMock) Unmark(ctx context.Context, deckID int64, cardID int64) error {
	if mock.UnmarkFunc == nil {
		panic("knownRepoMock.UnmarkFunc: method is nil but knownRepo.Unmark was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		DeckID int64
		CardID int64
	}{Ctx: ctx, DeckID: deckID, CardID: cardID}
	mock.lockUnmark.Lock()
	mock.calls.Unmark = append(mock.calls.Unmark, callInfo)
	mock.lockUnmark.Unlock()
	return mock.UnmarkFunc(ctx, deckID, cardID)
}

func (mock *knownRepoMock) UnmarkCalls() []struct {
	Ctx    context.Context
	DeckID int64
	CardID int64
} {
	mock.lockUnmark.RLock()
	calls := mock.calls.Unmark
	mock.lockUnmark.RUnlock()
	return calls
}

type knownCacheMock struct {
	KnownSetFunc   func(ctx context.Context, deckID int64) (domain.KnownSet, error)
	InvalidateFunc func(deckID int64)

	calls struct {
		KnownSet []struct {
			Ctx    context.Context
			DeckID int64
		}
		Invalidate []struct {
			DeckID int64
		}
	}
	lockKnownSet   sync.RWMutex
	lockInvalidate sync.RWMutex
}

func (mock *knownCacheMock) KnownSet(ctx context.Context, deckID int64) (domain.KnownSet, error) {
	if mock.KnownSetFunc == nil {
		panic("knownCacheMock.KnownSetFunc: method is nil but knownCache.KnownSet was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		DeckID int64
	}{Ctx: ctx, DeckID: deckID}
	mock.lockKnownSet.Lock()
	mock.calls.KnownSet = append(mock.calls.KnownSet, callInfo)
	mock.lockKnownSet.Unlock()
	return mock.KnownSetFunc(ctx, deckID)
}

func (mock *knownCacheMock) KnownSetCalls() []struct {
	Ctx    context.Context
	DeckID int64
} {
	mock.lockKnownSet.RLock()
	calls := mock.calls.KnownSet
	mock.lockKnownSet.RUnlock()
	return calls
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
