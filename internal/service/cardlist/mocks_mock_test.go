package cardlist

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

var (
	_ cardRepo      = &cardRepoMock{}
	_ deckRepo      = &deckRepoMock{}
	_ knownProvider = &knownProviderMock{}
)

type cardRepoMock struct {
	CountFunc     func(ctx context.Context, criteria domain.FilterCriteria) (int64, error)
	FetchPageFunc func(ctx context.Context, criteria domain.FilterCriteria, page domain.PageRequest) ([]domain.Card, error)

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
	}
	lockCount     sync.RWMutex
	lockFetchPage sync.RWMutex
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

type knownProviderMock struct {
	KnownSetFunc func(ctx context.Context, deckID int64) (domain.KnownSet, error)

	calls struct {
		KnownSet []struct {
			Ctx    context.Context
			DeckID int64
		}
	}
	lockKnownSet sync.RWMutex
}

func (mock *knownProviderMock) KnownSet(ctx context.Context, deckID int64) (domain.KnownSet, error) {
	if mock.KnownSetFunc == nil {
		panic("knownProviderMock.KnownSetFunc: method is nil but knownProvider.KnownSet was just called")
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

func (mock *knownProviderMock) KnownSetCalls() []struct {
	Ctx    context.Context
	DeckID int64
} {
	mock.lockKnownSet.RLock()
	calls := mock.calls.KnownSet
	mock.lockKnownSet.RUnlock()
	return calls
}
