// Package card manages the cards of a deck: edits, known marks and practice draws.
package card

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
	"github.com/heartmarshall/flashdeck-backend/pkg/ctxutil"
)

type cardRepo interface {
	Count(ctx context.Context, criteria domain.FilterCriteria) (int64, error)
	FetchPage(ctx context.Context, criteria domain.FilterCriteria, page domain.PageRequest) ([]domain.Card, error)
	GetByID(ctx context.Context, deckID, cardID int64) (domain.Card, error)
	Create(ctx context.Context, card domain.Card) (domain.Card, error)
	Update(ctx context.Context, card domain.Card) (domain.Card, error)
	Delete(ctx context.Context, deckID, cardID int64) error
}

type deckRepo interface {
	GetByID(ctx context.Context, ownerID uuid.UUID, deckID int64) (domain.Deck, error)
}

type knownRepo interface {
	Mark(ctx context.Context, deckID, cardID int64) error
	Unmark(ctx context.Context, deckID, cardID int64) error
}

type knownCache interface {
	KnownSet(ctx context.Context, deckID int64) (domain.KnownSet, error)
	Invalidate(deckID int64)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	MaxCardsPerDeck = 10000
)

// Service provides card operations.
type Service struct {
	cards cardRepo
	decks deckRepo
	known knownRepo
	cache knownCache
	tx    txManager
	log   *slog.Logger

	// intN draws the practice offset in [0, n).
	intN func(n int64) int64
}

// NewService creates a new card service.
func NewService(
	log *slog.Logger,
	cards cardRepo,
	decks deckRepo,
	known knownRepo,
	cache knownCache,
	tx txManager,
) *Service {
	return &Service{
		cards: cards,
		decks: decks,
		known: known,
		cache: cache,
		tx:    tx,
		log:   log.With("service", "card"),
		intN:  rand.Int64N,
	}
}

// ownedDeck checks that the caller owns deckID and returns the caller id.
func (s *Service) ownedDeck(ctx context.Context, deckID int64) (uuid.UUID, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	if _, err := s.decks.GetByID(ctx, userID, deckID); err != nil {
		return uuid.Nil, fmt.Errorf("get deck: %w", err)
	}
	return userID, nil
}
