// Package cardlist serves the filtered, paginated card listing of a deck.
package cardlist

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

type cardRepo interface {
	Count(ctx context.Context, criteria domain.FilterCriteria) (int64, error)
	FetchPage(ctx context.Context, criteria domain.FilterCriteria, page domain.PageRequest) ([]domain.Card, error)
}

type deckRepo interface {
	GetByID(ctx context.Context, ownerID uuid.UUID, deckID int64) (domain.Deck, error)
}

type knownProvider interface {
	KnownSet(ctx context.Context, deckID int64) (domain.KnownSet, error)
}

// Service lists the cards of a deck.
type Service struct {
	cards    cardRepo
	decks    deckRepo
	known    knownProvider
	pageSize int
	log      *slog.Logger
}

// NewService creates a new card list service. pageSize is the fixed number
// of cards per page and must be positive.
func NewService(
	log *slog.Logger,
	cards cardRepo,
	decks deckRepo,
	known knownProvider,
	pageSize int,
) *Service {
	return &Service{
		cards:    cards,
		decks:    decks,
		known:    known,
		pageSize: pageSize,
		log:      log.With("service", "cardlist"),
	}
}
