// Package deck manages the decks of a user.
package deck

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

type deckRepo interface {
	GetByID(ctx context.Context, ownerID uuid.UUID, deckID int64) (domain.Deck, error)
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, page domain.PageRequest) ([]domain.Deck, error)
	Create(ctx context.Context, deck domain.Deck) (domain.Deck, error)
	Update(ctx context.Context, deck domain.Deck) (domain.Deck, error)
	Delete(ctx context.Context, ownerID uuid.UUID, deckID int64) error
}

type knownCache interface {
	Invalidate(deckID int64)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	MaxDecksPerUser = 200
	ListPageSize    = 20
)

// Service provides deck management operations.
type Service struct {
	decks deckRepo
	cache knownCache
	tx    txManager
	log   *slog.Logger
}

// NewService creates a new deck service.
func NewService(log *slog.Logger, decks deckRepo, cache knownCache, tx txManager) *Service {
	return &Service{
		decks: decks,
		cache: cache,
		tx:    tx,
		log:   log.With("service", "deck"),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
