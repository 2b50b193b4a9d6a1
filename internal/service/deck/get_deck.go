package deck

import (
	"context"
	"fmt"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
	"github.com/heartmarshall/flashdeck-backend/internal/pagination"
	"github.com/heartmarshall/flashdeck-backend/pkg/ctxutil"
)

// Get returns a deck of the authenticated user.
func (s *Service) Get(ctx context.Context, deckID int64) (domain.Deck, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Deck{}, domain.ErrUnauthorized
	}

	if deckID <= 0 {
		return domain.Deck{}, domain.NewValidationError("deck_id", "must be a positive integer")
	}

	deck, err := s.decks.GetByID(ctx, userID, deckID)
	if err != nil {
		return domain.Deck{}, fmt.Errorf("get deck: %w", err)
	}
	return deck, nil
}

// ListResult is one page of the decks of a user.
type ListResult struct {
	Decks      []domain.Deck
	Pagination pagination.State
}

// List returns one page of the user's decks, newest first.
func (s *Service) List(ctx context.Context, page int) (*ListResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	total, err := s.decks.CountByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count decks: %w", err)
	}

	state := pagination.Calculate(total, ListPageSize, page)

	decks, state, err := pagination.Load(ctx, state, func(ctx context.Context, p domain.PageRequest) ([]domain.Deck, error) {
		return s.decks.ListByOwner(ctx, userID, p)
	})
	if err != nil {
		return nil, fmt.Errorf("list decks: %w", err)
	}

	return &ListResult{Decks: decks, Pagination: state}, nil
}
