package card

import (
	"context"
	"fmt"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

// PracticeResult is a card drawn for practice.
type PracticeResult struct {
	Card domain.CardRow
	// Pool is the number of cards the draw was made from.
	Pool int64
}

// Practice draws a random card of a deck. With UnknownOnly the draw is
// limited to cards not marked as known. An empty pool is ErrNotFound.
//
// The draw is a single-row page at a random offset of the listing order.
// If the pool shrinks between the count and the fetch, the first card of
// the pool is returned instead.
func (s *Service) Practice(ctx context.Context, input PracticeInput) (*PracticeResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.ownedDeck(ctx, input.DeckID); err != nil {
		return nil, err
	}

	status := domain.StatusAll
	if input.UnknownOnly {
		status = domain.StatusUnknownOnly
	}
	criteria, err := domain.NewFilterCriteria(input.DeckID, "", status)
	if err != nil {
		return nil, err
	}

	pool, err := s.cards.Count(ctx, criteria)
	if err != nil {
		return nil, fmt.Errorf("count practice pool: %w", err)
	}
	if pool == 0 {
		return nil, fmt.Errorf("practice card of deck %d: %w", input.DeckID, domain.ErrNotFound)
	}

	drawn, err := s.draw(ctx, criteria, int(s.intN(pool)))
	if err != nil {
		return nil, err
	}
	if drawn == nil {
		drawn, err = s.draw(ctx, criteria, 0)
		if err != nil {
			return nil, err
		}
	}
	if drawn == nil {
		return nil, fmt.Errorf("practice card of deck %d: %w", input.DeckID, domain.ErrNotFound)
	}

	known := false
	if !input.UnknownOnly {
		set, err := s.cache.KnownSet(ctx, input.DeckID)
		if err != nil {
			return nil, fmt.Errorf("known cards: %w", err)
		}
		known = set.Has(drawn.ID)
	}

	return &PracticeResult{
		Card: domain.CardRow{Card: *drawn, Known: known},
		Pool: pool,
	}, nil
}

func (s *Service) draw(ctx context.Context, criteria domain.FilterCriteria, index int) (*domain.Card, error) {
	cards, err := s.cards.FetchPage(ctx, criteria, domain.PageRequest{Index: index, Size: 1})
	if err != nil {
		return nil, fmt.Errorf("fetch practice card: %w", err)
	}
	if len(cards) == 0 {
		return nil, nil
	}
	return &cards[0], nil
}
