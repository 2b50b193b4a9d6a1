package card

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

// Create adds a card to a deck owned by the caller.
func (s *Service) Create(ctx context.Context, input CreateInput) (domain.Card, error) {
	if err := input.Validate(); err != nil {
		return domain.Card{}, err
	}

	userID, err := s.ownedDeck(ctx, input.DeckID)
	if err != nil {
		return domain.Card{}, err
	}

	var created domain.Card
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		all, err := domain.NewFilterCriteria(input.DeckID, "", domain.StatusAll)
		if err != nil {
			return err
		}
		count, err := s.cards.Count(txCtx, all)
		if err != nil {
			return fmt.Errorf("count cards: %w", err)
		}
		if count >= MaxCardsPerDeck {
			return domain.NewValidationError("cards", "limit reached (max 10000 per deck)")
		}

		created, err = s.cards.Create(txCtx, domain.Card{
			DeckID:   input.DeckID,
			Front:    strings.TrimSpace(input.Front),
			Back:     strings.TrimSpace(input.Back),
			Example:  trimOrNil(input.Example),
			ImageURL: trimOrNil(input.ImageURL),
		})
		if err != nil {
			return fmt.Errorf("create card: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Card{}, err
	}

	s.cache.Invalidate(input.DeckID)

	s.log.InfoContext(ctx, "card created",
		slog.String("user_id", userID.String()),
		slog.Int64("deck_id", input.DeckID),
		slog.Int64("card_id", created.ID),
	)

	return created, nil
}
