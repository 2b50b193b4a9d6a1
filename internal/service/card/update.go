package card

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

// Update replaces the content of a card. Its known mark is kept.
func (s *Service) Update(ctx context.Context, input UpdateInput) (domain.Card, error) {
	if err := input.Validate(); err != nil {
		return domain.Card{}, err
	}

	userID, err := s.ownedDeck(ctx, input.DeckID)
	if err != nil {
		return domain.Card{}, err
	}

	var updated domain.Card
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		updated, err = s.cards.Update(txCtx, domain.Card{
			ID:       input.CardID,
			DeckID:   input.DeckID,
			Front:    strings.TrimSpace(input.Front),
			Back:     strings.TrimSpace(input.Back),
			Example:  trimOrNil(input.Example),
			ImageURL: trimOrNil(input.ImageURL),
		})
		if err != nil {
			return fmt.Errorf("update card: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Card{}, err
	}

	s.cache.Invalidate(input.DeckID)

	s.log.InfoContext(ctx, "card updated",
		slog.String("user_id", userID.String()),
		slog.Int64("deck_id", input.DeckID),
		slog.Int64("card_id", input.CardID),
	)

	return updated, nil
}
