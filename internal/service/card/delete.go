package card

import (
	"context"
	"fmt"
	"log/slog"
)

// Delete removes a card and its known mark.
func (s *Service) Delete(ctx context.Context, input DeleteInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	userID, err := s.ownedDeck(ctx, input.DeckID)
	if err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.cards.Delete(txCtx, input.DeckID, input.CardID); err != nil {
			return fmt.Errorf("delete card: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.cache.Invalidate(input.DeckID)

	s.log.InfoContext(ctx, "card deleted",
		slog.String("user_id", userID.String()),
		slog.Int64("deck_id", input.DeckID),
		slog.Int64("card_id", input.CardID),
	)

	return nil
}
