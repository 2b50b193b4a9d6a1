package card

import (
	"context"
	"fmt"
	"log/slog"
)

// SetKnown marks a card as known or unknown. Repeating the same mark is a no-op.
func (s *Service) SetKnown(ctx context.Context, input SetKnownInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	userID, err := s.ownedDeck(ctx, input.DeckID)
	if err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.cards.GetByID(txCtx, input.DeckID, input.CardID); err != nil {
			return fmt.Errorf("get card: %w", err)
		}

		var markErr error
		if input.Known {
			markErr = s.known.Mark(txCtx, input.DeckID, input.CardID)
		} else {
			markErr = s.known.Unmark(txCtx, input.DeckID, input.CardID)
		}
		if markErr != nil {
			return fmt.Errorf("set known: %w", markErr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.cache.Invalidate(input.DeckID)

	s.log.InfoContext(ctx, "card known status changed",
		slog.String("user_id", userID.String()),
		slog.Int64("deck_id", input.DeckID),
		slog.Int64("card_id", input.CardID),
		slog.Bool("known", input.Known),
	)

	return nil
}
