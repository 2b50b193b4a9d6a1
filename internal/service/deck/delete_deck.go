package deck

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
	"github.com/heartmarshall/flashdeck-backend/pkg/ctxutil"
)

// Delete removes a deck with all of its cards.
func (s *Service) Delete(ctx context.Context, deckID int64) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if deckID <= 0 {
		return domain.NewValidationError("deck_id", "must be a positive integer")
	}

	if err := s.decks.Delete(ctx, userID, deckID); err != nil {
		return fmt.Errorf("delete deck: %w", err)
	}

	s.cache.Invalidate(deckID)

	s.log.InfoContext(ctx, "deck deleted",
		slog.String("user_id", userID.String()),
		slog.Int64("deck_id", deckID),
	)

	return nil
}
