package deck

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
	"github.com/heartmarshall/flashdeck-backend/pkg/ctxutil"
)

// Rename changes the name and description of a deck.
func (s *Service) Rename(ctx context.Context, input RenameInput) (domain.Deck, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Deck{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Deck{}, err
	}

	deck, err := s.decks.Update(ctx, domain.Deck{
		ID:          input.DeckID,
		OwnerID:     userID,
		Name:        strings.TrimSpace(input.Name),
		Description: trimOrNil(input.Description),
	})
	if err != nil {
		return domain.Deck{}, fmt.Errorf("update deck: %w", err)
	}

	s.log.InfoContext(ctx, "deck renamed",
		slog.String("user_id", userID.String()),
		slog.Int64("deck_id", deck.ID),
		slog.String("name", deck.Name),
	)

	return deck, nil
}
