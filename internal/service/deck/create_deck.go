package deck

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
	"github.com/heartmarshall/flashdeck-backend/pkg/ctxutil"
)

// Create creates a new deck for the authenticated user.
func (s *Service) Create(ctx context.Context, input CreateInput) (domain.Deck, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Deck{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Deck{}, err
	}

	var deck domain.Deck
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		count, err := s.decks.CountByOwner(txCtx, userID)
		if err != nil {
			return fmt.Errorf("count decks: %w", err)
		}
		if count >= MaxDecksPerUser {
			return domain.NewValidationError("decks", "limit reached (max 200)")
		}

		deck, err = s.decks.Create(txCtx, domain.Deck{
			OwnerID:     userID,
			Name:        strings.TrimSpace(input.Name),
			Description: trimOrNil(input.Description),
		})
		if err != nil {
			return fmt.Errorf("create deck: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Deck{}, err
	}

	s.log.InfoContext(ctx, "deck created",
		slog.String("user_id", userID.String()),
		slog.Int64("deck_id", deck.ID),
		slog.String("name", deck.Name),
	)

	return deck, nil
}
