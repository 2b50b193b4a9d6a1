package testhelper

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedDeck creates a deck owned by ownerID with a unique name.
func SeedDeck(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID) domain.Deck {
	t.Helper()

	deck := domain.Deck{
		OwnerID: ownerID,
		Name:    "deck-" + uniqueSuffix(),
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO decks (owner_id, name) VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		deck.OwnerID, deck.Name,
	).Scan(&deck.ID, &deck.CreatedAt, &deck.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedDeck: %v", err)
	}

	return deck
}

// SeedCards inserts n cards into deckID with strictly increasing created_at,
// so the newest-first order is the reverse of insertion. Fronts are
// "<prefix> 1" .. "<prefix> n".
func SeedCards(t *testing.T, pool *pgxpool.Pool, deckID int64, prefix string, n int) []domain.Card {
	t.Helper()

	base := time.Now().UTC().Truncate(time.Microsecond).Add(-time.Duration(n) * time.Second)
	cards := make([]domain.Card, 0, n)

	for i := 1; i <= n; i++ {
		c := domain.Card{
			DeckID:    deckID,
			Front:     fmt.Sprintf("%s %d", prefix, i),
			Back:      fmt.Sprintf("back %d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}
		c.UpdatedAt = c.CreatedAt

		err := pool.QueryRow(context.Background(),
			`INSERT INTO cards (deck_id, front, back, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
			c.DeckID, c.Front, c.Back, c.CreatedAt, c.UpdatedAt,
		).Scan(&c.ID)
		if err != nil {
			t.Fatalf("testhelper: SeedCards #%d: %v", i, err)
		}
		cards = append(cards, c)
	}

	return cards
}

// MarkKnown records every given card as known in its deck.
func MarkKnown(t *testing.T, pool *pgxpool.Pool, cards ...domain.Card) {
	t.Helper()

	for _, c := range cards {
		_, err := pool.Exec(context.Background(),
			`INSERT INTO known_cards (card_id, deck_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			c.ID, c.DeckID,
		)
		if err != nil {
			t.Fatalf("testhelper: MarkKnown card %d: %v", c.ID, err)
		}
	}
}
