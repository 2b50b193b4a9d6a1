package domain

import (
	"time"

	"github.com/google/uuid"
)

// Deck is a user-owned collection of cards.
type Deck struct {
	ID          int64
	OwnerID     uuid.UUID
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DeckStats aggregates card counters for a deck.
type DeckStats struct {
	DeckID     int64
	CardCount  int
	KnownCount int
}

// Card is a front/back pair with an optional example sentence and image.
type Card struct {
	ID        int64
	DeckID    int64
	Front     string
	Back      string
	Example   *string
	ImageURL  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CardRow is a card as rendered in a listing page, with its known flag resolved.
type CardRow struct {
	Card
	Known bool
}

// KnownSet is the set of known card ids of one deck.
type KnownSet map[int64]struct{}

// Has reports whether cardID is known.
func (s KnownSet) Has(cardID int64) bool {
	_, ok := s[cardID]
	return ok
}
