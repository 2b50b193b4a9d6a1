// Package known stores which cards a user has marked as known.
package known

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/flashdeck-backend/internal/adapter/postgres"
)

// Repo provides known-card persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new known-card repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// KnownCardIDs returns the ids of every known card in deckID.
func (r *Repo) KnownCardIDs(ctx context.Context, deckID int64) ([]int64, error) {
	query, args, err := postgres.Psql.
		Select("card_id").
		From("known_cards").
		Where(sq.Eq{"deck_id": deckID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build known ids query: %w", err)
	}

	var ids []int64
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &ids, query, args...); err != nil {
		return nil, fmt.Errorf("known card ids of deck %d: %w", deckID, err)
	}
	return ids, nil
}

// Mark records cardID as known. Marking twice is a no-op.
func (r *Repo) Mark(ctx context.Context, deckID, cardID int64) error {
	query, args, err := postgres.Psql.
		Insert("known_cards").
		Columns("card_id", "deck_id").
		Values(cardID, deckID).
		Suffix("ON CONFLICT (card_id, deck_id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("build mark known query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "card", cardID)
	}
	return nil
}

// Unmark removes the known mark of cardID. Unmarking an unknown card is a no-op.
func (r *Repo) Unmark(ctx context.Context, deckID, cardID int64) error {
	query, args, err := postgres.Psql.
		Delete("known_cards").
		Where(sq.Eq{"card_id": cardID, "deck_id": deckID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build unmark known query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "card", cardID)
	}
	return nil
}
