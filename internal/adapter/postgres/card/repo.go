// Package card implements the card repository on PostgreSQL.
// Filtered listings are rendered by cardquery; single-row writes use squirrel.
package card

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/flashdeck-backend/internal/adapter/postgres"
	"github.com/heartmarshall/flashdeck-backend/internal/adapter/postgres/cardquery"
	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

// Projection is the column list every card read selects.
const Projection = "c.id, c.deck_id, c.front, c.back, c.example, c.image_url, c.created_at, c.updated_at"

const returning = "RETURNING id, deck_id, front, back, example, image_url, created_at, updated_at"

// Repo provides card persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new card repository. db is normally the pool; inside
// TxManager.RunInTx the transaction from ctx takes precedence.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// row mirrors the cards table.
type row struct {
	ID        int64     `db:"id"`
	DeckID    int64     `db:"deck_id"`
	Front     string    `db:"front"`
	Back      string    `db:"back"`
	Example   *string   `db:"example"`
	ImageURL  *string   `db:"image_url"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.Card {
	return domain.Card{
		ID:        r.ID,
		DeckID:    r.DeckID,
		Front:     r.Front,
		Back:      r.Back,
		Example:   r.Example,
		ImageURL:  r.ImageURL,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// Filtered listing
// ---------------------------------------------------------------------------

// Count returns the number of cards matching criteria.
func (r *Repo) Count(ctx context.Context, criteria domain.FilterCriteria) (int64, error) {
	req := cardquery.New(Projection, criteria).Count()

	var n int64
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, req.SQL, req.Args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count cards of deck %d: %w", criteria.DeckID(), err)
	}
	return n, nil
}

// FetchPage returns one page of cards matching criteria, newest first.
func (r *Repo) FetchPage(ctx context.Context, criteria domain.FilterCriteria, page domain.PageRequest) ([]domain.Card, error) {
	req := cardquery.New(Projection, criteria).Page(page)

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, req.SQL, req.Args...); err != nil {
		return nil, fmt.Errorf("fetch cards of deck %d page %d: %w", criteria.DeckID(), page.Index, err)
	}

	cards := make([]domain.Card, len(rows))
	for i, rw := range rows {
		cards[i] = rw.toDomain()
	}
	return cards, nil
}

// ---------------------------------------------------------------------------
// Single card
// ---------------------------------------------------------------------------

// GetByID returns a card of deckID.
func (r *Repo) GetByID(ctx context.Context, deckID, cardID int64) (domain.Card, error) {
	query, args, err := postgres.Psql.
		Select(Projection).
		From("cards c").
		Where(sq.Eq{"c.id": cardID, "c.deck_id": deckID}).
		ToSql()
	if err != nil {
		return domain.Card{}, fmt.Errorf("build get card query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return domain.Card{}, postgres.MapError(err, "card", cardID)
	}
	return rw.toDomain(), nil
}

// Create inserts card and returns the stored row.
func (r *Repo) Create(ctx context.Context, card domain.Card) (domain.Card, error) {
	query, args, err := postgres.Psql.
		Insert("cards").
		Columns("deck_id", "front", "back", "example", "image_url").
		Values(card.DeckID, card.Front, card.Back, card.Example, card.ImageURL).
		Suffix(returning).
		ToSql()
	if err != nil {
		return domain.Card{}, fmt.Errorf("build insert card query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return domain.Card{}, postgres.MapError(err, "deck", card.DeckID)
	}
	return rw.toDomain(), nil
}

// Update overwrites the content fields of card and bumps updated_at.
func (r *Repo) Update(ctx context.Context, card domain.Card) (domain.Card, error) {
	query, args, err := postgres.Psql.
		Update("cards").
		Set("front", card.Front).
		Set("back", card.Back).
		Set("example", card.Example).
		Set("image_url", card.ImageURL).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": card.ID, "deck_id": card.DeckID}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return domain.Card{}, fmt.Errorf("build update card query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return domain.Card{}, postgres.MapError(err, "card", card.ID)
	}
	return rw.toDomain(), nil
}

// Delete removes a card of deckID. Its known mark goes with it (cascade).
func (r *Repo) Delete(ctx context.Context, deckID, cardID int64) error {
	query, args, err := postgres.Psql.
		Delete("cards").
		Where(sq.Eq{"id": cardID, "deck_id": deckID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete card query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "card", cardID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "card", cardID)
	}
	return nil
}
