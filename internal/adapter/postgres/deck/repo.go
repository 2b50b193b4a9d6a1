// Package deck implements the deck repository on PostgreSQL.
package deck

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/flashdeck-backend/internal/adapter/postgres"
	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

const columns = "id, owner_id, name, description, created_at, updated_at"

// Repo provides deck persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new deck repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID          int64     `db:"id"`
	OwnerID     uuid.UUID `db:"owner_id"`
	Name        string    `db:"name"`
	Description *string   `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.Deck {
	return domain.Deck{
		ID:          r.ID,
		OwnerID:     r.OwnerID,
		Name:        r.Name,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a deck owned by ownerID. A deck of another owner is
// reported as not found.
func (r *Repo) GetByID(ctx context.Context, ownerID uuid.UUID, deckID int64) (domain.Deck, error) {
	query, args, err := postgres.Psql.
		Select(columns).
		From("decks").
		Where(sq.Eq{"id": deckID, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return domain.Deck{}, fmt.Errorf("build get deck query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return domain.Deck{}, postgres.MapError(err, "deck", deckID)
	}
	return rw.toDomain(), nil
}

// CountByOwner returns the number of decks of ownerID.
func (r *Repo) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	query, args, err := postgres.Psql.
		Select("count(*)").
		From("decks").
		Where(sq.Eq{"owner_id": ownerID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count decks query: %w", err)
	}

	var n int64
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count decks of %s: %w", ownerID, err)
	}
	return n, nil
}

// ListByOwner returns one page of the decks of ownerID, newest first.
func (r *Repo) ListByOwner(ctx context.Context, ownerID uuid.UUID, page domain.PageRequest) ([]domain.Deck, error) {
	query, args, err := postgres.Psql.
		Select(columns).
		From("decks").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC", "id DESC").
		Suffix("LIMIT ? OFFSET ?", page.Limit(), page.Offset()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list decks query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list decks of %s: %w", ownerID, err)
	}

	decks := make([]domain.Deck, len(rows))
	for i, rw := range rows {
		decks[i] = rw.toDomain()
	}
	return decks, nil
}

// StatsByIDs returns card and known counts for each of deckIDs that has at
// least one card. Decks without cards are absent from the result.
func (r *Repo) StatsByIDs(ctx context.Context, deckIDs []int64) ([]domain.DeckStats, error) {
	if len(deckIDs) == 0 {
		return []domain.DeckStats{}, nil
	}

	query, args, err := postgres.Psql.
		Select("c.deck_id", "count(*) AS card_count", "count(k.card_id) AS known_count").
		From("cards c").
		LeftJoin("known_cards k ON k.card_id = c.id AND k.deck_id = c.deck_id").
		Where(sq.Eq{"c.deck_id": deckIDs}).
		GroupBy("c.deck_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build deck stats query: %w", err)
	}

	var stats []domain.DeckStats
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &stats, query, args...); err != nil {
		return nil, fmt.Errorf("deck stats: %w", err)
	}
	return stats, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts deck. A duplicate name for the same owner is ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, deck domain.Deck) (domain.Deck, error) {
	query, args, err := postgres.Psql.
		Insert("decks").
		Columns("owner_id", "name", "description").
		Values(deck.OwnerID, deck.Name, deck.Description).
		Suffix("RETURNING " + columns).
		ToSql()
	if err != nil {
		return domain.Deck{}, fmt.Errorf("build insert deck query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return domain.Deck{}, postgres.MapError(err, "deck", 0)
	}
	return rw.toDomain(), nil
}

// Update renames deck and replaces its description.
func (r *Repo) Update(ctx context.Context, deck domain.Deck) (domain.Deck, error) {
	query, args, err := postgres.Psql.
		Update("decks").
		Set("name", deck.Name).
		Set("description", deck.Description).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": deck.ID, "owner_id": deck.OwnerID}).
		Suffix("RETURNING " + columns).
		ToSql()
	if err != nil {
		return domain.Deck{}, fmt.Errorf("build update deck query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return domain.Deck{}, postgres.MapError(err, "deck", deck.ID)
	}
	return rw.toDomain(), nil
}

// Delete removes a deck with all its cards and known marks.
func (r *Repo) Delete(ctx context.Context, ownerID uuid.UUID, deckID int64) error {
	query, args, err := postgres.Psql.
		Delete("decks").
		Where(sq.Eq{"id": deckID, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete deck query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "deck", deckID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "deck", deckID)
	}
	return nil
}
