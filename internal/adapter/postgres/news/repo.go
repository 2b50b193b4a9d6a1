// Package news implements the site news repository on PostgreSQL.
package news

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

const columns = "id, title, body, author_id, published_at"

// Repo provides news persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new news repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID          int64     `db:"id"`
	Title       string    `db:"title"`
	Body        string    `db:"body"`
	AuthorID    uuid.UUID `db:"author_id"`
	PublishedAt time.Time `db:"published_at"`
}

func (r row) toDomain() domain.News {
	return domain.News{
		ID:          r.ID,
		Title:       r.Title,
		Body:        r.Body,
		AuthorID:    r.AuthorID,
		PublishedAt: r.PublishedAt,
	}
}

// Count returns the number of published items.
func (r *Repo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, "SELECT count(*) FROM news").Scan(&n); err != nil {
		return 0, fmt.Errorf("count news: %w", err)
	}
	return n, nil
}

// List returns one page of news, newest first.
func (r *Repo) List(ctx context.Context, page domain.PageRequest) ([]domain.News, error) {
	query, args, err := postgres.Psql.
		Select(columns).
		From("news").
		OrderBy("published_at DESC", "id DESC").
		Suffix("LIMIT ? OFFSET ?", page.Limit(), page.Offset()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list news query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list news page %d: %w", page.Index, err)
	}

	items := make([]domain.News, len(rows))
	for i, rw := range rows {
		items[i] = rw.toDomain()
	}
	return items, nil
}

// Create publishes n and returns the stored item.
func (r *Repo) Create(ctx context.Context, n domain.News) (domain.News, error) {
	query, args, err := postgres.Psql.
		Insert("news").
		Columns("title", "body", "author_id").
		Values(n.Title, n.Body, n.AuthorID).
		Suffix("RETURNING " + columns).
		ToSql()
	if err != nil {
		return domain.News{}, fmt.Errorf("build insert news query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return domain.News{}, postgres.MapError(err, "news", 0)
	}
	return rw.toDomain(), nil
}

// Delete removes a news item.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	query, args, err := postgres.Psql.
		Delete("news").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete news query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "news", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "news", id)
	}
	return nil
}
