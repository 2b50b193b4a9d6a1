// Package dataloader provides per-request DataLoaders that batch per-deck
// lookups of one response into single SQL calls. DataLoaders call
// repositories directly, bypassing the service layer; keys always come from
// an owner-scoped listing.
package dataloader

import (
	"context"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type deckStatsRepo interface {
	StatsByIDs(ctx context.Context, deckIDs []int64) ([]domain.DeckStats, error)
}

// Repos holds all repositories required by DataLoaders.
type Repos struct {
	Deck deckStatsRepo
}

// Loaders contains the per-request DataLoaders. Created via NewLoaders.
type Loaders struct {
	DeckStatsByID *dataloader.Loader[int64, domain.DeckStats]
}

// NewLoaders creates a new set of DataLoaders backed by the given repositories.
// Must be called per-request (loaders cache results within a single request).
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		DeckStatsByID: newLoader(newDeckStatsBatchFn(repos.Deck)),
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[int64, V]) *dataloader.Loader[int64, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[int64, V](wait),
		dataloader.WithBatchCapacity[int64, V](maxBatch),
	)
}

// LoadDeckStats resolves the stats of every deck in ids with one batch and
// returns them in the order of ids.
func (l *Loaders) LoadDeckStats(ctx context.Context, ids []int64) ([]domain.DeckStats, error) {
	thunk := l.DeckStatsByID.LoadMany(ctx, ids)
	stats, errs := thunk()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return stats, nil
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is the middleware configured?")
	}
	return l
}
