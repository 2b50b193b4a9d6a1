package dataloader

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Deck stats by DeckID
// ---------------------------------------------------------------------------

func newDeckStatsBatchFn(repo deckStatsRepo) dataloader.BatchFunc[int64, domain.DeckStats] {
	return func(ctx context.Context, keys []int64) []*dataloader.Result[domain.DeckStats] {
		stats, err := repo.StatsByIDs(ctx, keys)
		if err != nil {
			return errorResults[domain.DeckStats](len(keys), err)
		}

		grouped := make(map[int64]domain.DeckStats, len(keys))
		for _, s := range stats {
			grouped[s.DeckID] = s
		}

		return mapResults(keys, grouped, func(key int64) domain.DeckStats {
			return domain.DeckStats{DeckID: key}
		})
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// errorResults returns n results that all carry err.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []int64, grouped map[int64]V, defaultFn func(key int64) V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn(key)}
		}
	}
	return results
}
