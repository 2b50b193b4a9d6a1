// Package cache keeps short-lived in-process copies of per-deck lookups.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

var lookups = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "flashdeck_known_cache_lookups_total",
	Help: "Known-card id cache lookups by result",
}, []string{"result"})

// KnownSource loads the known card ids of a deck.
type KnownSource interface {
	KnownCardIDs(ctx context.Context, deckID int64) ([]int64, error)
}

// KnownIDs caches KnownSource per deck in an expiring LRU.
//
// A load that overlaps an Invalidate is returned to its caller but not
// cached, so a set read before a write never outlives that write.
type KnownIDs struct {
	source KnownSource
	lru    *expirable.LRU[int64, domain.KnownSet]

	mu  sync.Mutex
	gen uint64 // bumped by every Invalidate
}

// NewKnownIDs creates a cache of at most size decks whose entries expire
// after ttl.
func NewKnownIDs(source KnownSource, size int, ttl time.Duration) *KnownIDs {
	return &KnownIDs{
		source: source,
		lru:    expirable.NewLRU[int64, domain.KnownSet](size, nil, ttl),
	}
}

// KnownSet returns the known card ids of deckID, loading them on a miss.
// Source errors are returned unchanged and nothing is cached. The returned
// set is shared with other readers and must not be modified.
func (c *KnownIDs) KnownSet(ctx context.Context, deckID int64) (domain.KnownSet, error) {
	if set, ok := c.lru.Get(deckID); ok {
		lookups.WithLabelValues("hit").Inc()
		return set, nil
	}
	lookups.WithLabelValues("miss").Inc()

	c.mu.Lock()
	gen := c.gen
	c.mu.Unlock()

	ids, err := c.source.KnownCardIDs(ctx, deckID)
	if err != nil {
		return nil, err
	}

	set := make(domain.KnownSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	c.mu.Lock()
	if c.gen == gen {
		c.lru.Add(deckID, set)
	} else {
		lookups.WithLabelValues("stale").Inc()
	}
	c.mu.Unlock()

	return set, nil
}

// Invalidate drops the cached set of deckID. Call it after a committed write
// that changes cards or known marks of the deck.
func (c *KnownIDs) Invalidate(deckID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.lru.Remove(deckID)
}
