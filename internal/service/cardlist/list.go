package cardlist

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
	"github.com/heartmarshall/flashdeck-backend/internal/listview"
	"github.com/heartmarshall/flashdeck-backend/internal/pagination"
	"github.com/heartmarshall/flashdeck-backend/pkg/ctxutil"
)

// List returns one page of the cards of a deck owned by the caller.
//
// The match count is taken first; rows are fetched only when it is positive.
// Storage errors are returned wrapped but otherwise unchanged.
func (s *Service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	start := time.Now()
	defer func() { listDuration.Observe(time.Since(start).Seconds()) }()

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	criteria, err := input.criteria()
	if err != nil {
		return nil, err
	}

	if _, err := s.decks.GetByID(ctx, userID, criteria.DeckID()); err != nil {
		return nil, fmt.Errorf("get deck: %w", err)
	}

	total, err := s.cards.Count(ctx, criteria)
	if err != nil {
		return nil, fmt.Errorf("count cards: %w", err)
	}

	state := pagination.Calculate(total, s.pageSize, input.Page)

	cards, state, err := pagination.Load(ctx, state, func(ctx context.Context, page domain.PageRequest) ([]domain.Card, error) {
		return s.cards.FetchPage(ctx, criteria, page)
	})
	if err != nil {
		return nil, fmt.Errorf("fetch cards: %w", err)
	}

	rows, err := s.resolveKnown(ctx, criteria, cards)
	if err != nil {
		return nil, err
	}

	collectionSize := state.TotalItems
	if state.TotalItems == 0 && !criteria.IsUnfiltered() {
		collectionSize, err = s.cards.Count(ctx, criteria.Unfiltered())
		if err != nil {
			return nil, fmt.Errorf("count deck cards: %w", err)
		}
	}

	display := listview.Decide(listview.Input{
		State:          state,
		Criteria:       criteria,
		CollectionSize: collectionSize,
	})
	if display.IsEmpty {
		emptyTotal.WithLabelValues(display.EmptyReason.String()).Inc()
	}

	s.log.DebugContext(ctx, "cards listed",
		slog.Int64("deck_id", criteria.DeckID()),
		slog.String("status", criteria.Status().String()),
		slog.Bool("search", criteria.HasSearch()),
		slog.Int64("total", state.TotalItems),
		slog.Int("page", state.CurrentPage),
		slog.String("mode", display.Mode.String()),
	)

	return &ListResult{
		Criteria:   criteria,
		Rows:       rows,
		Pagination: state,
		Display:    display,
	}, nil
}

// resolveKnown sets the known flag of every card. The known set is read at
// most once per page; a status filter already implies the flag.
func (s *Service) resolveKnown(ctx context.Context, criteria domain.FilterCriteria, cards []domain.Card) ([]domain.CardRow, error) {
	rows := make([]domain.CardRow, len(cards))
	if len(cards) == 0 {
		return rows, nil
	}

	var known func(id int64) bool
	switch criteria.Status() {
	case domain.StatusKnownOnly:
		known = func(int64) bool { return true }
	case domain.StatusUnknownOnly:
		known = func(int64) bool { return false }
	default:
		set, err := s.known.KnownSet(ctx, criteria.DeckID())
		if err != nil {
			return nil, fmt.Errorf("known cards: %w", err)
		}
		known = set.Has
	}

	for i, c := range cards {
		rows[i] = domain.CardRow{Card: c, Known: known(c.ID)}
	}
	return rows, nil
}
