package pagination

import (
	"context"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

// FetchFunc loads the rows of one page window.
type FetchFunc[T any] func(ctx context.Context, page domain.PageRequest) ([]T, error)

// Load fetches the current page of s.
//
// The count behind s and the fetch are separate statements, so rows can
// disappear in between (a delete on the last page). When the fetch comes back
// empty although s still reports rows and the page is not the first, Load
// assumes the row set now ends before the current page, re-clamps once to the
// new last page and fetches again.
// It never retries more than once. A page that is still empty after that is
// reported with an empty state (no items, no pages).
//
// A short page (fewer rows than the page size) is the last page, so the
// returned state is settled to the rows that actually exist.
//
// Fetch errors are returned unchanged.
func Load[T any](ctx context.Context, s State, fetch FetchFunc[T]) ([]T, State, error) {
	if s.TotalItems == 0 {
		return []T{}, s, nil
	}

	rows, err := fetch(ctx, s.Request())
	if err != nil {
		return nil, s, err
	}
	if len(rows) > 0 {
		return rows, s.settle(len(rows)), nil
	}
	if s.CurrentPage == 0 {
		return rows, s.empty(), nil
	}

	retry := s.shrunkBefore(s.CurrentPage)
	reclampTotal.Inc()

	rows, err = fetch(ctx, retry.Request())
	if err != nil {
		return nil, retry, err
	}
	if len(rows) == 0 {
		return rows, retry.empty(), nil
	}

	return rows, retry.settle(len(rows)), nil
}

// shrunkBefore returns s with the row set assumed to end before page: the
// page count drops to page, the total is capped accordingly and the current
// page becomes the new last page.
func (s State) shrunkBefore(page int) State {
	out := s
	out.TotalPages = page
	if capped := int64(page) * int64(s.PageSize); out.TotalItems > capped {
		out.TotalItems = capped
	}
	out.CurrentPage = out.Clamp(page - 1)
	return out
}

// settle trims s to end at the current page when that page holds fewer than
// PageSize rows.
func (s State) settle(rows int) State {
	if rows >= s.PageSize {
		return s
	}
	return Calculate(int64(s.Offset()+rows), s.PageSize, s.CurrentPage)
}

func (s State) empty() State {
	return Calculate(0, s.PageSize, 0)
}
