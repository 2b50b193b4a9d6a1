// Package pagination derives page metadata from a row count and keeps a
// requested page index inside the range of existing pages.
package pagination

import "github.com/heartmarshall/flashdeck-backend/internal/domain"

// State is the derived pagination of one listing. It is never persisted.
type State struct {
	TotalItems  int64
	PageSize    int
	TotalPages  int
	CurrentPage int // zero-based, clamped
}

// Calculate computes total pages and clamps requested into
// [0, max(0, totalPages-1)]. pageSize must be positive; callers validate it
// through domain.NewPageRequest or configuration.
//
// Examples (pageSize 20):
//   - total 0,  page 5  -> 0 pages, page 0
//   - total 45, page 10 -> 3 pages, page 2
//   - total 45, page -1 -> 3 pages, page 0
func Calculate(totalItems int64, pageSize, requested int) State {
	if totalItems < 0 {
		totalItems = 0
	}

	s := State{
		TotalItems: totalItems,
		PageSize:   pageSize,
		TotalPages: TotalPages(totalItems, pageSize),
	}
	s.CurrentPage = s.Clamp(requested)

	return s
}

// TotalPages returns ceil(total / pageSize), 0 when total is 0.
func TotalPages(total int64, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}

// Clamp maps any page index into the valid range of s.
func (s State) Clamp(page int) int {
	if page < 0 || s.TotalPages == 0 {
		return 0
	}
	if page >= s.TotalPages {
		return s.TotalPages - 1
	}
	return page
}

// Request returns the window of the current page.
func (s State) Request() domain.PageRequest {
	return domain.PageRequest{Index: s.CurrentPage, Size: s.PageSize}
}

// Offset returns the OFFSET of the current page.
func (s State) Offset() int {
	return s.CurrentPage * s.PageSize
}

// FirstItem returns the 1-based position of the first row on the current
// page, 0 when there are no rows.
func (s State) FirstItem() int64 {
	if s.TotalItems == 0 {
		return 0
	}
	return int64(s.Offset()) + 1
}

// LastItem returns the 1-based position of the last row on the current page.
func (s State) LastItem() int64 {
	last := int64(s.Offset() + s.PageSize)
	if last > s.TotalItems {
		return s.TotalItems
	}
	return last
}

func (s State) HasPrev() bool { return s.CurrentPage > 0 }

func (s State) HasNext() bool { return s.CurrentPage+1 < s.TotalPages }
