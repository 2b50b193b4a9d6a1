package cardlist

import (
	"github.com/heartmarshall/flashdeck-backend/internal/domain"
	"github.com/heartmarshall/flashdeck-backend/internal/listview"
	"github.com/heartmarshall/flashdeck-backend/internal/pagination"
)

// ListInput holds the parameters of one listing request.
type ListInput struct {
	DeckID int64
	Search string
	Status string // ALL, KNOWN_ONLY, UNKNOWN_ONLY; empty = ALL
	Page   int    // zero-based, clamped
}

// criteria validates the input and builds the filter.
func (i ListInput) criteria() (domain.FilterCriteria, error) {
	status, err := domain.ParseStatusFilter(i.Status)
	if err != nil {
		return domain.FilterCriteria{}, err
	}
	return domain.NewFilterCriteria(i.DeckID, i.Search, status)
}

// ListResult is one rendered page of a deck listing.
type ListResult struct {
	Criteria   domain.FilterCriteria
	Rows       []domain.CardRow
	Pagination pagination.State
	Display    listview.Display
}
