package domain

import (
	"strings"
	"unicode/utf8"
)

// MaxSearchLength bounds the search text accepted by NewFilterCriteria (in runes).
const MaxSearchLength = 200

// FilterCriteria selects the cards of one deck for a listing.
// It is a value: With* methods return a modified copy.
type FilterCriteria struct {
	deckID int64
	search string
	status StatusFilter
}

// NewFilterCriteria validates and builds a FilterCriteria.
// Search is trimmed; blank search means "no search". An empty status means StatusAll.
func NewFilterCriteria(deckID int64, search string, status StatusFilter) (FilterCriteria, error) {
	var verr ValidationError

	if deckID <= 0 {
		verr.Add("deck_id", "must be a positive integer")
	}

	search = strings.TrimSpace(search)
	if utf8.RuneCountInString(search) > MaxSearchLength {
		verr.Add("search", "max 200 characters")
	}

	if status == "" {
		status = StatusAll
	}
	if !status.IsValid() {
		verr.Add("status", "must be one of ALL, KNOWN_ONLY, UNKNOWN_ONLY")
	}

	if err := verr.Err(); err != nil {
		return FilterCriteria{}, err
	}

	return FilterCriteria{deckID: deckID, search: search, status: status}, nil
}

func (f FilterCriteria) DeckID() int64 { return f.deckID }
func (f FilterCriteria) Search() string { return f.search }
func (f FilterCriteria) Status() StatusFilter { return f.status }
func (f FilterCriteria) HasSearch() bool { return f.search != "" }

// IsUnfiltered reports whether the criteria match every card of the deck.
func (f FilterCriteria) IsUnfiltered() bool {
	return !f.HasSearch() && f.status == StatusAll
}

// WithSearch returns a copy with the search text replaced.
func (f FilterCriteria) WithSearch(search string) (FilterCriteria, error) {
	return NewFilterCriteria(f.deckID, search, f.status)
}

// WithStatus returns a copy with the status filter replaced.
func (f FilterCriteria) WithStatus(status StatusFilter) (FilterCriteria, error) {
	return NewFilterCriteria(f.deckID, f.search, status)
}

// Unfiltered returns criteria for the same deck without search or status filter.
func (f FilterCriteria) Unfiltered() FilterCriteria {
	return FilterCriteria{deckID: f.deckID, status: StatusAll}
}

// PageRequest addresses one fixed-size window of an ordered listing.
// Index is zero-based and may be out of range; it is clamped before use.
type PageRequest struct {
	Index int
	Size  int
}

// NewPageRequest validates the page size. The index is not range-checked here.
func NewPageRequest(index, size int) (PageRequest, error) {
	if size <= 0 {
		return PageRequest{}, NewValidationError("page_size", "must be positive")
	}
	return PageRequest{Index: index, Size: size}, nil
}

// Limit returns the LIMIT of the window.
func (p PageRequest) Limit() int { return p.Size }

// Offset returns the OFFSET of the window. A negative index yields 0.
func (p PageRequest) Offset() int {
	if p.Index < 0 {
		return 0
	}
	return p.Index * p.Size
}
