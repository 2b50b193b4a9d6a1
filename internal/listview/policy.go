// Package listview decides how a paginated card list is presented: an empty
// state with its cause, a single page without navigation, or several pages
// with navigation text above and below the rows.
package listview

import (
	"fmt"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
	"github.com/heartmarshall/flashdeck-backend/internal/pagination"
)

// Mode is the display state of a list. Exactly one applies.
type Mode string

const (
	ModeNoItems    Mode = "NO_ITEMS"
	ModeSinglePage Mode = "SINGLE_PAGE"
	ModeMultiPage  Mode = "MULTI_PAGE"
)

func (m Mode) String() string { return string(m) }

// Input is everything Decide looks at.
type Input struct {
	State    pagination.State
	Criteria domain.FilterCriteria

	// CollectionSize is the number of cards in the deck without any filter.
	// Only consulted when State has no items.
	CollectionSize int64
}

// Display is the presentation of one list page.
type Display struct {
	Mode         Mode
	IsEmpty      bool
	EmptyReason  domain.EmptyReason // set only in ModeNoItems
	EmptyMessage string
	TopInfo      string
	BottomInfo   string
	CompactInfo  string
	ShowControls bool
}

// Decide picks the display state for in.
//
// Modes are checked in order: no items, a single page, several pages. The
// empty-state message has a single slot; pagination text is produced only
// when there is more than one page, and then the top and bottom variants are
// identical.
func Decide(in Input) Display {
	s := in.State

	switch {
	case s.TotalItems == 0:
		reason := emptyReason(in.Criteria, in.CollectionSize)
		return Display{
			Mode:         ModeNoItems,
			IsEmpty:      true,
			EmptyReason:  reason,
			EmptyMessage: EmptyMessage(reason),
		}
	case s.TotalPages <= 1:
		return Display{Mode: ModeSinglePage}
	default:
		info := fmt.Sprintf("Showing %d–%d of %d, page %d of %d",
			s.FirstItem(), s.LastItem(), s.TotalItems, s.CurrentPage+1, s.TotalPages)
		return Display{
			Mode:         ModeMultiPage,
			TopInfo:      info,
			BottomInfo:   info,
			CompactInfo:  fmt.Sprintf("%d / %d", s.CurrentPage+1, s.TotalPages),
			ShowControls: true,
		}
	}
}

func emptyReason(c domain.FilterCriteria, collectionSize int64) domain.EmptyReason {
	switch {
	case c.HasSearch():
		return domain.EmptyReasonSearchNoMatch
	case collectionSize == 0:
		return domain.EmptyReasonCollectionEmpty
	case c.Status() == domain.StatusKnownOnly:
		return domain.EmptyReasonAllKnownHidden
	case c.Status() == domain.StatusUnknownOnly:
		return domain.EmptyReasonAllUnknownHidden
	default:
		// Unfiltered and still zero rows: the deck emptied between counts.
		return domain.EmptyReasonCollectionEmpty
	}
}

// EmptyMessage returns the user-facing text for reason.
func EmptyMessage(reason domain.EmptyReason) string {
	switch reason {
	case domain.EmptyReasonSearchNoMatch:
		return "No cards match your search."
	case domain.EmptyReasonCollectionEmpty:
		return "This deck has no cards yet."
	case domain.EmptyReasonAllKnownHidden:
		return "You have not marked any card in this deck as known."
	case domain.EmptyReasonAllUnknownHidden:
		return "Every card in this deck is marked as known."
	default:
		return ""
	}
}
