package rest

import (
	"time"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
	"github.com/heartmarshall/flashdeck-backend/internal/listview"
	"github.com/heartmarshall/flashdeck-backend/internal/pagination"
)

type paginationResponse struct {
	TotalItems  int64 `json:"totalItems"`
	PageSize    int   `json:"pageSize"`
	TotalPages  int   `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
	HasPrev     bool  `json:"hasPrev"`
	HasNext     bool  `json:"hasNext"`
}

func toPaginationResponse(s pagination.State) paginationResponse {
	return paginationResponse{
		TotalItems:  s.TotalItems,
		PageSize:    s.PageSize,
		TotalPages:  s.TotalPages,
		CurrentPage: s.CurrentPage,
		HasPrev:     s.HasPrev(),
		HasNext:     s.HasNext(),
	}
}

type deckResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CardCount   *int      `json:"cardCount,omitempty"`
	KnownCount  *int      `json:"knownCount,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toDeckResponse(d domain.Deck) deckResponse {
	return deckResponse{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (r deckResponse) withStats(s domain.DeckStats) deckResponse {
	r.CardCount = &s.CardCount
	r.KnownCount = &s.KnownCount
	return r
}

type deckListResponse struct {
	Decks      []deckResponse     `json:"decks"`
	Pagination paginationResponse `json:"pagination"`
}

type cardResponse struct {
	ID        int64     `json:"id"`
	DeckID    int64     `json:"deckId"`
	Front     string    `json:"front"`
	Back      string    `json:"back"`
	Example   *string   `json:"example,omitempty"`
	ImageURL  *string   `json:"imageUrl,omitempty"`
	Known     *bool     `json:"known,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toCardResponse(c domain.Card) cardResponse {
	return cardResponse{
		ID:        c.ID,
		DeckID:    c.DeckID,
		Front:     c.Front,
		Back:      c.Back,
		Example:   c.Example,
		ImageURL:  c.ImageURL,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toCardRowResponse(row domain.CardRow) cardResponse {
	resp := toCardResponse(row.Card)
	resp.Known = &row.Known
	return resp
}

type displayResponse struct {
	Mode         string `json:"mode"`
	IsEmpty      bool   `json:"isEmpty"`
	EmptyReason  string `json:"emptyReason,omitempty"`
	EmptyMessage string `json:"emptyMessage,omitempty"`
	TopInfo      string `json:"topInfo,omitempty"`
	BottomInfo   string `json:"bottomInfo,omitempty"`
	CompactInfo  string `json:"compactInfo,omitempty"`
	ShowControls bool   `json:"showControls"`
}

func toDisplayResponse(d listview.Display) displayResponse {
	return displayResponse{
		Mode:         d.Mode.String(),
		IsEmpty:      d.IsEmpty,
		EmptyReason:  d.EmptyReason.String(),
		EmptyMessage: d.EmptyMessage,
		TopInfo:      d.TopInfo,
		BottomInfo:   d.BottomInfo,
		CompactInfo:  d.CompactInfo,
		ShowControls: d.ShowControls,
	}
}

type filterResponse struct {
	Search string `json:"search"`
	Status string `json:"status"`
}

type cardListResponse struct {
	Filter     filterResponse     `json:"filter"`
	Cards      []cardResponse     `json:"cards"`
	Pagination paginationResponse `json:"pagination"`
	Display    displayResponse    `json:"display"`
}

type practiceResponse struct {
	Card     cardResponse `json:"card"`
	PoolSize int64        `json:"poolSize"`
}

type newsResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	AuthorID    string    `json:"authorId"`
	PublishedAt time.Time `json:"publishedAt"`
}

func toNewsResponse(n domain.News) newsResponse {
	return newsResponse{
		ID:          n.ID,
		Title:       n.Title,
		Body:        n.Body,
		AuthorID:    n.AuthorID.String(),
		PublishedAt: n.PublishedAt,
	}
}

type newsListResponse struct {
	Items      []newsResponse     `json:"items"`
	Pagination paginationResponse `json:"pagination"`
}
