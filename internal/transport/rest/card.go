package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
	"github.com/heartmarshall/flashdeck-backend/internal/service/card"
	"github.com/heartmarshall/flashdeck-backend/internal/service/cardlist"
)

type cardListService interface {
	List(ctx context.Context, input cardlist.ListInput) (*cardlist.ListResult, error)
}

type cardService interface {
	Create(ctx context.Context, input card.CreateInput) (domain.Card, error)
	Update(ctx context.Context, input card.UpdateInput) (domain.Card, error)
	Delete(ctx context.Context, input card.DeleteInput) error
	SetKnown(ctx context.Context, input card.SetKnownInput) error
	Practice(ctx context.Context, input card.PracticeInput) (*card.PracticeResult, error)
}

// CardHandler serves the card listing and card REST endpoints of a deck.
type CardHandler struct {
	list  cardListService
	cards cardService
	log   *slog.Logger
}

// NewCardHandler creates a CardHandler.
func NewCardHandler(list cardListService, cards cardService, logger *slog.Logger) *CardHandler {
	return &CardHandler{list: list, cards: cards, log: logger.With("handler", "card")}
}

type cardRequest struct {
	Front    string  `json:"front"`
	Back     string  `json:"back"`
	Example  *string `json:"example"`
	ImageURL *string `json:"imageUrl"`
}

type knownRequest struct {
	Known *bool `json:"known"`
}

// List handles GET /decks/{deckID}/cards?search=&status=&page=.
// Clients reset page to 0 whenever search or status changes.
func (h *CardHandler) List(w http.ResponseWriter, r *http.Request) {
	deckID, err := pathID(r, "deckID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	page, err := queryPage(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	q := r.URL.Query()
	result, err := h.list.List(r.Context(), cardlist.ListInput{
		DeckID: deckID,
		Search: q.Get("search"),
		Status: q.Get("status"),
		Page:   page,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := cardListResponse{
		Filter: filterResponse{
			Search: result.Criteria.Search(),
			Status: result.Criteria.Status().String(),
		},
		Cards:      make([]cardResponse, len(result.Rows)),
		Pagination: toPaginationResponse(result.Pagination),
		Display:    toDisplayResponse(result.Display),
	}
	for i, row := range result.Rows {
		resp.Cards[i] = toCardRowResponse(row)
	}

	writeJSON(w, http.StatusOK, resp)
}

// Create handles POST /decks/{deckID}/cards.
func (h *CardHandler) Create(w http.ResponseWriter, r *http.Request) {
	deckID, err := pathID(r, "deckID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req cardRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.cards.Create(r.Context(), card.CreateInput{
		DeckID:   deckID,
		Front:    req.Front,
		Back:     req.Back,
		Example:  req.Example,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCardResponse(c))
}

// Update handles PUT /decks/{deckID}/cards/{cardID}.
func (h *CardHandler) Update(w http.ResponseWriter, r *http.Request) {
	deckID, cardID, err := cardPath(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req cardRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.cards.Update(r.Context(), card.UpdateInput{
		DeckID:   deckID,
		CardID:   cardID,
		Front:    req.Front,
		Back:     req.Back,
		Example:  req.Example,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCardResponse(c))
}

// Delete handles DELETE /decks/{deckID}/cards/{cardID}.
func (h *CardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deckID, cardID, err := cardPath(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.cards.Delete(r.Context(), card.DeleteInput{DeckID: deckID, CardID: cardID}); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SetKnown handles PUT /decks/{deckID}/cards/{cardID}/known.
func (h *CardHandler) SetKnown(w http.ResponseWriter, r *http.Request) {
	deckID, cardID, err := cardPath(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req knownRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if req.Known == nil {
		handleError(h.log, w, r, domain.NewValidationError("known", "required"))
		return
	}

	err = h.cards.SetKnown(r.Context(), card.SetKnownInput{DeckID: deckID, CardID: cardID, Known: *req.Known})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Practice handles GET /decks/{deckID}/practice?unknownOnly=.
func (h *CardHandler) Practice(w http.ResponseWriter, r *http.Request) {
	deckID, err := pathID(r, "deckID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	unknownOnly, err := queryBool(r, "unknownOnly")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.cards.Practice(r.Context(), card.PracticeInput{DeckID: deckID, UnknownOnly: unknownOnly})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, practiceResponse{
		Card:     toCardRowResponse(result.Card),
		PoolSize: result.Pool,
	})
}

func cardPath(r *http.Request) (deckID, cardID int64, err error) {
	if deckID, err = pathID(r, "deckID"); err != nil {
		return 0, 0, err
	}
	if cardID, err = pathID(r, "cardID"); err != nil {
		return 0, 0, err
	}
	return deckID, cardID, nil
}
