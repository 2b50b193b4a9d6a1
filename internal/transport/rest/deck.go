package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
	"github.com/heartmarshall/flashdeck-backend/internal/service/deck"
	"github.com/heartmarshall/flashdeck-backend/internal/transport/dataloader"
)

type deckService interface {
	Create(ctx context.Context, input deck.CreateInput) (domain.Deck, error)
	Rename(ctx context.Context, input deck.RenameInput) (domain.Deck, error)
	Delete(ctx context.Context, deckID int64) error
	Get(ctx context.Context, deckID int64) (domain.Deck, error)
	List(ctx context.Context, page int) (*deck.ListResult, error)
}

// DeckHandler serves deck REST endpoints. Per-deck stats are resolved
// through the request's DataLoaders.
type DeckHandler struct {
	svc deckService
	log *slog.Logger
}

// NewDeckHandler creates a DeckHandler.
func NewDeckHandler(svc deckService, logger *slog.Logger) *DeckHandler {
	return &DeckHandler{svc: svc, log: logger.With("handler", "deck")}
}

type deckRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// List handles GET /decks?page=.
func (h *DeckHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := queryPage(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.List(r.Context(), page)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	ids := make([]int64, len(result.Decks))
	for i, d := range result.Decks {
		ids[i] = d.ID
	}
	stats, err := dataloader.FromContext(r.Context()).LoadDeckStats(r.Context(), ids)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := deckListResponse{
		Decks:      make([]deckResponse, len(result.Decks)),
		Pagination: toPaginationResponse(result.Pagination),
	}
	for i, d := range result.Decks {
		resp.Decks[i] = toDeckResponse(d).withStats(stats[i])
	}

	writeJSON(w, http.StatusOK, resp)
}

// Create handles POST /decks.
func (h *DeckHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req deckRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	d, err := h.svc.Create(r.Context(), deck.CreateInput{Name: req.Name, Description: req.Description})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toDeckResponse(d).withStats(domain.DeckStats{DeckID: d.ID}))
}

// Get handles GET /decks/{deckID}.
func (h *DeckHandler) Get(w http.ResponseWriter, r *http.Request) {
	deckID, err := pathID(r, "deckID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	d, err := h.svc.Get(r.Context(), deckID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	stats, err := dataloader.FromContext(r.Context()).DeckStatsByID.Load(r.Context(), d.ID)()
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDeckResponse(d).withStats(stats))
}

// Rename handles PATCH /decks/{deckID}.
func (h *DeckHandler) Rename(w http.ResponseWriter, r *http.Request) {
	deckID, err := pathID(r, "deckID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req deckRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	d, err := h.svc.Rename(r.Context(), deck.RenameInput{
		DeckID:      deckID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDeckResponse(d))
}

// Delete handles DELETE /decks/{deckID}.
func (h *DeckHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deckID, err := pathID(r, "deckID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), deckID); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
