package rest

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers groups the handlers mounted by NewMux.
type Handlers struct {
	Health *HealthHandler
	Deck   *DeckHandler
	Card   *CardHandler
	News   *NewsHandler
}

// NewMux registers all routes on a new ServeMux.
func NewMux(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /decks", h.Deck.List)
	mux.HandleFunc("POST /decks", h.Deck.Create)
	mux.HandleFunc("GET /decks/{deckID}", h.Deck.Get)
	mux.HandleFunc("PATCH /decks/{deckID}", h.Deck.Rename)
	mux.HandleFunc("DELETE /decks/{deckID}", h.Deck.Delete)

	mux.HandleFunc("GET /decks/{deckID}/cards", h.Card.List)
	mux.HandleFunc("POST /decks/{deckID}/cards", h.Card.Create)
	mux.HandleFunc("PUT /decks/{deckID}/cards/{cardID}", h.Card.Update)
	mux.HandleFunc("DELETE /decks/{deckID}/cards/{cardID}", h.Card.Delete)
	mux.HandleFunc("PUT /decks/{deckID}/cards/{cardID}/known", h.Card.SetKnown)
	mux.HandleFunc("GET /decks/{deckID}/practice", h.Card.Practice)

	mux.HandleFunc("GET /news", h.News.List)
	mux.HandleFunc("POST /news", h.News.Publish)
	mux.HandleFunc("DELETE /news/{newsID}", h.News.Delete)

	return mux
}
