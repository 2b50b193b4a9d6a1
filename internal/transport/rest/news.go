package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
	"github.com/heartmarshall/flashdeck-backend/internal/service/news"
)

type newsService interface {
	Publish(ctx context.Context, input news.PublishInput) (domain.News, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, page int) (*news.ListResult, error)
}

// NewsHandler serves news REST endpoints.
type NewsHandler struct {
	svc newsService
	log *slog.Logger
}

// NewNewsHandler creates a NewsHandler.
func NewNewsHandler(svc newsService, logger *slog.Logger) *NewsHandler {
	return &NewsHandler{svc: svc, log: logger.With("handler", "news")}
}

type publishRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// List handles GET /news?page=.
func (h *NewsHandler) List(w http.ResponseWriter, r *http.Request) {
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

	resp := newsListResponse{
		Items:      make([]newsResponse, len(result.Items)),
		Pagination: toPaginationResponse(result.Pagination),
	}
	for i, n := range result.Items {
		resp.Items[i] = toNewsResponse(n)
	}

	writeJSON(w, http.StatusOK, resp)
}

// Publish handles POST /news (admin).
func (h *NewsHandler) Publish(w http.ResponseWriter, r *http.Request) {
	var req publishRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	n, err := h.svc.Publish(r.Context(), news.PublishInput{Title: req.Title, Body: req.Body})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toNewsResponse(n))
}

// Delete handles DELETE /news/{newsID} (admin).
func (h *NewsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "newsID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
