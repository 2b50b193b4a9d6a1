// Package news publishes and lists site-wide announcements.
package news

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
	"github.com/heartmarshall/flashdeck-backend/internal/pagination"
)

type newsRepo interface {
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, page domain.PageRequest) ([]domain.News, error)
	Create(ctx context.Context, n domain.News) (domain.News, error)
	Delete(ctx context.Context, id int64) error
}

// PageSize is the fixed number of news items per page.
const PageSize = 10

// Service provides news operations.
type Service struct {
	news newsRepo
	log  *slog.Logger
}

// NewService creates a new news service.
func NewService(log *slog.Logger, news newsRepo) *Service {
	return &Service{
		news: news,
		log:  log.With("service", "news"),
	}
}

// PublishInput holds the parameters for publishing a news item.
type PublishInput struct {
	Title string
	Body  string
}

// Validate checks all fields and collects all errors.
func (i PublishInput) Validate() error {
	var verr domain.ValidationError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		verr.Add("title", "required")
	}
	if utf8.RuneCountInString(title) > 200 {
		verr.Add("title", "max 200 characters")
	}

	body := strings.TrimSpace(i.Body)
	if body == "" {
		verr.Add("body", "required")
	}
	if utf8.RuneCountInString(body) > 10000 {
		verr.Add("body", "max 10000 characters")
	}

	return verr.Err()
}

// Publish creates a news item authored by the calling administrator.
func (s *Service) Publish(ctx context.Context, input PublishInput) (domain.News, error) {
	authorID, err := requireAdmin(ctx)
	if err != nil {
		return domain.News{}, err
	}

	if err := input.Validate(); err != nil {
		return domain.News{}, err
	}

	n, err := s.news.Create(ctx, domain.News{
		Title:    strings.TrimSpace(input.Title),
		Body:     strings.TrimSpace(input.Body),
		AuthorID: authorID,
	})
	if err != nil {
		return domain.News{}, fmt.Errorf("create news: %w", err)
	}

	s.log.InfoContext(ctx, "news published",
		slog.String("author_id", authorID.String()),
		slog.Int64("news_id", n.ID),
	)

	return n, nil
}

// Delete removes a news item.
func (s *Service) Delete(ctx context.Context, id int64) error {
	adminID, err := requireAdmin(ctx)
	if err != nil {
		return err
	}

	if id <= 0 {
		return domain.NewValidationError("news_id", "must be a positive integer")
	}

	if err := s.news.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete news: %w", err)
	}

	s.log.InfoContext(ctx, "news deleted",
		slog.String("admin_id", adminID.String()),
		slog.Int64("news_id", id),
	)

	return nil
}

// ListResult is one page of news, newest first.
type ListResult struct {
	Items      []domain.News
	Pagination pagination.State
}

// List returns a page of news. It needs no authentication.
func (s *Service) List(ctx context.Context, page int) (*ListResult, error) {
	total, err := s.news.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count news: %w", err)
	}

	state := pagination.Calculate(total, PageSize, page)

	items, state, err := pagination.Load(ctx, state, s.news.List)
	if err != nil {
		return nil, fmt.Errorf("list news: %w", err)
	}

	return &ListResult{Items: items, Pagination: state}, nil
}
