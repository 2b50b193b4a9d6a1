package domain

import (
	"time"

	"github.com/google/uuid"
)

// News is a site-wide announcement published by an administrator.
type News struct {
	ID          int64
	Title       string
	Body        string
	AuthorID    uuid.UUID
	PublishedAt time.Time
}
