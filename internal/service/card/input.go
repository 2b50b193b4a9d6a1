package card

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

const (
	maxTextLength     = 1000
	maxImageURLLength = 2048
)

// CreateInput holds the parameters for creating a card.
type CreateInput struct {
	DeckID   int64
	Front    string
	Back     string
	Example  *string
	ImageURL *string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var verr domain.ValidationError
	validateDeckID(&verr, i.DeckID)
	validateContent(&verr, i.Front, i.Back, i.Example, i.ImageURL)
	return verr.Err()
}

// UpdateInput replaces the content of a card.
type UpdateInput struct {
	DeckID   int64
	CardID   int64
	Front    string
	Back     string
	Example  *string // nil or blank clears
	ImageURL *string // nil or blank clears
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var verr domain.ValidationError
	validateDeckID(&verr, i.DeckID)
	validateCardID(&verr, i.CardID)
	validateContent(&verr, i.Front, i.Back, i.Example, i.ImageURL)
	return verr.Err()
}

// DeleteInput identifies a card to delete.
type DeleteInput struct {
	DeckID int64
	CardID int64
}

// Validate checks all fields and collects all errors.
func (i DeleteInput) Validate() error {
	var verr domain.ValidationError
	validateDeckID(&verr, i.DeckID)
	validateCardID(&verr, i.CardID)
	return verr.Err()
}

// SetKnownInput marks a card as known or unknown.
type SetKnownInput struct {
	DeckID int64
	CardID int64
	Known  bool
}

// Validate checks all fields and collects all errors.
func (i SetKnownInput) Validate() error {
	var verr domain.ValidationError
	validateDeckID(&verr, i.DeckID)
	validateCardID(&verr, i.CardID)
	return verr.Err()
}

// PracticeInput selects the pool a practice card is drawn from.
type PracticeInput struct {
	DeckID      int64
	UnknownOnly bool
}

// Validate checks all fields and collects all errors.
func (i PracticeInput) Validate() error {
	var verr domain.ValidationError
	validateDeckID(&verr, i.DeckID)
	return verr.Err()
}

func validateDeckID(verr *domain.ValidationError, id int64) {
	if id <= 0 {
		verr.Add("deck_id", "must be a positive integer")
	}
}

func validateCardID(verr *domain.ValidationError, id int64) {
	if id <= 0 {
		verr.Add("card_id", "must be a positive integer")
	}
}

func validateContent(verr *domain.ValidationError, front, back string, example, imageURL *string) {
	validateText(verr, "front", front, true)
	validateText(verr, "back", back, true)
	if example != nil {
		validateText(verr, "example", *example, false)
	}
	if imageURL != nil {
		if u := strings.TrimSpace(*imageURL); u != "" {
			if utf8.RuneCountInString(u) > maxImageURLLength {
				verr.Add("image_url", "max 2048 characters")
			} else if parsed, err := url.Parse(u); err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
				verr.Add("image_url", "must be an http or https URL")
			}
		}
	}
}

func validateText(verr *domain.ValidationError, field, value string, required bool) {
	value = strings.TrimSpace(value)
	if required && value == "" {
		verr.Add(field, "required")
		return
	}
	if utf8.RuneCountInString(value) > maxTextLength {
		verr.Add(field, "max 1000 characters")
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
