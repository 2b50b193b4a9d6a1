package deck

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

// CreateInput holds the parameters for creating a deck.
type CreateInput struct {
	Name        string
	Description *string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var verr domain.ValidationError
	validateName(&verr, i.Name)
	validateDescription(&verr, i.Description)
	return verr.Err()
}

// RenameInput holds the parameters for renaming a deck.
type RenameInput struct {
	DeckID      int64
	Name        string
	Description *string // nil or blank clears
}

// Validate checks all fields and collects all errors.
func (i RenameInput) Validate() error {
	var verr domain.ValidationError
	if i.DeckID <= 0 {
		verr.Add("deck_id", "must be a positive integer")
	}
	validateName(&verr, i.Name)
	validateDescription(&verr, i.Description)
	return verr.Err()
}

func validateName(verr *domain.ValidationError, name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		verr.Add("name", "required")
	}
	if utf8.RuneCountInString(name) > 100 {
		verr.Add("name", "max 100 characters")
	}
}

func validateDescription(verr *domain.ValidationError, description *string) {
	if description != nil && utf8.RuneCountInString(strings.TrimSpace(*description)) > 500 {
		verr.Add("description", "max 500 characters")
	}
}
