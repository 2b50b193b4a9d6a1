package domain

import "strings"

// StatusFilter narrows a card listing by the per-deck known flag.
type StatusFilter string

const (
	StatusAll         StatusFilter = "ALL"
	StatusKnownOnly   StatusFilter = "KNOWN_ONLY"
	StatusUnknownOnly StatusFilter = "UNKNOWN_ONLY"
)

func (s StatusFilter) String() string { return string(s) }

func (s StatusFilter) IsValid() bool {
	switch s {
	case StatusAll, StatusKnownOnly, StatusUnknownOnly:
		return true
	}
	return false
}

// ParseStatusFilter accepts the enum names case-insensitively.
// An empty string means StatusAll.
func ParseStatusFilter(raw string) (StatusFilter, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return StatusAll, nil
	}
	s := StatusFilter(strings.ToUpper(raw))
	if !s.IsValid() {
		return "", NewValidationError("status", "must be one of ALL, KNOWN_ONLY, UNKNOWN_ONLY")
	}
	return s, nil
}

// EmptyReason explains why a filtered card listing has no rows.
type EmptyReason string

const (
	EmptyReasonSearchNoMatch    EmptyReason = "SEARCH_NO_MATCH"
	EmptyReasonCollectionEmpty  EmptyReason = "COLLECTION_EMPTY"
	EmptyReasonAllKnownHidden   EmptyReason = "ALL_KNOWN_HIDDEN"
	EmptyReasonAllUnknownHidden EmptyReason = "ALL_UNKNOWN_HIDDEN"
)

func (r EmptyReason) String() string { return string(r) }

func (r EmptyReason) IsValid() bool {
	switch r {
	case EmptyReasonSearchNoMatch, EmptyReasonCollectionEmpty,
		EmptyReasonAllKnownHidden, EmptyReasonAllUnknownHidden:
		return true
	}
	return false
}

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}
