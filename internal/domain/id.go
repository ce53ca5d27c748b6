package domain

import (
	"github.com/google/uuid"

	"github.com/TalentX-App/vacancies/internal/apperr"
)

// NewID generates a fresh vacancy identifier.
func NewID() string {
	return uuid.NewString()
}

// ParseID checks that s is a well-formed vacancy identifier and returns
// its canonical form. A malformed identifier is a validation failure,
// not a lookup miss: it cannot address any record.
func ParseID(s string) (string, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return "", apperr.Invalid("id", "malformed vacancy id")
	}
	return u.String(), nil
}
