package domain

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

func requireText(field, value string, maxLen int) error {
	if strings.TrimSpace(value) == "" {
		return NewValidationError(field, "is required", nil)
	}
	return limitText(field, value, maxLen)
}

func limitText(field, value string, maxLen int) error {
	if utf8.RuneCountInString(value) > maxLen {
		return NewValidationError(field, "is too long", nil)
	}
	return nil
}

// validateEmail accepts a bare address (no display name).
func validateEmail(field, email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return NewValidationError(field, "is not a valid email address", ErrInvalidEmail)
	}
	return nil
}
