package handlers

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/example/bizcard/internal/models"
)

// fieldError reports the first violated field, surfaced as a 400 message.
func fieldError(field, message string) error {
	return fmt.Errorf("%s %s", field, message)
}

func validateLength(field, value string, min, max int) error {
	length := utf8.RuneCountInString(strings.TrimSpace(value))
	if length < min {
		return fieldError(field, fmt.Sprintf("must be at least %d characters", min))
	}
	if max > 0 && length > max {
		return fieldError(field, fmt.Sprintf("must be at most %d characters", max))
	}
	return nil
}

func validateEmail(value string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fieldError("email", "is required")
	}
	if _, err := mail.ParseAddress(trimmed); err != nil {
		return fieldError("email", "must be a valid email address")
	}
	return nil
}

func validateImage(image models.Image) error {
	if image.URL == "" {
		return nil
	}
	parsed, err := url.ParseRequestURI(image.URL)
	if err != nil || parsed.Host == "" {
		return fieldError("image.url", "must be a valid URI")
	}
	return nil
}

func validateAddress(address models.Address) error {
	if strings.TrimSpace(address.Country) == "" {
		return fieldError("address.country", "is required")
	}
	if strings.TrimSpace(address.City) == "" {
		return fieldError("address.city", "is required")
	}
	if strings.TrimSpace(address.Street) == "" {
		return fieldError("address.street", "is required")
	}
	if address.HouseNumber <= 0 {
		return fieldError("address.house_number", "is required")
	}
	return nil
}
