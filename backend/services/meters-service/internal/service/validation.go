package service

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/araddon/dateparse"
	"github.com/google/uuid"

	"meterbook/backend/services/meters-service/internal/repository"
)

const maxNameLength = 120

// ErrNotFound is returned when the requested row does not exist for the caller.
var ErrNotFound = repository.ErrNotFound

// ValidationError rejects user input before anything is written.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s %s", e.Field, e.Message)
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err carries a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func requiredName(field, raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", invalid(field, "is required")
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return "", invalid(field, fmt.Sprintf("must be at most %d characters", maxNameLength))
	}
	return name, nil
}

func parseID(field, raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, invalid(field, "is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, invalid(field, "must be a valid id")
	}
	return id, nil
}

func optionalID(field string, raw *string) (*uuid.UUID, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	id, err := parseID(field, *raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// optionalText trims the value and turns blanks into NULL.
func optionalText(raw *string) *string {
	if raw == nil {
		return nil
	}
	v := strings.TrimSpace(*raw)
	if v == "" {
		return nil
	}
	return &v
}

// parseReadingDate accepts the formats browsers and API clients send (2024-01-31,
// RFC 3339, "2024-01-31 08:00"...). Dates without a zone are read as UTC.
func parseReadingDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, invalid("reading_date", "is required")
	}
	t, err := dateparse.ParseIn(raw, time.UTC)
	if err != nil {
		return time.Time{}, invalid("reading_date", "is not a valid date")
	}
	return t.UTC(), nil
}

func requiredValue(raw *float64) (float64, error) {
	if raw == nil {
		return 0, invalid("value", "is required")
	}
	if math.IsNaN(*raw) || math.IsInf(*raw, 0) {
		return 0, invalid("value", "must be a finite number")
	}
	return *raw, nil
}
