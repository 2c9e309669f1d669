// Package models decodes parsed listing records into typed archive entries
// and archive information.
package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrUnexpectedFormat is the root of every decode failure. It means the
	// archiver printed something this package does not understand, which is
	// a tool version mismatch rather than a user error.
	ErrUnexpectedFormat = errors.New("unexpected output format from the archiver")

	// ErrMissingField is returned when an identity or size field is absent.
	ErrMissingField = fmt.Errorf("%w: missing field", ErrUnexpectedFormat)

	// ErrInvalidNumber is returned when a numeric field does not hold an integer.
	ErrInvalidNumber = fmt.Errorf("%w: invalid number", ErrUnexpectedFormat)
)

func missing(record, field string) error {
	return fmt.Errorf("%s: %w %q", record, ErrMissingField, field)
}

func parseInt(field, value string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w %q for %q", ErrInvalidNumber, value, field)
	}
	return n, nil
}

// optionalInt treats a blank value as absent.
func optionalInt(field, value string) (*int64, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	n, err := parseInt(field, value)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func deref(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	return *s, true
}
