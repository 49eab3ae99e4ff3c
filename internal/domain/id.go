package domain

import (
	"strconv"

	"github.com/google/uuid"
)

// NewID generates a UUIDv7 string for application-owned entities.
func NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// ParseOrderID parses a decimal order id from a path segment.
func ParseOrderID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrValidation("invalid order id %q", s)
	}
	return id, nil
}
