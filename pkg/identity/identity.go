// Package identity hands out the opaque identifiers used for book instances
// and parses the numeric and opaque ids that arrive in request paths.
package identity

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/locallibrary/catalog/pkg/errcodes"
)

// NewInstanceID returns a fresh random (v4) UUID in canonical form. No
// collision check is made.
func NewInstanceID() string {
	return uuid.New().String()
}

// ParseInstanceID returns the canonical form of raw. Anything that isn't a
// UUID can't name a stored instance, so it is reported as not found.
func ParseInstanceID(raw, resource string) (string, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", errcodes.NotFound(resource)
	}
	return id.String(), nil
}

// ParseSequentialID parses a positive integer path id.
func ParseSequentialID(raw, resource string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, errcodes.NotFound(resource)
	}
	return id, nil
}
