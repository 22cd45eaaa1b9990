package util

import (
	"strings"

	"github.com/orbitalabs/restkit/errors"
)

// ValidateNonEmpty validates that value is not empty after trimming whitespace.
// Returns an invalid-input AppError naming the field otherwise.
func ValidateNonEmpty(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.InvalidInput(field, field+" cannot be empty")
	}
	return nil
}
