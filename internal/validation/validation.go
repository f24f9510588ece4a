package validation

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/kingao12/investment-platform/internal/apperrors"
)

// ValidateUUID checks that a string is a non-empty, valid UUID.
// Returns apperrors.ErrEmptyID for a blank ID and apperrors.ErrInvalidUUID
// for a malformed one.
func ValidateUUID(id string) error {
	if id == "" {
		return apperrors.ErrEmptyID
	}
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidUUID, id)
	}
	return nil
}
