package errors

import (
	"math"
	"unicode"
)

// maxIDLength bounds object identifiers read from scene files and requests.
const maxIDLength = 256

// ValidateID validates an object identifier.
//
// The validation rules are intentionally conservative:
//   - No empty identifiers
//   - No control characters or null bytes
//   - Maximum length of 256 characters
func ValidateID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "object id cannot be empty")
	}
	if len(id) > maxIDLength {
		return New(ErrCodeInvalidInput, "object id too long (max %d characters)", maxIDLength)
	}
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "object id %q contains control characters", id)
		}
	}
	return nil
}

// ValidateFinite rejects NaN and infinite values.
func ValidateFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidArgument, "%s must be finite, got %v", name, v)
	}
	return nil
}

// ValidateGap validates a minimum gap length. Gaps must be finite and non-negative.
func ValidateGap(gap float64) error {
	if err := ValidateFinite("min gap", gap); err != nil {
		return err
	}
	if gap < 0 {
		return New(ErrCodeInvalidArgument, "min gap cannot be negative, got %v", gap)
	}
	return nil
}
