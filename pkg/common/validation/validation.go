// Package validation provides common validation utilities for the gopermit library.
package validation

import (
	gperrors "github.com/vnykmshr/gopermit/pkg/common/errors"
)

// ValidatePositive validates that an integer value is positive (> 0).
// Returns a ValidationError if the value is not positive.
func ValidatePositive(module, field string, value int) error {
	if value <= 0 {
		return gperrors.NewValidationError(module, field, value, "must be positive").
			WithHint("value must be greater than 0")
	}
	return nil
}

// ValidateNonNegative validates that an integer value is non-negative (>= 0).
// Returns a ValidationError if the value is negative.
func ValidateNonNegative(module, field string, value int) error {
	if value < 0 {
		return gperrors.NewValidationError(module, field, value, "cannot be negative").
			WithHint("use 0 or a positive value")
	}
	return nil
}

// ValidateRange validates that an integer value lies within [min, max].
// Returns a ValidationError if the value is outside the range.
func ValidateRange(module, field string, value, min, max int) error {
	if value < min || value > max {
		return gperrors.NewValidationError(module, field, value, "out of range").
			WithHint("value must be between the configured bounds")
	}
	return nil
}
