package entities

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	apperrors "github.com/tomiwaje/stayfinder/pkg/errors"
)

// Field length bounds shared by the entity setters.
const (
	maxNameLength        = 50
	maxTitleLength       = 100
	maxAmenityNameLength = 50
)

// Rating bounds for reviews.
const (
	MinRating = 1
	MaxRating = 5
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// validateRequiredString rejects empty or whitespace-only values and values
// longer than maxLen. Length bounds count characters, not bytes.
func validateRequiredString(field, value string, maxLen int) error {
	if strings.TrimSpace(value) == "" {
		return apperrors.NewValidationError(fmt.Sprintf("%s is required and cannot be empty", field))
	}
	if utf8.RuneCountInString(value) > maxLen {
		return apperrors.NewValidationError(fmt.Sprintf("%s must not exceed %d characters", field, maxLen))
	}
	return nil
}

// validateRange rejects numeric values outside [min, max].
func validateRange(field string, value, min, max float64) error {
	if value < min {
		return apperrors.NewValidationError(fmt.Sprintf("%s must be at least %v", field, min))
	}
	if value > max {
		return apperrors.NewValidationError(fmt.Sprintf("%s must not exceed %v", field, max))
	}
	return nil
}

// validateEmail rejects addresses that do not match local@domain with a
// dotted domain part.
func validateEmail(value string) error {
	if !emailPattern.MatchString(value) {
		return apperrors.NewValidationError("invalid email format")
	}
	return nil
}
