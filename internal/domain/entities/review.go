package entities

import (
	"strings"
	"time"

	apperrors "github.com/tomiwaje/stayfinder/pkg/errors"
)

// Review is a rating and comment a user leaves on a place. The user and
// place references are set at creation and immutable thereafter.
type Review struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"`
	UserID    string    `json:"user_id"`
	PlaceID   string    `json:"place_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewReview builds a review from raw field values, validating each
// constrained field.
func NewReview(text string, rating int, userID, placeID string) (*Review, error) {
	if userID == "" {
		return nil, apperrors.NewValidationError("user_id is required")
	}
	if placeID == "" {
		return nil, apperrors.NewValidationError("place_id is required")
	}
	r := &Review{UserID: userID, PlaceID: placeID}
	if err := r.SetText(text); err != nil {
		return nil, err
	}
	if err := r.SetRating(rating); err != nil {
		return nil, err
	}
	return r, nil
}

// SetText validates and assigns the review text. Text has no length bound
// but must not be empty or whitespace-only.
func (r *Review) SetText(value string) error {
	if strings.TrimSpace(value) == "" {
		return apperrors.NewValidationError("text is required and cannot be empty")
	}
	r.Text = value
	return nil
}

// SetRating validates and assigns the rating (1 to 5).
func (r *Review) SetRating(value int) error {
	if value < MinRating || value > MaxRating {
		return apperrors.NewValidationError("rating must be between 1 and 5")
	}
	r.Rating = value
	return nil
}

// Clone returns an independent copy of the review.
func (r *Review) Clone() *Review {
	clone := *r
	return &clone
}
