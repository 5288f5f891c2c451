package services

import (
	"context"
	"time"

	"github.com/tomiwaje/stayfinder/internal/domain/entities"
	apperrors "github.com/tomiwaje/stayfinder/pkg/errors"
)

// ReviewInput carries the raw fields for creating a review.
type ReviewInput struct {
	Text    string `json:"text"`
	Rating  int    `json:"rating"`
	UserID  string `json:"user_id"`
	PlaceID string `json:"place_id"`
}

// UpdateReviewInput carries the mutable review fields. The user and place
// references are immutable; non-empty ids differing from the current values
// are rejected.
type UpdateReviewInput struct {
	Text    string `json:"text"`
	Rating  int    `json:"rating"`
	UserID  string `json:"user_id"`
	PlaceID string `json:"place_id"`
}

// CreateReview resolves the referenced user and place, validates the fields,
// and stores the new review. Nothing is written unless every check passes.
func (f *Facade) CreateReview(ctx context.Context, input ReviewInput) (*entities.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, err := f.userRepo.GetByID(ctx, input.UserID); err != nil {
		return nil, err
	}
	if _, err := f.placeRepo.GetByID(ctx, input.PlaceID); err != nil {
		return nil, err
	}

	review, err := entities.NewReview(input.Text, input.Rating, input.UserID, input.PlaceID)
	if err != nil {
		return nil, err
	}

	stamp(&review.ID, &review.CreatedAt, &review.UpdatedAt)
	if err := f.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	f.publishEvent(ctx, entities.EntityKindReview, review.ID, entities.ListingEventTypeCreated)
	return review, nil
}

// GetReview retrieves a review by id.
func (f *Facade) GetReview(ctx context.Context, id string) (*entities.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.reviewRepo.GetByID(ctx, id)
}

// ListReviews retrieves all reviews in insertion order.
func (f *Facade) ListReviews(ctx context.Context) ([]*entities.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.reviewRepo.List(ctx)
}

// ListReviewsByPlace retrieves all reviews for an existing place.
func (f *Facade) ListReviewsByPlace(ctx context.Context, placeID string) ([]*entities.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, err := f.placeRepo.GetByID(ctx, placeID); err != nil {
		return nil, err
	}
	return f.reviewRepo.ListByPlace(ctx, placeID)
}

// UpdateReview replaces the review's text and rating. The user and place
// references are immutable once set.
func (f *Facade) UpdateReview(ctx context.Context, id string, input UpdateReviewInput) (*entities.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	review, err := f.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.UserID != "" && input.UserID != review.UserID {
		return nil, apperrors.NewValidationError("user_id is immutable")
	}
	if input.PlaceID != "" && input.PlaceID != review.PlaceID {
		return nil, apperrors.NewValidationError("place_id is immutable")
	}

	if err := review.SetText(input.Text); err != nil {
		return nil, err
	}
	if err := review.SetRating(input.Rating); err != nil {
		return nil, err
	}
	review.UpdatedAt = time.Now().UTC()

	if err := f.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}

	f.publishEvent(ctx, entities.EntityKindReview, review.ID, entities.ListingEventTypeUpdated)
	return review, nil
}

// DeleteReview removes a review. Review is the only entity kind exposing a
// delete operation; users, places, and amenities cannot be deleted.
func (f *Facade) DeleteReview(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.reviewRepo.Delete(ctx, id); err != nil {
		return err
	}

	f.publishEvent(ctx, entities.EntityKindReview, id, entities.ListingEventTypeDeleted)
	return nil
}
