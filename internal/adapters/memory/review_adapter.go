package memory

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tomiwaje/stayfinder/internal/domain/entities"
	"github.com/tomiwaje/stayfinder/internal/domain/repositories"
	apperrors "github.com/tomiwaje/stayfinder/pkg/errors"
)

// ReviewAdapter implements review persistence in process memory.
type ReviewAdapter struct {
	store *store[*entities.Review]
}

// NewReviewAdapter creates a new in-memory review adapter.
func NewReviewAdapter() *ReviewAdapter {
	return &ReviewAdapter{
		store: newStore(func(r *entities.Review) *entities.Review { return r.Clone() }),
	}
}

var _ repositories.ReviewRepository = (*ReviewAdapter)(nil)

// Create stores a new review, assigning an identifier if absent.
func (a *ReviewAdapter) Create(ctx context.Context, review *entities.Review) error {
	if review == nil {
		return apperrors.NewInternalError("review is nil", fmt.Errorf("review is nil"))
	}
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	if !a.store.add(review.ID, review) {
		return apperrors.NewConflictError(fmt.Sprintf("review id %q already exists", review.ID))
	}
	return nil
}

// GetByID retrieves a review by ID.
func (a *ReviewAdapter) GetByID(ctx context.Context, id string) (*entities.Review, error) {
	review, ok := a.store.get(id)
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("review %q not found", id))
	}
	return review, nil
}

// List retrieves all reviews in insertion order.
func (a *ReviewAdapter) List(ctx context.Context) ([]*entities.Review, error) {
	return a.store.list(), nil
}

// ListByPlace retrieves all reviews for a place.
func (a *ReviewAdapter) ListByPlace(ctx context.Context, placeID string) ([]*entities.Review, error) {
	matched := make([]*entities.Review, 0)
	for _, review := range a.store.list() {
		if review.PlaceID == placeID {
			matched = append(matched, review)
		}
	}
	return matched, nil
}

// Update replaces a stored review.
func (a *ReviewAdapter) Update(ctx context.Context, review *entities.Review) error {
	if review == nil {
		return apperrors.NewInternalError("review is nil", fmt.Errorf("review is nil"))
	}
	if !a.store.update(review.ID, review) {
		return apperrors.NewNotFoundError(fmt.Sprintf("review %q not found", review.ID))
	}
	return nil
}

// Delete removes a review.
func (a *ReviewAdapter) Delete(ctx context.Context, id string) error {
	if !a.store.delete(id) {
		return apperrors.NewNotFoundError(fmt.Sprintf("review %q not found", id))
	}
	return nil
}
