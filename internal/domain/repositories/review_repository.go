package repositories

import (
	"context"

	"github.com/tomiwaje/stayfinder/internal/domain/entities"
)

// ReviewRepository defines the interface for review storage operations.
// Review is the only entity kind with a delete operation.
type ReviewRepository interface {
	// Create stores a new review under its identifier
	Create(ctx context.Context, review *entities.Review) error

	// GetByID retrieves a review by ID
	GetByID(ctx context.Context, id string) (*entities.Review, error)

	// List retrieves all reviews in insertion order
	List(ctx context.Context) ([]*entities.Review, error)

	// ListByPlace retrieves all reviews for a place
	ListByPlace(ctx context.Context, placeID string) ([]*entities.Review, error)

	// Update replaces a stored review
	Update(ctx context.Context, review *entities.Review) error

	// Delete removes a review
	Delete(ctx context.Context, id string) error
}
