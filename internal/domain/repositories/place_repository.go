package repositories

import (
	"context"

	"github.com/tomiwaje/stayfinder/internal/domain/entities"
)

// PlaceRepository defines the interface for place storage operations
type PlaceRepository interface {
	// Create stores a new place under its identifier
	Create(ctx context.Context, place *entities.Place) error

	// GetByID retrieves a place by ID
	GetByID(ctx context.Context, id string) (*entities.Place, error)

	// List retrieves all places in insertion order
	List(ctx context.Context) ([]*entities.Place, error)

	// ListByOwner retrieves all places owned by a user
	ListByOwner(ctx context.Context, ownerID string) ([]*entities.Place, error)

	// Update replaces a stored place
	Update(ctx context.Context, place *entities.Place) error
}
