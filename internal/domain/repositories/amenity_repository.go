package repositories

import (
	"context"

	"github.com/tomiwaje/stayfinder/internal/domain/entities"
)

// AmenityRepository defines the interface for amenity storage operations
type AmenityRepository interface {
	// Create stores a new amenity under its identifier
	Create(ctx context.Context, amenity *entities.Amenity) error

	// GetByID retrieves an amenity by ID
	GetByID(ctx context.Context, id string) (*entities.Amenity, error)

	// List retrieves all amenities in insertion order
	List(ctx context.Context) ([]*entities.Amenity, error)

	// Update replaces a stored amenity
	Update(ctx context.Context, amenity *entities.Amenity) error
}
