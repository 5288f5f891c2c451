package memory

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tomiwaje/stayfinder/internal/domain/entities"
	"github.com/tomiwaje/stayfinder/internal/domain/repositories"
	apperrors "github.com/tomiwaje/stayfinder/pkg/errors"
)

// AmenityAdapter implements amenity persistence in process memory.
type AmenityAdapter struct {
	store *store[*entities.Amenity]
}

// NewAmenityAdapter creates a new in-memory amenity adapter.
func NewAmenityAdapter() *AmenityAdapter {
	return &AmenityAdapter{
		store: newStore(func(a *entities.Amenity) *entities.Amenity { return a.Clone() }),
	}
}

var _ repositories.AmenityRepository = (*AmenityAdapter)(nil)

// Create stores a new amenity, assigning an identifier if absent.
func (a *AmenityAdapter) Create(ctx context.Context, amenity *entities.Amenity) error {
	if amenity == nil {
		return apperrors.NewInternalError("amenity is nil", fmt.Errorf("amenity is nil"))
	}
	if amenity.ID == "" {
		amenity.ID = uuid.New().String()
	}
	if !a.store.add(amenity.ID, amenity) {
		return apperrors.NewConflictError(fmt.Sprintf("amenity id %q already exists", amenity.ID))
	}
	return nil
}

// GetByID retrieves an amenity by ID.
func (a *AmenityAdapter) GetByID(ctx context.Context, id string) (*entities.Amenity, error) {
	amenity, ok := a.store.get(id)
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("amenity %q not found", id))
	}
	return amenity, nil
}

// List retrieves all amenities in insertion order.
func (a *AmenityAdapter) List(ctx context.Context) ([]*entities.Amenity, error) {
	return a.store.list(), nil
}

// Update replaces a stored amenity.
func (a *AmenityAdapter) Update(ctx context.Context, amenity *entities.Amenity) error {
	if amenity == nil {
		return apperrors.NewInternalError("amenity is nil", fmt.Errorf("amenity is nil"))
	}
	if !a.store.update(amenity.ID, amenity) {
		return apperrors.NewNotFoundError(fmt.Sprintf("amenity %q not found", amenity.ID))
	}
	return nil
}
