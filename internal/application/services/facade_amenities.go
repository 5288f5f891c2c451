package services

import (
	"context"
	"time"

	"github.com/tomiwaje/stayfinder/internal/domain/entities"
)

// AmenityInput carries the raw fields for creating or updating an amenity.
type AmenityInput struct {
	Name string `json:"name"`
}

// CreateAmenity validates and stores a new amenity. Amenity names need not
// be unique, so there are no cross-entity checks.
func (f *Facade) CreateAmenity(ctx context.Context, input AmenityInput) (*entities.Amenity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	amenity, err := entities.NewAmenity(input.Name)
	if err != nil {
		return nil, err
	}

	stamp(&amenity.ID, &amenity.CreatedAt, &amenity.UpdatedAt)
	if err := f.amenityRepo.Create(ctx, amenity); err != nil {
		return nil, err
	}

	f.publishEvent(ctx, entities.EntityKindAmenity, amenity.ID, entities.ListingEventTypeCreated)
	return amenity, nil
}

// GetAmenity retrieves an amenity by id.
func (f *Facade) GetAmenity(ctx context.Context, id string) (*entities.Amenity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.amenityRepo.GetByID(ctx, id)
}

// ListAmenities retrieves all amenities in insertion order.
func (f *Facade) ListAmenities(ctx context.Context) ([]*entities.Amenity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.amenityRepo.List(ctx)
}

// UpdateAmenity replaces the mutable fields of an amenity.
func (f *Facade) UpdateAmenity(ctx context.Context, id string, input AmenityInput) (*entities.Amenity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	amenity, err := f.amenityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := amenity.SetName(input.Name); err != nil {
		return nil, err
	}
	amenity.UpdatedAt = time.Now().UTC()

	if err := f.amenityRepo.Update(ctx, amenity); err != nil {
		return nil, err
	}

	f.publishEvent(ctx, entities.EntityKindAmenity, amenity.ID, entities.ListingEventTypeUpdated)
	return amenity, nil
}
