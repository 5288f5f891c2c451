package services

import (
	"context"
	"time"

	"github.com/tomiwaje/stayfinder/internal/domain/entities"
	apperrors "github.com/tomiwaje/stayfinder/pkg/errors"
)

// PlaceInput carries the raw fields for creating a place.
type PlaceInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	OwnerID     string   `json:"owner_id"`
	AmenityIDs  []string `json:"amenities"`
}

// UpdatePlaceInput carries the complete set of mutable place fields. The
// owner reference is immutable; a non-empty OwnerID differing from the
// current owner is rejected.
type UpdatePlaceInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	OwnerID     string   `json:"owner_id"`
	AmenityIDs  []string `json:"amenities"`
}

// CreatePlace resolves the owner and every referenced amenity, validates the
// fields, and stores the new place. Nothing is written unless every check
// passes.
func (f *Facade) CreatePlace(ctx context.Context, input PlaceInput) (*entities.Place, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, err := f.resolveOwner(ctx, input.OwnerID); err != nil {
		return nil, err
	}
	if err := f.resolveAmenities(ctx, input.AmenityIDs); err != nil {
		return nil, err
	}

	place, err := entities.NewPlace(input.Title, input.Description, input.Price, input.Latitude, input.Longitude, input.OwnerID)
	if err != nil {
		return nil, err
	}
	if err := place.SetAmenities(input.AmenityIDs); err != nil {
		return nil, err
	}

	stamp(&place.ID, &place.CreatedAt, &place.UpdatedAt)
	if err := f.placeRepo.Create(ctx, place); err != nil {
		return nil, err
	}

	f.publishEvent(ctx, entities.EntityKindPlace, place.ID, entities.ListingEventTypeCreated)
	return place, nil
}

// GetPlace retrieves a place by id.
func (f *Facade) GetPlace(ctx context.Context, id string) (*entities.Place, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.placeRepo.GetByID(ctx, id)
}

// ListPlaces retrieves all places in insertion order.
func (f *Facade) ListPlaces(ctx context.Context) ([]*entities.Place, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.placeRepo.List(ctx)
}

// ListPlacesByOwner retrieves all places owned by a user.
func (f *Facade) ListPlacesByOwner(ctx context.Context, ownerID string) ([]*entities.Place, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, err := f.userRepo.GetByID(ctx, ownerID); err != nil {
		return nil, err
	}
	return f.placeRepo.ListByOwner(ctx, ownerID)
}

// UpdatePlace replaces the mutable fields of a place, re-resolving every
// amenity reference the same way creation does. Validation and resolution
// complete against a copy before anything is written, so a failed update
// leaves the stored place untouched.
func (f *Facade) UpdatePlace(ctx context.Context, id string, input UpdatePlaceInput) (*entities.Place, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	place, err := f.placeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.OwnerID != "" && input.OwnerID != place.OwnerID {
		return nil, apperrors.NewValidationError("owner_id is immutable")
	}
	if err := f.resolveAmenities(ctx, input.AmenityIDs); err != nil {
		return nil, err
	}

	if err := place.SetTitle(input.Title); err != nil {
		return nil, err
	}
	place.SetDescription(input.Description)
	if err := place.SetPrice(input.Price); err != nil {
		return nil, err
	}
	if err := place.SetLatitude(input.Latitude); err != nil {
		return nil, err
	}
	if err := place.SetLongitude(input.Longitude); err != nil {
		return nil, err
	}
	if err := place.SetAmenities(input.AmenityIDs); err != nil {
		return nil, err
	}
	place.UpdatedAt = time.Now().UTC()

	if err := f.placeRepo.Update(ctx, place); err != nil {
		return nil, err
	}

	f.publishEvent(ctx, entities.EntityKindPlace, place.ID, entities.ListingEventTypeUpdated)
	return place, nil
}

// AddPlaceAmenity attaches one existing amenity to a place.
func (f *Facade) AddPlaceAmenity(ctx context.Context, placeID, amenityID string) (*entities.Place, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	place, err := f.placeRepo.GetByID(ctx, placeID)
	if err != nil {
		return nil, err
	}
	if err := f.resolveAmenities(ctx, []string{amenityID}); err != nil {
		return nil, err
	}

	if err := place.AddAmenity(amenityID); err != nil {
		return nil, err
	}
	place.UpdatedAt = time.Now().UTC()

	if err := f.placeRepo.Update(ctx, place); err != nil {
		return nil, err
	}

	f.publishEvent(ctx, entities.EntityKindPlace, place.ID, entities.ListingEventTypeUpdated)
	return place, nil
}
