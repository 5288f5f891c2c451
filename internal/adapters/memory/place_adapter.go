package memory

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tomiwaje/stayfinder/internal/domain/entities"
	"github.com/tomiwaje/stayfinder/internal/domain/repositories"
	apperrors "github.com/tomiwaje/stayfinder/pkg/errors"
)

// PlaceAdapter implements place persistence in process memory.
type PlaceAdapter struct {
	store *store[*entities.Place]
}

// NewPlaceAdapter creates a new in-memory place adapter.
func NewPlaceAdapter() *PlaceAdapter {
	return &PlaceAdapter{
		store: newStore(func(p *entities.Place) *entities.Place { return p.Clone() }),
	}
}

var _ repositories.PlaceRepository = (*PlaceAdapter)(nil)

// Create stores a new place, assigning an identifier if absent.
func (a *PlaceAdapter) Create(ctx context.Context, place *entities.Place) error {
	if place == nil {
		return apperrors.NewInternalError("place is nil", fmt.Errorf("place is nil"))
	}
	if place.ID == "" {
		place.ID = uuid.New().String()
	}
	if !a.store.add(place.ID, place) {
		return apperrors.NewConflictError(fmt.Sprintf("place id %q already exists", place.ID))
	}
	return nil
}

// GetByID retrieves a place by ID.
func (a *PlaceAdapter) GetByID(ctx context.Context, id string) (*entities.Place, error) {
	place, ok := a.store.get(id)
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("place %q not found", id))
	}
	return place, nil
}

// List retrieves all places in insertion order.
func (a *PlaceAdapter) List(ctx context.Context) ([]*entities.Place, error) {
	return a.store.list(), nil
}

// ListByOwner retrieves all places owned by a user.
func (a *PlaceAdapter) ListByOwner(ctx context.Context, ownerID string) ([]*entities.Place, error) {
	owned := make([]*entities.Place, 0)
	for _, place := range a.store.list() {
		if place.OwnerID == ownerID {
			owned = append(owned, place)
		}
	}
	return owned, nil
}

// Update replaces a stored place.
func (a *PlaceAdapter) Update(ctx context.Context, place *entities.Place) error {
	if place == nil {
		return apperrors.NewInternalError("place is nil", fmt.Errorf("place is nil"))
	}
	if !a.store.update(place.ID, place) {
		return apperrors.NewNotFoundError(fmt.Sprintf("place %q not found", place.ID))
	}
	return nil
}
