package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/tomiwaje/stayfinder/internal/domain/entities"
	"github.com/tomiwaje/stayfinder/internal/domain/providers"
	"github.com/tomiwaje/stayfinder/internal/domain/repositories"
	apperrors "github.com/tomiwaje/stayfinder/pkg/errors"
)

// Facade is the single entry point for business operations. It owns one
// repository per entity kind and enforces the cross-entity invariants no
// single repository can enforce alone: every reference field must resolve
// to a live entity, and user emails stay unique across the live set.
//
// Every operation runs under one mutex, so a call observes the store only
// between complete operations and no partial write is ever visible.
type Facade struct {
	mu sync.Mutex

	userRepo    repositories.UserRepository
	placeRepo   repositories.PlaceRepository
	amenityRepo repositories.AmenityRepository
	reviewRepo  repositories.ReviewRepository

	eventBus providers.EventBus
}

// NewFacade creates a facade over the given repositories.
func NewFacade(
	userRepo repositories.UserRepository,
	placeRepo repositories.PlaceRepository,
	amenityRepo repositories.AmenityRepository,
	reviewRepo repositories.ReviewRepository,
) *Facade {
	return &Facade{
		userRepo:    userRepo,
		placeRepo:   placeRepo,
		amenityRepo: amenityRepo,
		reviewRepo:  reviewRepo,
	}
}

// SetEventBus configures an optional event bus. When set, the facade
// publishes a listing event after every successful mutation.
func (f *Facade) SetEventBus(eventBus providers.EventBus) {
	f.eventBus = eventBus
}

// stamp assigns a fresh identifier and creation timestamps.
func stamp(id *string, createdAt, updatedAt *time.Time) {
	now := time.Now().UTC()
	*id = uuid.New().String()
	*createdAt = now
	*updatedAt = now
}

// resolveOwner fails with a not-found error when the owner id does not
// resolve to a live user.
func (f *Facade) resolveOwner(ctx context.Context, ownerID string) (*entities.User, error) {
	if ownerID == "" {
		return nil, apperrors.NewValidationError("owner_id is required")
	}
	owner, err := f.userRepo.GetByID(ctx, ownerID)
	if err != nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("owner %q not found", ownerID))
	}
	return owner, nil
}

// resolveAmenities fails with a not-found error naming the first amenity id
// that does not resolve. Used identically by the create and update paths.
func (f *Facade) resolveAmenities(ctx context.Context, ids []string) error {
	for _, id := range ids {
		if _, err := f.amenityRepo.GetByID(ctx, id); err != nil {
			return apperrors.NewNotFoundError(fmt.Sprintf("amenity %q not found", id))
		}
	}
	return nil
}

// publishEvent publishes a listing event when an event bus is configured.
// Publishing is best effort and never fails the operation.
func (f *Facade) publishEvent(ctx context.Context, kind entities.EntityKind, entityID string, eventType entities.ListingEventType) {
	if f.eventBus == nil {
		return
	}
	event := entities.NewListingEvent(kind, entityID, eventType, nil)
	if err := f.eventBus.Publish(ctx, providers.EventChannelListingUpdates, event); err != nil {
		log.Warn().Err(err).Str("kind", string(kind)).Str("entity_id", entityID).Msg("Failed to publish listing event")
	}
}
