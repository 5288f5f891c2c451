package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/tomiwaje/stayfinder/internal/domain/entities"
	"github.com/tomiwaje/stayfinder/internal/domain/providers"
)

// CacheInvalidationService handles cache invalidation based on events
type CacheInvalidationService struct {
	cache    providers.CacheProvider
	eventBus providers.EventBus
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewCacheInvalidationService creates a new cache invalidation service
func NewCacheInvalidationService(cache providers.CacheProvider, eventBus providers.EventBus) *CacheInvalidationService {
	ctx, cancel := context.WithCancel(context.Background())
	return &CacheInvalidationService{
		cache:    cache,
		eventBus: eventBus,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start begins listening for events and invalidating cache
func (s *CacheInvalidationService) Start() error {
	eventChan, err := s.eventBus.Subscribe(s.ctx, providers.EventChannelListingUpdates)
	if err != nil {
		return fmt.Errorf("failed to subscribe to listing updates: %w", err)
	}

	go s.processEvents(eventChan)
	log.Info().Msg("Cache invalidation service started")
	return nil
}

// Stop stops the cache invalidation service
func (s *CacheInvalidationService) Stop() {
	s.cancel()
	log.Info().Msg("Cache invalidation service stopped")
}

// processEvents processes listing events and invalidates cache accordingly.
// Returns when the subscription channel closes, not only on Stop.
func (s *CacheInvalidationService) processEvents(eventChan <-chan *entities.ListingEvent) {
	for {
		select {
		case <-s.ctx.Done():
			return
		case event, ok := <-eventChan:
			if !ok {
				return
			}
			if event == nil {
				continue
			}
			s.handleEvent(event)
		}
	}
}

// handleEvent purges the cached responses for the entity kind an event
// touched. Review, amenity, and user mutations also purge place caches:
// the per-place review listing is cached under the places segment, and
// place detail responses embed full owner and amenity records.
func (s *CacheInvalidationService) handleEvent(event *entities.ListingEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	log.Debug().
		Str("event_id", event.ID).
		Str("kind", string(event.Kind)).
		Str("type", string(event.EventType)).
		Msg("Processing cache invalidation")

	segments := []string{collectionSegment(event.Kind)}
	switch event.Kind {
	case entities.EntityKindReview, entities.EntityKindAmenity, entities.EntityKindUser:
		segments = append(segments, collectionSegment(entities.EntityKindPlace))
	}

	for _, segment := range segments {
		pattern := fmt.Sprintf("http:cache:%s:*", segment)
		if err := s.cache.DeletePattern(ctx, pattern); err != nil {
			log.Warn().Err(err).Str("pattern", pattern).Msg("Failed to invalidate cache")
		}
	}
}

// InvalidateKind purges every cached response for one entity kind.
func (s *CacheInvalidationService) InvalidateKind(ctx context.Context, kind entities.EntityKind) error {
	pattern := fmt.Sprintf("http:cache:%s:*", collectionSegment(kind))
	if err := s.cache.DeletePattern(ctx, pattern); err != nil {
		return fmt.Errorf("failed to invalidate pattern %s: %w", pattern, err)
	}
	log.Debug().Str("pattern", pattern).Msg("Invalidated cache pattern")
	return nil
}

// collectionSegment maps an entity kind to the API collection segment used
// in cache keys.
func collectionSegment(kind entities.EntityKind) string {
	switch kind {
	case entities.EntityKindUser:
		return "users"
	case entities.EntityKindPlace:
		return "places"
	case entities.EntityKindAmenity:
		return "amenities"
	case entities.EntityKindReview:
		return "reviews"
	default:
		return "misc"
	}
}
