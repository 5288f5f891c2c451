package providers

import (
	"context"

	"github.com/tomiwaje/stayfinder/internal/domain/entities"
)

// EventBus defines the interface for publishing and subscribing to
// entity-change events
type EventBus interface {
	// Publish publishes an event to all subscribers
	Publish(ctx context.Context, channel string, event *entities.ListingEvent) error

	// Subscribe subscribes to events on a channel
	Subscribe(ctx context.Context, channel string) (<-chan *entities.ListingEvent, error)

	// Unsubscribe unsubscribes from a channel
	Unsubscribe(ctx context.Context, channel string) error

	// Close closes the event bus and all subscriptions
	Close() error
}

// EventChannelListingUpdates is the channel carrying every entity change.
const EventChannelListingUpdates = "listing:updates"
