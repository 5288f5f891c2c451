package entities

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// EntityKind identifies which entity a listing event refers to.
type EntityKind string

const (
	EntityKindUser    EntityKind = "user"
	EntityKindPlace   EntityKind = "place"
	EntityKindAmenity EntityKind = "amenity"
	EntityKindReview  EntityKind = "review"
)

// ListingEventType represents the type of listing event
type ListingEventType string

const (
	ListingEventTypeCreated ListingEventType = "created"
	ListingEventTypeUpdated ListingEventType = "updated"
	ListingEventTypeDeleted ListingEventType = "deleted"
)

// ListingEvent represents a change notification for an entity
type ListingEvent struct {
	ID            string                 `json:"id"`
	Kind          EntityKind             `json:"kind"`
	EntityID      string                 `json:"entity_id"`
	EventType     ListingEventType       `json:"event_type"`
	Timestamp     time.Time              `json:"timestamp"`
	ChangedFields map[string]interface{} `json:"changed_fields,omitempty"`
}

// NewListingEvent creates a new listing event
func NewListingEvent(kind EntityKind, entityID string, eventType ListingEventType, changedFields map[string]interface{}) *ListingEvent {
	return &ListingEvent{
		ID:            generateEventID(),
		Kind:          kind,
		EntityID:      entityID,
		EventType:     eventType,
		Timestamp:     time.Now(),
		ChangedFields: changedFields,
	}
}

// generateEventID generates a unique event ID
func generateEventID() string {
	return time.Now().Format("20060102150405") + "-" + randomString(8)
}

// randomString generates a random string of specified length
func randomString(length int) string {
	bytes := make([]byte, length/2+1)
	if _, err := rand.Read(bytes); err != nil {
		// Fallback to timestamp-based if crypto/rand fails
		return time.Now().Format("150405.000")
	}
	return hex.EncodeToString(bytes)[:length]
}
