package services

import (
	"context"
	"testing"
	"time"

	"github.com/tomiwaje/stayfinder/internal/domain/entities"
)

type noopCache struct{}

func (noopCache) Get(ctx context.Context, key string) ([]byte, error) { return nil, nil }
func (noopCache) Set(ctx context.Context, key string, value []byte, expirationSeconds int) error {
	return nil
}
func (noopCache) Delete(ctx context.Context, key string) error            { return nil }
func (noopCache) DeletePattern(ctx context.Context, pattern string) error { return nil }
func (noopCache) Exists(ctx context.Context, key string) (bool, error)    { return false, nil }

func TestProcessEvents_ReturnsWhenChannelCloses(t *testing.T) {
	service := NewCacheInvalidationService(noopCache{}, nil)
	defer service.Stop()

	eventChan := make(chan *entities.ListingEvent)
	close(eventChan)

	done := make(chan struct{})
	go func() {
		service.processEvents(eventChan)
		close(done)
	}()

	// A closed subscription channel must terminate the loop even while the
	// service context is still live.
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("processEvents did not return after the event channel closed")
	}
}
