package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tomiwaje/stayfinder/internal/adapters/memory"
	"github.com/tomiwaje/stayfinder/internal/application/services"
	"github.com/tomiwaje/stayfinder/internal/domain/entities"
)

// newTestFacade builds a facade over fresh in-memory repositories so each
// test runs against an isolated store.
func newTestFacade() *services.Facade {
	return services.NewFacade(
		memory.NewUserAdapter(),
		memory.NewPlaceAdapter(),
		memory.NewAmenityAdapter(),
		memory.NewReviewAdapter(),
	)
}

func createUser(t *testing.T, facade *services.Facade, email string) *entities.User {
	t.Helper()
	user, err := facade.CreateUser(context.Background(), services.UserInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     email,
	})
	require.NoError(t, err)
	return user
}

func createPlace(t *testing.T, facade *services.Facade, ownerID string, amenityIDs ...string) *entities.Place {
	t.Helper()
	place, err := facade.CreatePlace(context.Background(), services.PlaceInput{
		Title:      "Seaside loft",
		Price:      120,
		Latitude:   43.7,
		Longitude:  -79.4,
		OwnerID:    ownerID,
		AmenityIDs: amenityIDs,
	})
	require.NoError(t, err)
	return place
}

func createAmenity(t *testing.T, facade *services.Facade, name string) *entities.Amenity {
	t.Helper()
	amenity, err := facade.CreateAmenity(context.Background(), services.AmenityInput{Name: name})
	require.NoError(t, err)
	return amenity
}
