package services_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomiwaje/stayfinder/internal/application/services"
	apperrors "github.com/tomiwaje/stayfinder/pkg/errors"
)

func TestFacade_CreatePlace_UnknownOwner(t *testing.T) {
	facade := newTestFacade()

	_, err := facade.CreatePlace(context.Background(), services.PlaceInput{
		Title:    "Seaside loft",
		Price:    120,
		Latitude: 43.7, Longitude: -79.4,
		OwnerID: "ghost",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))

	// No place was stored.
	places, err := facade.ListPlaces(context.Background())
	require.NoError(t, err)
	assert.Empty(t, places)
}

func TestFacade_CreatePlace_UnknownAmenityNamed(t *testing.T) {
	facade := newTestFacade()
	owner := createUser(t, facade, "owner@example.com")
	wifi := createAmenity(t, facade, "WiFi")

	_, err := facade.CreatePlace(context.Background(), services.PlaceInput{
		Title:    "Seaside loft",
		Price:    120,
		Latitude: 43.7, Longitude: -79.4,
		OwnerID:    owner.ID,
		AmenityIDs: []string{wifi.ID, "ghost-amenity"},
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
	assert.Contains(t, err.Error(), "ghost-amenity")

	places, err := facade.ListPlaces(context.Background())
	require.NoError(t, err)
	assert.Empty(t, places)
}

func TestFacade_CreatePlace_WithAmenities(t *testing.T) {
	facade := newTestFacade()
	owner := createUser(t, facade, "owner@example.com")
	wifi := createAmenity(t, facade, "WiFi")
	pool := createAmenity(t, facade, "Pool")

	place := createPlace(t, facade, owner.ID, wifi.ID, pool.ID)
	assert.Equal(t, []string{wifi.ID, pool.ID}, place.AmenityIDs)
	assert.Equal(t, owner.ID, place.OwnerID)
}

func TestFacade_UpdatePlace_AmenityFailureLeavesAmenitiesUntouched(t *testing.T) {
	facade := newTestFacade()
	owner := createUser(t, facade, "owner@example.com")
	wifi := createAmenity(t, facade, "WiFi")
	place := createPlace(t, facade, owner.ID, wifi.ID)

	pool := createAmenity(t, facade, "Pool")
	_, err := facade.UpdatePlace(context.Background(), place.ID, services.UpdatePlaceInput{
		Title:    place.Title,
		Price:    place.Price,
		Latitude: place.Latitude, Longitude: place.Longitude,
		AmenityIDs: []string{pool.ID, "ghost-amenity"},
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))

	// The stored amenity set is exactly what it was before the call.
	fetched, err := facade.GetPlace(context.Background(), place.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{wifi.ID}, fetched.AmenityIDs)
}

func TestFacade_UpdatePlace_OwnerImmutable(t *testing.T) {
	facade := newTestFacade()
	owner := createUser(t, facade, "owner@example.com")
	other := createUser(t, facade, "other@example.com")
	place := createPlace(t, facade, owner.ID)

	_, err := facade.UpdatePlace(context.Background(), place.ID, services.UpdatePlaceInput{
		Title:    place.Title,
		Price:    place.Price,
		Latitude: place.Latitude, Longitude: place.Longitude,
		OwnerID: other.ID,
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))

	// Restating the current owner is accepted.
	updated, err := facade.UpdatePlace(context.Background(), place.ID, services.UpdatePlaceInput{
		Title:    "Renamed loft",
		Price:    150,
		Latitude: place.Latitude, Longitude: place.Longitude,
		OwnerID: owner.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed loft", updated.Title)
	assert.Equal(t, owner.ID, updated.OwnerID)
}

func TestFacade_UpdatePlace_FullReplace(t *testing.T) {
	facade := newTestFacade()
	owner := createUser(t, facade, "owner@example.com")
	wifi := createAmenity(t, facade, "WiFi")
	place := createPlace(t, facade, owner.ID, wifi.ID)

	updated, err := facade.UpdatePlace(context.Background(), place.ID, services.UpdatePlaceInput{
		Title:       "Mountain cabin",
		Description: "Quiet and remote",
		Price:       80,
		Latitude:    46.1,
		Longitude:   7.7,
		AmenityIDs:  nil,
	})
	require.NoError(t, err)
	assert.Equal(t, "Mountain cabin", updated.Title)
	assert.Equal(t, 80.0, updated.Price)
	// Full-replace semantics: omitting amenities clears the set.
	assert.Empty(t, updated.AmenityIDs)
}

func TestFacade_AddPlaceAmenity(t *testing.T) {
	facade := newTestFacade()
	owner := createUser(t, facade, "owner@example.com")
	place := createPlace(t, facade, owner.ID)
	wifi := createAmenity(t, facade, "WiFi")

	updated, err := facade.AddPlaceAmenity(context.Background(), place.ID, wifi.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{wifi.ID}, updated.AmenityIDs)

	// Attaching the same amenity twice is rejected.
	_, err = facade.AddPlaceAmenity(context.Background(), place.ID, wifi.ID)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))

	// Unknown amenity is a not-found failure.
	_, err = facade.AddPlaceAmenity(context.Background(), place.ID, "ghost")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}

func TestFacade_ListPlacesByOwner(t *testing.T) {
	facade := newTestFacade()
	owner := createUser(t, facade, "owner@example.com")
	other := createUser(t, facade, "other@example.com")
	createPlace(t, facade, owner.ID)
	createPlace(t, facade, other.ID)
	createPlace(t, facade, owner.ID)

	owned, err := facade.ListPlacesByOwner(context.Background(), owner.ID)
	require.NoError(t, err)
	assert.Len(t, owned, 2)

	_, err = facade.ListPlacesByOwner(context.Background(), "ghost")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}

func TestFacade_CreatePlace_RoundTrip(t *testing.T) {
	facade := newTestFacade()
	owner := createUser(t, facade, "owner@example.com")
	wifi := createAmenity(t, facade, "WiFi")
	created := createPlace(t, facade, owner.ID, wifi.ID)

	data, err := json.Marshal(created)
	require.NoError(t, err)

	var input services.PlaceInput
	require.NoError(t, json.Unmarshal(data, &input))

	again, err := facade.CreatePlace(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, created.Title, again.Title)
	assert.Equal(t, created.Price, again.Price)
	assert.Equal(t, created.Latitude, again.Latitude)
	assert.Equal(t, created.Longitude, again.Longitude)
	assert.Equal(t, created.OwnerID, again.OwnerID)
	assert.Equal(t, created.AmenityIDs, again.AmenityIDs)
	assert.NotEqual(t, created.ID, again.ID)
}
