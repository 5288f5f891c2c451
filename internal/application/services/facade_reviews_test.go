package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomiwaje/stayfinder/internal/application/services"
	apperrors "github.com/tomiwaje/stayfinder/pkg/errors"
)

func TestFacade_CreateReview(t *testing.T) {
	facade := newTestFacade()
	user := createUser(t, facade, "guest@example.com")
	owner := createUser(t, facade, "owner@example.com")
	place := createPlace(t, facade, owner.ID)

	review, err := facade.CreateReview(context.Background(), services.ReviewInput{
		Text:    "Great stay",
		Rating:  5,
		UserID:  user.ID,
		PlaceID: place.ID,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, review.ID)
	assert.Equal(t, 5, review.Rating)
	assert.Equal(t, "Great stay", review.Text)
}

func TestFacade_CreateReview_RatingOutOfRange(t *testing.T) {
	facade := newTestFacade()
	user := createUser(t, facade, "guest@example.com")
	owner := createUser(t, facade, "owner@example.com")
	place := createPlace(t, facade, owner.ID)

	for _, rating := range []int{0, 6} {
		_, err := facade.CreateReview(context.Background(), services.ReviewInput{
			Text:    "Great stay",
			Rating:  rating,
			UserID:  user.ID,
			PlaceID: place.ID,
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
	}

	// The store is unchanged after the failed attempts.
	reviews, err := facade.ListReviews(context.Background())
	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestFacade_CreateReview_MissingReferences(t *testing.T) {
	facade := newTestFacade()
	user := createUser(t, facade, "guest@example.com")
	owner := createUser(t, facade, "owner@example.com")
	place := createPlace(t, facade, owner.ID)

	_, err := facade.CreateReview(context.Background(), services.ReviewInput{
		Text: "ok", Rating: 3, UserID: "ghost", PlaceID: place.ID,
	})
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))

	_, err = facade.CreateReview(context.Background(), services.ReviewInput{
		Text: "ok", Rating: 3, UserID: user.ID, PlaceID: "ghost",
	})
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))

	reviews, err := facade.ListReviews(context.Background())
	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestFacade_UpdateReview(t *testing.T) {
	facade := newTestFacade()
	user := createUser(t, facade, "guest@example.com")
	owner := createUser(t, facade, "owner@example.com")
	place := createPlace(t, facade, owner.ID)

	review, err := facade.CreateReview(context.Background(), services.ReviewInput{
		Text: "Great stay", Rating: 5, UserID: user.ID, PlaceID: place.ID,
	})
	require.NoError(t, err)

	updated, err := facade.UpdateReview(context.Background(), review.ID, services.UpdateReviewInput{
		Text: "Still good", Rating: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, "Still good", updated.Text)
	assert.Equal(t, 4, updated.Rating)
	assert.Equal(t, user.ID, updated.UserID)
}

func TestFacade_UpdateReview_ReferencesImmutable(t *testing.T) {
	facade := newTestFacade()
	user := createUser(t, facade, "guest@example.com")
	owner := createUser(t, facade, "owner@example.com")
	place := createPlace(t, facade, owner.ID)

	review, err := facade.CreateReview(context.Background(), services.ReviewInput{
		Text: "Great stay", Rating: 5, UserID: user.ID, PlaceID: place.ID,
	})
	require.NoError(t, err)

	_, err = facade.UpdateReview(context.Background(), review.ID, services.UpdateReviewInput{
		Text: "ok", Rating: 3, UserID: owner.ID,
	})
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))

	_, err = facade.UpdateReview(context.Background(), review.ID, services.UpdateReviewInput{
		Text: "ok", Rating: 3, PlaceID: "other-place",
	})
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))

	fetched, err := facade.GetReview(context.Background(), review.ID)
	require.NoError(t, err)
	assert.Equal(t, "Great stay", fetched.Text)
}

func TestFacade_DeleteReview(t *testing.T) {
	facade := newTestFacade()
	user := createUser(t, facade, "guest@example.com")
	owner := createUser(t, facade, "owner@example.com")
	place := createPlace(t, facade, owner.ID)

	review, err := facade.CreateReview(context.Background(), services.ReviewInput{
		Text: "Great stay", Rating: 5, UserID: user.ID, PlaceID: place.ID,
	})
	require.NoError(t, err)

	require.NoError(t, facade.DeleteReview(context.Background(), review.ID))

	_, err = facade.GetReview(context.Background(), review.ID)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))

	// Deleting the same id twice fails with not-found.
	err = facade.DeleteReview(context.Background(), review.ID)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}

func TestFacade_ListReviewsByPlace(t *testing.T) {
	facade := newTestFacade()
	user := createUser(t, facade, "guest@example.com")
	owner := createUser(t, facade, "owner@example.com")
	place := createPlace(t, facade, owner.ID)
	otherPlace := createPlace(t, facade, owner.ID)

	for _, placeID := range []string{place.ID, otherPlace.ID, place.ID} {
		_, err := facade.CreateReview(context.Background(), services.ReviewInput{
			Text: "ok", Rating: 4, UserID: user.ID, PlaceID: placeID,
		})
		require.NoError(t, err)
	}

	reviews, err := facade.ListReviewsByPlace(context.Background(), place.ID)
	require.NoError(t, err)
	assert.Len(t, reviews, 2)

	_, err = facade.ListReviewsByPlace(context.Background(), "ghost")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}

func TestFacade_CreateAmenity_DuplicateNamesAllowed(t *testing.T) {
	facade := newTestFacade()
	first := createAmenity(t, facade, "WiFi")
	second := createAmenity(t, facade, "WiFi")
	assert.NotEqual(t, first.ID, second.ID)

	amenities, err := facade.ListAmenities(context.Background())
	require.NoError(t, err)
	assert.Len(t, amenities, 2)
}

func TestFacade_UpdateAmenity(t *testing.T) {
	facade := newTestFacade()
	amenity := createAmenity(t, facade, "WiFi")

	updated, err := facade.UpdateAmenity(context.Background(), amenity.ID, services.AmenityInput{Name: "Fast WiFi"})
	require.NoError(t, err)
	assert.Equal(t, "Fast WiFi", updated.Name)

	_, err = facade.UpdateAmenity(context.Background(), "ghost", services.AmenityInput{Name: "Pool"})
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}
