package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomiwaje/stayfinder/internal/adapters/memory"
	"github.com/tomiwaje/stayfinder/internal/domain/entities"
	apperrors "github.com/tomiwaje/stayfinder/pkg/errors"
)

func newUser(t *testing.T, email string) *entities.User {
	t.Helper()
	user, err := entities.NewUser("Ada", "Lovelace", email, false)
	require.NoError(t, err)
	return user
}

func TestUserAdapter_CreateAssignsID(t *testing.T) {
	adapter := memory.NewUserAdapter()
	user := newUser(t, "ada@example.com")

	require.NoError(t, adapter.Create(context.Background(), user))
	assert.NotEmpty(t, user.ID)

	stored, err := adapter.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", stored.Email)
}

func TestUserAdapter_CreateDuplicateID(t *testing.T) {
	adapter := memory.NewUserAdapter()
	user := newUser(t, "ada@example.com")
	user.ID = "fixed-id"
	require.NoError(t, adapter.Create(context.Background(), user))

	dup := newUser(t, "other@example.com")
	dup.ID = "fixed-id"
	err := adapter.Create(context.Background(), dup)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeConflict))
}

func TestUserAdapter_GetByEmail(t *testing.T) {
	adapter := memory.NewUserAdapter()
	require.NoError(t, adapter.Create(context.Background(), newUser(t, "ada@example.com")))

	found, err := adapter.GetByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", found.Email)

	_, err = adapter.GetByEmail(context.Background(), "missing@example.com")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}

func TestUserAdapter_List_InsertionOrderAndSnapshot(t *testing.T) {
	adapter := memory.NewUserAdapter()
	emails := []string{"a@example.com", "b@example.com", "c@example.com"}
	for _, email := range emails {
		require.NoError(t, adapter.Create(context.Background(), newUser(t, email)))
	}

	snapshot, err := adapter.List(context.Background())
	require.NoError(t, err)
	require.Len(t, snapshot, 3)
	for i, email := range emails {
		assert.Equal(t, email, snapshot[i].Email)
	}

	// Later mutation must not alter a previously returned snapshot.
	require.NoError(t, adapter.Create(context.Background(), newUser(t, "d@example.com")))
	assert.Len(t, snapshot, 3)
}

func TestUserAdapter_ReadsDoNotAliasStore(t *testing.T) {
	adapter := memory.NewUserAdapter()
	user := newUser(t, "ada@example.com")
	require.NoError(t, adapter.Create(context.Background(), user))

	read, err := adapter.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	read.FirstName = "Mutated"

	again, err := adapter.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", again.FirstName)
}

func TestUserAdapter_UpdateMissing(t *testing.T) {
	adapter := memory.NewUserAdapter()
	user := newUser(t, "ada@example.com")
	user.ID = "ghost"

	err := adapter.Update(context.Background(), user)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}

func TestReviewAdapter_DeleteTwice(t *testing.T) {
	adapter := memory.NewReviewAdapter()
	review, err := entities.NewReview("Great stay", 5, "user-1", "place-1")
	require.NoError(t, err)
	require.NoError(t, adapter.Create(context.Background(), review))

	require.NoError(t, adapter.Delete(context.Background(), review.ID))

	_, err = adapter.GetByID(context.Background(), review.ID)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))

	err = adapter.Delete(context.Background(), review.ID)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}

func TestReviewAdapter_ListByPlace(t *testing.T) {
	adapter := memory.NewReviewAdapter()
	for _, placeID := range []string{"place-1", "place-2", "place-1"} {
		review, err := entities.NewReview("ok", 4, "user-1", placeID)
		require.NoError(t, err)
		require.NoError(t, adapter.Create(context.Background(), review))
	}

	matched, err := adapter.ListByPlace(context.Background(), "place-1")
	require.NoError(t, err)
	assert.Len(t, matched, 2)
}

func TestPlaceAdapter_ListByOwner(t *testing.T) {
	adapter := memory.NewPlaceAdapter()
	for _, ownerID := range []string{"owner-1", "owner-2", "owner-1"} {
		place, err := entities.NewPlace("Loft", "", 100, 0, 0, ownerID)
		require.NoError(t, err)
		require.NoError(t, adapter.Create(context.Background(), place))
	}

	owned, err := adapter.ListByOwner(context.Background(), "owner-1")
	require.NoError(t, err)
	assert.Len(t, owned, 2)
}

func TestAmenityAdapter_RoundTrip(t *testing.T) {
	adapter := memory.NewAmenityAdapter()
	amenity, err := entities.NewAmenity("WiFi")
	require.NoError(t, err)
	require.NoError(t, adapter.Create(context.Background(), amenity))

	stored, err := adapter.GetByID(context.Background(), amenity.ID)
	require.NoError(t, err)
	assert.Equal(t, "WiFi", stored.Name)

	stored.Name = "Pool"
	require.NoError(t, adapter.Update(context.Background(), stored))

	again, err := adapter.GetByID(context.Background(), amenity.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pool", again.Name)
}
