package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomiwaje/stayfinder/internal/application/services"
)

func TestSeedDemoData_InstallsAdminAndCatalog(t *testing.T) {
	facade := newTestFacade()
	ctx := context.Background()

	require.NoError(t, services.SeedDemoData(ctx, facade, "admin@stayfinder.io"))

	admin, err := facade.GetUserByEmail(ctx, "admin@stayfinder.io")
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin)

	amenities, err := facade.ListAmenities(ctx)
	require.NoError(t, err)
	assert.Len(t, amenities, 10)
}

func TestSeedDemoData_Idempotent(t *testing.T) {
	facade := newTestFacade()
	ctx := context.Background()

	require.NoError(t, services.SeedDemoData(ctx, facade, "admin@stayfinder.io"))
	require.NoError(t, services.SeedDemoData(ctx, facade, "admin@stayfinder.io"))

	users, err := facade.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)

	amenities, err := facade.ListAmenities(ctx)
	require.NoError(t, err)
	assert.Len(t, amenities, 10)
}
