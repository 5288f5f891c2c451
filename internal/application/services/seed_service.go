package services

import (
	"context"

	"github.com/rs/zerolog/log"
	apperrors "github.com/tomiwaje/stayfinder/pkg/errors"
)

// defaultAmenityCatalog is the standard amenity set installed on fresh
// deployments.
var defaultAmenityCatalog = []string{
	"WiFi",
	"Air Conditioning",
	"Heating",
	"Kitchen",
	"Washer",
	"Free Parking",
	"Swimming Pool",
	"Hot Tub",
	"TV",
	"Pets Allowed",
}

// SeedDemoData installs the default administrator account and the standard
// amenity catalog through the facade, so every seeded record passes the same
// validation as API traffic. Seeding is idempotent: an existing admin email
// or amenity name is left alone.
func SeedDemoData(ctx context.Context, facade *Facade, adminEmail string) error {
	if _, err := facade.GetUserByEmail(ctx, adminEmail); err != nil {
		if !apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
			return err
		}
		admin, err := facade.CreateUser(ctx, UserInput{
			FirstName: "Admin",
			LastName:  "StayFinder",
			Email:     adminEmail,
			IsAdmin:   true,
		})
		if err != nil {
			return err
		}
		log.Info().Str("user_id", admin.ID).Str("email", adminEmail).Msg("Seeded default admin user")
	}

	existing, err := facade.ListAmenities(ctx)
	if err != nil {
		return err
	}
	present := make(map[string]bool, len(existing))
	for _, amenity := range existing {
		present[amenity.Name] = true
	}

	seeded := 0
	for _, name := range defaultAmenityCatalog {
		if present[name] {
			continue
		}
		if _, err := facade.CreateAmenity(ctx, AmenityInput{Name: name}); err != nil {
			return err
		}
		seeded++
	}
	if seeded > 0 {
		log.Info().Int("count", seeded).Msg("Seeded amenity catalog")
	}

	return nil
}
