package entities

import (
	"fmt"
	"time"

	apperrors "github.com/tomiwaje/stayfinder/pkg/errors"
)

// Place represents a short-term rental listing. The owner reference is set
// at creation and immutable thereafter; amenity references are a set with no
// duplicates. Reference validity is enforced by the business layer.
type Place struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	OwnerID     string    `json:"owner_id"`
	AmenityIDs  []string  `json:"amenities"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewPlace builds a place from raw field values, validating each constrained
// field. Amenity references are attached separately via SetAmenities.
func NewPlace(title, description string, price, latitude, longitude float64, ownerID string) (*Place, error) {
	if ownerID == "" {
		return nil, apperrors.NewValidationError("owner_id is required")
	}
	p := &Place{OwnerID: ownerID}
	if err := p.SetTitle(title); err != nil {
		return nil, err
	}
	p.SetDescription(description)
	if err := p.SetPrice(price); err != nil {
		return nil, err
	}
	if err := p.SetLatitude(latitude); err != nil {
		return nil, err
	}
	if err := p.SetLongitude(longitude); err != nil {
		return nil, err
	}
	return p, nil
}

// SetTitle validates and assigns the title.
func (p *Place) SetTitle(value string) error {
	if err := validateRequiredString("title", value, maxTitleLength); err != nil {
		return err
	}
	p.Title = value
	return nil
}

// SetDescription assigns the description. Optional, no length bound.
func (p *Place) SetDescription(value string) {
	p.Description = value
}

// SetPrice validates and assigns the nightly price. Must be positive.
func (p *Place) SetPrice(value float64) error {
	if value <= 0 {
		return apperrors.NewValidationError("price must be a positive value")
	}
	p.Price = value
	return nil
}

// SetLatitude validates and assigns the latitude (-90 to 90).
func (p *Place) SetLatitude(value float64) error {
	if err := validateRange("latitude", value, -90, 90); err != nil {
		return err
	}
	p.Latitude = value
	return nil
}

// SetLongitude validates and assigns the longitude (-180 to 180).
func (p *Place) SetLongitude(value float64) error {
	if err := validateRange("longitude", value, -180, 180); err != nil {
		return err
	}
	p.Longitude = value
	return nil
}

// SetAmenities replaces the amenity reference set, rejecting duplicates.
func (p *Place) SetAmenities(ids []string) error {
	seen := make(map[string]struct{}, len(ids))
	set := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return apperrors.NewValidationError(fmt.Sprintf("duplicate amenity id %q", id))
		}
		seen[id] = struct{}{}
		set = append(set, id)
	}
	p.AmenityIDs = set
	return nil
}

// AddAmenity appends one amenity reference, rejecting duplicates.
func (p *Place) AddAmenity(id string) error {
	for _, existing := range p.AmenityIDs {
		if existing == id {
			return apperrors.NewValidationError(fmt.Sprintf("amenity %q already attached to place", id))
		}
	}
	p.AmenityIDs = append(p.AmenityIDs, id)
	return nil
}

// Clone returns an independent copy of the place, including its amenity set.
func (p *Place) Clone() *Place {
	clone := *p
	if p.AmenityIDs != nil {
		clone.AmenityIDs = make([]string, len(p.AmenityIDs))
		copy(clone.AmenityIDs, p.AmenityIDs)
	}
	return &clone
}
