package entities

import (
	"time"
)

// Amenity is a standalone feature that places may reference. Places do not
// own an amenity's lifecycle, and amenity names need not be unique.
type Amenity struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewAmenity builds an amenity from a raw name, validating it.
func NewAmenity(name string) (*Amenity, error) {
	a := &Amenity{}
	if err := a.SetName(name); err != nil {
		return nil, err
	}
	return a, nil
}

// SetName validates and assigns the amenity name.
func (a *Amenity) SetName(value string) error {
	if err := validateRequiredString("name", value, maxAmenityNameLength); err != nil {
		return err
	}
	a.Name = value
	return nil
}

// Clone returns an independent copy of the amenity.
func (a *Amenity) Clone() *Amenity {
	clone := *a
	return &clone
}
