package entities

import (
	"time"
)

// User represents a registered user. Users own places and author reviews.
type User struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUser builds a user from raw field values, validating each constrained
// field. Construction either fully succeeds or returns no user.
func NewUser(firstName, lastName, email string, isAdmin bool) (*User, error) {
	u := &User{IsAdmin: isAdmin}
	if err := u.SetFirstName(firstName); err != nil {
		return nil, err
	}
	if err := u.SetLastName(lastName); err != nil {
		return nil, err
	}
	if err := u.SetEmail(email); err != nil {
		return nil, err
	}
	return u, nil
}

// SetFirstName validates and assigns the first name.
func (u *User) SetFirstName(value string) error {
	if err := validateRequiredString("first_name", value, maxNameLength); err != nil {
		return err
	}
	u.FirstName = value
	return nil
}

// SetLastName validates and assigns the last name.
func (u *User) SetLastName(value string) error {
	if err := validateRequiredString("last_name", value, maxNameLength); err != nil {
		return err
	}
	u.LastName = value
	return nil
}

// SetEmail validates and assigns the email address. Uniqueness across users
// is enforced by the business layer, not here.
func (u *User) SetEmail(value string) error {
	if err := validateEmail(value); err != nil {
		return err
	}
	u.Email = value
	return nil
}

// Clone returns an independent copy of the user.
func (u *User) Clone() *User {
	clone := *u
	return &clone
}
