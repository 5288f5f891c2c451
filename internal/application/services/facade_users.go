package services

import (
	"context"
	"fmt"
	"time"

	"github.com/tomiwaje/stayfinder/internal/domain/entities"
	apperrors "github.com/tomiwaje/stayfinder/pkg/errors"
)

// UserInput carries the raw fields for creating a user.
type UserInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"is_admin"`
}

// UpdateUserInput carries the complete set of mutable user fields.
type UpdateUserInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"is_admin"`
}

// CreateUser validates the fields, enforces email uniqueness across the live
// user set, and stores the new user.
func (f *Facade) CreateUser(ctx context.Context, input UserInput) (*entities.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, err := entities.NewUser(input.FirstName, input.LastName, input.Email, input.IsAdmin)
	if err != nil {
		return nil, err
	}

	if _, err := f.userRepo.GetByEmail(ctx, user.Email); err == nil {
		return nil, apperrors.NewConflictError(fmt.Sprintf("email %q already registered", user.Email))
	} else if !apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
		return nil, err
	}

	stamp(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err := f.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	f.publishEvent(ctx, entities.EntityKindUser, user.ID, entities.ListingEventTypeCreated)
	return user, nil
}

// GetUser retrieves a user by id.
func (f *Facade) GetUser(ctx context.Context, id string) (*entities.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.userRepo.GetByID(ctx, id)
}

// GetUserByEmail retrieves a user by email address.
func (f *Facade) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.userRepo.GetByEmail(ctx, email)
}

// ListUsers retrieves all users in insertion order.
func (f *Facade) ListUsers(ctx context.Context) ([]*entities.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.userRepo.List(ctx)
}

// UpdateUser replaces the mutable fields of a user. Changing the email to
// one held by another live user fails with a conflict error. Validation
// completes against a copy before anything is written, so a failed update
// leaves the stored user untouched.
func (f *Facade) UpdateUser(ctx context.Context, id string, input UpdateUserInput) (*entities.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, err := f.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Email != user.Email {
		if other, err := f.userRepo.GetByEmail(ctx, input.Email); err == nil && other.ID != id {
			return nil, apperrors.NewConflictError(fmt.Sprintf("email %q already registered", input.Email))
		} else if err != nil && !apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
			return nil, err
		}
	}

	if err := user.SetFirstName(input.FirstName); err != nil {
		return nil, err
	}
	if err := user.SetLastName(input.LastName); err != nil {
		return nil, err
	}
	if err := user.SetEmail(input.Email); err != nil {
		return nil, err
	}
	user.IsAdmin = input.IsAdmin
	user.UpdatedAt = time.Now().UTC()

	if err := f.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	f.publishEvent(ctx, entities.EntityKindUser, user.ID, entities.ListingEventTypeUpdated)
	return user, nil
}
