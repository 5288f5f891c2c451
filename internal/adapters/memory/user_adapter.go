package memory

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tomiwaje/stayfinder/internal/domain/entities"
	"github.com/tomiwaje/stayfinder/internal/domain/repositories"
	apperrors "github.com/tomiwaje/stayfinder/pkg/errors"
)

// UserAdapter implements user persistence in process memory.
type UserAdapter struct {
	store *store[*entities.User]
}

// NewUserAdapter creates a new in-memory user adapter.
func NewUserAdapter() *UserAdapter {
	return &UserAdapter{
		store: newStore(func(u *entities.User) *entities.User { return u.Clone() }),
	}
}

var _ repositories.UserRepository = (*UserAdapter)(nil)

// Create stores a new user, assigning an identifier if absent.
func (a *UserAdapter) Create(ctx context.Context, user *entities.User) error {
	if user == nil {
		return apperrors.NewInternalError("user is nil", fmt.Errorf("user is nil"))
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if !a.store.add(user.ID, user) {
		return apperrors.NewConflictError(fmt.Sprintf("user id %q already exists", user.ID))
	}
	return nil
}

// GetByID retrieves a user by ID.
func (a *UserAdapter) GetByID(ctx context.Context, id string) (*entities.User, error) {
	user, ok := a.store.get(id)
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("user %q not found", id))
	}
	return user, nil
}

// GetByEmail retrieves a user by email address.
func (a *UserAdapter) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	for _, user := range a.store.list() {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, apperrors.NewNotFoundError(fmt.Sprintf("user with email %q not found", email))
}

// List retrieves all users in insertion order.
func (a *UserAdapter) List(ctx context.Context) ([]*entities.User, error) {
	return a.store.list(), nil
}

// Update replaces a stored user.
func (a *UserAdapter) Update(ctx context.Context, user *entities.User) error {
	if user == nil {
		return apperrors.NewInternalError("user is nil", fmt.Errorf("user is nil"))
	}
	if !a.store.update(user.ID, user) {
		return apperrors.NewNotFoundError(fmt.Sprintf("user %q not found", user.ID))
	}
	return nil
}
