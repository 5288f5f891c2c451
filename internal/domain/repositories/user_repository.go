package repositories

import (
	"context"

	"github.com/tomiwaje/stayfinder/internal/domain/entities"
)

// UserRepository defines the interface for user storage operations
type UserRepository interface {
	// Create stores a new user under its identifier
	Create(ctx context.Context, user *entities.User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (*entities.User, error)

	// GetByEmail retrieves a user by email address
	GetByEmail(ctx context.Context, email string) (*entities.User, error)

	// List retrieves all users in insertion order
	List(ctx context.Context) ([]*entities.User, error)

	// Update replaces a stored user
	Update(ctx context.Context, user *entities.User) error
}
