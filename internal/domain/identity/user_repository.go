package identity

import (
	"context"

	"github.com/executiva/backend/internal/domain/shared"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// Create creates a new user and assigns its ID
	Create(ctx context.Context, user *User) error

	// Update updates an existing user
	Update(ctx context.Context, user *User) error

	// Delete deletes a user by ID
	Delete(ctx context.Context, id int64) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id int64) (*User, error)

	// FindByEmail finds a user by email (case-insensitive, emails are stored lower-cased)
	FindByEmail(ctx context.Context, email string) (*User, error)

	// List returns one page of users ordered by id
	List(ctx context.Context, page shared.Page) (shared.Listing[*User], error)
}
