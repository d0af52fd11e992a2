package personnel

import (
	"context"

	"github.com/executiva/backend/internal/domain/shared"
)

// ExecutiveRepository defines the interface for executive persistence.
// Find methods return a NotFound domain error when no row matches.
type ExecutiveRepository interface {
	FindByID(ctx context.Context, id int64) (*Executive, error)
	FindByCPF(ctx context.Context, cpf string) (*Executive, error)

	// FindByWorkEmail matches the work email column only
	FindByWorkEmail(ctx context.Context, email string) (*Executive, error)

	// FindByAnyEmail matches either the work or the personal email column
	FindByAnyEmail(ctx context.Context, email string) (*Executive, error)

	// ExistingIDs returns the subset of ids that resolve to stored executives
	ExistingIDs(ctx context.Context, ids []int64) ([]int64, error)

	List(ctx context.Context, page shared.Page) (shared.Listing[*Executive], error)
	Create(ctx context.Context, exec *Executive) error
	Update(ctx context.Context, exec *Executive) error
	Delete(ctx context.Context, id int64) error
}

// SecretaryRepository defines the interface for secretary persistence.
// Loaded secretaries carry their executive id set.
type SecretaryRepository interface {
	FindByID(ctx context.Context, id int64) (*Secretary, error)
	FindByCPF(ctx context.Context, cpf string) (*Secretary, error)
	List(ctx context.Context, page shared.Page) (shared.Listing[*Secretary], error)

	// Create inserts the secretary and its association rows
	Create(ctx context.Context, sec *Secretary) error

	// Update writes the secretary columns only
	Update(ctx context.Context, sec *Secretary) error

	// ReplaceExecutives rewrites the association rows to exactly executiveIDs
	ReplaceExecutives(ctx context.Context, secretaryID int64, executiveIDs []int64) error

	Delete(ctx context.Context, id int64) error
}
