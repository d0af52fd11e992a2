package organization

import (
	"context"

	"github.com/executiva/backend/internal/domain/shared"
)

// LegalOrganizationRepository defines the interface for legal organization persistence.
// Find methods return a NotFound domain error when no row matches.
type LegalOrganizationRepository interface {
	// FindByID finds a legal organization by ID
	FindByID(ctx context.Context, id int64) (*LegalOrganization, error)

	// FindByCNPJ finds a legal organization by its tax id
	FindByCNPJ(ctx context.Context, cnpj string) (*LegalOrganization, error)

	// List returns one page ordered by id
	List(ctx context.Context, page shared.Page) (shared.Listing[*LegalOrganization], error)

	// Create inserts and assigns the generated ID
	Create(ctx context.Context, org *LegalOrganization) error

	// Update writes every column of an existing row
	Update(ctx context.Context, org *LegalOrganization) error

	// Delete removes a legal organization by ID
	Delete(ctx context.Context, id int64) error
}

// OrganizationRepository defines the interface for organization persistence
type OrganizationRepository interface {
	FindByID(ctx context.Context, id int64) (*Organization, error)
	FindByCNPJ(ctx context.Context, cnpj string) (*Organization, error)
	List(ctx context.Context, page shared.Page) (shared.Listing[*Organization], error)

	// CountByLegalOrganization counts organizations owned by a legal organization
	CountByLegalOrganization(ctx context.Context, legalOrganizationID int64) (int64, error)

	Create(ctx context.Context, org *Organization) error
	Update(ctx context.Context, org *Organization) error
	Delete(ctx context.Context, id int64) error
}

// DepartmentRepository defines the interface for department persistence
type DepartmentRepository interface {
	FindByID(ctx context.Context, id int64) (*Department, error)

	// FindByNameAndOrganization finds the department holding a name within an organization
	FindByNameAndOrganization(ctx context.Context, name string, organizationID int64) (*Department, error)

	List(ctx context.Context, page shared.Page) (shared.Listing[*Department], error)

	// ListByOrganization returns every department of an organization ordered by id
	ListByOrganization(ctx context.Context, organizationID int64) ([]*Department, error)

	// CountByOrganization counts departments owned by an organization
	CountByOrganization(ctx context.Context, organizationID int64) (int64, error)

	Create(ctx context.Context, dept *Department) error
	Update(ctx context.Context, dept *Department) error
	Delete(ctx context.Context, id int64) error
}
