// Package uow defines the unit of work shared by the entity services.
package uow

import (
	"context"

	"github.com/executiva/backend/internal/domain/identity"
	"github.com/executiva/backend/internal/domain/organization"
	"github.com/executiva/backend/internal/domain/personnel"
)

// TransactionScope provides transactional access to the entity repositories.
// Every read and write performed through the repositories handed to fn is part
// of one database transaction, committed when fn returns nil and rolled back
// otherwise.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos Repositories) error) error
}

// Store is a TransactionScope that also hands out repositories for reads
// outside any transaction.
type Store interface {
	TransactionScope
	Repositories() Repositories
}

// Repositories provides access to all repositories within a transaction.
// All repositories returned share the same underlying database transaction.
type Repositories interface {
	LegalOrganizations() organization.LegalOrganizationRepository
	Organizations() organization.OrganizationRepository
	Departments() organization.DepartmentRepository
	Executives() personnel.ExecutiveRepository
	Secretaries() personnel.SecretaryRepository
	Users() identity.UserRepository
}
