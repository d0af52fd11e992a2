package persistence

import (
	"context"

	"github.com/executiva/backend/internal/application/uow"
	"github.com/executiva/backend/internal/domain/identity"
	"github.com/executiva/backend/internal/domain/organization"
	"github.com/executiva/backend/internal/domain/personnel"
	"gorm.io/gorm"
)

// GormTransactionScope implements uow.TransactionScope using GORM transactions.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope.
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs fn within a database transaction. The transaction is rolled
// back when fn returns an error and committed otherwise.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos uow.Repositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormRepositories{tx: tx})
	})
}

// Repositories returns repositories bound to the scope's connection, outside
// any transaction. Used for reads.
func (s *GormTransactionScope) Repositories() uow.Repositories {
	return &gormRepositories{tx: s.db}
}

// gormRepositories provides access to all repositories within a transaction.
type gormRepositories struct {
	tx *gorm.DB
}

func (r *gormRepositories) LegalOrganizations() organization.LegalOrganizationRepository {
	return NewGormLegalOrganizationRepository(r.tx)
}

func (r *gormRepositories) Organizations() organization.OrganizationRepository {
	return NewGormOrganizationRepository(r.tx)
}

func (r *gormRepositories) Departments() organization.DepartmentRepository {
	return NewGormDepartmentRepository(r.tx)
}

func (r *gormRepositories) Executives() personnel.ExecutiveRepository {
	return NewGormExecutiveRepository(r.tx)
}

func (r *gormRepositories) Secretaries() personnel.SecretaryRepository {
	return NewGormSecretaryRepository(r.tx)
}

func (r *gormRepositories) Users() identity.UserRepository {
	return NewGormUserRepository(r.tx)
}

var (
	_ uow.Store        = (*GormTransactionScope)(nil)
	_ uow.Repositories = (*gormRepositories)(nil)
)
