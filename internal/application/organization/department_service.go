package organization

import (
	"context"

	"github.com/executiva/backend/internal/application/uow"
	"github.com/executiva/backend/internal/domain/integrity"
	"github.com/executiva/backend/internal/domain/organization"
	"github.com/executiva/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// DepartmentService handles department CRUD
type DepartmentService struct {
	store  uow.Store
	limits shared.PageLimits
	logger *zap.Logger
}

// NewDepartmentService creates a new department service
func NewDepartmentService(store uow.Store, limits shared.PageLimits, logger *zap.Logger) *DepartmentService {
	return &DepartmentService{
		store:  store,
		limits: limits,
		logger: logger,
	}
}

func departmentRules(repos uow.Repositories) integrity.DepartmentRules {
	return integrity.DepartmentRules{
		Organizations: repos.Organizations(),
		Departments:   repos.Departments(),
	}
}

// Create creates a department inside an existing organization
func (s *DepartmentService) Create(ctx context.Context, in DepartmentInput) (*organization.Department, error) {
	dept, err := organization.NewDepartment(in.OrganizationID.Value, in.Name.Value)
	if err != nil {
		return nil, err
	}

	err = uow.Write(ctx, s.store, s.logger, "create department", func(ctx context.Context, repos uow.Repositories) error {
		if err := integrity.Evaluate(ctx, departmentRules(repos).Create(dept)); err != nil {
			return err
		}
		return repos.Departments().Create(ctx, dept)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Department created",
		zap.Int64("department_id", dept.ID),
		zap.Int64("organization_id", dept.OrganizationID),
		zap.String("name", dept.Name))
	return dept, nil
}

// GetByID retrieves a department by ID
func (s *DepartmentService) GetByID(ctx context.Context, id int64) (*organization.Department, error) {
	var dept *organization.Department
	err := uow.Read(ctx, s.store, s.logger, "get department", func(ctx context.Context, repos uow.Repositories) error {
		var err error
		dept, err = repos.Departments().FindByID(ctx, id)
		return err
	})
	return dept, err
}

// GetByNameAndOrganization retrieves the department holding name inside an organization
func (s *DepartmentService) GetByNameAndOrganization(ctx context.Context, name string, organizationID int64) (*organization.Department, error) {
	var dept *organization.Department
	err := uow.Read(ctx, s.store, s.logger, "get department by name", func(ctx context.Context, repos uow.Repositories) error {
		var err error
		dept, err = repos.Departments().FindByNameAndOrganization(ctx, name, organizationID)
		return err
	})
	return dept, err
}

// List returns one page of departments ordered by id and the total count
func (s *DepartmentService) List(ctx context.Context, offset, limit int) ([]*organization.Department, int64, error) {
	var listing shared.Listing[*organization.Department]
	err := uow.Read(ctx, s.store, s.logger, "list departments", func(ctx context.Context, repos uow.Repositories) error {
		var err error
		listing, err = repos.Departments().List(ctx, s.limits.Page(offset, limit))
		return err
	})
	if err != nil {
		return nil, 0, err
	}
	return listing.Items, listing.Total, nil
}

// ListByOrganization returns every department of an organization ordered by id.
// An unknown organization yields an empty list.
func (s *DepartmentService) ListByOrganization(ctx context.Context, organizationID int64) ([]*organization.Department, error) {
	var depts []*organization.Department
	err := uow.Read(ctx, s.store, s.logger, "list departments by organization", func(ctx context.Context, repos uow.Repositories) error {
		var err error
		depts, err = repos.Departments().ListByOrganization(ctx, organizationID)
		return err
	})
	return depts, err
}

// Update applies the supplied fields to a department
func (s *DepartmentService) Update(ctx context.Context, id int64, in DepartmentInput) (*organization.Department, error) {
	patch := in.Patch()
	var dept *organization.Department
	err := uow.Write(ctx, s.store, s.logger, "update department", func(ctx context.Context, repos uow.Repositories) error {
		current, err := repos.Departments().FindByID(ctx, id)
		if err != nil {
			return err
		}
		next := *current
		if err := next.Apply(patch); err != nil {
			return err
		}
		if err := integrity.Evaluate(ctx, departmentRules(repos).Update(current, patch)); err != nil {
			return err
		}
		if err := repos.Departments().Update(ctx, &next); err != nil {
			return err
		}
		dept = &next
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Department updated", zap.Int64("department_id", id))
	return dept, nil
}

// Delete removes a department. Personnel placed in it keep their other links.
func (s *DepartmentService) Delete(ctx context.Context, id int64) error {
	err := uow.Write(ctx, s.store, s.logger, "delete department", func(ctx context.Context, repos uow.Repositories) error {
		current, err := repos.Departments().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := integrity.Evaluate(ctx, departmentRules(repos).Delete(current)); err != nil {
			return err
		}
		return repos.Departments().Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("Department deleted", zap.Int64("department_id", id))
	return nil
}
