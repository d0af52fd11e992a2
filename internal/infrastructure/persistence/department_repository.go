package persistence

import (
	"context"
	"fmt"

	"github.com/executiva/backend/internal/domain/organization"
	"github.com/executiva/backend/internal/domain/shared"
	"github.com/executiva/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormDepartmentRepository implements DepartmentRepository using GORM
type GormDepartmentRepository struct {
	db *gorm.DB
}

// NewGormDepartmentRepository creates a new GormDepartmentRepository
func NewGormDepartmentRepository(db *gorm.DB) *GormDepartmentRepository {
	return &GormDepartmentRepository{db: db}
}

// FindByID finds a department by ID
func (r *GormDepartmentRepository) FindByID(ctx context.Context, id int64) (*organization.Department, error) {
	var model models.DepartmentModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "department", id)
	}
	return model.ToDomain(), nil
}

// FindByNameAndOrganization finds the department holding a name within an organization
func (r *GormDepartmentRepository) FindByNameAndOrganization(ctx context.Context, name string, organizationID int64) (*organization.Department, error) {
	var model models.DepartmentModel
	if err := r.db.WithContext(ctx).
		Where("name = ? AND organization_id = ?", name, organizationID).
		First(&model).Error; err != nil {
		return nil, notFoundBy(err, "department", fmt.Sprintf("name %q in organization %d", name, organizationID))
	}
	return model.ToDomain(), nil
}

// List returns one page of departments ordered by id
func (r *GormDepartmentRepository) List(ctx context.Context, page shared.Page) (shared.Listing[*organization.Department], error) {
	return listPage(ctx, r.db, page, (*models.DepartmentModel).ToDomain)
}

// ListByOrganization returns every department of an organization ordered by id
func (r *GormDepartmentRepository) ListByOrganization(ctx context.Context, organizationID int64) ([]*organization.Department, error) {
	var rows []*models.DepartmentModel
	if err := r.db.WithContext(ctx).
		Where("organization_id = ?", organizationID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	depts := make([]*organization.Department, len(rows))
	for i, row := range rows {
		depts[i] = row.ToDomain()
	}
	return depts, nil
}

// CountByOrganization counts departments owned by an organization
func (r *GormDepartmentRepository) CountByOrganization(ctx context.Context, organizationID int64) (int64, error) {
	return countWhere[models.DepartmentModel](ctx, r.db, "organization_id", organizationID)
}

// Create inserts a department and assigns its ID
func (r *GormDepartmentRepository) Create(ctx context.Context, dept *organization.Department) error {
	model := models.DepartmentModelFromDomain(dept)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translateError("create department", err)
	}
	dept.BaseEntity = model.BaseModel.ToDomain()
	return nil
}

// Update writes every column of an existing department
func (r *GormDepartmentRepository) Update(ctx context.Context, dept *organization.Department) error {
	return updateRow(ctx, r.db, models.DepartmentModelFromDomain(dept), "department", dept.ID)
}

// Delete removes a department by ID
func (r *GormDepartmentRepository) Delete(ctx context.Context, id int64) error {
	return deleteRow[models.DepartmentModel](ctx, r.db, "department", id)
}

var _ organization.DepartmentRepository = (*GormDepartmentRepository)(nil)
