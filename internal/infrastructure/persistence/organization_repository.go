package persistence

import (
	"context"

	"github.com/executiva/backend/internal/domain/organization"
	"github.com/executiva/backend/internal/domain/shared"
	"github.com/executiva/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormLegalOrganizationRepository implements LegalOrganizationRepository using GORM
type GormLegalOrganizationRepository struct {
	db *gorm.DB
}

// NewGormLegalOrganizationRepository creates a new GormLegalOrganizationRepository
func NewGormLegalOrganizationRepository(db *gorm.DB) *GormLegalOrganizationRepository {
	return &GormLegalOrganizationRepository{db: db}
}

// FindByID finds a legal organization by ID
func (r *GormLegalOrganizationRepository) FindByID(ctx context.Context, id int64) (*organization.LegalOrganization, error) {
	var model models.LegalOrganizationModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "legal organization", id)
	}
	return model.ToDomain(), nil
}

// FindByCNPJ finds a legal organization by its tax id
func (r *GormLegalOrganizationRepository) FindByCNPJ(ctx context.Context, cnpj string) (*organization.LegalOrganization, error) {
	var model models.LegalOrganizationModel
	if err := r.db.WithContext(ctx).Where("cnpj = ?", cnpj).First(&model).Error; err != nil {
		return nil, notFoundBy(err, "legal organization", "cnpj "+cnpj)
	}
	return model.ToDomain(), nil
}

// List returns one page of legal organizations ordered by id
func (r *GormLegalOrganizationRepository) List(ctx context.Context, page shared.Page) (shared.Listing[*organization.LegalOrganization], error) {
	return listPage(ctx, r.db, page, (*models.LegalOrganizationModel).ToDomain)
}

// Create inserts a legal organization and assigns its ID
func (r *GormLegalOrganizationRepository) Create(ctx context.Context, org *organization.LegalOrganization) error {
	model := models.LegalOrganizationModelFromDomain(org)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translateError("create legal organization", err)
	}
	org.BaseEntity = model.BaseModel.ToDomain()
	return nil
}

// Update writes every column of an existing legal organization
func (r *GormLegalOrganizationRepository) Update(ctx context.Context, org *organization.LegalOrganization) error {
	return updateRow(ctx, r.db, models.LegalOrganizationModelFromDomain(org), "legal organization", org.ID)
}

// Delete removes a legal organization by ID
func (r *GormLegalOrganizationRepository) Delete(ctx context.Context, id int64) error {
	return deleteRow[models.LegalOrganizationModel](ctx, r.db, "legal organization", id)
}

// GormOrganizationRepository implements OrganizationRepository using GORM
type GormOrganizationRepository struct {
	db *gorm.DB
}

// NewGormOrganizationRepository creates a new GormOrganizationRepository
func NewGormOrganizationRepository(db *gorm.DB) *GormOrganizationRepository {
	return &GormOrganizationRepository{db: db}
}

// FindByID finds an organization by ID
func (r *GormOrganizationRepository) FindByID(ctx context.Context, id int64) (*organization.Organization, error) {
	var model models.OrganizationModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "organization", id)
	}
	return model.ToDomain(), nil
}

// FindByCNPJ finds an organization by its tax id
func (r *GormOrganizationRepository) FindByCNPJ(ctx context.Context, cnpj string) (*organization.Organization, error) {
	var model models.OrganizationModel
	if err := r.db.WithContext(ctx).Where("cnpj = ?", cnpj).First(&model).Error; err != nil {
		return nil, notFoundBy(err, "organization", "cnpj "+cnpj)
	}
	return model.ToDomain(), nil
}

// List returns one page of organizations ordered by id
func (r *GormOrganizationRepository) List(ctx context.Context, page shared.Page) (shared.Listing[*organization.Organization], error) {
	return listPage(ctx, r.db, page, (*models.OrganizationModel).ToDomain)
}

// CountByLegalOrganization counts organizations owned by a legal organization
func (r *GormOrganizationRepository) CountByLegalOrganization(ctx context.Context, legalOrganizationID int64) (int64, error) {
	return countWhere[models.OrganizationModel](ctx, r.db, "legal_organization_id", legalOrganizationID)
}

// Create inserts an organization and assigns its ID
func (r *GormOrganizationRepository) Create(ctx context.Context, org *organization.Organization) error {
	model := models.OrganizationModelFromDomain(org)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translateError("create organization", err)
	}
	org.BaseEntity = model.BaseModel.ToDomain()
	return nil
}

// Update writes every column of an existing organization
func (r *GormOrganizationRepository) Update(ctx context.Context, org *organization.Organization) error {
	return updateRow(ctx, r.db, models.OrganizationModelFromDomain(org), "organization", org.ID)
}

// Delete removes an organization by ID
func (r *GormOrganizationRepository) Delete(ctx context.Context, id int64) error {
	return deleteRow[models.OrganizationModel](ctx, r.db, "organization", id)
}

// Ensure the repositories implement their domain interfaces
var (
	_ organization.LegalOrganizationRepository = (*GormLegalOrganizationRepository)(nil)
	_ organization.OrganizationRepository      = (*GormOrganizationRepository)(nil)
)
