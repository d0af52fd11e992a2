package persistence

import (
	"context"

	"github.com/executiva/backend/internal/domain/personnel"
	"github.com/executiva/backend/internal/domain/shared"
	"github.com/executiva/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormExecutiveRepository implements ExecutiveRepository using GORM
type GormExecutiveRepository struct {
	db *gorm.DB
}

// NewGormExecutiveRepository creates a new GormExecutiveRepository
func NewGormExecutiveRepository(db *gorm.DB) *GormExecutiveRepository {
	return &GormExecutiveRepository{db: db}
}

// FindByID finds an executive by ID
func (r *GormExecutiveRepository) FindByID(ctx context.Context, id int64) (*personnel.Executive, error) {
	var model models.ExecutiveModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "executive", id)
	}
	return model.ToDomain(), nil
}

// FindByCPF finds an executive by tax id
func (r *GormExecutiveRepository) FindByCPF(ctx context.Context, cpf string) (*personnel.Executive, error) {
	var model models.ExecutiveModel
	if err := r.db.WithContext(ctx).Where("cpf = ?", cpf).First(&model).Error; err != nil {
		return nil, notFoundBy(err, "executive", "cpf "+cpf)
	}
	return model.ToDomain(), nil
}

// FindByWorkEmail finds an executive by work email
func (r *GormExecutiveRepository) FindByWorkEmail(ctx context.Context, email string) (*personnel.Executive, error) {
	var model models.ExecutiveModel
	if err := r.db.WithContext(ctx).Where("work_email = ?", email).First(&model).Error; err != nil {
		return nil, notFoundBy(err, "executive", "work email "+email)
	}
	return model.ToDomain(), nil
}

// FindByAnyEmail finds the first executive whose work or personal email matches
func (r *GormExecutiveRepository) FindByAnyEmail(ctx context.Context, email string) (*personnel.Executive, error) {
	var model models.ExecutiveModel
	if err := r.db.WithContext(ctx).
		Where("work_email = ? OR personal_email = ?", email, email).
		Order("id ASC").
		First(&model).Error; err != nil {
		return nil, notFoundBy(err, "executive", "email "+email)
	}
	return model.ToDomain(), nil
}

// ExistingIDs returns the subset of ids that resolve to stored executives, ascending
func (r *GormExecutiveRepository) ExistingIDs(ctx context.Context, ids []int64) ([]int64, error) {
	ids = personnel.NormalizeIDs(ids)
	if len(ids) == 0 {
		return []int64{}, nil
	}
	var found []int64
	if err := r.db.WithContext(ctx).
		Model(&models.ExecutiveModel{}).
		Where("id IN ?", ids).
		Order("id ASC").
		Pluck("id", &found).Error; err != nil {
		return nil, err
	}
	return found, nil
}

// List returns one page of executives ordered by id
func (r *GormExecutiveRepository) List(ctx context.Context, page shared.Page) (shared.Listing[*personnel.Executive], error) {
	return listPage(ctx, r.db, page, (*models.ExecutiveModel).ToDomain)
}

// Create inserts an executive and assigns its ID
func (r *GormExecutiveRepository) Create(ctx context.Context, exec *personnel.Executive) error {
	model := models.ExecutiveModelFromDomain(exec)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translateError("create executive", err)
	}
	exec.BaseEntity = model.BaseModel.ToDomain()
	return nil
}

// Update writes every column of an existing executive
func (r *GormExecutiveRepository) Update(ctx context.Context, exec *personnel.Executive) error {
	return updateRow(ctx, r.db, models.ExecutiveModelFromDomain(exec), "executive", exec.ID)
}

// Delete removes an executive by ID. Links from other personnel are cleared by
// the store and association rows are removed with it.
func (r *GormExecutiveRepository) Delete(ctx context.Context, id int64) error {
	return deleteRow[models.ExecutiveModel](ctx, r.db, "executive", id)
}

// GormSecretaryRepository implements SecretaryRepository using GORM
type GormSecretaryRepository struct {
	db *gorm.DB
}

// NewGormSecretaryRepository creates a new GormSecretaryRepository
func NewGormSecretaryRepository(db *gorm.DB) *GormSecretaryRepository {
	return &GormSecretaryRepository{db: db}
}

// FindByID finds a secretary by ID together with its executive set
func (r *GormSecretaryRepository) FindByID(ctx context.Context, id int64) (*personnel.Secretary, error) {
	var model models.SecretaryModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "secretary", id)
	}
	return r.withExecutives(ctx, &model)
}

// FindByCPF finds a secretary by tax id
func (r *GormSecretaryRepository) FindByCPF(ctx context.Context, cpf string) (*personnel.Secretary, error) {
	var model models.SecretaryModel
	if err := r.db.WithContext(ctx).Where("cpf = ?", cpf).First(&model).Error; err != nil {
		return nil, notFoundBy(err, "secretary", "cpf "+cpf)
	}
	return r.withExecutives(ctx, &model)
}

// List returns one page of secretaries ordered by id, each with its executive set
func (r *GormSecretaryRepository) List(ctx context.Context, page shared.Page) (shared.Listing[*personnel.Secretary], error) {
	listing, err := listPage(ctx, r.db, page, func(m *models.SecretaryModel) *personnel.Secretary {
		return m.ToDomain(nil)
	})
	if err != nil || len(listing.Items) == 0 {
		return listing, err
	}

	ids := make([]int64, len(listing.Items))
	for i, s := range listing.Items {
		ids[i] = s.ID
	}
	var links []models.SecretaryExecutiveModel
	if err := r.db.WithContext(ctx).
		Where("secretary_id IN ?", ids).
		Order("secretary_id ASC, executive_id ASC").
		Find(&links).Error; err != nil {
		return shared.Listing[*personnel.Secretary]{}, err
	}

	bySecretary := make(map[int64][]int64, len(ids))
	for _, l := range links {
		bySecretary[l.SecretaryID] = append(bySecretary[l.SecretaryID], l.ExecutiveID)
	}
	for _, s := range listing.Items {
		s.ExecutiveIDs = personnel.NormalizeIDs(bySecretary[s.ID])
	}
	return listing, nil
}

// Create inserts a secretary and its association rows, and assigns its ID
func (r *GormSecretaryRepository) Create(ctx context.Context, sec *personnel.Secretary) error {
	model := models.SecretaryModelFromDomain(sec)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translateError("create secretary", err)
	}
	sec.BaseEntity = model.BaseModel.ToDomain()
	return r.insertLinks(ctx, sec.ID, sec.ExecutiveIDs)
}

// Update writes every column of an existing secretary. The executive set is
// left untouched.
func (r *GormSecretaryRepository) Update(ctx context.Context, sec *personnel.Secretary) error {
	return updateRow(ctx, r.db, models.SecretaryModelFromDomain(sec), "secretary", sec.ID)
}

// ReplaceExecutives rewrites the association rows of a secretary to exactly executiveIDs
func (r *GormSecretaryRepository) ReplaceExecutives(ctx context.Context, secretaryID int64, executiveIDs []int64) error {
	if err := r.db.WithContext(ctx).
		Where("secretary_id = ?", secretaryID).
		Delete(&models.SecretaryExecutiveModel{}).Error; err != nil {
		return translateError("clear secretary executives", err)
	}
	return r.insertLinks(ctx, secretaryID, executiveIDs)
}

// Delete removes a secretary by ID; its association rows go with it
func (r *GormSecretaryRepository) Delete(ctx context.Context, id int64) error {
	return deleteRow[models.SecretaryModel](ctx, r.db, "secretary", id)
}

func (r *GormSecretaryRepository) insertLinks(ctx context.Context, secretaryID int64, executiveIDs []int64) error {
	ids := personnel.NormalizeIDs(executiveIDs)
	if len(ids) == 0 {
		return nil
	}
	links := make([]models.SecretaryExecutiveModel, len(ids))
	for i, id := range ids {
		links[i] = models.SecretaryExecutiveModel{SecretaryID: secretaryID, ExecutiveID: id}
	}
	if err := r.db.WithContext(ctx).Create(&links).Error; err != nil {
		return translateError("link secretary executives", err)
	}
	return nil
}

func (r *GormSecretaryRepository) withExecutives(ctx context.Context, model *models.SecretaryModel) (*personnel.Secretary, error) {
	var ids []int64
	if err := r.db.WithContext(ctx).
		Model(&models.SecretaryExecutiveModel{}).
		Where("secretary_id = ?", model.ID).
		Order("executive_id ASC").
		Pluck("executive_id", &ids).Error; err != nil {
		return nil, err
	}
	return model.ToDomain(ids), nil
}

var (
	_ personnel.ExecutiveRepository = (*GormExecutiveRepository)(nil)
	_ personnel.SecretaryRepository = (*GormSecretaryRepository)(nil)
)
