package persistence

import (
	"context"
	"strings"

	"github.com/executiva/backend/internal/domain/identity"
	"github.com/executiva/backend/internal/domain/shared"
	"github.com/executiva/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormUserRepository implements UserRepository using GORM
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GormUserRepository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user and assigns its ID
func (r *GormUserRepository) Create(ctx context.Context, user *identity.User) error {
	model := models.UserModelFromDomain(user)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translateError("create user", err)
	}
	user.BaseEntity = model.BaseModel.ToDomain()
	return nil
}

// Update updates an existing user
func (r *GormUserRepository) Update(ctx context.Context, user *identity.User) error {
	return updateRow(ctx, r.db, models.UserModelFromDomain(user), "user", user.ID)
}

// Delete deletes a user by ID
func (r *GormUserRepository) Delete(ctx context.Context, id int64) error {
	return deleteRow[models.UserModel](ctx, r.db, "user", id)
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(ctx context.Context, id int64) (*identity.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "user", id)
	}
	return model.ToDomain(), nil
}

// FindByEmail finds a user by email. Emails are stored lower-cased.
func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var model models.UserModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		return nil, notFoundBy(err, "user", "email "+email)
	}
	return model.ToDomain(), nil
}

// List returns one page of users ordered by id
func (r *GormUserRepository) List(ctx context.Context, page shared.Page) (shared.Listing[*identity.User], error) {
	return listPage(ctx, r.db, page, (*models.UserModel).ToDomain)
}

var _ identity.UserRepository = (*GormUserRepository)(nil)
