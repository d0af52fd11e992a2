package models

import (
	"github.com/executiva/backend/internal/domain/identity"
)

// UserModel is the persistence model for the User domain entity.
type UserModel struct {
	BaseModel
	Name           string  `gorm:"type:varchar(100);not null"`
	Email          string  `gorm:"type:varchar(255);not null;uniqueIndex:idx_users_email"`
	Phone          *string `gorm:"type:varchar(50)"`
	HashedPassword string  `gorm:"type:varchar(255);not null"`
	IsActive       bool    `gorm:"not null"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User entity.
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseEntity:   m.BaseModel.ToDomain(),
		Name:         m.Name,
		Email:        m.Email,
		Phone:        m.Phone,
		PasswordHash: m.HashedPassword,
		Active:       m.IsActive,
	}
}

// FromDomain populates the persistence model from a domain User entity.
func (m *UserModel) FromDomain(u *identity.User) {
	m.FromDomainBaseEntity(u.BaseEntity)
	m.Name = u.Name
	m.Email = u.Email
	m.Phone = u.Phone
	m.HashedPassword = u.PasswordHash
	m.IsActive = u.Active
}

// UserModelFromDomain creates a new persistence model from a domain User entity.
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{}
	m.FromDomain(u)
	return m
}
