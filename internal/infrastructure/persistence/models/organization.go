package models

import (
	"github.com/executiva/backend/internal/domain/organization"
)

// AddressColumns holds the postal address columns of legal organizations and organizations
type AddressColumns struct {
	Street       *string `gorm:"type:varchar(255)"`
	Number       *string `gorm:"type:varchar(50)"`
	Neighborhood *string `gorm:"type:varchar(100)"`
	City         *string `gorm:"type:varchar(100)"`
	State        *string `gorm:"type:varchar(2)"`
	ZipCode      *string `gorm:"column:zip_code;type:varchar(20)"`
}

// ToDomain converts the columns to a domain Address
func (a AddressColumns) ToDomain() organization.Address {
	return organization.Address{
		Street:       a.Street,
		Number:       a.Number,
		Neighborhood: a.Neighborhood,
		City:         a.City,
		State:        a.State,
		ZipCode:      a.ZipCode,
	}
}

// AddressColumnsFromDomain creates address columns from a domain Address
func AddressColumnsFromDomain(a organization.Address) AddressColumns {
	return AddressColumns{
		Street:       a.Street,
		Number:       a.Number,
		Neighborhood: a.Neighborhood,
		City:         a.City,
		State:        a.State,
		ZipCode:      a.ZipCode,
	}
}

// LegalOrganizationModel is the persistence model for the LegalOrganization domain entity.
type LegalOrganizationModel struct {
	BaseModel
	Name string  `gorm:"type:varchar(255);not null;index"`
	CNPJ *string `gorm:"column:cnpj;type:varchar(20);uniqueIndex:idx_legal_organizations_cnpj"`
	AddressColumns
}

// TableName returns the table name for GORM
func (LegalOrganizationModel) TableName() string {
	return "legal_organizations"
}

// ToDomain converts the persistence model to a domain LegalOrganization entity.
func (m *LegalOrganizationModel) ToDomain() *organization.LegalOrganization {
	return &organization.LegalOrganization{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		CNPJ:       m.CNPJ,
		Address:    m.AddressColumns.ToDomain(),
	}
}

// FromDomain populates the persistence model from a domain LegalOrganization entity.
func (m *LegalOrganizationModel) FromDomain(o *organization.LegalOrganization) {
	m.FromDomainBaseEntity(o.BaseEntity)
	m.Name = o.Name
	m.CNPJ = o.CNPJ
	m.AddressColumns = AddressColumnsFromDomain(o.Address)
}

// LegalOrganizationModelFromDomain creates a new persistence model from a domain entity.
func LegalOrganizationModelFromDomain(o *organization.LegalOrganization) *LegalOrganizationModel {
	m := &LegalOrganizationModel{}
	m.FromDomain(o)
	return m
}

// OrganizationModel is the persistence model for the Organization domain entity.
type OrganizationModel struct {
	BaseModel
	LegalOrganizationID int64   `gorm:"not null;index"`
	Name                string  `gorm:"type:varchar(255);not null;index"`
	CNPJ                *string `gorm:"column:cnpj;type:varchar(20);uniqueIndex:idx_organizations_cnpj"`
	AddressColumns

	LegalOrganization *LegalOrganizationModel `gorm:"foreignKey:LegalOrganizationID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for GORM
func (OrganizationModel) TableName() string {
	return "organizations"
}

// ToDomain converts the persistence model to a domain Organization entity.
func (m *OrganizationModel) ToDomain() *organization.Organization {
	return &organization.Organization{
		BaseEntity:          m.BaseModel.ToDomain(),
		LegalOrganizationID: m.LegalOrganizationID,
		Name:                m.Name,
		CNPJ:                m.CNPJ,
		Address:             m.AddressColumns.ToDomain(),
	}
}

// FromDomain populates the persistence model from a domain Organization entity.
func (m *OrganizationModel) FromDomain(o *organization.Organization) {
	m.FromDomainBaseEntity(o.BaseEntity)
	m.LegalOrganizationID = o.LegalOrganizationID
	m.Name = o.Name
	m.CNPJ = o.CNPJ
	m.AddressColumns = AddressColumnsFromDomain(o.Address)
}

// OrganizationModelFromDomain creates a new persistence model from a domain entity.
func OrganizationModelFromDomain(o *organization.Organization) *OrganizationModel {
	m := &OrganizationModel{}
	m.FromDomain(o)
	return m
}

// DepartmentModel is the persistence model for the Department domain entity.
// (name, organization_id) is unique.
type DepartmentModel struct {
	BaseModel
	Name           string `gorm:"type:varchar(255);not null;uniqueIndex:idx_departments_name_organization,priority:1"`
	OrganizationID int64  `gorm:"not null;index;uniqueIndex:idx_departments_name_organization,priority:2"`

	Organization *OrganizationModel `gorm:"foreignKey:OrganizationID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for GORM
func (DepartmentModel) TableName() string {
	return "departments"
}

// ToDomain converts the persistence model to a domain Department entity.
func (m *DepartmentModel) ToDomain() *organization.Department {
	return &organization.Department{
		BaseEntity:     m.BaseModel.ToDomain(),
		OrganizationID: m.OrganizationID,
		Name:           m.Name,
	}
}

// FromDomain populates the persistence model from a domain Department entity.
func (m *DepartmentModel) FromDomain(d *organization.Department) {
	m.FromDomainBaseEntity(d.BaseEntity)
	m.OrganizationID = d.OrganizationID
	m.Name = d.Name
}

// DepartmentModelFromDomain creates a new persistence model from a domain entity.
func DepartmentModelFromDomain(d *organization.Department) *DepartmentModel {
	m := &DepartmentModel{}
	m.FromDomain(d)
	return m
}
