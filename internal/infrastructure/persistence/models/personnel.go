package models

import (
	"time"

	"github.com/executiva/backend/internal/domain/personnel"
	"github.com/executiva/backend/internal/domain/shared"
)

// ProfileColumns holds the personal and professional columns shared by
// executives and secretaries. The postal address column differs per table and
// lives on the owning model.
type ProfileColumns struct {
	FullName     string     `gorm:"type:varchar(255);not null;index"`
	CPF          *string    `gorm:"column:cpf;type:varchar(14)"`
	RG           *string    `gorm:"column:rg;type:varchar(20)"`
	RGIssuer     *string    `gorm:"column:rg_issuer;type:varchar(50)"`
	RGIssueDate  *time.Time `gorm:"column:rg_issue_date;type:date"`
	BirthDate    *time.Time `gorm:"type:date"`
	Nationality  *string    `gorm:"type:varchar(100)"`
	PlaceOfBirth *string    `gorm:"type:varchar(100)"`
	MotherName   *string    `gorm:"type:varchar(255)"`
	FatherName   *string    `gorm:"type:varchar(255)"`
	CivilStatus  *string    `gorm:"type:varchar(50)"`

	WorkEmail     *string `gorm:"type:varchar(255)"`
	WorkPhone     *string `gorm:"type:varchar(50)"`
	Extension     *string `gorm:"type:varchar(20)"`
	PersonalEmail *string `gorm:"type:varchar(255)"`
	PersonalPhone *string `gorm:"type:varchar(50)"`

	LinkedinProfileURL   *string    `gorm:"column:linkedin_profile_url;type:varchar(255)"`
	JobTitle             *string    `gorm:"type:varchar(255)"`
	OrganizationID       *int64     `gorm:"index"`
	DepartmentID         *int64     `gorm:"index"`
	CostCenter           *string    `gorm:"type:varchar(100)"`
	EmployeeID           *string    `gorm:"column:employee_id;type:varchar(100)"`
	ReportsToExecutiveID *int64     `gorm:"column:reports_to_executive_id;index"`
	HireDate             *time.Time `gorm:"type:date"`
	WorkLocation         *string    `gorm:"type:varchar(255)"`
	PhotoURL             *string    `gorm:"column:photo_url;type:text"`
	Bio                  *string    `gorm:"type:text"`
	Education            *string    `gorm:"type:text"`
	Languages            *string    `gorm:"type:text"`

	EmergencyContactName     *string `gorm:"type:varchar(255)"`
	EmergencyContactPhone    *string `gorm:"type:varchar(50)"`
	EmergencyContactRelation *string `gorm:"type:varchar(100)"`

	DependentsInfo     *string `gorm:"type:text"`
	BankInfo           *string `gorm:"type:text"`
	CompensationInfo   *string `gorm:"type:text"`
	SystemAccessLevels *string `gorm:"type:text"`
}

func profileColumnsFromDomain(p personnel.Profile) ProfileColumns {
	return ProfileColumns{
		FullName:                 p.FullName,
		CPF:                      p.CPF,
		RG:                       p.RG,
		RGIssuer:                 p.RGIssuer,
		RGIssueDate:              p.RGIssueDate.TimePtr(),
		BirthDate:                p.BirthDate.TimePtr(),
		Nationality:              p.Nationality,
		PlaceOfBirth:             p.PlaceOfBirth,
		MotherName:               p.MotherName,
		FatherName:               p.FatherName,
		CivilStatus:              p.CivilStatus,
		WorkEmail:                p.WorkEmail,
		WorkPhone:                p.WorkPhone,
		Extension:                p.Extension,
		PersonalEmail:            p.PersonalEmail,
		PersonalPhone:            p.PersonalPhone,
		LinkedinProfileURL:       p.LinkedinProfileURL,
		JobTitle:                 p.JobTitle,
		OrganizationID:           p.OrganizationID,
		DepartmentID:             p.DepartmentID,
		CostCenter:               p.CostCenter,
		EmployeeID:               p.EmployeeID,
		ReportsToExecutiveID:     p.ReportsToExecutiveID,
		HireDate:                 p.HireDate.TimePtr(),
		WorkLocation:             p.WorkLocation,
		PhotoURL:                 p.PhotoURL,
		Bio:                      p.Bio,
		Education:                p.Education,
		Languages:                p.Languages,
		EmergencyContactName:     p.EmergencyContactName,
		EmergencyContactPhone:    p.EmergencyContactPhone,
		EmergencyContactRelation: p.EmergencyContactRelation,
		DependentsInfo:           p.DependentsInfo,
		BankInfo:                 p.BankInfo,
		CompensationInfo:         p.CompensationInfo,
		SystemAccessLevels:       p.SystemAccessLevels,
	}
}

func (c ProfileColumns) toDomain(address *string) personnel.Profile {
	return personnel.Profile{
		FullName:                 c.FullName,
		CPF:                      c.CPF,
		RG:                       c.RG,
		RGIssuer:                 c.RGIssuer,
		RGIssueDate:              shared.DatePtr(c.RGIssueDate),
		BirthDate:                shared.DatePtr(c.BirthDate),
		Nationality:              c.Nationality,
		PlaceOfBirth:             c.PlaceOfBirth,
		MotherName:               c.MotherName,
		FatherName:               c.FatherName,
		CivilStatus:              c.CivilStatus,
		WorkEmail:                c.WorkEmail,
		WorkPhone:                c.WorkPhone,
		Extension:                c.Extension,
		PersonalEmail:            c.PersonalEmail,
		PersonalPhone:            c.PersonalPhone,
		Address:                  address,
		LinkedinProfileURL:       c.LinkedinProfileURL,
		JobTitle:                 c.JobTitle,
		OrganizationID:           c.OrganizationID,
		DepartmentID:             c.DepartmentID,
		CostCenter:               c.CostCenter,
		EmployeeID:               c.EmployeeID,
		ReportsToExecutiveID:     c.ReportsToExecutiveID,
		HireDate:                 shared.DatePtr(c.HireDate),
		WorkLocation:             c.WorkLocation,
		PhotoURL:                 c.PhotoURL,
		Bio:                      c.Bio,
		Education:                c.Education,
		Languages:                c.Languages,
		EmergencyContactName:     c.EmergencyContactName,
		EmergencyContactPhone:    c.EmergencyContactPhone,
		EmergencyContactRelation: c.EmergencyContactRelation,
		DependentsInfo:           c.DependentsInfo,
		BankInfo:                 c.BankInfo,
		CompensationInfo:         c.CompensationInfo,
		SystemAccessLevels:       c.SystemAccessLevels,
	}
}

// ExecutiveModel is the persistence model for the Executive domain entity.
// cpf and work_email are unique; the postal address is stored in "street".
type ExecutiveModel struct {
	BaseModel
	ProfileColumns
	Street *string `gorm:"type:varchar(255)"`

	Organization *OrganizationModel `gorm:"foreignKey:OrganizationID;constraint:OnDelete:SET NULL"`
	Department   *DepartmentModel   `gorm:"foreignKey:DepartmentID;constraint:OnDelete:SET NULL"`
	ReportsTo    *ExecutiveModel    `gorm:"foreignKey:ReportsToExecutiveID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for GORM
func (ExecutiveModel) TableName() string {
	return "executives"
}

// ToDomain converts the persistence model to a domain Executive entity.
func (m *ExecutiveModel) ToDomain() *personnel.Executive {
	return &personnel.Executive{
		BaseEntity: m.BaseModel.ToDomain(),
		Profile:    m.ProfileColumns.toDomain(m.Street),
	}
}

// FromDomain populates the persistence model from a domain Executive entity.
func (m *ExecutiveModel) FromDomain(e *personnel.Executive) {
	m.FromDomainBaseEntity(e.BaseEntity)
	m.ProfileColumns = profileColumnsFromDomain(e.Profile)
	m.Street = e.Address
}

// ExecutiveModelFromDomain creates a new persistence model from a domain entity.
func ExecutiveModelFromDomain(e *personnel.Executive) *ExecutiveModel {
	m := &ExecutiveModel{}
	m.FromDomain(e)
	return m
}

// SecretaryModel is the persistence model for the Secretary domain entity.
// Only cpf is unique.
type SecretaryModel struct {
	BaseModel
	ProfileColumns
	Address *string `gorm:"type:varchar(255)"`

	Organization *OrganizationModel `gorm:"foreignKey:OrganizationID;constraint:OnDelete:SET NULL"`
	Department   *DepartmentModel   `gorm:"foreignKey:DepartmentID;constraint:OnDelete:SET NULL"`
	ReportsTo    *ExecutiveModel    `gorm:"foreignKey:ReportsToExecutiveID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for GORM
func (SecretaryModel) TableName() string {
	return "secretaries"
}

// ToDomain converts the persistence model to a domain Secretary entity.
// The executive set is loaded separately by the repository.
func (m *SecretaryModel) ToDomain(executiveIDs []int64) *personnel.Secretary {
	return &personnel.Secretary{
		BaseEntity:   m.BaseModel.ToDomain(),
		Profile:      m.ProfileColumns.toDomain(m.Address),
		ExecutiveIDs: personnel.NormalizeIDs(executiveIDs),
	}
}

// FromDomain populates the persistence model from a domain Secretary entity.
func (m *SecretaryModel) FromDomain(s *personnel.Secretary) {
	m.FromDomainBaseEntity(s.BaseEntity)
	m.ProfileColumns = profileColumnsFromDomain(s.Profile)
	m.Address = s.Address
}

// SecretaryModelFromDomain creates a new persistence model from a domain entity.
func SecretaryModelFromDomain(s *personnel.Secretary) *SecretaryModel {
	m := &SecretaryModel{}
	m.FromDomain(s)
	return m
}

// SecretaryExecutiveModel is one row of the secretary/executive association.
// Rows disappear with either side.
type SecretaryExecutiveModel struct {
	SecretaryID int64 `gorm:"primaryKey;autoIncrement:false"`
	ExecutiveID int64 `gorm:"primaryKey;autoIncrement:false;index"`

	Secretary *SecretaryModel `gorm:"foreignKey:SecretaryID;constraint:OnDelete:CASCADE"`
	Executive *ExecutiveModel `gorm:"foreignKey:ExecutiveID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (SecretaryExecutiveModel) TableName() string {
	return "secretary_executives"
}
