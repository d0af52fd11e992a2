package personnel

import (
	"github.com/executiva/backend/internal/domain/personnel"
	"github.com/executiva/backend/internal/domain/shared"
)

// ProfileInput holds the profile fields shared by executive and secretary
// payloads. The postal address is declared by each kind under its own key.
type ProfileInput struct {
	FullName     shared.Optional[string]       `json:"full_name" validate:"omitempty,max=255"`
	CPF          shared.Optional[*string]      `json:"cpf" validate:"omitempty,max=20"`
	RG           shared.Optional[*string]      `json:"rg" validate:"omitempty,max=20"`
	RGIssuer     shared.Optional[*string]      `json:"rg_issuer" validate:"omitempty,max=50"`
	RGIssueDate  shared.Optional[*shared.Date] `json:"rg_issue_date"`
	BirthDate    shared.Optional[*shared.Date] `json:"birth_date"`
	Nationality  shared.Optional[*string]      `json:"nationality" validate:"omitempty,max=100"`
	PlaceOfBirth shared.Optional[*string]      `json:"place_of_birth" validate:"omitempty,max=100"`
	MotherName   shared.Optional[*string]      `json:"mother_name" validate:"omitempty,max=255"`
	FatherName   shared.Optional[*string]      `json:"father_name" validate:"omitempty,max=255"`
	CivilStatus  shared.Optional[*string]      `json:"civil_status" validate:"omitempty,max=50"`

	WorkEmail     shared.Optional[*string] `json:"work_email" validate:"omitempty,email,max=255"`
	WorkPhone     shared.Optional[*string] `json:"work_phone" validate:"omitempty,max=50"`
	Extension     shared.Optional[*string] `json:"extension" validate:"omitempty,max=20"`
	PersonalEmail shared.Optional[*string] `json:"personal_email" validate:"omitempty,email,max=255"`
	PersonalPhone shared.Optional[*string] `json:"personal_phone" validate:"omitempty,max=50"`

	LinkedinProfileURL   shared.Optional[*string]      `json:"linkedin_profile_url" validate:"omitempty,max=255"`
	JobTitle             shared.Optional[*string]      `json:"job_title" validate:"omitempty,max=100"`
	OrganizationID       shared.Optional[*int64]       `json:"organization_id" validate:"omitempty,gt=0"`
	DepartmentID         shared.Optional[*int64]       `json:"department_id" validate:"omitempty,gt=0"`
	CostCenter           shared.Optional[*string]      `json:"cost_center" validate:"omitempty,max=50"`
	EmployeeID           shared.Optional[*string]      `json:"employee_id" validate:"omitempty,max=50"`
	ReportsToExecutiveID shared.Optional[*int64]       `json:"reports_to_executive_id" validate:"omitempty,gt=0"`
	HireDate             shared.Optional[*shared.Date] `json:"hire_date"`
	WorkLocation         shared.Optional[*string]      `json:"work_location" validate:"omitempty,max=255"`
	PhotoURL             shared.Optional[*string]      `json:"photo_url" validate:"omitempty,max=255"`
	Bio                  shared.Optional[*string]      `json:"bio"`
	Education            shared.Optional[*string]      `json:"education"`
	Languages            shared.Optional[*string]      `json:"languages"`

	EmergencyContactName     shared.Optional[*string] `json:"emergency_contact_name" validate:"omitempty,max=255"`
	EmergencyContactPhone    shared.Optional[*string] `json:"emergency_contact_phone" validate:"omitempty,max=50"`
	EmergencyContactRelation shared.Optional[*string] `json:"emergency_contact_relation" validate:"omitempty,max=50"`

	DependentsInfo     shared.Optional[*string] `json:"dependents_info"`
	BankInfo           shared.Optional[*string] `json:"bank_info"`
	CompensationInfo   shared.Optional[*string] `json:"compensation_info"`
	SystemAccessLevels shared.Optional[*string] `json:"system_access_levels"`
}

// Profile returns the supplied fields as a new profile; absent fields are nil
func (in ProfileInput) Profile(address *string) personnel.Profile {
	return personnel.Profile{
		FullName:     in.FullName.Value,
		CPF:          in.CPF.Value,
		RG:           in.RG.Value,
		RGIssuer:     in.RGIssuer.Value,
		RGIssueDate:  in.RGIssueDate.Value,
		BirthDate:    in.BirthDate.Value,
		Nationality:  in.Nationality.Value,
		PlaceOfBirth: in.PlaceOfBirth.Value,
		MotherName:   in.MotherName.Value,
		FatherName:   in.FatherName.Value,
		CivilStatus:  in.CivilStatus.Value,

		WorkEmail:     in.WorkEmail.Value,
		WorkPhone:     in.WorkPhone.Value,
		Extension:     in.Extension.Value,
		PersonalEmail: in.PersonalEmail.Value,
		PersonalPhone: in.PersonalPhone.Value,
		Address:       address,

		LinkedinProfileURL:   in.LinkedinProfileURL.Value,
		JobTitle:             in.JobTitle.Value,
		OrganizationID:       in.OrganizationID.Value,
		DepartmentID:         in.DepartmentID.Value,
		CostCenter:           in.CostCenter.Value,
		EmployeeID:           in.EmployeeID.Value,
		ReportsToExecutiveID: in.ReportsToExecutiveID.Value,
		HireDate:             in.HireDate.Value,
		WorkLocation:         in.WorkLocation.Value,
		PhotoURL:             in.PhotoURL.Value,
		Bio:                  in.Bio.Value,
		Education:            in.Education.Value,
		Languages:            in.Languages.Value,

		EmergencyContactName:     in.EmergencyContactName.Value,
		EmergencyContactPhone:    in.EmergencyContactPhone.Value,
		EmergencyContactRelation: in.EmergencyContactRelation.Value,

		DependentsInfo:     in.DependentsInfo.Value,
		BankInfo:           in.BankInfo.Value,
		CompensationInfo:   in.CompensationInfo.Value,
		SystemAccessLevels: in.SystemAccessLevels.Value,
	}
}

// Patch returns the supplied fields as a profile patch
func (in ProfileInput) Patch(address shared.Optional[*string]) personnel.ProfilePatch {
	return personnel.ProfilePatch{
		FullName:     in.FullName,
		CPF:          in.CPF,
		RG:           in.RG,
		RGIssuer:     in.RGIssuer,
		RGIssueDate:  in.RGIssueDate,
		BirthDate:    in.BirthDate,
		Nationality:  in.Nationality,
		PlaceOfBirth: in.PlaceOfBirth,
		MotherName:   in.MotherName,
		FatherName:   in.FatherName,
		CivilStatus:  in.CivilStatus,

		WorkEmail:     in.WorkEmail,
		WorkPhone:     in.WorkPhone,
		Extension:     in.Extension,
		PersonalEmail: in.PersonalEmail,
		PersonalPhone: in.PersonalPhone,
		Address:       address,

		LinkedinProfileURL:   in.LinkedinProfileURL,
		JobTitle:             in.JobTitle,
		OrganizationID:       in.OrganizationID,
		DepartmentID:         in.DepartmentID,
		CostCenter:           in.CostCenter,
		EmployeeID:           in.EmployeeID,
		ReportsToExecutiveID: in.ReportsToExecutiveID,
		HireDate:             in.HireDate,
		WorkLocation:         in.WorkLocation,
		PhotoURL:             in.PhotoURL,
		Bio:                  in.Bio,
		Education:            in.Education,
		Languages:            in.Languages,

		EmergencyContactName:     in.EmergencyContactName,
		EmergencyContactPhone:    in.EmergencyContactPhone,
		EmergencyContactRelation: in.EmergencyContactRelation,

		DependentsInfo:     in.DependentsInfo,
		BankInfo:           in.BankInfo,
		CompensationInfo:   in.CompensationInfo,
		SystemAccessLevels: in.SystemAccessLevels,
	}
}

// ExecutiveInput is the canonical payload of an executive create or update.
// The postal address is stored under "street".
type ExecutiveInput struct {
	ProfileInput
	Street shared.Optional[*string] `json:"street"`
}

// Profile returns the supplied fields as a new profile
func (in ExecutiveInput) Profile() personnel.Profile {
	return in.ProfileInput.Profile(in.Street.Value)
}

// Patch returns the supplied fields as a profile patch
func (in ExecutiveInput) Patch() personnel.ProfilePatch {
	return in.ProfileInput.Patch(in.Street)
}

// SecretaryInput is the canonical payload of a secretary create or update.
// On update an absent executive_ids keeps the current set; an empty list clears it.
type SecretaryInput struct {
	ProfileInput
	Address      shared.Optional[*string] `json:"address"`
	ExecutiveIDs shared.Optional[[]int64] `json:"executive_ids"`
}

// Profile returns the supplied fields as a new profile
func (in SecretaryInput) Profile() personnel.Profile {
	return in.ProfileInput.Profile(in.Address.Value)
}

// Patch returns the supplied fields as a secretary patch
func (in SecretaryInput) Patch() personnel.SecretaryPatch {
	return personnel.SecretaryPatch{
		Profile:      in.ProfileInput.Patch(in.Address),
		ExecutiveIDs: in.ExecutiveIDs,
	}
}

// Limits holds the list page size of each kind
type Limits struct {
	Executives  shared.PageLimits
	Secretaries shared.PageLimits
}

// DefaultLimits returns the page sizes used when nothing is configured
func DefaultLimits() Limits {
	return Limits{
		Executives:  shared.PageLimits{Default: 100, Max: 1000},
		Secretaries: shared.PageLimits{Default: 1000, Max: 1000},
	}
}
