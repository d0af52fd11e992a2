package personnel

import (
	"strings"

	"github.com/executiva/backend/internal/domain/shared"
)

// Canonical field names that rules and errors refer to
const (
	FieldFullName             = "full_name"
	FieldCPF                  = "cpf"
	FieldWorkEmail            = "work_email"
	FieldOrganizationID       = "organization_id"
	FieldDepartmentID         = "department_id"
	FieldReportsToExecutiveID = "reports_to_executive_id"
	FieldExecutiveIDs         = "executive_ids"
)

// Profile holds the personal and professional record shared by executives and
// secretaries. Every field except FullName is optional.
type Profile struct {
	FullName     string
	CPF          *string // national tax id, globally unique per kind when present
	RG           *string
	RGIssuer     *string
	RGIssueDate  *shared.Date
	BirthDate    *shared.Date
	Nationality  *string
	PlaceOfBirth *string
	MotherName   *string
	FatherName   *string
	CivilStatus  *string

	WorkEmail     *string
	WorkPhone     *string
	Extension     *string
	PersonalEmail *string
	PersonalPhone *string
	Address       *string

	LinkedinProfileURL   *string
	JobTitle             *string
	OrganizationID       *int64
	DepartmentID         *int64
	CostCenter           *string
	EmployeeID           *string
	ReportsToExecutiveID *int64
	HireDate             *shared.Date
	WorkLocation         *string
	PhotoURL             *string
	Bio                  *string
	Education            *string
	Languages            *string

	EmergencyContactName     *string
	EmergencyContactPhone    *string
	EmergencyContactRelation *string

	DependentsInfo     *string
	BankInfo           *string
	CompensationInfo   *string
	SystemAccessLevels *string
}

// ProfilePatch carries the profile fields supplied in a partial update
type ProfilePatch struct {
	FullName     shared.Optional[string]
	CPF          shared.Optional[*string]
	RG           shared.Optional[*string]
	RGIssuer     shared.Optional[*string]
	RGIssueDate  shared.Optional[*shared.Date]
	BirthDate    shared.Optional[*shared.Date]
	Nationality  shared.Optional[*string]
	PlaceOfBirth shared.Optional[*string]
	MotherName   shared.Optional[*string]
	FatherName   shared.Optional[*string]
	CivilStatus  shared.Optional[*string]

	WorkEmail     shared.Optional[*string]
	WorkPhone     shared.Optional[*string]
	Extension     shared.Optional[*string]
	PersonalEmail shared.Optional[*string]
	PersonalPhone shared.Optional[*string]
	Address       shared.Optional[*string]

	LinkedinProfileURL   shared.Optional[*string]
	JobTitle             shared.Optional[*string]
	OrganizationID       shared.Optional[*int64]
	DepartmentID         shared.Optional[*int64]
	CostCenter           shared.Optional[*string]
	EmployeeID           shared.Optional[*string]
	ReportsToExecutiveID shared.Optional[*int64]
	HireDate             shared.Optional[*shared.Date]
	WorkLocation         shared.Optional[*string]
	PhotoURL             shared.Optional[*string]
	Bio                  shared.Optional[*string]
	Education            shared.Optional[*string]
	Languages            shared.Optional[*string]

	EmergencyContactName     shared.Optional[*string]
	EmergencyContactPhone    shared.Optional[*string]
	EmergencyContactRelation shared.Optional[*string]

	DependentsInfo     shared.Optional[*string]
	BankInfo           shared.Optional[*string]
	CompensationInfo   shared.Optional[*string]
	SystemAccessLevels shared.Optional[*string]
}

// apply merges every supplied field into p. Callers validate first.
func (p *Profile) apply(patch ProfilePatch) {
	if patch.FullName.Set {
		p.FullName = strings.TrimSpace(patch.FullName.Value)
	}
	if patch.CPF.Set {
		p.CPF = normalizeKey(patch.CPF.Value)
	}
	patch.RG.Apply(&p.RG)
	patch.RGIssuer.Apply(&p.RGIssuer)
	patch.RGIssueDate.Apply(&p.RGIssueDate)
	patch.BirthDate.Apply(&p.BirthDate)
	patch.Nationality.Apply(&p.Nationality)
	patch.PlaceOfBirth.Apply(&p.PlaceOfBirth)
	patch.MotherName.Apply(&p.MotherName)
	patch.FatherName.Apply(&p.FatherName)
	patch.CivilStatus.Apply(&p.CivilStatus)

	if patch.WorkEmail.Set {
		p.WorkEmail = normalizeKey(patch.WorkEmail.Value)
	}
	patch.WorkPhone.Apply(&p.WorkPhone)
	patch.Extension.Apply(&p.Extension)
	patch.PersonalEmail.Apply(&p.PersonalEmail)
	patch.PersonalPhone.Apply(&p.PersonalPhone)
	patch.Address.Apply(&p.Address)

	patch.LinkedinProfileURL.Apply(&p.LinkedinProfileURL)
	patch.JobTitle.Apply(&p.JobTitle)
	patch.OrganizationID.Apply(&p.OrganizationID)
	patch.DepartmentID.Apply(&p.DepartmentID)
	patch.CostCenter.Apply(&p.CostCenter)
	patch.EmployeeID.Apply(&p.EmployeeID)
	patch.ReportsToExecutiveID.Apply(&p.ReportsToExecutiveID)
	patch.HireDate.Apply(&p.HireDate)
	patch.WorkLocation.Apply(&p.WorkLocation)
	patch.PhotoURL.Apply(&p.PhotoURL)
	patch.Bio.Apply(&p.Bio)
	patch.Education.Apply(&p.Education)
	patch.Languages.Apply(&p.Languages)

	patch.EmergencyContactName.Apply(&p.EmergencyContactName)
	patch.EmergencyContactPhone.Apply(&p.EmergencyContactPhone)
	patch.EmergencyContactRelation.Apply(&p.EmergencyContactRelation)

	patch.DependentsInfo.Apply(&p.DependentsInfo)
	patch.BankInfo.Apply(&p.BankInfo)
	patch.CompensationInfo.Apply(&p.CompensationInfo)
	patch.SystemAccessLevels.Apply(&p.SystemAccessLevels)
}

// normalize trims the keys used for uniqueness lookups
func (p *Profile) normalize() {
	p.FullName = strings.TrimSpace(p.FullName)
	p.CPF = normalizeKey(p.CPF)
	p.WorkEmail = normalizeKey(p.WorkEmail)
}

func validateFullName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewRejected(FieldFullName, "full name cannot be empty")
	}
	return nil
}

// CPFChange returns the new tax id when patch supplies one that differs from current
func (p *Profile) CPFChange(patch ProfilePatch) (string, bool) {
	return keyChange(p.CPF, patch.CPF)
}

// ManagerChange returns the new manager id when patch sets a different, non-null one
func (p *Profile) ManagerChange(patch ProfilePatch) (int64, bool) {
	if !patch.ReportsToExecutiveID.Set || patch.ReportsToExecutiveID.Value == nil {
		return 0, false
	}
	next := *patch.ReportsToExecutiveID.Value
	if p.ReportsToExecutiveID != nil && *p.ReportsToExecutiveID == next {
		return 0, false
	}
	return next, true
}

func normalizeKey(v *string) *string {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return nil
	}
	return &s
}

func keyChange(current *string, patch shared.Optional[*string]) (string, bool) {
	if !patch.Set {
		return "", false
	}
	next := normalizeKey(patch.Value)
	if next == nil {
		return "", false
	}
	if current != nil && *current == *next {
		return "", false
	}
	return *next, true
}
