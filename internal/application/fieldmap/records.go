package fieldmap

import (
	"github.com/executiva/backend/internal/domain/identity"
	"github.com/executiva/backend/internal/domain/organization"
	"github.com/executiva/backend/internal/domain/personnel"
	"github.com/executiva/backend/internal/domain/shared"
)

func baseRecord(e shared.BaseEntity) Record {
	return Record{
		"id":         e.ID,
		"created_at": e.CreatedAt,
		"updated_at": e.UpdatedAt,
	}
}

func putAddress(r Record, a organization.Address) {
	r["street"] = a.Street
	r["number"] = a.Number
	r["neighborhood"] = a.Neighborhood
	r["city"] = a.City
	r["state"] = a.State
	r["zip_code"] = a.ZipCode
}

// LegalOrganizationRecord returns the canonical fields of o
func LegalOrganizationRecord(o *organization.LegalOrganization) Record {
	r := baseRecord(o.BaseEntity)
	r["name"] = o.Name
	r["cnpj"] = o.CNPJ
	putAddress(r, o.Address)
	return r
}

// OrganizationRecord returns the canonical fields of o
func OrganizationRecord(o *organization.Organization) Record {
	r := baseRecord(o.BaseEntity)
	r["legal_organization_id"] = o.LegalOrganizationID
	r["name"] = o.Name
	r["cnpj"] = o.CNPJ
	putAddress(r, o.Address)
	return r
}

// DepartmentRecord returns the canonical fields of d
func DepartmentRecord(d *organization.Department) Record {
	r := baseRecord(d.BaseEntity)
	r["name"] = d.Name
	r["organization_id"] = d.OrganizationID
	return r
}

func putProfile(r Record, p personnel.Profile, addressKey string) {
	r["full_name"] = p.FullName
	r["cpf"] = p.CPF
	r["rg"] = p.RG
	r["rg_issuer"] = p.RGIssuer
	r["rg_issue_date"] = p.RGIssueDate
	r["birth_date"] = p.BirthDate
	r["nationality"] = p.Nationality
	r["place_of_birth"] = p.PlaceOfBirth
	r["mother_name"] = p.MotherName
	r["father_name"] = p.FatherName
	r["civil_status"] = p.CivilStatus
	r["work_email"] = p.WorkEmail
	r["work_phone"] = p.WorkPhone
	r["extension"] = p.Extension
	r["personal_email"] = p.PersonalEmail
	r["personal_phone"] = p.PersonalPhone
	r[addressKey] = p.Address
	r["linkedin_profile_url"] = p.LinkedinProfileURL
	r["job_title"] = p.JobTitle
	r["organization_id"] = p.OrganizationID
	r["department_id"] = p.DepartmentID
	r["cost_center"] = p.CostCenter
	r["employee_id"] = p.EmployeeID
	r["reports_to_executive_id"] = p.ReportsToExecutiveID
	r["hire_date"] = p.HireDate
	r["work_location"] = p.WorkLocation
	r["photo_url"] = p.PhotoURL
	r["bio"] = p.Bio
	r["education"] = p.Education
	r["languages"] = p.Languages
	r["emergency_contact_name"] = p.EmergencyContactName
	r["emergency_contact_phone"] = p.EmergencyContactPhone
	r["emergency_contact_relation"] = p.EmergencyContactRelation
	r["dependents_info"] = p.DependentsInfo
	r["bank_info"] = p.BankInfo
	r["compensation_info"] = p.CompensationInfo
	r["system_access_levels"] = p.SystemAccessLevels
}

// ExecutiveRecord returns the canonical fields of e
func ExecutiveRecord(e *personnel.Executive) Record {
	r := baseRecord(e.BaseEntity)
	putProfile(r, e.Profile, "street")
	return r
}

// SecretaryRecord returns the canonical fields of s, with the associated
// executives as a sorted id list.
func SecretaryRecord(s *personnel.Secretary) Record {
	r := baseRecord(s.BaseEntity)
	putProfile(r, s.Profile, "address")
	r["executive_ids"] = personnel.NormalizeIDs(s.ExecutiveIDs)
	return r
}

// UserRecord returns the public fields of u. The password hash is never included.
func UserRecord(u *identity.User) Record {
	r := baseRecord(u.BaseEntity)
	r["name"] = u.Name
	r["email"] = u.Email
	r["phone"] = u.Phone
	r["is_active"] = u.Active
	return r
}
