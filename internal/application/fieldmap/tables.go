package fieldmap

import (
	"slices"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func same(names ...string) []Alias {
	out := make([]Alias, len(names))
	for i, n := range names {
		out[i] = Alias{External: n, Canonical: n}
	}
	return out
}

func concat(groups ...[]Alias) []Alias {
	return slices.Concat(groups...)
}

var (
	timestampAliases = []Alias{
		{"createdAt", "created_at"},
		{"updatedAt", "updated_at"},
	}

	addressAliases = concat(
		same("street", "number", "neighborhood", "city", "state"),
		[]Alias{{"zipCode", "zip_code"}},
	)

	personalAliases = concat(
		[]Alias{{"fullName", "full_name"}},
		same("cpf", "rg"),
		[]Alias{
			{"rgIssuer", "rg_issuer"},
			{"rgIssueDate", "rg_issue_date"},
			{"birthDate", "birth_date"},
		},
		same("nationality"),
		[]Alias{
			{"placeOfBirth", "place_of_birth"},
			{"motherName", "mother_name"},
			{"fatherName", "father_name"},
			{"civilStatus", "civil_status"},
			{"workEmail", "work_email"},
			{"workPhone", "work_phone"},
		},
		same("extension"),
		[]Alias{
			{"personalEmail", "personal_email"},
			{"personalPhone", "personal_phone"},
		},
	)

	professionalAliases = concat(
		[]Alias{
			{"linkedinProfileUrl", "linkedin_profile_url"},
			{"jobTitle", "job_title"},
			{"organizationId", "organization_id"},
			{"departmentId", "department_id"},
			{"costCenter", "cost_center"},
			{"employeeId", "employee_id"},
			{"reportsToExecutiveId", "reports_to_executive_id"},
			{"hireDate", "hire_date"},
			{"workLocation", "work_location"},
			{"photoUrl", "photo_url"},
		},
		same("bio", "education", "languages"),
		[]Alias{
			{"emergencyContactName", "emergency_contact_name"},
			{"emergencyContactPhone", "emergency_contact_phone"},
			{"emergencyContactRelation", "emergency_contact_relation"},
			{"dependentsInfo", "dependents_info"},
			{"bankInfo", "bank_info"},
			{"compensationInfo", "compensation_info"},
			{"systemAccessLevels", "system_access_levels"},
		},
	)
)

// upperState turns "sp" into "SP"
var upperState = trimThen(cases.Upper(language.Und).String)

// Alias tables, one per entity kind
var (
	LegalOrganizations = NewTable("legal_organization", concat(
		same("id", "name", "cnpj"),
		addressAliases,
		timestampAliases,
	)...).WithNormalizer("state", upperState)

	Organizations = NewTable("organization", concat(
		same("id"),
		[]Alias{{"legalOrganizationId", "legal_organization_id"}},
		same("name", "cnpj"),
		addressAliases,
		timestampAliases,
	)...).WithNormalizer("state", upperState)

	Departments = NewTable("department", concat(
		same("id", "name"),
		[]Alias{{"organizationId", "organization_id"}},
		timestampAliases,
	)...)

	// Executives store the postal address in "street" and expose it as "address"
	Executives = NewTable("executive", concat(
		same("id"),
		personalAliases,
		[]Alias{{"address", "street"}},
		professionalAliases,
		timestampAliases,
	)...)

	Secretaries = NewTable("secretary", concat(
		same("id"),
		personalAliases,
		same("address"),
		professionalAliases,
		[]Alias{{"executiveIds", "executive_ids"}},
		timestampAliases,
	)...)

	// The password is accepted under its canonical name and never emitted
	Users = NewTable("user", concat(
		same("id", "name", "email", "phone"),
		[]Alias{{"isActive", "is_active"}},
		timestampAliases,
	)...)
)
