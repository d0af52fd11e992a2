package integrity

import (
	"context"

	"github.com/executiva/backend/internal/domain/organization"
)

// Rejection messages surfaced to API clients
const (
	MsgDuplicateCNPJ           = "cnpj already registered"
	MsgDuplicateDepartmentName = "duplicate department name in organization"
	MsgLegalOrgHasCompanies    = "cannot delete: has linked companies"
	MsgOrgHasDepartments       = "cannot delete: has linked departments"
)

// LegalOrganizationLookup is what the rules need from the legal organization store
type LegalOrganizationLookup interface {
	FindByID(ctx context.Context, id int64) (*organization.LegalOrganization, error)
	FindByCNPJ(ctx context.Context, cnpj string) (*organization.LegalOrganization, error)
}

// OrganizationLookup is what the rules need from the organization store
type OrganizationLookup interface {
	FindByID(ctx context.Context, id int64) (*organization.Organization, error)
	FindByCNPJ(ctx context.Context, cnpj string) (*organization.Organization, error)
	CountByLegalOrganization(ctx context.Context, legalOrganizationID int64) (int64, error)
}

// DepartmentLookup is what the rules need from the department store
type DepartmentLookup interface {
	FindByID(ctx context.Context, id int64) (*organization.Department, error)
	FindByNameAndOrganization(ctx context.Context, name string, organizationID int64) (*organization.Department, error)
	CountByOrganization(ctx context.Context, organizationID int64) (int64, error)
}

// LegalOrganizationRules guards legal organization mutations
type LegalOrganizationRules struct {
	LegalOrganizations LegalOrganizationLookup
	Organizations      OrganizationLookup
}

// Create checks tax id uniqueness when a tax id is present
func (r LegalOrganizationRules) Create(candidate *organization.LegalOrganization) Plan {
	var plan Plan
	if candidate.CNPJ != nil {
		cnpj := *candidate.CNPJ
		plan = plan.Add(unique(organization.FieldCNPJ, MsgDuplicateCNPJ, 0,
			func(ctx context.Context) (*organization.LegalOrganization, error) {
				return r.LegalOrganizations.FindByCNPJ(ctx, cnpj)
			}))
	}
	return plan
}

// Update re-checks tax id uniqueness only when the patch changes it
func (r LegalOrganizationRules) Update(current *organization.LegalOrganization, patch organization.LegalOrganizationPatch) Plan {
	var plan Plan
	if cnpj, changed := current.CNPJChange(patch); changed {
		plan = plan.Add(unique(organization.FieldCNPJ, MsgDuplicateCNPJ, current.ID,
			func(ctx context.Context) (*organization.LegalOrganization, error) {
				return r.LegalOrganizations.FindByCNPJ(ctx, cnpj)
			}))
	}
	return plan
}

// Delete refuses while any organization references the legal organization
func (r LegalOrganizationRules) Delete(current *organization.LegalOrganization) Plan {
	id := current.ID
	return Plan{noChildren("organizations", MsgLegalOrgHasCompanies, func(ctx context.Context) (int64, error) {
		return r.Organizations.CountByLegalOrganization(ctx, id)
	})}
}

// OrganizationRules guards organization mutations
type OrganizationRules struct {
	LegalOrganizations LegalOrganizationLookup
	Organizations      OrganizationLookup
	Departments        DepartmentLookup
}

// Create checks the parent legal organization and tax id uniqueness
func (r OrganizationRules) Create(candidate *organization.Organization) Plan {
	plan := Plan{exists(organization.FieldLegalOrganizationID, "legal organization",
		candidate.LegalOrganizationID, r.LegalOrganizations.FindByID)}
	if candidate.CNPJ != nil {
		cnpj := *candidate.CNPJ
		plan = plan.Add(unique(organization.FieldCNPJ, MsgDuplicateCNPJ, 0,
			func(ctx context.Context) (*organization.Organization, error) {
				return r.Organizations.FindByCNPJ(ctx, cnpj)
			}))
	}
	return plan
}

// Update checks a changed parent and a changed tax id
func (r OrganizationRules) Update(current *organization.Organization, patch organization.OrganizationPatch) Plan {
	var plan Plan
	if parentID, moved := current.ParentChange(patch); moved {
		plan = plan.Add(exists(organization.FieldLegalOrganizationID, "legal organization",
			parentID, r.LegalOrganizations.FindByID))
	}
	if cnpj, changed := current.CNPJChange(patch); changed {
		plan = plan.Add(unique(organization.FieldCNPJ, MsgDuplicateCNPJ, current.ID,
			func(ctx context.Context) (*organization.Organization, error) {
				return r.Organizations.FindByCNPJ(ctx, cnpj)
			}))
	}
	return plan
}

// Delete refuses while any department belongs to the organization
func (r OrganizationRules) Delete(current *organization.Organization) Plan {
	id := current.ID
	return Plan{noChildren("departments", MsgOrgHasDepartments, func(ctx context.Context) (int64, error) {
		return r.Departments.CountByOrganization(ctx, id)
	})}
}

// DepartmentRules guards department mutations
type DepartmentRules struct {
	Organizations OrganizationLookup
	Departments   DepartmentLookup
}

// Create checks the parent organization and the (name, organization) pair
func (r DepartmentRules) Create(candidate *organization.Department) Plan {
	return Plan{
		exists(organization.FieldOrganizationID, "organization", candidate.OrganizationID, r.Organizations.FindByID),
		r.placementUnique(0, organization.Placement{Name: candidate.Name, OrganizationID: candidate.OrganizationID}),
	}
}

// Update re-checks the pair when the name or the organization changes, and
// the parent when the organization changes.
func (r DepartmentRules) Update(current *organization.Department, patch organization.DepartmentPatch) Plan {
	next, changed := current.PlacementChange(patch)
	if !changed {
		return nil
	}
	var plan Plan
	if orgID, moved := current.OrganizationChange(patch); moved {
		plan = plan.Add(exists(organization.FieldOrganizationID, "organization", orgID, r.Organizations.FindByID))
	}
	return plan.Add(r.placementUnique(current.ID, next))
}

// Delete has no guard; departments have no protected children
func (r DepartmentRules) Delete(*organization.Department) Plan {
	return nil
}

func (r DepartmentRules) placementUnique(self int64, p organization.Placement) Check {
	return unique(organization.FieldName, MsgDuplicateDepartmentName, self,
		func(ctx context.Context) (*organization.Department, error) {
			return r.Departments.FindByNameAndOrganization(ctx, p.Name, p.OrganizationID)
		})
}
