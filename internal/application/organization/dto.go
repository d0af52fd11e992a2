package organization

import (
	"github.com/executiva/backend/internal/domain/organization"
	"github.com/executiva/backend/internal/domain/shared"
)

// AddressInput holds the postal address fields of a create or update request
type AddressInput struct {
	Street       shared.Optional[*string] `json:"street" validate:"omitempty,max=255"`
	Number       shared.Optional[*string] `json:"number" validate:"omitempty,max=50"`
	Neighborhood shared.Optional[*string] `json:"neighborhood" validate:"omitempty,max=100"`
	City         shared.Optional[*string] `json:"city" validate:"omitempty,max=100"`
	State        shared.Optional[*string] `json:"state" validate:"omitempty,len=2"`
	ZipCode      shared.Optional[*string] `json:"zip_code" validate:"omitempty,max=20"`
}

// Address returns the supplied fields as an address; absent fields are nil
func (in AddressInput) Address() organization.Address {
	return organization.Address{
		Street:       in.Street.Value,
		Number:       in.Number.Value,
		Neighborhood: in.Neighborhood.Value,
		City:         in.City.Value,
		State:        in.State.Value,
		ZipCode:      in.ZipCode.Value,
	}
}

// Patch returns the supplied fields as an address patch
func (in AddressInput) Patch() organization.AddressPatch {
	return organization.AddressPatch{
		Street:       in.Street,
		Number:       in.Number,
		Neighborhood: in.Neighborhood,
		City:         in.City,
		State:        in.State,
		ZipCode:      in.ZipCode,
	}
}

// LegalOrganizationInput is the canonical payload of a legal organization
// create or update. On create an absent name is rejected by the domain.
type LegalOrganizationInput struct {
	Name shared.Optional[string]  `json:"name" validate:"omitempty,max=255"`
	CNPJ shared.Optional[*string] `json:"cnpj" validate:"omitempty,max=20"`
	AddressInput
}

// Patch returns the supplied fields as a domain patch
func (in LegalOrganizationInput) Patch() organization.LegalOrganizationPatch {
	return organization.LegalOrganizationPatch{
		Name:    in.Name,
		CNPJ:    in.CNPJ,
		Address: in.AddressInput.Patch(),
	}
}

// OrganizationInput is the canonical payload of an organization create or update
type OrganizationInput struct {
	LegalOrganizationID shared.Optional[int64]   `json:"legal_organization_id" validate:"omitempty,gt=0"`
	Name                shared.Optional[string]  `json:"name" validate:"omitempty,max=255"`
	CNPJ                shared.Optional[*string] `json:"cnpj" validate:"omitempty,max=20"`
	AddressInput
}

// Patch returns the supplied fields as a domain patch
func (in OrganizationInput) Patch() organization.OrganizationPatch {
	return organization.OrganizationPatch{
		Name:                in.Name,
		LegalOrganizationID: in.LegalOrganizationID,
		CNPJ:                in.CNPJ,
		Address:             in.AddressInput.Patch(),
	}
}

// DepartmentInput is the canonical payload of a department create or update
type DepartmentInput struct {
	Name           shared.Optional[string] `json:"name" validate:"omitempty,max=255"`
	OrganizationID shared.Optional[int64]  `json:"organization_id" validate:"omitempty,gt=0"`
}

// Patch returns the supplied fields as a domain patch
func (in DepartmentInput) Patch() organization.DepartmentPatch {
	return organization.DepartmentPatch{
		Name:           in.Name,
		OrganizationID: in.OrganizationID,
	}
}

// Limits holds the list page size of each kind
type Limits struct {
	LegalOrganizations shared.PageLimits
	Organizations      shared.PageLimits
	Departments        shared.PageLimits
}

// DefaultLimits returns the page sizes used when nothing is configured
func DefaultLimits() Limits {
	return Limits{
		LegalOrganizations: shared.PageLimits{Default: 100, Max: 1000},
		Organizations:      shared.PageLimits{Default: 1000, Max: 1000},
		Departments:        shared.PageLimits{Default: 1000, Max: 1000},
	}
}
