package organization

import (
	"github.com/executiva/backend/internal/domain/shared"
)

// Organization is an operating company owned by a LegalOrganization
type Organization struct {
	shared.BaseEntity
	LegalOrganizationID int64
	Name                string
	CNPJ                *string
	Address             Address
}

// OrganizationPatch carries the fields supplied in a partial update
type OrganizationPatch struct {
	Name                shared.Optional[string]
	LegalOrganizationID shared.Optional[int64]
	CNPJ                shared.Optional[*string]
	Address             AddressPatch
}

// NewOrganization creates an organization that has not been stored yet.
// Parent existence is checked by the integrity rules, not here.
func NewOrganization(legalOrganizationID int64, name string, cnpj *string, address Address) (*Organization, error) {
	if legalOrganizationID <= 0 {
		return nil, shared.NewRejected(FieldLegalOrganizationID, "legal organization id is required")
	}
	name, err := normalizeName(name)
	if err != nil {
		return nil, err
	}
	return &Organization{
		BaseEntity:          shared.NewBaseEntity(),
		LegalOrganizationID: legalOrganizationID,
		Name:                name,
		CNPJ:                normalizeTaxID(cnpj),
		Address:             address,
	}, nil
}

// Apply merges the supplied fields of p. Nothing is written if p is invalid.
func (o *Organization) Apply(p OrganizationPatch) error {
	name := o.Name
	if p.Name.Set {
		n, err := normalizeName(p.Name.Value)
		if err != nil {
			return err
		}
		name = n
	}
	if p.LegalOrganizationID.Set && p.LegalOrganizationID.Value <= 0 {
		return shared.NewRejected(FieldLegalOrganizationID, "legal organization id is required")
	}

	o.Name = name
	p.LegalOrganizationID.Apply(&o.LegalOrganizationID)
	if p.CNPJ.Set {
		o.CNPJ = normalizeTaxID(p.CNPJ.Value)
	}
	o.Address.Apply(p.Address)
	o.Touch()
	return nil
}

// CNPJChange returns the new tax id when p supplies one that differs from the stored value
func (o *Organization) CNPJChange(p OrganizationPatch) (string, bool) {
	return taxIDChange(o.CNPJ, p.CNPJ)
}

// ParentChange returns the new parent id when p moves the organization
func (o *Organization) ParentChange(p OrganizationPatch) (int64, bool) {
	if !p.LegalOrganizationID.Set || p.LegalOrganizationID.Value == o.LegalOrganizationID {
		return 0, false
	}
	return p.LegalOrganizationID.Value, true
}
