package organization

import (
	"strings"
	"unicode/utf8"

	"github.com/executiva/backend/internal/domain/shared"
)

// Canonical field names, shared with the store columns
const (
	FieldName                = "name"
	FieldCNPJ                = "cnpj"
	FieldLegalOrganizationID = "legal_organization_id"
	FieldOrganizationID      = "organization_id"
)

const (
	nameMinLength = 2
	nameMaxLength = 255
)

// LegalOrganization is the registered legal entity at the root of the hierarchy
type LegalOrganization struct {
	shared.BaseEntity
	Name    string
	CNPJ    *string // national tax id, globally unique when present
	Address Address
}

// LegalOrganizationPatch carries the fields supplied in a partial update
type LegalOrganizationPatch struct {
	Name    shared.Optional[string]
	CNPJ    shared.Optional[*string]
	Address AddressPatch
}

// NewLegalOrganization creates a legal organization that has not been stored yet
func NewLegalOrganization(name string, cnpj *string, address Address) (*LegalOrganization, error) {
	name, err := normalizeName(name)
	if err != nil {
		return nil, err
	}
	return &LegalOrganization{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		CNPJ:       normalizeTaxID(cnpj),
		Address:    address,
	}, nil
}

// Apply merges the supplied fields of p. Nothing is written if p is invalid.
func (o *LegalOrganization) Apply(p LegalOrganizationPatch) error {
	name := o.Name
	if p.Name.Set {
		n, err := normalizeName(p.Name.Value)
		if err != nil {
			return err
		}
		name = n
	}

	o.Name = name
	if p.CNPJ.Set {
		o.CNPJ = normalizeTaxID(p.CNPJ.Value)
	}
	o.Address.Apply(p.Address)
	o.Touch()
	return nil
}

// CNPJChange returns the new tax id when p supplies one that differs from the stored value
func (o *LegalOrganization) CNPJChange(p LegalOrganizationPatch) (string, bool) {
	return taxIDChange(o.CNPJ, p.CNPJ)
}

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	n := utf8.RuneCountInString(name)
	if n == 0 {
		return "", shared.NewRejected(FieldName, "name cannot be empty")
	}
	if n < nameMinLength || n > nameMaxLength {
		return "", shared.NewRejected(FieldName, "name must be between 2 and 255 characters")
	}
	return name, nil
}

// normalizeTaxID trims the value and treats blank as absent
func normalizeTaxID(v *string) *string {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return nil
	}
	return &s
}

// taxIDChange reports the effective new tax id when the patch supplies a
// non-empty value different from current. Clearing the field never conflicts.
func taxIDChange(current *string, patch shared.Optional[*string]) (string, bool) {
	if !patch.Set {
		return "", false
	}
	next := normalizeTaxID(patch.Value)
	if next == nil {
		return "", false
	}
	if current != nil && *current == *next {
		return "", false
	}
	return *next, true
}
