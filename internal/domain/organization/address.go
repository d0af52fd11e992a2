package organization

import "github.com/executiva/backend/internal/domain/shared"

// Address is the postal address shared by legal organizations and organizations
type Address struct {
	Street       *string
	Number       *string
	Neighborhood *string
	City         *string
	State        *string // two-letter federative unit
	ZipCode      *string
}

// AddressPatch carries the address fields supplied in a partial update
type AddressPatch struct {
	Street       shared.Optional[*string]
	Number       shared.Optional[*string]
	Neighborhood shared.Optional[*string]
	City         shared.Optional[*string]
	State        shared.Optional[*string]
	ZipCode      shared.Optional[*string]
}

// Apply merges the supplied fields into a and reports whether anything was written
func (a *Address) Apply(p AddressPatch) bool {
	changed := p.Street.Apply(&a.Street)
	changed = p.Number.Apply(&a.Number) || changed
	changed = p.Neighborhood.Apply(&a.Neighborhood) || changed
	changed = p.City.Apply(&a.City) || changed
	changed = p.State.Apply(&a.State) || changed
	changed = p.ZipCode.Apply(&a.ZipCode) || changed
	return changed
}

// IsEmpty reports whether the patch supplies no address field
func (p AddressPatch) IsEmpty() bool {
	return !p.Street.Set && !p.Number.Set && !p.Neighborhood.Set &&
		!p.City.Set && !p.State.Set && !p.ZipCode.Set
}
