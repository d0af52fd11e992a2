package organization

import (
	"github.com/executiva/backend/internal/domain/shared"
)

// Department is an organizational unit inside an Organization.
// Its name is unique within the owning organization only.
type Department struct {
	shared.BaseEntity
	OrganizationID int64
	Name           string
}

// DepartmentPatch carries the fields supplied in a partial update
type DepartmentPatch struct {
	Name           shared.Optional[string]
	OrganizationID shared.Optional[int64]
}

// NewDepartment creates a department that has not been stored yet
func NewDepartment(organizationID int64, name string) (*Department, error) {
	if organizationID <= 0 {
		return nil, shared.NewRejected(FieldOrganizationID, "organization id is required")
	}
	name, err := normalizeName(name)
	if err != nil {
		return nil, err
	}
	return &Department{
		BaseEntity:     shared.NewBaseEntity(),
		OrganizationID: organizationID,
		Name:           name,
	}, nil
}

// Apply merges the supplied fields of p. Nothing is written if p is invalid.
func (d *Department) Apply(p DepartmentPatch) error {
	name := d.Name
	if p.Name.Set {
		n, err := normalizeName(p.Name.Value)
		if err != nil {
			return err
		}
		name = n
	}
	if p.OrganizationID.Set && p.OrganizationID.Value <= 0 {
		return shared.NewRejected(FieldOrganizationID, "organization id is required")
	}

	d.Name = name
	p.OrganizationID.Apply(&d.OrganizationID)
	d.Touch()
	return nil
}

// Placement is the (name, organization) pair that must be unique
type Placement struct {
	Name           string
	OrganizationID int64
}

// PlacementChange computes the effective (name, organization) pair after p.
// The second result is false when neither field is supplied or the pair is
// unchanged, in which case no re-check is needed.
func (d *Department) PlacementChange(p DepartmentPatch) (Placement, bool) {
	if !p.Name.Set && !p.OrganizationID.Set {
		return Placement{}, false
	}
	next := Placement{Name: d.Name, OrganizationID: d.OrganizationID}
	if p.Name.Set {
		if n, err := normalizeName(p.Name.Value); err == nil {
			next.Name = n
		} else {
			next.Name = p.Name.Value
		}
	}
	p.OrganizationID.Apply(&next.OrganizationID)
	if next.Name == d.Name && next.OrganizationID == d.OrganizationID {
		return Placement{}, false
	}
	return next, true
}

// OrganizationChange returns the new owning organization when p moves the department
func (d *Department) OrganizationChange(p DepartmentPatch) (int64, bool) {
	if !p.OrganizationID.Set || p.OrganizationID.Value == d.OrganizationID {
		return 0, false
	}
	return p.OrganizationID.Value, true
}
