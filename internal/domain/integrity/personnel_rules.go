package integrity

import (
	"context"
	"fmt"

	"github.com/executiva/backend/internal/domain/personnel"
	"github.com/executiva/backend/internal/domain/shared"
)

// Rejection messages surfaced to API clients
const (
	MsgDuplicateCPF       = "cpf already registered"
	MsgDuplicateWorkEmail = "work email already registered"
	MsgSelfManager        = "an executive cannot report to itself"
	MsgManagerCycle       = "manager link would create a reporting cycle"
)

// maxReportingDepth bounds the manager chain walk
const maxReportingDepth = 1024

// ExecutiveIDPolicy decides what happens to executive ids that do not resolve
type ExecutiveIDPolicy string

const (
	// ExecutiveIDsTolerant silently drops unknown ids
	ExecutiveIDsTolerant ExecutiveIDPolicy = "tolerant"
	// ExecutiveIDsStrict rejects the mutation on the first unknown id
	ExecutiveIDsStrict ExecutiveIDPolicy = "strict"
)

// PersonnelPolicy holds the configurable parts of the personnel rules
type PersonnelPolicy struct {
	// ValidateManagerLink requires reports_to to exist, differ from self and stay acyclic
	ValidateManagerLink bool
	// ValidateReferences requires organization_id and department_id to exist when set
	ValidateReferences bool
	// SecretaryExecutiveIDs governs unresolved ids in a secretary's executive set
	SecretaryExecutiveIDs ExecutiveIDPolicy
}

// DefaultPersonnelPolicy returns the policy used when nothing is configured
func DefaultPersonnelPolicy() PersonnelPolicy {
	return PersonnelPolicy{
		ValidateManagerLink:   true,
		ValidateReferences:    true,
		SecretaryExecutiveIDs: ExecutiveIDsTolerant,
	}
}

// ExecutiveLookup is what the rules need from the executive store
type ExecutiveLookup interface {
	FindByID(ctx context.Context, id int64) (*personnel.Executive, error)
	FindByCPF(ctx context.Context, cpf string) (*personnel.Executive, error)
	FindByAnyEmail(ctx context.Context, email string) (*personnel.Executive, error)
}

// SecretaryLookup is what the rules need from the secretary store
type SecretaryLookup interface {
	FindByCPF(ctx context.Context, cpf string) (*personnel.Secretary, error)
}

// referenceLookups resolves the optional organization and department links
type referenceLookups struct {
	Organizations OrganizationLookup
	Departments   DepartmentLookup
}

func (r referenceLookups) onCreate(p personnel.Profile) Plan {
	var plan Plan
	if p.OrganizationID != nil {
		plan = plan.Add(exists(personnel.FieldOrganizationID, "organization", *p.OrganizationID, r.Organizations.FindByID))
	}
	if p.DepartmentID != nil {
		plan = plan.Add(exists(personnel.FieldDepartmentID, "department", *p.DepartmentID, r.Departments.FindByID))
	}
	return plan
}

func (r referenceLookups) onUpdate(current personnel.Profile, patch personnel.ProfilePatch) Plan {
	var plan Plan
	if id, changed := refChange(current.OrganizationID, patch.OrganizationID); changed {
		plan = plan.Add(exists(personnel.FieldOrganizationID, "organization", id, r.Organizations.FindByID))
	}
	if id, changed := refChange(current.DepartmentID, patch.DepartmentID); changed {
		plan = plan.Add(exists(personnel.FieldDepartmentID, "department", id, r.Departments.FindByID))
	}
	return plan
}

func refChange(current *int64, patch shared.Optional[*int64]) (int64, bool) {
	if !patch.Set || patch.Value == nil {
		return 0, false
	}
	if current != nil && *current == *patch.Value {
		return 0, false
	}
	return *patch.Value, true
}

// ExecutiveRules guards executive mutations
type ExecutiveRules struct {
	Executives    ExecutiveLookup
	Organizations OrganizationLookup
	Departments   DepartmentLookup
	Policy        PersonnelPolicy
}

func (r ExecutiveRules) refs() referenceLookups {
	return referenceLookups{Organizations: r.Organizations, Departments: r.Departments}
}

// Create checks tax id and work email uniqueness, plus the configured reference checks.
// The work email is matched against both email columns of other executives.
func (r ExecutiveRules) Create(candidate *personnel.Executive) Plan {
	var plan Plan
	if r.Policy.ValidateReferences {
		plan = plan.Add(r.refs().onCreate(candidate.Profile)...)
	}
	if r.Policy.ValidateManagerLink && candidate.ReportsToExecutiveID != nil {
		plan = plan.Add(exists(personnel.FieldReportsToExecutiveID, "executive",
			*candidate.ReportsToExecutiveID, r.Executives.FindByID))
	}
	if candidate.CPF != nil {
		plan = plan.Add(r.cpfUnique(0, *candidate.CPF))
	}
	if email := candidate.WorkEmailValue(); email != "" {
		plan = plan.Add(r.workEmailUnique(0, email))
	}
	return plan
}

// Update checks only the fields the patch changes
func (r ExecutiveRules) Update(current *personnel.Executive, patch personnel.ProfilePatch) Plan {
	var plan Plan
	if r.Policy.ValidateReferences {
		plan = plan.Add(r.refs().onUpdate(current.Profile, patch)...)
	}
	if r.Policy.ValidateManagerLink {
		if managerID, changed := current.ManagerChange(patch); changed {
			plan = plan.Add(r.managerLink(current.ID, managerID))
		}
	}
	if cpf, changed := current.CPFChange(patch); changed {
		plan = plan.Add(r.cpfUnique(current.ID, cpf))
	}
	if email, changed := current.WorkEmailChange(patch); changed {
		plan = plan.Add(r.workEmailUnique(current.ID, email))
	}
	return plan
}

// Delete has no guard
func (r ExecutiveRules) Delete(*personnel.Executive) Plan {
	return nil
}

func (r ExecutiveRules) cpfUnique(self int64, cpf string) Check {
	return unique(personnel.FieldCPF, MsgDuplicateCPF, self, func(ctx context.Context) (*personnel.Executive, error) {
		return r.Executives.FindByCPF(ctx, cpf)
	})
}

func (r ExecutiveRules) workEmailUnique(self int64, email string) Check {
	return unique(personnel.FieldWorkEmail, MsgDuplicateWorkEmail, self, func(ctx context.Context) (*personnel.Executive, error) {
		return r.Executives.FindByAnyEmail(ctx, email)
	})
}

// managerLink requires the new manager to exist, to differ from self and to
// not already report (directly or transitively) to self.
func (r ExecutiveRules) managerLink(self, managerID int64) Check {
	return Check{
		Stage: StageParent,
		Field: personnel.FieldReportsToExecutiveID,
		Run: func(ctx context.Context) error {
			if managerID == self {
				return shared.NewRejected(personnel.FieldReportsToExecutiveID, MsgSelfManager).WithConflict(self)
			}
			visited := map[int64]bool{self: true}
			next := managerID
			for depth := 0; depth < maxReportingDepth; depth++ {
				mgr, found, err := lookup(ctx, func(ctx context.Context) (*personnel.Executive, error) {
					return r.Executives.FindByID(ctx, next)
				})
				if err != nil {
					return err
				}
				if !found {
					if next == managerID {
						return shared.NewRejected(personnel.FieldReportsToExecutiveID,
							fmt.Sprintf("executive %d does not exist", managerID)).WithConflict(managerID)
					}
					// dangling link further up the chain ends it
					return nil
				}
				if mgr.ReportsToExecutiveID == nil {
					return nil
				}
				next = *mgr.ReportsToExecutiveID
				if visited[next] {
					if next == self {
						return shared.NewRejected(personnel.FieldReportsToExecutiveID, MsgManagerCycle).WithConflict(mgr.ID)
					}
					// an existing cycle that does not involve self
					return nil
				}
				visited[next] = true
			}
			return shared.NewRejected(personnel.FieldReportsToExecutiveID, MsgManagerCycle)
		},
	}
}

// SecretaryRules guards secretary mutations
type SecretaryRules struct {
	Secretaries   SecretaryLookup
	Executives    ExecutiveLookup
	Organizations OrganizationLookup
	Departments   DepartmentLookup
	Policy        PersonnelPolicy
}

func (r SecretaryRules) refs() referenceLookups {
	return referenceLookups{Organizations: r.Organizations, Departments: r.Departments}
}

// ExecutiveSet carries the requested executive ids and the subset that resolved
type ExecutiveSet struct {
	Requested []int64
	Resolved  []int64
}

// Create checks tax id uniqueness, the configured reference checks and, in
// strict mode, that every requested executive id resolved.
func (r SecretaryRules) Create(candidate *personnel.Secretary, set ExecutiveSet) Plan {
	var plan Plan
	if r.Policy.ValidateReferences {
		plan = plan.Add(r.refs().onCreate(candidate.Profile)...)
		if candidate.ReportsToExecutiveID != nil {
			plan = plan.Add(exists(personnel.FieldReportsToExecutiveID, "executive",
				*candidate.ReportsToExecutiveID, r.Executives.FindByID))
		}
	}
	plan = plan.Add(r.executiveSet(set))
	if candidate.CPF != nil {
		plan = plan.Add(r.cpfUnique(0, *candidate.CPF))
	}
	return plan
}

// Update checks only the fields the patch changes. set is nil when the patch
// does not supply an executive set.
func (r SecretaryRules) Update(current *personnel.Secretary, patch personnel.SecretaryPatch, set *ExecutiveSet) Plan {
	var plan Plan
	if r.Policy.ValidateReferences {
		plan = plan.Add(r.refs().onUpdate(current.Profile, patch.Profile)...)
		if id, changed := current.ManagerChange(patch.Profile); changed {
			plan = plan.Add(exists(personnel.FieldReportsToExecutiveID, "executive", id, r.Executives.FindByID))
		}
	}
	if set != nil {
		plan = plan.Add(r.executiveSet(*set))
	}
	if cpf, changed := current.CPFChange(patch.Profile); changed {
		plan = plan.Add(r.cpfUnique(current.ID, cpf))
	}
	return plan
}

// Delete has no guard; association rows go with the secretary
func (r SecretaryRules) Delete(*personnel.Secretary) Plan {
	return nil
}

func (r SecretaryRules) cpfUnique(self int64, cpf string) Check {
	return unique(personnel.FieldCPF, MsgDuplicateCPF, self, func(ctx context.Context) (*personnel.Secretary, error) {
		return r.Secretaries.FindByCPF(ctx, cpf)
	})
}

func (r SecretaryRules) executiveSet(set ExecutiveSet) Check {
	return Check{
		Stage: StageParent,
		Field: personnel.FieldExecutiveIDs,
		Run: func(context.Context) error {
			if r.Policy.SecretaryExecutiveIDs != ExecutiveIDsStrict {
				return nil
			}
			resolved := make(map[int64]bool, len(set.Resolved))
			for _, id := range set.Resolved {
				resolved[id] = true
			}
			for _, id := range personnel.NormalizeIDs(set.Requested) {
				if !resolved[id] {
					return shared.NewRejected(personnel.FieldExecutiveIDs,
						fmt.Sprintf("executive %d does not exist", id)).WithConflict(id)
				}
			}
			return nil
		},
	}
}
