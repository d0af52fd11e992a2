package personnel

import (
	"github.com/executiva/backend/internal/domain/shared"
)

// Executive is a member of staff with a unique work email and an optional
// manager link to another executive.
type Executive struct {
	shared.BaseEntity
	Profile
}

// NewExecutive creates an executive that has not been stored yet
func NewExecutive(profile Profile) (*Executive, error) {
	profile.normalize()
	if err := validateFullName(profile.FullName); err != nil {
		return nil, err
	}
	if profile.WorkEmail == nil {
		return nil, shared.NewRejected(FieldWorkEmail, "work email is required")
	}
	return &Executive{
		BaseEntity: shared.NewBaseEntity(),
		Profile:    profile,
	}, nil
}

// Apply merges the supplied fields of patch. Nothing is written if patch is invalid.
func (e *Executive) Apply(patch ProfilePatch) error {
	if patch.FullName.Set {
		if err := validateFullName(patch.FullName.Value); err != nil {
			return err
		}
	}
	if patch.WorkEmail.Set && normalizeKey(patch.WorkEmail.Value) == nil {
		return shared.NewRejected(FieldWorkEmail, "work email cannot be cleared")
	}

	e.Profile.apply(patch)
	e.Touch()
	return nil
}

// WorkEmailChange returns the new work email when patch supplies a different one
func (e *Executive) WorkEmailChange(patch ProfilePatch) (string, bool) {
	return keyChange(e.WorkEmail, patch.WorkEmail)
}

// WorkEmailValue returns the work email or an empty string
func (e *Executive) WorkEmailValue() string {
	if e.WorkEmail == nil {
		return ""
	}
	return *e.WorkEmail
}
