package personnel

import (
	"slices"

	"github.com/executiva/backend/internal/domain/shared"
)

// Secretary supports a set of executives. The set is replaced wholesale
// whenever an update supplies it.
type Secretary struct {
	shared.BaseEntity
	Profile
	ExecutiveIDs []int64
}

// SecretaryPatch carries the fields supplied in a partial update
type SecretaryPatch struct {
	Profile      ProfilePatch
	ExecutiveIDs shared.Optional[[]int64]
}

// NewSecretary creates a secretary that has not been stored yet
func NewSecretary(profile Profile) (*Secretary, error) {
	profile.normalize()
	if err := validateFullName(profile.FullName); err != nil {
		return nil, err
	}
	return &Secretary{
		BaseEntity:   shared.NewBaseEntity(),
		Profile:      profile,
		ExecutiveIDs: []int64{},
	}, nil
}

// Apply merges the supplied profile fields. The executive set is replaced
// separately, after the ids have been resolved.
func (s *Secretary) Apply(patch SecretaryPatch) error {
	if patch.Profile.FullName.Set {
		if err := validateFullName(patch.Profile.FullName.Value); err != nil {
			return err
		}
	}
	s.Profile.apply(patch.Profile)
	s.Touch()
	return nil
}

// ReplaceExecutives sets the supported executives to exactly ids
func (s *Secretary) ReplaceExecutives(ids []int64) {
	s.ExecutiveIDs = NormalizeIDs(ids)
}

// NormalizeIDs returns the distinct positive ids in ascending order
func NormalizeIDs(ids []int64) []int64 {
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id > 0 {
			out = append(out, id)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
