package integrity

import (
	"context"

	"github.com/executiva/backend/internal/domain/identity"
)

// MsgDuplicateEmail is returned when a user email is already taken
const MsgDuplicateEmail = "email already registered"

// UserLookup is what the rules need from the user store
type UserLookup interface {
	FindByEmail(ctx context.Context, email string) (*identity.User, error)
}

// UserRules guards user mutations
type UserRules struct {
	Users UserLookup
}

// Create checks email uniqueness
func (r UserRules) Create(candidate *identity.User) Plan {
	return Plan{r.emailUnique(0, candidate.Email)}
}

// Update re-checks email uniqueness only when the email changes
func (r UserRules) Update(current *identity.User, patch identity.UserPatch) Plan {
	if email, changed := current.EmailChange(patch); changed {
		return Plan{r.emailUnique(current.ID, email)}
	}
	return nil
}

// Delete has no guard
func (r UserRules) Delete(*identity.User) Plan {
	return nil
}

func (r UserRules) emailUnique(self int64, email string) Check {
	return unique(identity.FieldEmail, MsgDuplicateEmail, self, func(ctx context.Context) (*identity.User, error) {
		return r.Users.FindByEmail(ctx, email)
	})
}
