package identity

import (
	"time"

	"github.com/executiva/backend/internal/domain/identity"
	"github.com/executiva/backend/internal/domain/shared"
)

// UserInput is the canonical payload of a user create or update.
// The password is plaintext and only ever reaches the hasher.
type UserInput struct {
	Name     shared.Optional[string]  `json:"name" validate:"omitempty,min=2,max=100"`
	Email    shared.Optional[string]  `json:"email" validate:"omitempty,email,max=200"`
	Phone    shared.Optional[*string] `json:"phone" validate:"omitempty,max=50"`
	Password shared.Optional[string]  `json:"password" validate:"omitempty,min=6,max=72"`
	Active   shared.Optional[bool]    `json:"is_active"`
}

// Patch returns the supplied fields as a domain patch
func (in UserInput) Patch() identity.UserPatch {
	return identity.UserPatch{
		Name:     in.Name,
		Email:    in.Email,
		Phone:    in.Phone,
		Password: in.Password,
		Active:   in.Active,
	}
}

// LoginInput contains the input for user login
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResult contains the result of a successful login
type LoginResult struct {
	AccessToken string
	ExpiresAt   time.Time
	TokenType   string
	User        *identity.User
}

// LogoutInput identifies the access token to revoke
type LogoutInput struct {
	UserID    int64
	TokenJTI  string
	ExpiresAt time.Time
}
