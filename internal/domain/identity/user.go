package identity

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/executiva/backend/internal/domain/shared"
)

// Canonical field names
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
)

const (
	passwordMinLength = 6
	nameMinLength     = 2
	nameMaxLength     = 100
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// PasswordHasher turns plaintext passwords into stored hashes.
// The algorithm and its parameters belong to the implementation.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(hash, plaintext string) bool
}

// User is an application account. It is not part of the organization hierarchy.
type User struct {
	shared.BaseEntity
	Name         string
	Email        string
	Phone        *string
	PasswordHash string
	Active       bool
}

// UserPatch carries the fields supplied in a partial update.
// Password holds the new plaintext; it never reaches the entity.
type UserPatch struct {
	Name     shared.Optional[string]
	Email    shared.Optional[string]
	Phone    shared.Optional[*string]
	Password shared.Optional[string]
	Active   shared.Optional[bool]
}

// IsEmpty reports whether no field was supplied
func (p UserPatch) IsEmpty() bool {
	return !p.Name.Set && !p.Email.Set && !p.Phone.Set && !p.Password.Set && !p.Active.Set
}

// NewUser creates an active user. The plaintext password is hashed with
// hasher and then discarded.
func NewUser(name, email string, phone *string, password string, hasher PasswordHasher) (*User, error) {
	name, err := validateName(name)
	if err != nil {
		return nil, err
	}
	email, err = validateEmail(email)
	if err != nil {
		return nil, err
	}
	hash, err := hashPassword(password, hasher)
	if err != nil {
		return nil, err
	}

	return &User{
		BaseEntity:   shared.NewBaseEntity(),
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: hash,
		Active:       true,
	}, nil
}

// Apply merges the supplied fields of p, hashing a new password if one is given.
// Nothing is written if p is invalid.
func (u *User) Apply(p UserPatch, hasher PasswordHasher) error {
	if p.IsEmpty() {
		return shared.NewRejected("", "at least one field must be provided for the update")
	}

	name := u.Name
	if p.Name.Set {
		n, err := validateName(p.Name.Value)
		if err != nil {
			return err
		}
		name = n
	}
	email := u.Email
	if p.Email.Set {
		e, err := validateEmail(p.Email.Value)
		if err != nil {
			return err
		}
		email = e
	}
	hash := u.PasswordHash
	if p.Password.Set {
		h, err := hashPassword(p.Password.Value, hasher)
		if err != nil {
			return err
		}
		hash = h
	}

	u.Name = name
	u.Email = email
	u.PasswordHash = hash
	p.Phone.Apply(&u.Phone)
	p.Active.Apply(&u.Active)
	u.Touch()
	return nil
}

// EmailChange returns the new email when p supplies one that differs from the stored value
func (u *User) EmailChange(p UserPatch) (string, bool) {
	if !p.Email.Set {
		return "", false
	}
	next := normalizeEmail(p.Email.Value)
	if next == u.Email {
		return "", false
	}
	return next, true
}

// VerifyPassword checks plaintext against the stored hash
func (u *User) VerifyPassword(plaintext string, hasher PasswordHasher) bool {
	return hasher.Verify(u.PasswordHash, plaintext)
}

// CanLogin reports whether the account may authenticate
func (u *User) CanLogin() bool {
	return u.Active
}

// Validation functions

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", shared.NewRejected(FieldName, "name cannot be empty")
	}
	n := utf8.RuneCountInString(name)
	if n < nameMinLength || n > nameMaxLength {
		return "", shared.NewRejected(FieldName, "name must be between 2 and 100 characters")
	}
	return name, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateEmail(email string) (string, error) {
	email = normalizeEmail(email)
	if email == "" {
		return "", shared.NewRejected(FieldEmail, "email cannot be empty")
	}
	if len(email) > 200 || !emailRegex.MatchString(email) {
		return "", shared.NewRejected(FieldEmail, "invalid email format")
	}
	return email, nil
}

func hashPassword(password string, hasher PasswordHasher) (string, error) {
	if utf8.RuneCountInString(password) < passwordMinLength {
		return "", shared.NewRejected(FieldPassword, "password must be at least 6 characters")
	}
	hash, err := hasher.Hash(password)
	if err != nil {
		return "", shared.NewUnexpected("hash password", err)
	}
	return hash, nil
}
