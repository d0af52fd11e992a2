package identity

import (
	"context"

	"github.com/executiva/backend/internal/application/uow"
	"github.com/executiva/backend/internal/domain/identity"
	"github.com/executiva/backend/internal/domain/integrity"
	"github.com/executiva/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// Authentication failures; the same message is used for unknown emails and
// wrong passwords.
var (
	ErrInvalidCredentials = shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	ErrAccountInactive    = shared.NewDomainError("ACCOUNT_INACTIVE", "Account is not active")
)

// UserService handles user management operations
type UserService struct {
	store  uow.Store
	hasher identity.PasswordHasher
	limits shared.PageLimits
	logger *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(store uow.Store, hasher identity.PasswordHasher, limits shared.PageLimits, logger *zap.Logger) *UserService {
	return &UserService{
		store:  store,
		hasher: hasher,
		limits: limits,
		logger: logger,
	}
}

func userRules(repos uow.Repositories) integrity.UserRules {
	return integrity.UserRules{Users: repos.Users()}
}

// Create creates an active user with a hashed password
func (s *UserService) Create(ctx context.Context, in UserInput) (*identity.User, error) {
	user, err := identity.NewUser(in.Name.Value, in.Email.Value, in.Phone.Value, in.Password.Value, s.hasher)
	if err != nil {
		return nil, err
	}
	if in.Active.Set {
		user.Active = in.Active.Value
	}

	err = uow.Write(ctx, s.store, s.logger, "create user", func(ctx context.Context, repos uow.Repositories) error {
		if err := integrity.Evaluate(ctx, userRules(repos).Create(user)); err != nil {
			return err
		}
		return repos.Users().Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("User created",
		zap.Int64("user_id", user.ID),
		zap.String("email", user.Email))
	return user, nil
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(ctx context.Context, id int64) (*identity.User, error) {
	var user *identity.User
	err := uow.Read(ctx, s.store, s.logger, "get user", func(ctx context.Context, repos uow.Repositories) error {
		var err error
		user, err = repos.Users().FindByID(ctx, id)
		return err
	})
	return user, err
}

// GetByEmail retrieves a user by email, ignoring case
func (s *UserService) GetByEmail(ctx context.Context, email string) (*identity.User, error) {
	var user *identity.User
	err := uow.Read(ctx, s.store, s.logger, "get user by email", func(ctx context.Context, repos uow.Repositories) error {
		var err error
		user, err = repos.Users().FindByEmail(ctx, email)
		return err
	})
	return user, err
}

// List returns one page of users ordered by id and the total count
func (s *UserService) List(ctx context.Context, offset, limit int) ([]*identity.User, int64, error) {
	var listing shared.Listing[*identity.User]
	err := uow.Read(ctx, s.store, s.logger, "list users", func(ctx context.Context, repos uow.Repositories) error {
		var err error
		listing, err = repos.Users().List(ctx, s.limits.Page(offset, limit))
		return err
	})
	if err != nil {
		return nil, 0, err
	}
	return listing.Items, listing.Total, nil
}

// Update applies the supplied fields. At least one field must be supplied;
// a new password is hashed before it is stored.
func (s *UserService) Update(ctx context.Context, id int64, in UserInput) (*identity.User, error) {
	patch := in.Patch()
	var user *identity.User
	err := uow.Write(ctx, s.store, s.logger, "update user", func(ctx context.Context, repos uow.Repositories) error {
		current, err := repos.Users().FindByID(ctx, id)
		if err != nil {
			return err
		}
		next := *current
		if err := next.Apply(patch, s.hasher); err != nil {
			return err
		}
		if err := integrity.Evaluate(ctx, userRules(repos).Update(current, patch)); err != nil {
			return err
		}
		if err := repos.Users().Update(ctx, &next); err != nil {
			return err
		}
		user = &next
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("User updated",
		zap.Int64("user_id", id),
		zap.Bool("password_changed", patch.Password.Set))
	return user, nil
}

// Delete removes a user
func (s *UserService) Delete(ctx context.Context, id int64) error {
	err := uow.Write(ctx, s.store, s.logger, "delete user", func(ctx context.Context, repos uow.Repositories) error {
		current, err := repos.Users().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := integrity.Evaluate(ctx, userRules(repos).Delete(current)); err != nil {
			return err
		}
		return repos.Users().Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("User deleted", zap.Int64("user_id", id))
	return nil
}

// Authenticate verifies credentials and returns the user. Inactive users are refused.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*identity.User, error) {
	user, err := s.GetByEmail(ctx, email)
	if err != nil {
		if shared.IsNotFound(err) {
			s.logger.Warn("Login attempt for unknown email")
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.VerifyPassword(password, s.hasher) {
		s.logger.Warn("Invalid password attempt", zap.Int64("user_id", user.ID))
		return nil, ErrInvalidCredentials
	}
	if !user.CanLogin() {
		s.logger.Warn("Login attempt for inactive account", zap.Int64("user_id", user.ID))
		return nil, ErrAccountInactive
	}
	return user, nil
}
