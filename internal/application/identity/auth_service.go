package identity

import (
	"context"
	"time"

	"github.com/executiva/backend/internal/domain/shared"
	"github.com/executiva/backend/internal/infrastructure/auth"
	"go.uber.org/zap"
)

// AuthService issues and revokes access tokens
type AuthService struct {
	users      *UserService
	jwtService *auth.JWTService
	blacklist  auth.TokenBlacklist
	logger     *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	users *UserService,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		users:      users,
		jwtService: jwtService,
		blacklist:  blacklist,
		logger:     logger,
	}
}

// Login authenticates a user and returns a signed access token
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	user, err := s.users.Authenticate(ctx, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	token, err := s.jwtService.GenerateAccessToken(auth.GenerateTokenInput{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
	})
	if err != nil {
		s.logger.Error("Failed to generate access token", zap.Error(err))
		return nil, shared.NewUnexpected("generate access token", err)
	}

	s.logger.Info("User logged in successfully", zap.Int64("user_id", user.ID))

	return &LoginResult{
		AccessToken: token.Token,
		ExpiresAt:   token.ExpiresAt,
		TokenType:   token.TokenType,
		User:        user,
	}, nil
}

// Logout revokes the access token until it would have expired anyway
func (s *AuthService) Logout(ctx context.Context, input LogoutInput) error {
	if input.TokenJTI == "" {
		return nil
	}
	ttl := time.Until(input.ExpiresAt)
	if err := s.blacklist.AddToBlacklist(ctx, input.TokenJTI, ttl); err != nil {
		s.logger.Error("Failed to blacklist token", zap.Error(err))
		return shared.NewUnexpected("revoke access token", err)
	}

	s.logger.Info("User logout", zap.Int64("user_id", input.UserID))
	return nil
}
