package handler

import (
	"context"

	identityapp "github.com/executiva/backend/internal/application/identity"
	"github.com/executiva/backend/internal/application/fieldmap"
	"github.com/executiva/backend/internal/interfaces/http/dto"
	"github.com/executiva/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// AuthService is what AuthHandler needs from the application layer
type AuthService interface {
	Login(ctx context.Context, input identityapp.LoginInput) (*identityapp.LoginResult, error)
	Logout(ctx context.Context, input identityapp.LogoutInput) error
}

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	BaseHandler
	authService AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login authenticates a user by email and password and returns a bearer
// token. Bad credentials answer 401.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !h.BindJSON(c, &req) {
		return
	}

	result, err := h.authService.Login(c.Request.Context(), identityapp.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, LoginResponse{
		AccessToken: result.AccessToken,
		TokenType:   result.TokenType,
		ExpiresAt:   result.ExpiresAt,
		User:        fieldmap.Users.ToExternal(fieldmap.UserRecord(result.User)),
	})
}

// Logout revokes the access token the request was authenticated with.
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.GetJWTClaims(c)
	if claims == nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	userID, err := claims.GetUserID()
	if err != nil {
		h.Unauthorized(c, "Invalid user ID in token")
		return
	}

	err = h.authService.Logout(c.Request.Context(), identityapp.LogoutInput{
		UserID:    userID,
		TokenJTI:  claims.ID,
		ExpiresAt: claims.GetExpiresAtTime(),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, dto.MessageResponse{Message: "Logged out successfully"})
}
