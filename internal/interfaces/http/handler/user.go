package handler

import (
	"context"

	"github.com/executiva/backend/internal/application/fieldmap"
	identityapp "github.com/executiva/backend/internal/application/identity"
	"github.com/executiva/backend/internal/domain/identity"
	"github.com/gin-gonic/gin"
)

// UserService is what UserHandler needs from the application layer
type UserService interface {
	entityService[identity.User, identityapp.UserInput]
	GetByEmail(ctx context.Context, email string) (*identity.User, error)
}

// UserHandler serves /users. The password hash never leaves the service.
type UserHandler struct {
	entityHandler[identity.User, identityapp.UserInput]
	service UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(service UserService) *UserHandler {
	return &UserHandler{
		entityHandler: entityHandler[identity.User, identityapp.UserInput]{
			name:    "User",
			table:   fieldmap.Users,
			record:  fieldmap.UserRecord,
			service: service,
		},
		service: service,
	}
}

// Lookup handles GET /users/lookup?email=
func (h *UserHandler) Lookup(c *gin.Context) {
	email, ok := h.requiredQuery(c, "email")
	if !ok {
		return
	}
	entity, err := h.service.GetByEmail(c.Request.Context(), email)
	h.found(c, entity, err)
}
