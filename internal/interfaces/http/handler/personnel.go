package handler

import (
	"context"

	"github.com/executiva/backend/internal/application/fieldmap"
	personnelapp "github.com/executiva/backend/internal/application/personnel"
	"github.com/executiva/backend/internal/domain/personnel"
	"github.com/gin-gonic/gin"
)

// ExecutiveService is what ExecutiveHandler needs from the application layer
type ExecutiveService interface {
	entityService[personnel.Executive, personnelapp.ExecutiveInput]
	GetByCPF(ctx context.Context, cpf string) (*personnel.Executive, error)
	GetByWorkEmail(ctx context.Context, email string) (*personnel.Executive, error)
}

// ExecutiveHandler serves /executives
type ExecutiveHandler struct {
	entityHandler[personnel.Executive, personnelapp.ExecutiveInput]
	service ExecutiveService
}

// NewExecutiveHandler creates a new ExecutiveHandler
func NewExecutiveHandler(service ExecutiveService) *ExecutiveHandler {
	return &ExecutiveHandler{
		entityHandler: entityHandler[personnel.Executive, personnelapp.ExecutiveInput]{
			name:    "Executive",
			table:   fieldmap.Executives,
			record:  fieldmap.ExecutiveRecord,
			service: service,
		},
		service: service,
	}
}

// Lookup handles GET /executives/lookup?cpf= and ?workEmail=. cpf wins when
// both are given.
func (h *ExecutiveHandler) Lookup(c *gin.Context) {
	ctx := c.Request.Context()
	if cpf := c.Query("cpf"); cpf != "" {
		entity, err := h.service.GetByCPF(ctx, cpf)
		h.found(c, entity, err)
		return
	}
	if email := queryAlias(c, "workEmail", "work_email"); email != "" {
		entity, err := h.service.GetByWorkEmail(ctx, email)
		h.found(c, entity, err)
		return
	}
	h.BadRequest(c, "cpf or workEmail query parameter is required")
}

// SecretaryService is what SecretaryHandler needs from the application layer
type SecretaryService interface {
	entityService[personnel.Secretary, personnelapp.SecretaryInput]
	GetByCPF(ctx context.Context, cpf string) (*personnel.Secretary, error)
}

// SecretaryHandler serves /secretaries
type SecretaryHandler struct {
	entityHandler[personnel.Secretary, personnelapp.SecretaryInput]
	service SecretaryService
}

// NewSecretaryHandler creates a new SecretaryHandler
func NewSecretaryHandler(service SecretaryService) *SecretaryHandler {
	return &SecretaryHandler{
		entityHandler: entityHandler[personnel.Secretary, personnelapp.SecretaryInput]{
			name:    "Secretary",
			table:   fieldmap.Secretaries,
			record:  fieldmap.SecretaryRecord,
			service: service,
		},
		service: service,
	}
}

// Lookup handles GET /secretaries/lookup?cpf=
func (h *SecretaryHandler) Lookup(c *gin.Context) {
	cpf, ok := h.requiredQuery(c, "cpf")
	if !ok {
		return
	}
	entity, err := h.service.GetByCPF(c.Request.Context(), cpf)
	h.found(c, entity, err)
}
