package handler

import (
	"context"
	"strconv"

	"github.com/executiva/backend/internal/application/fieldmap"
	orgapp "github.com/executiva/backend/internal/application/organization"
	"github.com/executiva/backend/internal/domain/organization"
	"github.com/gin-gonic/gin"
)

// LegalOrganizationService is what LegalOrganizationHandler needs from the application layer
type LegalOrganizationService interface {
	entityService[organization.LegalOrganization, orgapp.LegalOrganizationInput]
	GetByCNPJ(ctx context.Context, cnpj string) (*organization.LegalOrganization, error)
}

// LegalOrganizationHandler serves /legal-organizations
type LegalOrganizationHandler struct {
	entityHandler[organization.LegalOrganization, orgapp.LegalOrganizationInput]
	service LegalOrganizationService
}

// NewLegalOrganizationHandler creates a new LegalOrganizationHandler
func NewLegalOrganizationHandler(service LegalOrganizationService) *LegalOrganizationHandler {
	return &LegalOrganizationHandler{
		entityHandler: entityHandler[organization.LegalOrganization, orgapp.LegalOrganizationInput]{
			name:    "Legal organization",
			table:   fieldmap.LegalOrganizations,
			record:  fieldmap.LegalOrganizationRecord,
			service: service,
		},
		service: service,
	}
}

// Lookup handles GET /legal-organizations/lookup?cnpj=
func (h *LegalOrganizationHandler) Lookup(c *gin.Context) {
	cnpj, ok := h.requiredQuery(c, "cnpj")
	if !ok {
		return
	}
	entity, err := h.service.GetByCNPJ(c.Request.Context(), cnpj)
	h.found(c, entity, err)
}

// OrganizationService is what OrganizationHandler needs from the application layer
type OrganizationService interface {
	entityService[organization.Organization, orgapp.OrganizationInput]
	GetByCNPJ(ctx context.Context, cnpj string) (*organization.Organization, error)
}

// OrganizationHandler serves /organizations
type OrganizationHandler struct {
	entityHandler[organization.Organization, orgapp.OrganizationInput]
	service OrganizationService
}

// NewOrganizationHandler creates a new OrganizationHandler
func NewOrganizationHandler(service OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{
		entityHandler: entityHandler[organization.Organization, orgapp.OrganizationInput]{
			name:    "Organization",
			table:   fieldmap.Organizations,
			record:  fieldmap.OrganizationRecord,
			service: service,
		},
		service: service,
	}
}

// Lookup handles GET /organizations/lookup?cnpj=
func (h *OrganizationHandler) Lookup(c *gin.Context) {
	cnpj, ok := h.requiredQuery(c, "cnpj")
	if !ok {
		return
	}
	entity, err := h.service.GetByCNPJ(c.Request.Context(), cnpj)
	h.found(c, entity, err)
}

// DepartmentService is what DepartmentHandler needs from the application layer
type DepartmentService interface {
	entityService[organization.Department, orgapp.DepartmentInput]
	GetByNameAndOrganization(ctx context.Context, name string, organizationID int64) (*organization.Department, error)
	ListByOrganization(ctx context.Context, organizationID int64) ([]*organization.Department, error)
}

// DepartmentHandler serves /departments
type DepartmentHandler struct {
	entityHandler[organization.Department, orgapp.DepartmentInput]
	service DepartmentService
}

// NewDepartmentHandler creates a new DepartmentHandler
func NewDepartmentHandler(service DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{
		entityHandler: entityHandler[organization.Department, orgapp.DepartmentInput]{
			name:    "Department",
			table:   fieldmap.Departments,
			record:  fieldmap.DepartmentRecord,
			service: service,
		},
		service: service,
	}
}

// Lookup handles GET /departments/lookup?name=&organizationId=
func (h *DepartmentHandler) Lookup(c *gin.Context) {
	name, ok := h.requiredQuery(c, "name")
	if !ok {
		return
	}
	raw := queryAlias(c, "organizationId", "organization_id")
	orgID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || orgID <= 0 {
		h.BadRequest(c, "organizationId must be a positive integer")
		return
	}
	entity, err := h.service.GetByNameAndOrganization(c.Request.Context(), name, orgID)
	h.found(c, entity, err)
}

// ListByOrganization handles GET /departments/by-organization/:org_id
func (h *DepartmentHandler) ListByOrganization(c *gin.Context) {
	orgID, ok := h.pathID(c, "org_id")
	if !ok {
		return
	}
	items, err := h.service.ListByOrganization(c.Request.Context(), orgID)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.SuccessWithList(c, h.externalList(items), int64(len(items)), 0, len(items))
}
