package router

import (
	"github.com/executiva/backend/internal/interfaces/http/handler"
	"github.com/gin-gonic/gin"
)

// EntityHandler is the route surface shared by every entity kind
type EntityHandler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Lookup(c *gin.Context)
	GetByID(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

// EntityGroup builds the standard routes of one entity kind under prefix
func EntityGroup(name, prefix string, h EntityHandler) *DomainGroup {
	return NewDomainGroup(name, prefix).
		POST("", h.Create).
		GET("", h.List).
		GET("/lookup", h.Lookup).
		GET("/:id", h.GetByID).
		PUT("/:id", h.Update).
		PATCH("/:id", h.Update).
		DELETE("/:id", h.Delete)
}

// Handlers are the handlers served by the API
type Handlers struct {
	LegalOrganizations *handler.LegalOrganizationHandler
	Organizations      *handler.OrganizationHandler
	Departments        *handler.DepartmentHandler
	Executives         *handler.ExecutiveHandler
	Secretaries        *handler.SecretaryHandler
	Users              *handler.UserHandler
	Auth               *handler.AuthHandler
	System             *handler.SystemHandler
}

// Options control access to the route tree
type Options struct {
	// Authenticate validates the bearer token. Logout always requires it.
	Authenticate gin.HandlerFunc
	// RequireAuth puts the entity routes behind Authenticate as well
	RequireAuth bool
}

// Setup registers /health and the /api/v1 routes on engine
func Setup(engine *gin.Engine, h Handlers, opts Options) *Router {
	engine.GET("/health", h.System.Health)

	var entityAuth gin.HandlerFunc
	if opts.RequireAuth {
		entityAuth = opts.Authenticate
	}

	departments := EntityGroup("departments", "/departments", h.Departments).
		GET("/by-organization/:org_id", h.Departments.ListByOrganization).
		Use(entityAuth)

	auth := NewDomainGroup("auth", "/auth").POST("/login", h.Auth.Login)
	auth.Group("session", "").
		Use(opts.Authenticate).
		POST("/logout", h.Auth.Logout)

	r := NewRouter(engine)
	r.Register(
		EntityGroup("legal-organizations", "/legal-organizations", h.LegalOrganizations).Use(entityAuth),
		EntityGroup("organizations", "/organizations", h.Organizations).Use(entityAuth),
		departments,
		EntityGroup("executives", "/executives", h.Executives).Use(entityAuth),
		EntityGroup("secretaries", "/secretaries", h.Secretaries).Use(entityAuth),
		EntityGroup("users", "/users", h.Users).Use(entityAuth),
		auth,
		NewDomainGroup("system", "/system").GET("/info", h.System.GetSystemInfo),
	)
	r.Setup()
	return r
}
