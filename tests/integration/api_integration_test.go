package integration

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	identityapp "github.com/executiva/backend/internal/application/identity"
	orgapp "github.com/executiva/backend/internal/application/organization"
	personnelapp "github.com/executiva/backend/internal/application/personnel"
	"github.com/executiva/backend/internal/domain/integrity"
	"github.com/executiva/backend/internal/domain/shared"
	"github.com/executiva/backend/internal/infrastructure/auth"
	"github.com/executiva/backend/internal/infrastructure/config"
	"github.com/executiva/backend/internal/infrastructure/persistence"
	"github.com/executiva/backend/internal/interfaces/http/dto"
	"github.com/executiva/backend/internal/interfaces/http/handler"
	"github.com/executiva/backend/internal/interfaces/http/middleware"
	"github.com/executiva/backend/internal/interfaces/http/router"
	"github.com/executiva/backend/tests/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// APITestServer is the full HTTP stack over a migrated PostgreSQL database
type APITestServer struct {
	DB     *TestDB
	Engine *gin.Engine
	Users  *identityapp.UserService
	token  string
}

// NewAPITestServer wires every service and handler the way cmd/server does,
// with bearer tokens required on the entity routes.
func NewAPITestServer(t *testing.T, policy integrity.PersonnelPolicy) *APITestServer {
	t.Helper()

	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()

	testDB := NewTestDB(t)
	store := persistence.NewGormTransactionScope(testDB.Database.DB)
	limits := shared.PageLimits{Default: 100, Max: 1000}
	log := zap.NewNop()

	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                "integration-secret-key-1234567890",
		AccessTokenExpiration: 15 * time.Minute,
		Issuer:                "executiva-integration",
	})
	blacklist := auth.NewInMemoryTokenBlacklist()
	users := identityapp.NewUserService(store, auth.NewBcryptHasher(bcrypt.MinCost), limits, log)

	jwtCfg := middleware.DefaultJWTConfig(jwtService)
	jwtCfg.TokenBlacklist = blacklist

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(middleware.BodyLimit(1 << 20))
	router.Setup(engine, router.Handlers{
		LegalOrganizations: handler.NewLegalOrganizationHandler(orgapp.NewLegalOrganizationService(store, limits, log)),
		Organizations:      handler.NewOrganizationHandler(orgapp.NewOrganizationService(store, limits, log)),
		Departments:        handler.NewDepartmentHandler(orgapp.NewDepartmentService(store, limits, log)),
		Executives:         handler.NewExecutiveHandler(personnelapp.NewExecutiveService(store, policy, limits, log)),
		Secretaries:        handler.NewSecretaryHandler(personnelapp.NewSecretaryService(store, policy, limits, log)),
		Users:              handler.NewUserHandler(users),
		Auth:               handler.NewAuthHandler(identityapp.NewAuthService(users, jwtService, blacklist, log)),
		System:             handler.NewSystemHandler(testDB.Database, "Executiva API", "integration"),
	}, router.Options{
		Authenticate: middleware.JWTAuthMiddlewareWithConfig(jwtCfg),
		RequireAuth:  true,
	})

	return &APITestServer{DB: testDB, Engine: engine, Users: users}
}

// Login creates an account and keeps its access token for later requests
func (s *APITestServer) Login(t *testing.T) {
	t.Helper()

	_, err := s.Users.Create(context.Background(), identityapp.UserInput{
		Name:     shared.Some("Integration Admin"),
		Email:    shared.Some("admin@executiva.test"),
		Password: shared.Some("admin-password"),
	})
	require.NoError(t, err)

	w := s.Request(t, http.MethodPost, "/api/v1/auth/login", map[string]any{
		"email":    "admin@executiva.test",
		"password": "admin-password",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	s.token = testutil.Data(t, w)["access_token"].(string)
}

// Request sends a JSON request, authenticated once Login has run
func (s *APITestServer) Request(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	if s.token == "" {
		return testutil.Serve(t, s.Engine, method, path, body)
	}
	return testutil.Serve(t, s.Engine, method, path, body, "Authorization", "Bearer "+s.token)
}

func TestAPI_OrganizationHierarchy(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	s := NewAPITestServer(t, integrity.DefaultPersonnelPolicy())

	w := s.Request(t, http.MethodGet, "/api/v1/legal-organizations", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	s.Login(t)

	w = s.Request(t, http.MethodPost, "/api/v1/legal-organizations", map[string]any{
		"name": "Acme Holding", "cnpj": "12.345.678/0001-90", "state": "sp", "zipCode": "01000-000",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	legal := testutil.Data(t, w)
	legalID := int64(legal["id"].(float64))
	assert.Equal(t, "SP", legal["state"])
	assert.Equal(t, "01000-000", legal["zipCode"])

	t.Run("duplicate cnpj names the conflicting row", func(t *testing.T) {
		w := s.Request(t, http.MethodPost, "/api/v1/legal-organizations", map[string]any{
			"name": "Acme Again", "cnpj": "12.345.678/0001-90",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		resp := testutil.Envelope(t, w)
		assert.Equal(t, dto.ErrCodeValidationRejected, resp.Error.Code)
		assert.Equal(t, "cnpj", resp.Error.Field)
		assert.Equal(t, legalID, resp.Error.ConflictID)
	})

	w = s.Request(t, http.MethodPost, "/api/v1/organizations", map[string]any{
		"name": "Acme Brasil", "legalOrganizationId": legalID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	orgID := testutil.ID(t, w)

	t.Run("organization needs an existing parent", func(t *testing.T) {
		w := s.Request(t, http.MethodPost, "/api/v1/organizations", map[string]any{
			"name": "Orphan", "legalOrganizationId": 9999,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		assert.Equal(t, "legalOrganizationId", testutil.ErrorInfo(t, w).Field)
	})

	for _, name := range []string{"Finance", "Legal"} {
		w := s.Request(t, http.MethodPost, "/api/v1/departments", map[string]any{
			"name": name, "organizationId": orgID,
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	t.Run("department names are unique per organization", func(t *testing.T) {
		w := s.Request(t, http.MethodPost, "/api/v1/departments", map[string]any{
			"name": "Finance", "organization_id": orgID,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})

	t.Run("departments by organization", func(t *testing.T) {
		w := s.Request(t, http.MethodGet, fmt.Sprintf("/api/v1/departments/by-organization/%d", orgID), nil)
		require.Equal(t, http.StatusOK, w.Code)
		resp := testutil.Envelope(t, w)
		assert.Len(t, resp.Data, 2)
		assert.Equal(t, int64(2), resp.Meta.Total)
	})

	t.Run("department lookup", func(t *testing.T) {
		w := s.Request(t, http.MethodGet, fmt.Sprintf("/api/v1/departments/lookup?name=Legal&organizationId=%d", orgID), nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "Legal", testutil.Data(t, w)["name"])
	})

	t.Run("parents with children cannot be deleted", func(t *testing.T) {
		w := s.Request(t, http.MethodDelete, fmt.Sprintf("/api/v1/organizations/%d", orgID), nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = s.Request(t, http.MethodDelete, fmt.Sprintf("/api/v1/legal-organizations/%d", legalID), nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("paging", func(t *testing.T) {
		w := s.Request(t, http.MethodGet, "/api/v1/departments?skip=1&limit=1", nil)
		require.Equal(t, http.StatusOK, w.Code)
		resp := testutil.Envelope(t, w)
		assert.Equal(t, int64(2), resp.Meta.Total)
		assert.Equal(t, 1, resp.Meta.Skip)
		assert.Equal(t, 1, resp.Meta.Count)
	})

	t.Run("patch clears a nullable column", func(t *testing.T) {
		w := s.Request(t, http.MethodPatch, fmt.Sprintf("/api/v1/legal-organizations/%d", legalID), map[string]any{
			"zipCode": nil,
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		got := testutil.Data(t, w)
		assert.Nil(t, got["zipCode"])
		assert.Equal(t, "Acme Holding", got["name"])
	})
}

func TestAPI_Personnel(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	s := NewAPITestServer(t, integrity.DefaultPersonnelPolicy())
	s.Login(t)

	w := s.Request(t, http.MethodPost, "/api/v1/executives", map[string]any{
		"fullName": "Ana Souza", "workEmail": "ana@acme.com", "cpf": "111.111.111-11", "address": "Rua A, 10",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	ana := testutil.Data(t, w)
	anaID := int64(ana["id"].(float64))
	assert.Equal(t, "Rua A, 10", ana["address"])

	w = s.Request(t, http.MethodPost, "/api/v1/executives", map[string]any{
		"fullName": "Bruno Lima", "workEmail": "bruno@acme.com", "reportsToExecutiveId": anaID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	brunoID := testutil.ID(t, w)

	t.Run("manager cycles are rejected", func(t *testing.T) {
		w := s.Request(t, http.MethodPatch, fmt.Sprintf("/api/v1/executives/%d", anaID), map[string]any{
			"reportsToExecutiveId": brunoID,
		})
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		assert.Equal(t, integrity.MsgManagerCycle, testutil.ErrorInfo(t, w).Message)
	})

	t.Run("work email must be unique", func(t *testing.T) {
		w := s.Request(t, http.MethodPost, "/api/v1/executives", map[string]any{
			"fullName": "Other Ana", "workEmail": "ana@acme.com",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		resp := testutil.Envelope(t, w)
		assert.Equal(t, "workEmail", resp.Error.Field)
		assert.Equal(t, anaID, resp.Error.ConflictID)
	})

	t.Run("executive lookup", func(t *testing.T) {
		w := s.Request(t, http.MethodGet, "/api/v1/executives/lookup?workEmail=bruno@acme.com", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, float64(brunoID), testutil.Data(t, w)["id"])

		w = s.Request(t, http.MethodGet, "/api/v1/executives/lookup?cpf=111.111.111-11", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, float64(anaID), testutil.Data(t, w)["id"])
	})

	w = s.Request(t, http.MethodPost, "/api/v1/secretaries", map[string]any{
		"fullName": "Carla Dias", "cpf": "222.222.222-22", "executiveIds": []int64{brunoID, anaID, 777},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	secretary := testutil.Data(t, w)
	secretaryID := int64(secretary["id"].(float64))
	assert.Equal(t, []any{float64(anaID), float64(brunoID)}, secretary["executiveIds"])

	t.Run("deleting an executive clears links and the set", func(t *testing.T) {
		w := s.Request(t, http.MethodDelete, fmt.Sprintf("/api/v1/executives/%d", anaID), nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = s.Request(t, http.MethodGet, fmt.Sprintf("/api/v1/executives/%d", brunoID), nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Nil(t, testutil.Data(t, w)["reportsToExecutiveId"])

		w = s.Request(t, http.MethodGet, fmt.Sprintf("/api/v1/secretaries/%d", secretaryID), nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []any{float64(brunoID)}, testutil.Data(t, w)["executiveIds"])
	})

	t.Run("secretary lookup by cpf", func(t *testing.T) {
		w := s.Request(t, http.MethodGet, "/api/v1/secretaries/lookup?cpf=222.222.222-22", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, float64(secretaryID), testutil.Data(t, w)["id"])
	})
}

func TestAPI_StrictSecretaryPolicy(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	policy := integrity.DefaultPersonnelPolicy()
	policy.SecretaryExecutiveIDs = integrity.ExecutiveIDsStrict
	s := NewAPITestServer(t, policy)
	s.Login(t)

	w := s.Request(t, http.MethodPost, "/api/v1/secretaries", map[string]any{
		"fullName": "Dora Nunes", "executiveIds": []int64{404},
	})
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	assert.Equal(t, "executiveIds", testutil.ErrorInfo(t, w).Field)
}

func TestAPI_UsersAndSessions(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	s := NewAPITestServer(t, integrity.DefaultPersonnelPolicy())
	s.Login(t)

	w := s.Request(t, http.MethodPost, "/api/v1/users", map[string]any{
		"name": "Eva Prado", "email": "EVA@acme.com", "password": "eva-password",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	user := testutil.Data(t, w)
	assert.Equal(t, "eva@acme.com", user["email"])
	assert.Equal(t, true, user["isActive"])
	assert.NotContains(t, w.Body.String(), "password")

	w = s.Request(t, http.MethodGet, "/api/v1/users/lookup?email=eva@acme.com", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.Request(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.Request(t, http.MethodPost, "/api/v1/auth/logout", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.Request(t, http.MethodGet, "/api/v1/users", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, dto.ErrCodeTokenRevoked, testutil.ErrorInfo(t, w).Code)
}
