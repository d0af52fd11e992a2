package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	orgapp "github.com/executiva/backend/internal/application/organization"
	personnelapp "github.com/executiva/backend/internal/application/personnel"
	"github.com/executiva/backend/internal/domain/identity"
	"github.com/executiva/backend/internal/domain/organization"
	"github.com/executiva/backend/internal/domain/personnel"
	"github.com/executiva/backend/internal/domain/shared"
	"github.com/executiva/backend/internal/interfaces/http/dto"
	"github.com/executiva/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func base(id int64) shared.BaseEntity {
	return shared.BaseEntity{ID: id, CreatedAt: testTime, UpdatedAt: testTime}
}

func serve(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func dataMap(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	resp := decodeResponse(t, w)
	require.True(t, resp.Success, w.Body.String())
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	return data
}

func legalOrgRouter(svc *mockLegalOrganizationService) *gin.Engine {
	h := NewLegalOrganizationHandler(svc)
	r := gin.New()
	g := r.Group("/legal-organizations")
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/lookup", h.Lookup)
	g.GET("/:id", h.GetByID)
	g.PUT("/:id", h.Update)
	g.PATCH("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	return r
}

func TestLegalOrganizationHandler_Create(t *testing.T) {
	svc := new(mockLegalOrganizationService)
	created := &organization.LegalOrganization{
		BaseEntity: base(1),
		Name:       "Acme Holding",
		CNPJ:       strPtr("12.345.678/0001-90"),
		Address:    organization.Address{State: strPtr("SP"), ZipCode: strPtr("01000-000")},
	}
	svc.On("Create", mock.Anything, mock.MatchedBy(func(in orgapp.LegalOrganizationInput) bool {
		return in.Name.Value == "Acme Holding" &&
			in.ZipCode.Set && *in.ZipCode.Value == "01000-000" &&
			in.State.Set && *in.State.Value == "SP" &&
			!in.City.Set
	})).Return(created, nil)

	w := serve(legalOrgRouter(svc), http.MethodPost, "/legal-organizations",
		`{"name":"Acme Holding","cnpj":"12.345.678/0001-90","zipCode":"01000-000","state":" sp "}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := dataMap(t, w)
	assert.Equal(t, float64(1), data["id"])
	assert.Equal(t, "01000-000", data["zipCode"])
	assert.Equal(t, "SP", data["state"])
	assert.Contains(t, data, "city")
	assert.Nil(t, data["city"])
	assert.Contains(t, data, "createdAt")
	assert.NotContains(t, data, "zip_code")
	svc.AssertExpectations(t)
}

func TestLegalOrganizationHandler_CreateRejected(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
		code   string
		field  string
	}{
		{"malformed json", `{"name":`, http.StatusBadRequest, dto.ErrCodeInvalidJSON, ""},
		{"not an object", `["Acme"]`, http.StatusBadRequest, dto.ErrCodeInvalidJSON, ""},
		{"field too long", `{"name":"` + strings.Repeat("x", 300) + `"}`, http.StatusBadRequest, dto.ErrCodeValidation, ""},
		{"bad state", `{"name":"Acme","state":"SPX"}`, http.StatusBadRequest, dto.ErrCodeValidation, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockLegalOrganizationService)
			w := serve(legalOrgRouter(svc), http.MethodPost, "/legal-organizations", tt.body)

			assert.Equal(t, tt.status, w.Code)
			resp := decodeResponse(t, w)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.code, resp.Error.Code)
			svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}

	t.Run("duplicate cnpj", func(t *testing.T) {
		svc := new(mockLegalOrganizationService)
		svc.On("Create", mock.Anything, mock.Anything).
			Return(nil, shared.NewRejected("cnpj", "cnpj already registered").WithConflict(4))

		w := serve(legalOrgRouter(svc), http.MethodPost, "/legal-organizations", `{"name":"Acme","cnpj":"1"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeResponse(t, w)
		assert.Equal(t, dto.ErrCodeValidationRejected, resp.Error.Code)
		assert.Equal(t, "cnpj", resp.Error.Field)
		assert.Equal(t, int64(4), resp.Error.ConflictID)
	})

	t.Run("body over the limit", func(t *testing.T) {
		svc := new(mockLegalOrganizationService)
		h := NewLegalOrganizationHandler(svc)
		r := gin.New()
		r.Use(func(c *gin.Context) {
			c.Request.ContentLength = -1
			c.Next()
		})
		r.Use(middleware.BodyLimit(16))
		r.POST("/legal-organizations", h.Create)

		w := serve(r, http.MethodPost, "/legal-organizations", `{"name":"`+strings.Repeat("x", 64)+`"}`)

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
		assert.Equal(t, dto.ErrCodeRequestTooLarge, decodeResponse(t, w).Error.Code)
	})
}

func TestLegalOrganizationHandler_GetByID(t *testing.T) {
	svc := new(mockLegalOrganizationService)
	svc.On("GetByID", mock.Anything, int64(1)).Return(&organization.LegalOrganization{BaseEntity: base(1), Name: "Acme"}, nil)
	svc.On("GetByID", mock.Anything, int64(99)).Return(nil, shared.NewNotFound("legal organization", 99))
	r := legalOrgRouter(svc)

	w := serve(r, http.MethodGet, "/legal-organizations/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Acme", dataMap(t, w)["name"])

	w = serve(r, http.MethodGet, "/legal-organizations/99", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, dto.ErrCodeNotFound, decodeResponse(t, w).Error.Code)

	for _, bad := range []string{"abc", "0", "-3"} {
		w = serve(r, http.MethodGet, "/legal-organizations/"+bad, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, bad)
		assert.Equal(t, dto.ErrCodeBadRequest, decodeResponse(t, w).Error.Code)
	}
	svc.AssertExpectations(t)
}

func TestLegalOrganizationHandler_List(t *testing.T) {
	svc := new(mockLegalOrganizationService)
	items := []*organization.LegalOrganization{
		{BaseEntity: base(3), Name: "C"},
		{BaseEntity: base(4), Name: "D"},
	}
	svc.On("List", mock.Anything, 2, 2).Return(items, int64(7), nil)
	svc.On("List", mock.Anything, 0, 0).Return([]*organization.LegalOrganization{}, int64(0), nil)
	r := legalOrgRouter(svc)

	w := serve(r, http.MethodGet, "/legal-organizations?skip=2&limit=2", "")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, int64(7), resp.Meta.Total)
	assert.Equal(t, 2, resp.Meta.Skip)
	assert.Equal(t, 2, resp.Meta.Count)
	list := resp.Data.([]any)
	require.Len(t, list, 2)
	assert.Equal(t, "C", list[0].(map[string]any)["name"])

	w = serve(r, http.MethodGet, "/legal-organizations", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []any{}, decodeResponse(t, w).Data)

	for _, query := range []string{"skip=-1", "limit=-5", "limit=abc"} {
		w = serve(r, http.MethodGet, "/legal-organizations?"+query, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, query)
	}
	svc.AssertExpectations(t)
}

func TestLegalOrganizationHandler_Update(t *testing.T) {
	for _, method := range []string{http.MethodPut, http.MethodPatch} {
		t.Run(method, func(t *testing.T) {
			svc := new(mockLegalOrganizationService)
			svc.On("Update", mock.Anything, int64(5), mock.MatchedBy(func(in orgapp.LegalOrganizationInput) bool {
				// absent fields stay unset, explicit null clears
				return !in.Name.Set && in.CNPJ.Set && in.CNPJ.Value == nil
			})).Return(&organization.LegalOrganization{BaseEntity: base(5), Name: "Kept"}, nil)

			w := serve(legalOrgRouter(svc), method, "/legal-organizations/5", `{"cnpj":null}`)

			assert.Equal(t, http.StatusOK, w.Code)
			data := dataMap(t, w)
			assert.Equal(t, "Kept", data["name"])
			assert.Nil(t, data["cnpj"])
			svc.AssertExpectations(t)
		})
	}

	t.Run("empty patch reaches the service", func(t *testing.T) {
		svc := new(mockLegalOrganizationService)
		svc.On("Update", mock.Anything, int64(5), orgapp.LegalOrganizationInput{}).
			Return(nil, shared.NewRejected("", "no fields to update"))

		w := serve(legalOrgRouter(svc), http.MethodPatch, "/legal-organizations/5", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrCodeValidationRejected, decodeResponse(t, w).Error.Code)
	})
}

func TestLegalOrganizationHandler_Delete(t *testing.T) {
	svc := new(mockLegalOrganizationService)
	svc.On("Delete", mock.Anything, int64(1)).Return(nil)
	svc.On("Delete", mock.Anything, int64(2)).
		Return(shared.NewRejected("", "cannot delete: has linked companies").WithConflict(8))
	r := legalOrgRouter(svc)

	w := serve(r, http.MethodDelete, "/legal-organizations/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var msg dto.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &msg))
	assert.Equal(t, "Legal organization deleted successfully", msg.Message)

	w = serve(r, http.MethodDelete, "/legal-organizations/2", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "cannot delete: has linked companies", resp.Error.Message)
	assert.Equal(t, int64(8), resp.Error.ConflictID)
	svc.AssertExpectations(t)
}

func TestLegalOrganizationHandler_Lookup(t *testing.T) {
	svc := new(mockLegalOrganizationService)
	svc.On("GetByCNPJ", mock.Anything, "12345678000190").
		Return(&organization.LegalOrganization{BaseEntity: base(1), Name: "Acme", CNPJ: strPtr("12345678000190")}, nil)
	r := legalOrgRouter(svc)

	w := serve(r, http.MethodGet, "/legal-organizations/lookup?cnpj=12345678000190", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "12345678000190", dataMap(t, w)["cnpj"])

	w = serve(r, http.MethodGet, "/legal-organizations/lookup", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertExpectations(t)
}

func departmentRouter(svc *mockDepartmentService) *gin.Engine {
	h := NewDepartmentHandler(svc)
	r := gin.New()
	g := r.Group("/departments")
	g.POST("", h.Create)
	g.GET("/lookup", h.Lookup)
	g.GET("/by-organization/:org_id", h.ListByOrganization)
	return r
}

func TestDepartmentHandler(t *testing.T) {
	t.Run("create maps the organization alias", func(t *testing.T) {
		svc := new(mockDepartmentService)
		svc.On("Create", mock.Anything, orgapp.DepartmentInput{
			Name:           shared.Some("Finance"),
			OrganizationID: shared.Some(int64(3)),
		}).Return(&organization.Department{BaseEntity: base(9), OrganizationID: 3, Name: "Finance"}, nil)

		w := serve(departmentRouter(svc), http.MethodPost, "/departments", `{"name":"Finance","organizationId":3}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		data := dataMap(t, w)
		assert.Equal(t, float64(3), data["organizationId"])
		svc.AssertExpectations(t)
	})

	t.Run("rule errors use external field names", func(t *testing.T) {
		svc := new(mockDepartmentService)
		svc.On("Create", mock.Anything, mock.Anything).
			Return(nil, shared.NewRejected("organization_id", "organization does not exist"))

		w := serve(departmentRouter(svc), http.MethodPost, "/departments", `{"name":"Finance","organizationId":77}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "organizationId", decodeResponse(t, w).Error.Field)
	})

	t.Run("payload errors use external field names", func(t *testing.T) {
		svc := new(mockDepartmentService)

		w := serve(departmentRouter(svc), http.MethodPost, "/departments", `{"name":"Finance","organizationId":0}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeResponse(t, w)
		assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
		require.Len(t, resp.Error.Details, 1)
		assert.Equal(t, "organizationId", resp.Error.Details[0].Field)
	})

	t.Run("lookup by name and organization", func(t *testing.T) {
		svc := new(mockDepartmentService)
		dept := &organization.Department{BaseEntity: base(9), OrganizationID: 3, Name: "Finance"}
		svc.On("GetByNameAndOrganization", mock.Anything, "Finance", int64(3)).Return(dept, nil)
		r := departmentRouter(svc)

		for _, query := range []string{"name=Finance&organizationId=3", "name=Finance&organization_id=3"} {
			w := serve(r, http.MethodGet, "/departments/lookup?"+query, "")
			assert.Equal(t, http.StatusOK, w.Code, query)
		}
		for _, query := range []string{"organizationId=3", "name=Finance", "name=Finance&organizationId=x"} {
			w := serve(r, http.MethodGet, "/departments/lookup?"+query, "")
			assert.Equal(t, http.StatusBadRequest, w.Code, query)
		}
		svc.AssertNumberOfCalls(t, "GetByNameAndOrganization", 2)
	})

	t.Run("list by organization", func(t *testing.T) {
		svc := new(mockDepartmentService)
		svc.On("ListByOrganization", mock.Anything, int64(3)).Return([]*organization.Department{
			{BaseEntity: base(1), OrganizationID: 3, Name: "A"},
			{BaseEntity: base(2), OrganizationID: 3, Name: "B"},
		}, nil)
		svc.On("ListByOrganization", mock.Anything, int64(4)).Return(nil, errors.New("db down"))
		r := departmentRouter(svc)

		w := serve(r, http.MethodGet, "/departments/by-organization/3", "")
		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeResponse(t, w)
		assert.Len(t, resp.Data.([]any), 2)
		assert.Equal(t, int64(2), resp.Meta.Total)

		w = serve(r, http.MethodGet, "/departments/by-organization/4", "")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestExecutiveHandler_Lookup(t *testing.T) {
	svc := new(mockExecutiveService)
	exec := &personnel.Executive{BaseEntity: base(1), Profile: personnel.Profile{
		FullName:  "Ana Souza",
		CPF:       strPtr("12345678901"),
		WorkEmail: strPtr("ana@acme.com"),
	}}
	svc.On("GetByCPF", mock.Anything, "12345678901").Return(exec, nil)
	svc.On("GetByWorkEmail", mock.Anything, "ana@acme.com").Return(exec, nil)

	h := NewExecutiveHandler(svc)
	r := gin.New()
	r.GET("/executives/lookup", h.Lookup)

	for _, query := range []string{"cpf=12345678901", "workEmail=ana@acme.com", "work_email=ana@acme.com", "cpf=12345678901&workEmail=other@acme.com"} {
		w := serve(r, http.MethodGet, "/executives/lookup?"+query, "")
		require.Equal(t, http.StatusOK, w.Code, query)
		data := dataMap(t, w)
		assert.Equal(t, "Ana Souza", data["fullName"])
		assert.Equal(t, "ana@acme.com", data["workEmail"])
	}

	w := serve(r, http.MethodGet, "/executives/lookup", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNumberOfCalls(t, "GetByCPF", 2)
	svc.AssertNumberOfCalls(t, "GetByWorkEmail", 2)
}

func TestExecutiveHandler_CreateMapsAddressAlias(t *testing.T) {
	svc := new(mockExecutiveService)
	svc.On("Create", mock.Anything, mock.MatchedBy(func(in personnelapp.ExecutiveInput) bool {
		return in.FullName.Value == "Ana" && in.Street.Set && *in.Street.Value == "Rua A, 10"
	})).Return(&personnel.Executive{BaseEntity: base(2), Profile: personnel.Profile{
		FullName: "Ana",
		Address:  strPtr("Rua A, 10"),
	}}, nil)
	svc.On("Create", mock.Anything, mock.Anything).
		Return(nil, shared.NewRejected("work_email", "work email already registered").WithConflict(1))

	h := NewExecutiveHandler(svc)
	r := gin.New()
	r.POST("/executives", h.Create)

	w := serve(r, http.MethodPost, "/executives", `{"fullName":"Ana","address":"Rua A, 10"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Rua A, 10", dataMap(t, w)["address"])

	w = serve(r, http.MethodPost, "/executives", `{"fullName":"Bia","workEmail":"ana@acme.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "workEmail", resp.Error.Field)
	assert.Equal(t, int64(1), resp.Error.ConflictID)
}

func TestUserHandler(t *testing.T) {
	svc := new(mockUserService)
	user := &identity.User{BaseEntity: base(1), Name: "Maria", Email: "maria@acme.com", PasswordHash: "$2a$hash", Active: true}
	svc.On("GetByEmail", mock.Anything, "maria@acme.com").Return(user, nil)
	svc.On("GetByID", mock.Anything, int64(1)).Return(user, nil)

	h := NewUserHandler(svc)
	r := gin.New()
	r.GET("/users/lookup", h.Lookup)
	r.GET("/users/:id", h.GetByID)

	for _, target := range []string{"/users/lookup?email=maria@acme.com", "/users/1"} {
		w := serve(r, http.MethodGet, target, "")
		require.Equal(t, http.StatusOK, w.Code, target)
		data := dataMap(t, w)
		assert.Equal(t, true, data["isActive"])
		assert.NotContains(t, w.Body.String(), "$2a$hash")
		assert.NotContains(t, data, "password")
		assert.NotContains(t, data, "password_hash")
	}
}
