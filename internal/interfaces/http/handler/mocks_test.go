package handler

import (
	"context"

	identityapp "github.com/executiva/backend/internal/application/identity"
	orgapp "github.com/executiva/backend/internal/application/organization"
	personnelapp "github.com/executiva/backend/internal/application/personnel"
	"github.com/executiva/backend/internal/domain/identity"
	"github.com/executiva/backend/internal/domain/organization"
	"github.com/executiva/backend/internal/domain/personnel"
	"github.com/stretchr/testify/mock"
)

// mockCRUD implements the shared create/read/update/delete surface for any entity kind
type mockCRUD[E, I any] struct {
	mock.Mock
}

func (m *mockCRUD[E, I]) entity(args mock.Arguments) (*E, error) {
	if e := args.Get(0); e != nil {
		return e.(*E), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCRUD[E, I]) Create(ctx context.Context, in I) (*E, error) {
	return m.entity(m.Called(ctx, in))
}

func (m *mockCRUD[E, I]) GetByID(ctx context.Context, id int64) (*E, error) {
	return m.entity(m.Called(ctx, id))
}

func (m *mockCRUD[E, I]) List(ctx context.Context, offset, limit int) ([]*E, int64, error) {
	args := m.Called(ctx, offset, limit)
	var items []*E
	if v := args.Get(0); v != nil {
		items = v.([]*E)
	}
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *mockCRUD[E, I]) Update(ctx context.Context, id int64, in I) (*E, error) {
	return m.entity(m.Called(ctx, id, in))
}

func (m *mockCRUD[E, I]) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockLegalOrganizationService struct {
	mockCRUD[organization.LegalOrganization, orgapp.LegalOrganizationInput]
}

func (m *mockLegalOrganizationService) GetByCNPJ(ctx context.Context, cnpj string) (*organization.LegalOrganization, error) {
	return m.entity(m.Called(ctx, cnpj))
}

type mockDepartmentService struct {
	mockCRUD[organization.Department, orgapp.DepartmentInput]
}

func (m *mockDepartmentService) GetByNameAndOrganization(ctx context.Context, name string, organizationID int64) (*organization.Department, error) {
	return m.entity(m.Called(ctx, name, organizationID))
}

func (m *mockDepartmentService) ListByOrganization(ctx context.Context, organizationID int64) ([]*organization.Department, error) {
	args := m.Called(ctx, organizationID)
	var items []*organization.Department
	if v := args.Get(0); v != nil {
		items = v.([]*organization.Department)
	}
	return items, args.Error(1)
}

type mockExecutiveService struct {
	mockCRUD[personnel.Executive, personnelapp.ExecutiveInput]
}

func (m *mockExecutiveService) GetByCPF(ctx context.Context, cpf string) (*personnel.Executive, error) {
	return m.entity(m.Called(ctx, cpf))
}

func (m *mockExecutiveService) GetByWorkEmail(ctx context.Context, email string) (*personnel.Executive, error) {
	return m.entity(m.Called(ctx, email))
}

type mockUserService struct {
	mockCRUD[identity.User, identityapp.UserInput]
}

func (m *mockUserService) GetByEmail(ctx context.Context, email string) (*identity.User, error) {
	return m.entity(m.Called(ctx, email))
}

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Login(ctx context.Context, input identityapp.LoginInput) (*identityapp.LoginResult, error) {
	args := m.Called(ctx, input)
	if r := args.Get(0); r != nil {
		return r.(*identityapp.LoginResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuthService) Logout(ctx context.Context, input identityapp.LogoutInput) error {
	return m.Called(ctx, input).Error(0)
}
