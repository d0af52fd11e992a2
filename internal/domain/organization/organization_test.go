package organization

import (
	"strings"
	"testing"

	"github.com/executiva/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNewLegalOrganization(t *testing.T) {
	t.Run("creates with trimmed name and tax id", func(t *testing.T) {
		org, err := NewLegalOrganization("  Acme Holdings ", strPtr(" 11.111.111/0001-11 "), Address{City: strPtr("São Paulo")})
		require.NoError(t, err)

		assert.Equal(t, "Acme Holdings", org.Name)
		require.NotNil(t, org.CNPJ)
		assert.Equal(t, "11.111.111/0001-11", *org.CNPJ)
		assert.Equal(t, "São Paulo", *org.Address.City)
		assert.True(t, org.IsNew())
	})

	t.Run("blank tax id is stored as absent", func(t *testing.T) {
		org, err := NewLegalOrganization("Acme", strPtr("   "), Address{})
		require.NoError(t, err)
		assert.Nil(t, org.CNPJ)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewLegalOrganization(" ", nil, Address{})
		require.Error(t, err)
		assert.True(t, shared.IsRejected(err))
		assert.Contains(t, err.Error(), "name cannot be empty")
	})

	t.Run("fails with name too short or too long", func(t *testing.T) {
		_, err := NewLegalOrganization("A", nil, Address{})
		require.Error(t, err)

		_, err = NewLegalOrganization(strings.Repeat("x", 256), nil, Address{})
		require.Error(t, err)
	})
}

func TestLegalOrganization_Apply(t *testing.T) {
	t.Run("only supplied fields change", func(t *testing.T) {
		org, _ := NewLegalOrganization("Acme", strPtr("1"), Address{Street: strPtr("Rua A"), City: strPtr("Campinas")})

		err := org.Apply(LegalOrganizationPatch{
			Name:    shared.Some("Acme Two"),
			Address: AddressPatch{City: shared.Some(strPtr("Santos"))},
		})
		require.NoError(t, err)

		assert.Equal(t, "Acme Two", org.Name)
		assert.Equal(t, "1", *org.CNPJ)
		assert.Equal(t, "Rua A", *org.Address.Street)
		assert.Equal(t, "Santos", *org.Address.City)
	})

	t.Run("explicit null clears an optional field", func(t *testing.T) {
		org, _ := NewLegalOrganization("Acme", strPtr("1"), Address{})
		require.NoError(t, org.Apply(LegalOrganizationPatch{CNPJ: shared.Some[*string](nil)}))
		assert.Nil(t, org.CNPJ)
	})

	t.Run("invalid name leaves entity untouched", func(t *testing.T) {
		org, _ := NewLegalOrganization("Acme", strPtr("1"), Address{})
		err := org.Apply(LegalOrganizationPatch{Name: shared.Some(""), CNPJ: shared.Some(strPtr("2"))})
		require.Error(t, err)
		assert.Equal(t, "Acme", org.Name)
		assert.Equal(t, "1", *org.CNPJ)
	})
}

func TestLegalOrganization_CNPJChange(t *testing.T) {
	org, _ := NewLegalOrganization("Acme", strPtr("1"), Address{})

	_, changed := org.CNPJChange(LegalOrganizationPatch{})
	assert.False(t, changed, "absent field is never re-validated")

	_, changed = org.CNPJChange(LegalOrganizationPatch{CNPJ: shared.Some(strPtr("1"))})
	assert.False(t, changed)

	_, changed = org.CNPJChange(LegalOrganizationPatch{CNPJ: shared.Some[*string](nil)})
	assert.False(t, changed, "clearing never conflicts")

	next, changed := org.CNPJChange(LegalOrganizationPatch{CNPJ: shared.Some(strPtr(" 2 "))})
	assert.True(t, changed)
	assert.Equal(t, "2", next)
}

func TestOrganization(t *testing.T) {
	t.Run("requires a parent id", func(t *testing.T) {
		_, err := NewOrganization(0, "Acme SP", nil, Address{})
		require.Error(t, err)
		var de *shared.DomainError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, FieldLegalOrganizationID, de.Field)
	})

	t.Run("parent change is reported only when it differs", func(t *testing.T) {
		org, err := NewOrganization(1, "Acme SP", nil, Address{})
		require.NoError(t, err)

		_, moved := org.ParentChange(OrganizationPatch{LegalOrganizationID: shared.Some(int64(1))})
		assert.False(t, moved)

		to, moved := org.ParentChange(OrganizationPatch{LegalOrganizationID: shared.Some(int64(7))})
		assert.True(t, moved)
		assert.Equal(t, int64(7), to)
	})

	t.Run("apply moves to a new parent", func(t *testing.T) {
		org, _ := NewOrganization(1, "Acme SP", nil, Address{})
		require.NoError(t, org.Apply(OrganizationPatch{LegalOrganizationID: shared.Some(int64(2))}))
		assert.Equal(t, int64(2), org.LegalOrganizationID)
		assert.Equal(t, "Acme SP", org.Name)
	})
}

func TestDepartment_PlacementChange(t *testing.T) {
	dept, err := NewDepartment(10, "Finance")
	require.NoError(t, err)

	tests := []struct {
		name    string
		patch   DepartmentPatch
		changed bool
		want    Placement
	}{
		{"nothing supplied", DepartmentPatch{}, false, Placement{}},
		{"same name", DepartmentPatch{Name: shared.Some("Finance")}, false, Placement{}},
		{"same org", DepartmentPatch{OrganizationID: shared.Some(int64(10))}, false, Placement{}},
		{"new name keeps org", DepartmentPatch{Name: shared.Some("Legal")}, true, Placement{"Legal", 10}},
		{"new org keeps name", DepartmentPatch{OrganizationID: shared.Some(int64(11))}, true, Placement{"Finance", 11}},
		{"both change", DepartmentPatch{Name: shared.Some("HR"), OrganizationID: shared.Some(int64(12))}, true, Placement{"HR", 12}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := dept.PlacementChange(tt.patch)
			assert.Equal(t, tt.changed, changed)
			assert.Equal(t, tt.want, got)
		})
	}
}
