package persistence

import (
	"errors"
	"fmt"
	"testing"

	"github.com/executiva/backend/internal/domain/integrity"
	"github.com/executiva/backend/internal/domain/shared"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    string
		wantField   string
		wantMessage string
	}{
		{
			name:        "postgres unique violation on cnpj",
			err:         &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "idx_organizations_cnpj"},
			wantCode:    shared.CodeConstraintConflict,
			wantField:   "cnpj",
			wantMessage: integrity.MsgDuplicateCNPJ,
		},
		{
			name:        "postgres unique violation on department name",
			err:         fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "idx_departments_name_organization"}),
			wantCode:    shared.CodeConstraintConflict,
			wantField:   "name",
			wantMessage: integrity.MsgDuplicateDepartmentName,
		},
		{
			name:        "sqlite unique violation on work email",
			err:         errors.New("UNIQUE constraint failed: executives.work_email"),
			wantCode:    shared.CodeConstraintConflict,
			wantField:   "work_email",
			wantMessage: integrity.MsgDuplicateWorkEmail,
		},
		{
			name:        "sqlite unique violation on user email",
			err:         errors.New("UNIQUE constraint failed: users.email"),
			wantCode:    shared.CodeConstraintConflict,
			wantField:   "email",
			wantMessage: integrity.MsgDuplicateEmail,
		},
		{
			name:        "unknown unique index",
			err:         gorm.ErrDuplicatedKey,
			wantCode:    shared.CodeConstraintConflict,
			wantMessage: "record conflicts with existing data",
		},
		{
			name:        "foreign key violation",
			err:         &pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: "fk_departments_organization"},
			wantCode:    shared.CodeConstraintConflict,
			wantMessage: "referenced record does not exist or is still referenced",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := translateError("op", tt.err)

			var de *shared.DomainError
			require.True(t, errors.As(err, &de), "expected a domain error, got %v", err)
			assert.Equal(t, tt.wantCode, de.Code)
			assert.Equal(t, tt.wantField, de.Field)
			assert.Equal(t, tt.wantMessage, de.Message)
			assert.ErrorIs(t, err, tt.err)
		})
	}

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, translateError("op", nil))
	})

	t.Run("domain errors pass through", func(t *testing.T) {
		original := shared.NewNotFound("executive", 7)
		assert.Same(t, original, translateError("op", original))
	})

	t.Run("other errors are wrapped with the operation", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := translateError("update executive", cause)
		assert.EqualError(t, err, "update executive: connection reset")
		assert.ErrorIs(t, err, cause)
	})
}

func TestNotFoundHelpers(t *testing.T) {
	err := notFound(gorm.ErrRecordNotFound, "department", 12)
	assert.True(t, shared.IsNotFound(err))
	assert.EqualError(t, err, "department 12 not found")

	err = notFoundBy(gorm.ErrRecordNotFound, "user", "email a@b.com")
	assert.True(t, shared.IsNotFound(err))
	assert.Contains(t, err.Error(), "user with email a@b.com not found")

	cause := errors.New("boom")
	assert.Same(t, cause, notFound(cause, "department", 12))
	assert.Same(t, cause, notFoundBy(cause, "user", "email"))
}
