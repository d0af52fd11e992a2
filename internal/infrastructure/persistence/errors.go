package persistence

import (
	"errors"
	"fmt"
	"strings"

	"github.com/executiva/backend/internal/domain/integrity"
	"github.com/executiva/backend/internal/domain/shared"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// SQLSTATE codes for integrity violations
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// constraintMessages maps a unique index (or the columns SQLite reports for it)
// to the field and message clients see.
var constraintMessages = []struct {
	match   []string
	field   string
	message string
}{
	{[]string{"idx_departments_name_organization", "departments.name"}, "name", integrity.MsgDuplicateDepartmentName},
	{[]string{"idx_executives_work_email", "executives.work_email"}, "work_email", integrity.MsgDuplicateWorkEmail},
	{[]string{"idx_executives_cpf", "executives.cpf"}, "cpf", integrity.MsgDuplicateCPF},
	{[]string{"idx_secretaries_cpf", "secretaries.cpf"}, "cpf", integrity.MsgDuplicateCPF},
	{[]string{"idx_legal_organizations_cnpj", "legal_organizations.cnpj"}, "cnpj", integrity.MsgDuplicateCNPJ},
	{[]string{"idx_organizations_cnpj", "organizations.cnpj"}, "cnpj", integrity.MsgDuplicateCNPJ},
	{[]string{"idx_users_email", "users.email"}, "email", integrity.MsgDuplicateEmail},
}

// translateError turns store integrity violations into ConstraintConflict
// domain errors and wraps anything else with the operation name.
func translateError(op string, err error) error {
	if err == nil {
		return nil
	}
	var de *shared.DomainError
	if errors.As(err, &de) {
		return err
	}
	switch {
	case isUniqueViolation(err):
		field, message := describeConflict(err)
		return shared.NewConstraintConflict(message, err).WithField(field)
	case isForeignKeyViolation(err):
		return shared.NewConstraintConflict("referenced record does not exist or is still referenced", err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

func describeConflict(err error) (string, string) {
	text := err.Error()
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.ConstraintName != "" {
		text = pgErr.ConstraintName
	}
	for _, c := range constraintMessages {
		for _, m := range c.match {
			if strings.Contains(text, m) {
				return c.field, c.message
			}
		}
	}
	return "", "record conflicts with existing data"
}

// notFound maps gorm.ErrRecordNotFound to a NotFound domain error
func notFound(err error, kind string, id int64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.NewNotFound(kind, id)
	}
	return err
}

// notFoundBy maps gorm.ErrRecordNotFound for lookups by a non-id key
func notFoundBy(err error, kind, key string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.NewDomainError(shared.CodeNotFound, fmt.Sprintf("%s with %s not found", kind, key))
	}
	return err
}
