package persistence

import (
	"fmt"

	"github.com/executiva/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// schemaModels lists every persistence model in dependency order
var schemaModels = []any{
	&models.LegalOrganizationModel{},
	&models.OrganizationModel{},
	&models.DepartmentModel{},
	&models.ExecutiveModel{},
	&models.SecretaryModel{},
	&models.SecretaryExecutiveModel{},
	&models.UserModel{},
}

// profileIndexes are the unique indexes on columns embedded from ProfileColumns,
// which both personnel tables share and so cannot carry per-table index tags.
var profileIndexes = []string{
	"CREATE UNIQUE INDEX IF NOT EXISTS idx_executives_cpf ON executives (cpf)",
	"CREATE UNIQUE INDEX IF NOT EXISTS idx_executives_work_email ON executives (work_email)",
	"CREATE UNIQUE INDEX IF NOT EXISTS idx_secretaries_cpf ON secretaries (cpf)",
}

// AutoMigrate creates or updates the schema from the persistence models.
// Production deployments use the SQL files under migrations/ instead.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(schemaModels...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	for _, stmt := range profileIndexes {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("auto migrate: %w", err)
		}
	}
	return nil
}
