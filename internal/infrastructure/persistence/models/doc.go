// Package models contains GORM-specific persistence models that map to database tables.
// These models are separate from domain entities to keep the domain layer pure and free
// from ORM concerns.
//
// Key Principles:
// 1. Domain entities should be free of GORM tags and infrastructure concerns
// 2. Persistence models contain all GORM annotations and table mappings
// 3. Mappers convert between domain entities and persistence models
// 4. Repositories use persistence models for database operations
//
// Structure:
// - base.go: BaseModel with the generated id and timestamps
// - organization.go: legal organizations, organizations, departments
// - personnel.go: executives, secretaries and their association table
// - identity.go: users
//
// Belongs-to fields exist only so that AutoMigrate creates the same foreign keys
// as the SQL migrations. Repositories never preload them.
package models
