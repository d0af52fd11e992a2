package testutil

import (
	"testing"

	"github.com/executiva/backend/internal/infrastructure/persistence"
	"github.com/stretchr/testify/require"
)

// TestStore is an in-memory SQLite database with the schema applied and a
// transaction scope over it.
type TestStore struct {
	Database *persistence.Database
	Scope    *persistence.GormTransactionScope
}

// NewTestStore opens a private in-memory database. It is closed when the test ends.
func NewTestStore(t *testing.T) *TestStore {
	t.Helper()

	db, err := persistence.NewInMemoryDatabase(nil)
	require.NoError(t, err, "failed to open in-memory database")
	t.Cleanup(func() {
		_ = db.Close()
	})

	return &TestStore{
		Database: db,
		Scope:    persistence.NewGormTransactionScope(db.DB),
	}
}
