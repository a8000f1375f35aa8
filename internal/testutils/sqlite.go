package testutils

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/bug-arena/internal/sqlite"
)

// CreateTestSQLite opens a fresh in-memory database with the schema applied
func CreateTestSQLite(t *testing.T) (*sql.DB, func()) {
	db, err := sqlite.Open(context.Background(), sqlite.MemoryPath)
	require.NoError(t, err, "failed to open sqlite")

	return db, func() { _ = db.Close() }
}
