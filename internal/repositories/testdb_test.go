package repositories_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"inventory-system/pkg/database/sqlitedb"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sqlitedb.ConnectDB(filepath.Join(t.TempDir(), "inventory.db"))
	require.NoError(t, err, "не удалось открыть тестовую базу")
	t.Cleanup(func() { db.Close() })
	return db
}
