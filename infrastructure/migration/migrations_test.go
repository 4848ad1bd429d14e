package migration

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(FS, "sql/*.sql")
	require.NoError(t, err)

	assert.Contains(t, files, "sql/000001_budget_review.up.sql")
	assert.Contains(t, files, "sql/000001_budget_review.down.sql")

	up, err := fs.ReadFile(FS, "sql/000001_budget_review.up.sql")
	require.NoError(t, err)
	assert.Contains(t, string(up), "UNIQUE (client_id, account_id, review_date)")
}
