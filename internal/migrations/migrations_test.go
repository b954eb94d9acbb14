package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationFiles_ArePaired(t *testing.T) {
	files, err := fs.Glob(MigrationFiles, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, file := range files {
		switch {
		case strings.HasSuffix(file, ".up.sql"):
			ups[strings.TrimSuffix(file, ".up.sql")] = true
		case strings.HasSuffix(file, ".down.sql"):
			downs[strings.TrimSuffix(file, ".down.sql")] = true
		default:
			t.Errorf("arquivo fora do padrão: %s", file)
		}
	}

	assert.Equal(t, ups, downs)
}

func TestInitMigration_LedgerHasNoForeignKeys(t *testing.T) {
	content, err := fs.ReadFile(MigrationFiles, "000001_init.up.sql")
	require.NoError(t, err)

	sql := string(content)
	start := strings.Index(sql, "CREATE TABLE IF NOT EXISTS activities")
	require.NotEqual(t, -1, start)

	end := strings.Index(sql[start:], ");")
	require.NotEqual(t, -1, end)

	assert.NotContains(t, sql[start:start+end], "REFERENCES")
}
