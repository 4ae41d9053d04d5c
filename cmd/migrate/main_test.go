package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tzbot/infras/sqlite"
)

func countTables(t *testing.T, path string) int {
	t.Helper()

	db, err := sqlite.Open(path)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'timezones'"))

	return count
}

func TestRootCmd_Subcommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tzbot.db")

	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", path)
	t.Setenv("DB_MIGRATION_TABLE", "schema_migrations")

	steps := []struct {
		args       []string
		wantTables int
	}{
		{args: []string{"up"}, wantTables: 1},
		{args: []string{"down"}, wantTables: 0},
		{args: []string{"step-up"}, wantTables: 1},
		{args: []string{"drop"}, wantTables: 0},
	}

	for _, step := range steps {
		cmd := newRootCmd()
		cmd.SetArgs(step.args)

		require.NoError(t, cmd.Execute(), step.args)
		assert.Equal(t, step.wantTables, countTables(t, path), step.args)
	}
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"up", "extra"})

	assert.Error(t, cmd.Execute())
}
