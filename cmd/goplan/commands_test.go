package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/philipparndt/goplan/internal/persist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wallPlan = `[
	{"kind":"LINE","layer":"WALL-1","vertices":[{"x":0,"y":0},{"x":5,"y":0}],"closed":false}
]`

// execute runs the root command against a sqlite log in dir
func execute(t *testing.T, dir string, args ...string) error {
	t.Helper()
	args = append(args, "--storage", "sqlite", "--storage-path", filepath.Join(dir, "log.db"))
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func exportedRecords(t *testing.T, dir string) []persist.Record {
	t.Helper()
	out := filepath.Join(dir, "export.json")
	require.NoError(t, execute(t, dir, "export", out))
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	records, err := persist.Decode(data)
	require.NoError(t, err)
	return records
}

func TestMeasureExportImportUndo(t *testing.T) {
	dir := t.TempDir()
	plan := filepath.Join(dir, "room.json")
	require.NoError(t, os.WriteFile(plan, []byte(wallPlan), 0644))

	// Both ends snap onto the wall corners at x = -2.5 and x = 2.5
	require.NoError(t, execute(t, dir, "measure", plan, "--from", "-2.4,0.1,0", "--to", "2.45,0,0.1"))

	records := exportedRecords(t, dir)
	require.Len(t, records, 1)
	assert.InDelta(t, 5.0, records[0].Distance, 1e-9)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`[{"start":{"x":0}}]`), 0644))
	err := execute(t, dir, "import", bad)
	assert.ErrorIs(t, err, persist.ErrImport)
	assert.Len(t, exportedRecords(t, dir), 1, "rejected import keeps the stored log")

	require.NoError(t, execute(t, dir, "list"))
	require.NoError(t, execute(t, dir, "undo"))
	assert.Empty(t, exportedRecords(t, dir))
}

func TestCommandErrorsAreReturned(t *testing.T) {
	dir := t.TempDir()

	err := execute(t, dir, "build", filepath.Join(dir, "missing.dxf"))
	assert.Error(t, err)

	plan := filepath.Join(dir, "room.json")
	require.NoError(t, os.WriteFile(plan, []byte(wallPlan), 0644))
	err = execute(t, dir, "measure", plan, "--from", "1,2", "--to", "0,0,0")
	assert.ErrorContains(t, err, "invalid --from")

	err = execute(t, dir, "import", filepath.Join(dir, "missing.json"))
	assert.ErrorContains(t, err, "failed to read import file")
}
