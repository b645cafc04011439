// ABOUTME: Tests for lift command execution against a temporary data directory.
// ABOUTME: Covers add/del/movements, argument validation, help, export/import, and migrate.
package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/harperreed/lift/internal/models"
	"github.com/harperreed/lift/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// setupTestCLI points config and data at a temp tree and returns the
// default SQLite path commands will use.
func setupTestCLI(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(tmpDir, "data"))
	for _, name := range []string{"LIFT_BACKEND", "LIFT_DATA_DIR", "LIFT_DB", "LIFT_VERBOSE"} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
	return filepath.Join(tmpDir, "data", "lift", storage.DefaultDBName)
}

func runLift(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := execute(context.Background(), args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func listStored(t *testing.T, dbPath string) []*models.Movement {
	t.Helper()
	db, err := storage.Open(context.Background(), dbPath)
	require.NoError(t, err)
	defer db.Close()

	movements, err := db.ListMovements(context.Background())
	require.NoError(t, err)
	return movements
}

func TestNoArgsPrintsHelp(t *testing.T) {
	setupTestCLI(t)

	out, _, err := runLift(t)
	require.NoError(t, err)
	assert.Contains(t, out, "Program Name: LIFT_CLI")
	assert.Contains(t, out, "DataBase File: lift_data.db")
	assert.Contains(t, out, "Author: Jake Goodwin")
	for _, verb := range []string{"add:", "movements:", "del:", "undo:"} {
		assert.Contains(t, out, verb)
	}
}

func TestHelpIgnoresExtraArgs(t *testing.T) {
	setupTestCLI(t)

	plain, _, err := runLift(t, "help")
	require.NoError(t, err)

	extra, _, err := runLift(t, "help", "add", "whatever")
	require.NoError(t, err)
	assert.Equal(t, plain, extra)
}

func TestAddThenDeleteMove(t *testing.T) {
	dbPath := setupTestCLI(t)

	out, _, err := runLift(t, "add", "move", "squat", "true", "true")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Added squat")

	stored := listStored(t, dbPath)
	require.Len(t, stored, 1)
	assert.Equal(t, "squat", stored[0].Name)
	assert.True(t, stored[0].IsUpper)
	assert.True(t, stored[0].RequireWeight)

	out, _, err = runLift(t, "movements")
	require.NoError(t, err)
	assert.Equal(t, "Movement { id: 1, name: \"squat\", is_upper: true, require_weight: true }\n", out)

	out, _, err = runLift(t, "del", "move", "squat")
	require.NoError(t, err)
	assert.Contains(t, out, "✗ Deleted squat")
	assert.Empty(t, listStored(t, dbPath))
}

func TestAddMoveTokens(t *testing.T) {
	dbPath := setupTestCLI(t)

	_, _, err := runLift(t, "add", "move", "pullup", " YES ", "T")
	require.NoError(t, err)

	stored := listStored(t, dbPath)
	require.Len(t, stored, 1)
	assert.True(t, stored[0].IsUpper)
	assert.False(t, stored[0].RequireWeight, "T is not a true token")
}

func TestAddMoveAssignsDistinctIDs(t *testing.T) {
	dbPath := setupTestCLI(t)

	_, _, err := runLift(t, "add", "move", "squat", "0", "1")
	require.NoError(t, err)
	_, _, err = runLift(t, "add", "move", "bench", "1", "1")
	require.NoError(t, err)

	stored := listStored(t, dbPath)
	require.Len(t, stored, 2)
	assert.NotEqual(t, stored[0].ID, stored[1].ID)
}

func TestAddMoveDuplicateName(t *testing.T) {
	setupTestCLI(t)

	_, _, err := runLift(t, "add", "move", "squat", "0", "1")
	require.NoError(t, err)

	_, _, err = runLift(t, "add", "move", "squat", "1", "0")
	assert.ErrorIs(t, err, storage.ErrDuplicateName)
}

func TestAddMoveExplicitIDCollision(t *testing.T) {
	dbPath := setupTestCLI(t)

	_, _, err := runLift(t, "add", "move", "squat", "0", "1", "--id", "1")
	require.NoError(t, err)

	_, _, err = runLift(t, "add", "move", "bench", "1", "1", "--id", "1")
	assert.ErrorIs(t, err, storage.ErrDuplicateID)
	assert.Len(t, listStored(t, dbPath), 1)
}

func TestDeleteMissingMove(t *testing.T) {
	setupTestCLI(t)

	out, _, err := runLift(t, "delete", "move", "ghost")
	require.NoError(t, err)
	assert.Equal(t, "No movement named ghost\n", out)
}

func TestMovementsEmpty(t *testing.T) {
	setupTestCLI(t)

	out, _, err := runLift(t, "ls")
	require.NoError(t, err)
	assert.Equal(t, "No movements found.\n", out)
}

func TestArgumentErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
		wantMsg string
	}{
		{"add without noun", []string{"add"}, errMissingArgument, "<noun>"},
		{"add move without name", []string{"add", "move"}, errMissingArgument, "<name>"},
		{"add move without is_upper", []string{"add", "move", "squat"}, errMissingArgument, "<is_upper>"},
		{"add move without require_weight", []string{"add", "move", "squat", "1"}, errMissingArgument, "<require_weight>"},
		{"del without noun", []string{"del"}, errMissingArgument, "<noun>"},
		{"del move without name", []string{"del", "move"}, errMissingArgument, "<name>"},
		{"add move extra", []string{"add", "move", "squat", "1", "1", "x"}, errTooManyArguments, "want 3, got 4"},
		{"movements extra", []string{"movements", "x"}, errTooManyArguments, "want 0, got 1"},
		{"add unknown noun", []string{"add", "set"}, errUnknownNoun, `"set"`},
		{"del unknown noun", []string{"del", "workout", "x"}, errUnknownNoun, `"workout"`},
		{"undo", []string{"undo"}, errUndoUnsupported, "undo is not implemented"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dbPath := setupTestCLI(t)

			_, _, err := runLift(t, tt.args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.NoFileExists(t, dbPath, "validation failures must not touch storage")
		})
	}
}

func TestUnknownCommand(t *testing.T) {
	setupTestCLI(t)

	_, _, err := runLift(t, "frobnicate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown command "frobnicate" for "lift"`)
}

func TestVerboseDiagnostics(t *testing.T) {
	setupTestCLI(t)

	_, stderr, err := runLift(t, "movements")
	require.NoError(t, err)
	assert.Empty(t, stderr)

	_, stderr, err = runLift(t, "movements", "-v")
	require.NoError(t, err)
	assert.Contains(t, stderr, "msg=dispatch")
	assert.Contains(t, stderr, "msg=show_all_movements")

	_, stderr, err = runLift(t, "add", "move", "squat", "1", "1", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, stderr, "msg=add_movement")
}

func TestDBFlag(t *testing.T) {
	setupTestCLI(t)
	dbPath := filepath.Join(t.TempDir(), "gym.db")

	_, _, err := runLift(t, "--db", dbPath, "add", "move", "squat", "0", "1")
	require.NoError(t, err)

	stored := listStored(t, dbPath)
	require.Len(t, stored, 1)
}

func TestInvalidBackendFlag(t *testing.T) {
	setupTestCLI(t)

	_, _, err := runLift(t, "movements", "--backend", "postgres")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestBadgerBackendViaEnv(t *testing.T) {
	setupTestCLI(t)
	t.Setenv("LIFT_BACKEND", "badger")
	t.Setenv("LIFT_DATA_DIR", t.TempDir())

	_, _, err := runLift(t, "add", "move", "squat", "0", "1")
	require.NoError(t, err)

	out, _, err := runLift(t, "movements")
	require.NoError(t, err)
	assert.Contains(t, out, `name: "squat"`)
}

func TestExportImportRoundTrip(t *testing.T) {
	setupTestCLI(t)
	backup := filepath.Join(t.TempDir(), "backup.json")

	for _, args := range [][]string{
		{"add", "move", "squat", "0", "1"},
		{"add", "move", "pullup", "1", "0"},
	} {
		_, _, err := runLift(t, args...)
		require.NoError(t, err)
	}

	out, _, err := runLift(t, "export", "json", "-o", backup)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Exported to "+backup)
	assert.FileExists(t, backup)

	freshDB := filepath.Join(t.TempDir(), "fresh.db")
	out, _, err = runLift(t, "--db", freshDB, "import", backup)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Imported 2 movements")

	stored := listStored(t, freshDB)
	require.Len(t, stored, 2)

	_, _, err = runLift(t, "--db", freshDB, "import", backup)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "import failed after 0 movements")
}

func TestExportFormats(t *testing.T) {
	setupTestCLI(t)

	_, _, err := runLift(t, "add", "move", "squat", "0", "1")
	require.NoError(t, err)

	out, _, err := runLift(t, "export", "markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "# Movement Library")
	assert.Contains(t, out, "squat")

	out, _, err = runLift(t, "export", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "name: squat")

	_, _, err = runLift(t, "export", "csv")
	assert.ErrorContains(t, err, "unknown format: csv")
}

func TestImportMissingFile(t *testing.T) {
	setupTestCLI(t)

	_, _, err := runLift(t, "import", filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorContains(t, err, "failed to read file")
}

func TestMigrateToBadger(t *testing.T) {
	setupTestCLI(t)
	dest := t.TempDir()

	_, _, err := runLift(t, "add", "move", "squat", "0", "1")
	require.NoError(t, err)

	out, _, err := runLift(t, "migrate", "--to", "badger", "--to-dir", dest)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Migrated 1 movements")

	out, _, err = runLift(t, "--backend", "badger", "--data-dir", dest, "movements")
	require.NoError(t, err)
	assert.Contains(t, out, `name: "squat"`)

	_, _, err = runLift(t, "migrate", "--to", "badger", "--to-dir", dest)
	assert.ErrorContains(t, err, "already has data")
}

func TestMigrateSwitchSavesConfig(t *testing.T) {
	setupTestCLI(t)
	dest := t.TempDir()

	_, _, err := runLift(t, "add", "move", "squat", "0", "1")
	require.NoError(t, err)

	_, _, err = runLift(t, "migrate", "--to", "badger", "--to-dir", dest, "--switch")
	require.NoError(t, err)

	// No backend flags: the saved config now points at badger.
	out, _, err := runLift(t, "movements")
	require.NoError(t, err)
	assert.Contains(t, out, `name: "squat"`)
}

func TestMigrateRejectsSameLocation(t *testing.T) {
	setupTestCLI(t)
	dataDir := t.TempDir()

	_, _, err := runLift(t, "--data-dir", dataDir, "migrate", "--to", "sqlite", "--to-dir", dataDir)
	assert.ErrorContains(t, err, "source and destination are the same")
}

func TestMigrateRequiresDir(t *testing.T) {
	setupTestCLI(t)

	_, _, err := runLift(t, "migrate", "--to", "badger")
	assert.ErrorIs(t, err, errMissingArgument)
}
