package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mizzou-cs-core/assignment-window/internal/core/domain"
)

func storeAssignment(t *testing.T, env *testEnv, name string, id int64, due *time.Time) {
	t.Helper()
	a := domain.NewStoredAssignment("cs1050-sp25", domain.RemoteAssignment{ID: id, Name: name, DueAt: due},
		domain.KindC, 1)
	require.NoError(t, env.store.Save(t.Context(), a))
}

func TestListCmd_Use(t *testing.T) {
	assert.Equal(t, "list", listCmd.Use)
}

func TestListCmd_Empty(t *testing.T) {
	setupCLI(t, validConfig())

	out, err := runCLI(t, "list")

	require.NoError(t, err)
	assert.Contains(t, out, "No assignments stored for cs1050-sp25.")
}

func TestListCmd_ShowsTable(t *testing.T) {
	env := setupCLI(t, validConfig())
	due := time.Date(2025, 2, 8, 5, 59, 59, 0, time.UTC)
	storeAssignment(t, env, "Lab 1 (Makeup)", 11, &due)
	storeAssignment(t, env, "Lab 2", 12, nil)

	out, err := runCLI(t, "list")

	require.NoError(t, err)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "lab1makeup")
	assert.Contains(t, out, "lab2")
	assert.Contains(t, out, "11")
	assert.NotContains(t, out, "Last sync")
	assert.Equal(t, 1, env.closed)
}

func TestListCmd_ShowsLastRun(t *testing.T) {
	env := setupCLI(t, validConfig())
	storeAssignment(t, env, "Lab 1", 11, nil)
	require.NoError(t, env.runs.RecordRun(t.Context(), domain.SyncRun{
		ID: "run-1", InstanceCode: "cs1050-sp25", FinishedAt: time.Now(), Stored: 4, Failed: 1,
	}))

	out, err := runCLI(t, "list")

	require.NoError(t, err)
	assert.Contains(t, out, "4 stored, 1 failed")
}

func TestListCmd_RequiresStoreKeys(t *testing.T) {
	cfg := validConfig()
	cfg.Paths.SQLitePath = ""
	setupCLI(t, cfg)

	_, err := runCLI(t, "list")

	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "paths.sqlite3_path")
}

func TestListCmd_MissingConfig(t *testing.T) {
	setupCLI(t, nil)

	_, err := runCLI(t, "list")

	assert.ErrorIs(t, err, domain.ErrSetupRequired)
}

func TestDisplayTime(t *testing.T) {
	assert.Equal(t, "-", displayTime(nil))
}
