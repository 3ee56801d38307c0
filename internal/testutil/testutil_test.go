package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/briefly/internal/config"
	"github.com/at-ishikawa/briefly/internal/kvstore"
)

func TestSetupTestConfig(t *testing.T) {
	tmpDir := t.TempDir()
	got := SetupTestConfig(t, tmpDir)

	want := filepath.Join(tmpDir, "config.yml")
	assert.Equal(t, want, got)

	// The config must pass the loader's validation.
	loader, err := config.NewConfigLoader(got)
	require.NoError(t, err)
	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, config.StorageDriverFile, cfg.Storage.Driver)
	assert.Equal(t, StorePath(tmpDir), cfg.Storage.FilePath)
	assert.Equal(t, SQLitePath(tmpDir), cfg.Storage.SQLitePath)
	assert.Equal(t, SessionPath(tmpDir), cfg.Storage.SessionFile)
	assert.Equal(t, OutputDirectory(tmpDir), cfg.Outputs.StudySheetDirectory)
	assert.Zero(t, cfg.Workflow.SuccessWindow)

	for _, d := range []string{"data", "study_sheets"} {
		info, err := os.Stat(filepath.Join(tmpDir, d))
		require.NoError(t, err, "directory %s should exist", d)
		assert.True(t, info.IsDir(), "%s should be a directory", d)
	}
}

func TestSetupTestConfigWithGeneration(t *testing.T) {
	tmpDir := t.TempDir()
	got := SetupTestConfigWithGeneration(t, tmpDir, "http://127.0.0.1:9999/api")

	loader, err := config.NewConfigLoader(got)
	require.NoError(t, err)
	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:9999/api", cfg.Generation.BaseURL)
	assert.Equal(t, "fake-key-for-testing", cfg.Generation.APIKey)
	assert.Zero(t, cfg.Generation.MaxRetries)
}

func TestSeedStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.yml")

	_, found := ReadStore(t, path, kvstore.KeyStudyStreak)
	assert.False(t, found)

	SeedStore(t, path, kvstore.KeyStudyStreak, map[string]any{"current": 2, "lastDate": "2025-01-02"})

	got, found := ReadStore(t, path, kvstore.KeyStudyStreak)
	require.True(t, found)
	assert.JSONEq(t, `{"current":2,"lastDate":"2025-01-02"}`, got)
}
