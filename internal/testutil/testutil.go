// Package testutil provides shared test helpers for creating config files and store fixtures.
package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/briefly/internal/kvstore"
)

// StorePath returns the path of the file store written by SetupTestConfig.
func StorePath(tmpDir string) string {
	return filepath.Join(tmpDir, "data", "briefly.yml")
}

// SQLitePath returns the path of the SQLite store written by SetupTestConfig.
func SQLitePath(tmpDir string) string {
	return filepath.Join(tmpDir, "data", "briefly.db")
}

// SessionPath returns the path of the session file written by SetupTestConfig.
func SessionPath(tmpDir string) string {
	return filepath.Join(tmpDir, "data", "session.yml")
}

// OutputDirectory returns the study sheet directory written by SetupTestConfig.
func OutputDirectory(tmpDir string) string {
	return filepath.Join(tmpDir, "study_sheets")
}

// SetupTestConfig creates a config file using the file storage driver and all required directories for testing.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	for _, d := range []string{"data", "study_sheets"} {
		require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, d), 0755))
	}

	configContent := fmt.Sprintf(`storage:
  driver: file
  file_path: %s
  sqlite_path: %s
  session_file: %s
workflow:
  saving_delay: 0s
  success_window: 0s
outputs:
  study_sheet_directory: %s
`,
		StorePath(tmpDir),
		SQLitePath(tmpDir),
		SessionPath(tmpDir),
		OutputDirectory(tmpDir),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// SetupTestConfigWithGeneration creates a config file pointing the generation client at baseURL,
// for tests that serve the generation backend from httptest.
func SetupTestConfigWithGeneration(t *testing.T, tmpDir, baseURL string) string {
	t.Helper()
	cfgPath := SetupTestConfig(t, tmpDir)

	content, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	content = append(content, fmt.Appendf(nil, "generation:\n  base_url: %s\n  api_key: fake-key-for-testing\n  timeout: 5s\n  max_retries: 0\n", baseURL)...)
	require.NoError(t, os.WriteFile(cfgPath, content, 0644))
	return cfgPath
}

// SeedStore writes value as the JSON text of key into the file store at path.
func SeedStore(t *testing.T, path string, key kvstore.Key, value any) {
	t.Helper()

	encoded, err := json.Marshal(value)
	require.NoError(t, err)
	require.NoError(t, kvstore.NewYAMLFileMedium(path).Set(context.Background(), key, string(encoded)))
}

// ReadStore returns the raw text of key in the file store at path.
func ReadStore(t *testing.T, path string, key kvstore.Key) (string, bool) {
	t.Helper()

	value, found, err := kvstore.NewYAMLFileMedium(path).Get(context.Background(), key)
	require.NoError(t, err)
	return value, found
}
