package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/briefly/internal/artifact"
	"github.com/at-ishikawa/briefly/internal/kvstore"
	"github.com/at-ishikawa/briefly/internal/testutil"
)

// execute runs the root command with args and returns what it printed.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })

	var out bytes.Buffer
	root := newRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

// writeJSONFile writes v into a file under dir and returns its path.
func writeJSONFile(t *testing.T, dir, name string, v any) string {
	t.Helper()
	content, err := json.Marshal(v)
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, content, 0644))
	return path
}

func storedFlashcardSets(t *testing.T, tmpDir string) []artifact.FlashcardSet {
	t.Helper()
	raw, found := testutil.ReadStore(t, testutil.StorePath(tmpDir), kvstore.KeyFlashcardSets)
	if !found {
		return nil
	}
	var sets []artifact.FlashcardSet
	require.NoError(t, json.Unmarshal([]byte(raw), &sets))
	return sets
}

func storedQuizSets(t *testing.T, tmpDir string) []artifact.QuizSet {
	t.Helper()
	raw, found := testutil.ReadStore(t, testutil.StorePath(tmpDir), kvstore.KeyQuizSets)
	if !found {
		return nil
	}
	var sets []artifact.QuizSet
	require.NoError(t, json.Unmarshal([]byte(raw), &sets))
	return sets
}
