package main

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		debugMode bool
		wantLevel slog.Level
	}{
		{
			name:      "debug mode enabled",
			debugMode: true,
			wantLevel: slog.LevelDebug,
		},
		{
			name:      "debug mode disabled",
			debugMode: false,
			wantLevel: slog.LevelInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupLogger(tt.debugMode)
			logger := slog.Default()
			assert.NotNil(t, logger)
			assert.Equal(t, tt.wantLevel <= slog.LevelDebug, logger.Enabled(nil, slog.LevelDebug))
		})
	}
}

func TestStorageDriverFlag(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{value: "memory"},
		{value: "file"},
		{value: "sqlite"},
		{value: "mysql"},
		{value: "postgres", wantErr: true},
		{value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			var flag StorageDriverFlag
			err := flag.Set(tt.value)
			if tt.wantErr {
				assert.ErrorContains(t, err, "invalid value")
				assert.Empty(t, flag.String())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.value, flag.String())
			assert.Equal(t, "StorageDriverFlag", flag.Type())
		})
	}
}

func TestNewRootCommand(t *testing.T) {
	cmd := newRootCommand()

	assert.Equal(t, "briefly", cmd.Use)
	for _, name := range []string{"config", "debug", "storage"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}

	want := map[string][]string{
		"flashcards": {"delete", "export", "list", "show", "study"},
		"quizzes":    {"delete", "export", "list", "show", "study"},
		"preview":    {"clear", "link", "show", "stage"},
		"save":       {"flashcards", "quiz"},
		"streak":     {"record", "reset", "show"},
		"dashboard":  nil,
		"generate":   {"flashcards", "quiz"},
		"migrate":    {"import"},
	}
	got := make(map[string][]string)
	for _, sub := range cmd.Commands() {
		var names []string
		for _, c := range sub.Commands() {
			names = append(names, c.Name())
		}
		got[sub.Name()] = names
	}
	for name, subs := range want {
		assert.Equal(t, subs, got[name], name)
	}
}
