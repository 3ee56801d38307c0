package bootstrap

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/briefly/internal/artifact"
	"github.com/at-ishikawa/briefly/internal/clock"
	"github.com/at-ishikawa/briefly/internal/config"
	"github.com/at-ishikawa/briefly/internal/kvstore"
)

func TestOpenMedium(t *testing.T) {
	tests := []struct {
		name    string
		storage func(dir string) config.StorageConfig
		want    any
		wantErr bool
	}{
		{
			name:    "memory",
			storage: func(string) config.StorageConfig { return config.StorageConfig{Driver: config.StorageDriverMemory} },
			want:    &kvstore.MemoryMedium{},
		},
		{
			name: "file",
			storage: func(dir string) config.StorageConfig {
				return config.StorageConfig{Driver: config.StorageDriverFile, FilePath: filepath.Join(dir, "store.yml")}
			},
			want: &kvstore.YAMLFileMedium{},
		},
		{
			name: "sqlite",
			storage: func(dir string) config.StorageConfig {
				return config.StorageConfig{Driver: config.StorageDriverSQLite, SQLitePath: filepath.Join(dir, "db", "briefly.db")}
			},
			want: &kvstore.SQLMedium{},
		},
		{
			name:    "unknown",
			storage: func(string) config.StorageConfig { return config.StorageConfig{Driver: "floppy"} },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := New()
			t.Cleanup(func() { _ = app.Shutdown(context.Background()) })

			got, err := OpenMedium(context.Background(), app, tt.storage(t.TempDir()), config.DatabaseConfig{})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, got)
		})
	}
}

func TestNewServices_PersistAcrossInstances(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	cfg := &config.Config{
		Storage: config.StorageConfig{
			Driver:      config.StorageDriverSQLite,
			SQLitePath:  filepath.Join(dir, "briefly.db"),
			SessionFile: filepath.Join(dir, "session.yml"),
		},
		Generation: config.GenerationConfig{BaseURL: "http://localhost:0"},
		Outputs:    config.OutputsConfig{StudySheetDirectory: filepath.Join(dir, "sheets")},
	}
	clk := clock.NewFake(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC))

	first := New()
	services, err := NewServices(ctx, first, cfg, clk, &bytes.Buffer{})
	require.NoError(t, err)
	created, err := services.Flashcards.Create(ctx, artifact.FlashcardSet{
		Topic:      "Persistence",
		Flashcards: []artifact.Flashcard{{Question: "Survives restart?", Answer: "Yes"}},
	})
	require.NoError(t, err)
	require.NoError(t, services.Handoff.Stage(ctx, "Draft", []artifact.Flashcard{{Question: "q", Answer: "a"}}))
	require.NoError(t, first.Shutdown(ctx))

	second := New()
	t.Cleanup(func() { _ = second.Shutdown(ctx) })
	reopened, err := NewServices(ctx, second, cfg, clk, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, []artifact.FlashcardSet{created}, reopened.Flashcards.List(ctx))
	preview, ok := reopened.Handoff.Resolve(ctx, nil)
	require.True(t, ok)
	assert.Equal(t, "Draft", preview.Topic)
}
