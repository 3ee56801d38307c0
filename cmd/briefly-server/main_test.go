package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/briefly/internal/artifact"
	"github.com/at-ishikawa/briefly/internal/bootstrap"
	"github.com/at-ishikawa/briefly/internal/kvstore"
	"github.com/at-ishikawa/briefly/internal/server/studyv1"
	"github.com/at-ishikawa/briefly/internal/testutil"
)

func TestNewServer(t *testing.T) {
	tmpDir := t.TempDir()
	oldConfigFile := configFile
	configFile = testutil.SetupTestConfig(t, tmpDir)
	t.Cleanup(func() { configFile = oldConfigFile })

	cfg, err := loadConfig()
	require.NoError(t, err)
	cfg.Server.Port = 18080

	app := bootstrap.New()
	srv, err := newServer(context.Background(), app, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, app.Shutdown(context.Background())) })
	assert.Equal(t, ":18080", srv.Addr)

	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)
	client := studyv1.NewStudyServiceClient(http.DefaultClient, ts.URL)

	created, err := client.CreateFlashcardSet(context.Background(), connect.NewRequest(&studyv1.CreateFlashcardSetRequest{
		Topic:      "Chemistry",
		Flashcards: []artifact.Flashcard{{Question: "H2O?", Answer: "Water"}},
	}))
	require.NoError(t, err)
	assert.NotEmpty(t, created.Msg.FlashcardSet.ID)

	dashboard, err := client.GetDashboard(context.Background(), connect.NewRequest(&studyv1.GetDashboardRequest{}))
	require.NoError(t, err)
	assert.Equal(t, 1, dashboard.Msg.Dashboard.Totals.TotalFlashcards)

	// The set reached the configured file store.
	_, found := testutil.ReadStore(t, testutil.StorePath(tmpDir), kvstore.KeyFlashcardSets)
	assert.True(t, found)
}
