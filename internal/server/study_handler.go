// Package server provides the Connect RPC handlers of the study service.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"connectrpc.com/connect"
	"github.com/rs/cors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/at-ishikawa/briefly/internal/artifact"
	"github.com/at-ishikawa/briefly/internal/dashboard"
	"github.com/at-ishikawa/briefly/internal/kvstore"
	"github.com/at-ishikawa/briefly/internal/server/studyv1"
	"github.com/at-ishikawa/briefly/internal/streak"
)

// StudyHandler implements the StudyServiceHandler interface.
type StudyHandler struct {
	studyv1.UnimplementedStudyServiceHandler

	flashcards *artifact.FlashcardSetRepository
	quizzes    *artifact.QuizSetRepository
	tracker    *streak.Tracker
	dashboard  *dashboard.Service

	// mu makes the load and save of each mutation atomic within the process.
	mu sync.Mutex
}

// NewStudyHandler creates a new StudyHandler.
func NewStudyHandler(
	flashcards *artifact.FlashcardSetRepository,
	quizzes *artifact.QuizSetRepository,
	tracker *streak.Tracker,
	dashboardService *dashboard.Service,
) *StudyHandler {
	return &StudyHandler{
		flashcards: flashcards,
		quizzes:    quizzes,
		tracker:    tracker,
		dashboard:  dashboardService,
	}
}

func (h *StudyHandler) ListFlashcardSets(
	ctx context.Context,
	_ *connect.Request[studyv1.ListFlashcardSetsRequest],
) (*connect.Response[studyv1.ListFlashcardSetsResponse], error) {
	return connect.NewResponse(&studyv1.ListFlashcardSetsResponse{
		FlashcardSets: h.flashcards.List(ctx),
	}), nil
}

func (h *StudyHandler) GetFlashcardSet(
	ctx context.Context,
	req *connect.Request[studyv1.GetFlashcardSetRequest],
) (*connect.Response[studyv1.GetFlashcardSetResponse], error) {
	set, ok := h.flashcards.FindByID(ctx, req.Msg.ID)
	if !ok {
		return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("flashcard set %q: %w", req.Msg.ID, artifact.ErrNotFound))
	}
	return connect.NewResponse(&studyv1.GetFlashcardSetResponse{FlashcardSet: set}), nil
}

func (h *StudyHandler) CreateFlashcardSet(
	ctx context.Context,
	req *connect.Request[studyv1.CreateFlashcardSetRequest],
) (*connect.Response[studyv1.CreateFlashcardSetResponse], error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	created, err := h.flashcards.Create(ctx, artifact.FlashcardSet{
		Topic:      req.Msg.Topic,
		Flashcards: req.Msg.Flashcards,
	})
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&studyv1.CreateFlashcardSetResponse{FlashcardSet: created}), nil
}

func (h *StudyHandler) DeleteFlashcardSet(
	ctx context.Context,
	req *connect.Request[studyv1.DeleteFlashcardSetRequest],
) (*connect.Response[studyv1.DeleteFlashcardSetResponse], error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.flashcards.Delete(ctx, req.Msg.ID); err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&studyv1.DeleteFlashcardSetResponse{}), nil
}

func (h *StudyHandler) ListQuizSets(
	ctx context.Context,
	_ *connect.Request[studyv1.ListQuizSetsRequest],
) (*connect.Response[studyv1.ListQuizSetsResponse], error) {
	return connect.NewResponse(&studyv1.ListQuizSetsResponse{
		QuizSets: h.quizzes.List(ctx),
	}), nil
}

func (h *StudyHandler) GetQuizSet(
	ctx context.Context,
	req *connect.Request[studyv1.GetQuizSetRequest],
) (*connect.Response[studyv1.GetQuizSetResponse], error) {
	set, ok := h.quizzes.FindByID(ctx, req.Msg.ID)
	if !ok {
		return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("quiz set %q: %w", req.Msg.ID, artifact.ErrNotFound))
	}
	return connect.NewResponse(&studyv1.GetQuizSetResponse{QuizSet: set}), nil
}

func (h *StudyHandler) CreateQuizSet(
	ctx context.Context,
	req *connect.Request[studyv1.CreateQuizSetRequest],
) (*connect.Response[studyv1.CreateQuizSetResponse], error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	created, err := h.quizzes.Create(ctx, artifact.QuizSet{
		Topic:             req.Msg.Topic,
		Quiz:              req.Msg.Quiz,
		NumberOfQuestions: req.Msg.NumberOfQuestions,
		Difficulty:        req.Msg.Difficulty,
	})
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&studyv1.CreateQuizSetResponse{QuizSet: created}), nil
}

func (h *StudyHandler) DeleteQuizSet(
	ctx context.Context,
	req *connect.Request[studyv1.DeleteQuizSetRequest],
) (*connect.Response[studyv1.DeleteQuizSetResponse], error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.quizzes.Delete(ctx, req.Msg.ID); err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&studyv1.DeleteQuizSetResponse{}), nil
}

func (h *StudyHandler) RecordActivity(
	ctx context.Context,
	_ *connect.Request[studyv1.RecordActivityRequest],
) (*connect.Response[studyv1.RecordActivityResponse], error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	current, err := h.tracker.RecordActivityNow(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&studyv1.RecordActivityResponse{Streak: current}), nil
}

func (h *StudyHandler) GetStreak(
	ctx context.Context,
	_ *connect.Request[studyv1.GetStreakRequest],
) (*connect.Response[studyv1.GetStreakResponse], error) {
	return connect.NewResponse(&studyv1.GetStreakResponse{
		Current: h.tracker.GetStreak(ctx),
	}), nil
}

func (h *StudyHandler) GetDashboard(
	ctx context.Context,
	_ *connect.Request[studyv1.GetDashboardRequest],
) (*connect.Response[studyv1.GetDashboardResponse], error) {
	return connect.NewResponse(&studyv1.GetDashboardResponse{
		Dashboard: h.dashboard.Get(ctx),
	}), nil
}

func toConnectError(err error) *connect.Error {
	switch {
	case errors.Is(err, artifact.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, artifact.ErrInvalidArtifact):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, kvstore.ErrStorageUnavailable):
		return connect.NewError(connect.CodeUnavailable, err)
	}
	slog.Default().Error("study service call failed",
		slog.Any("error", err),
	)
	return connect.NewError(connect.CodeInternal, err)
}

// NewHTTPHandler mounts the study service with h2c and CORS for allowedOrigins.
func NewHTTPHandler(handler studyv1.StudyServiceHandler, allowedOrigins []string) http.Handler {
	path, h := studyv1.NewStudyServiceHandler(handler)

	mux := http.NewServeMux()
	mux.Handle(path, h)

	return cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Connect-Protocol-Version", "Connect-Timeout-Ms"},
		MaxAge:         3600,
	}).Handler(h2c.NewHandler(mux, &http2.Server{}))
}
