package studyv1

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// StudyServiceName is the fully-qualified name of the StudyService service.
const StudyServiceName = "briefly.v1.StudyService"

// Procedure paths of the StudyService RPCs.
const (
	StudyServiceListFlashcardSetsProcedure  = "/briefly.v1.StudyService/ListFlashcardSets"
	StudyServiceGetFlashcardSetProcedure    = "/briefly.v1.StudyService/GetFlashcardSet"
	StudyServiceCreateFlashcardSetProcedure = "/briefly.v1.StudyService/CreateFlashcardSet"
	StudyServiceDeleteFlashcardSetProcedure = "/briefly.v1.StudyService/DeleteFlashcardSet"
	StudyServiceListQuizSetsProcedure       = "/briefly.v1.StudyService/ListQuizSets"
	StudyServiceGetQuizSetProcedure         = "/briefly.v1.StudyService/GetQuizSet"
	StudyServiceCreateQuizSetProcedure      = "/briefly.v1.StudyService/CreateQuizSet"
	StudyServiceDeleteQuizSetProcedure      = "/briefly.v1.StudyService/DeleteQuizSet"
	StudyServiceRecordActivityProcedure     = "/briefly.v1.StudyService/RecordActivity"
	StudyServiceGetStreakProcedure          = "/briefly.v1.StudyService/GetStreak"
	StudyServiceGetDashboardProcedure       = "/briefly.v1.StudyService/GetDashboard"
)

// StudyServiceHandler is implemented by the server.
type StudyServiceHandler interface {
	ListFlashcardSets(context.Context, *connect.Request[ListFlashcardSetsRequest]) (*connect.Response[ListFlashcardSetsResponse], error)
	GetFlashcardSet(context.Context, *connect.Request[GetFlashcardSetRequest]) (*connect.Response[GetFlashcardSetResponse], error)
	CreateFlashcardSet(context.Context, *connect.Request[CreateFlashcardSetRequest]) (*connect.Response[CreateFlashcardSetResponse], error)
	DeleteFlashcardSet(context.Context, *connect.Request[DeleteFlashcardSetRequest]) (*connect.Response[DeleteFlashcardSetResponse], error)
	ListQuizSets(context.Context, *connect.Request[ListQuizSetsRequest]) (*connect.Response[ListQuizSetsResponse], error)
	GetQuizSet(context.Context, *connect.Request[GetQuizSetRequest]) (*connect.Response[GetQuizSetResponse], error)
	CreateQuizSet(context.Context, *connect.Request[CreateQuizSetRequest]) (*connect.Response[CreateQuizSetResponse], error)
	DeleteQuizSet(context.Context, *connect.Request[DeleteQuizSetRequest]) (*connect.Response[DeleteQuizSetResponse], error)
	RecordActivity(context.Context, *connect.Request[RecordActivityRequest]) (*connect.Response[RecordActivityResponse], error)
	GetStreak(context.Context, *connect.Request[GetStreakRequest]) (*connect.Response[GetStreakResponse], error)
	GetDashboard(context.Context, *connect.Request[GetDashboardRequest]) (*connect.Response[GetDashboardResponse], error)
}

// StudyServiceClient calls a StudyService server.
type StudyServiceClient interface {
	ListFlashcardSets(context.Context, *connect.Request[ListFlashcardSetsRequest]) (*connect.Response[ListFlashcardSetsResponse], error)
	GetFlashcardSet(context.Context, *connect.Request[GetFlashcardSetRequest]) (*connect.Response[GetFlashcardSetResponse], error)
	CreateFlashcardSet(context.Context, *connect.Request[CreateFlashcardSetRequest]) (*connect.Response[CreateFlashcardSetResponse], error)
	DeleteFlashcardSet(context.Context, *connect.Request[DeleteFlashcardSetRequest]) (*connect.Response[DeleteFlashcardSetResponse], error)
	ListQuizSets(context.Context, *connect.Request[ListQuizSetsRequest]) (*connect.Response[ListQuizSetsResponse], error)
	GetQuizSet(context.Context, *connect.Request[GetQuizSetRequest]) (*connect.Response[GetQuizSetResponse], error)
	CreateQuizSet(context.Context, *connect.Request[CreateQuizSetRequest]) (*connect.Response[CreateQuizSetResponse], error)
	DeleteQuizSet(context.Context, *connect.Request[DeleteQuizSetRequest]) (*connect.Response[DeleteQuizSetResponse], error)
	RecordActivity(context.Context, *connect.Request[RecordActivityRequest]) (*connect.Response[RecordActivityResponse], error)
	GetStreak(context.Context, *connect.Request[GetStreakRequest]) (*connect.Response[GetStreakResponse], error)
	GetDashboard(context.Context, *connect.Request[GetDashboardRequest]) (*connect.Response[GetDashboardResponse], error)
}

// NewStudyServiceHandler builds an HTTP handler for svc and returns the path to mount it on.
// The JSON Codec is always registered.
func NewStudyServiceHandler(svc StudyServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)
	handlers := map[string]http.Handler{
		StudyServiceListFlashcardSetsProcedure:  connect.NewUnaryHandler(StudyServiceListFlashcardSetsProcedure, svc.ListFlashcardSets, opts...),
		StudyServiceGetFlashcardSetProcedure:    connect.NewUnaryHandler(StudyServiceGetFlashcardSetProcedure, svc.GetFlashcardSet, opts...),
		StudyServiceCreateFlashcardSetProcedure: connect.NewUnaryHandler(StudyServiceCreateFlashcardSetProcedure, svc.CreateFlashcardSet, opts...),
		StudyServiceDeleteFlashcardSetProcedure: connect.NewUnaryHandler(StudyServiceDeleteFlashcardSetProcedure, svc.DeleteFlashcardSet, opts...),
		StudyServiceListQuizSetsProcedure:       connect.NewUnaryHandler(StudyServiceListQuizSetsProcedure, svc.ListQuizSets, opts...),
		StudyServiceGetQuizSetProcedure:         connect.NewUnaryHandler(StudyServiceGetQuizSetProcedure, svc.GetQuizSet, opts...),
		StudyServiceCreateQuizSetProcedure:      connect.NewUnaryHandler(StudyServiceCreateQuizSetProcedure, svc.CreateQuizSet, opts...),
		StudyServiceDeleteQuizSetProcedure:      connect.NewUnaryHandler(StudyServiceDeleteQuizSetProcedure, svc.DeleteQuizSet, opts...),
		StudyServiceRecordActivityProcedure:     connect.NewUnaryHandler(StudyServiceRecordActivityProcedure, svc.RecordActivity, opts...),
		StudyServiceGetStreakProcedure:          connect.NewUnaryHandler(StudyServiceGetStreakProcedure, svc.GetStreak, opts...),
		StudyServiceGetDashboardProcedure:       connect.NewUnaryHandler(StudyServiceGetDashboardProcedure, svc.GetDashboard, opts...),
	}
	return "/" + StudyServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h, ok := handlers[r.URL.Path]; ok {
			h.ServeHTTP(w, r)
			return
		}
		http.NotFound(w, r)
	})
}

// NewStudyServiceClient creates a client for the server at baseURL using the JSON Codec.
func NewStudyServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) StudyServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)
	return &studyServiceClient{
		listFlashcardSets:  connect.NewClient[ListFlashcardSetsRequest, ListFlashcardSetsResponse](httpClient, baseURL+StudyServiceListFlashcardSetsProcedure, opts...),
		getFlashcardSet:    connect.NewClient[GetFlashcardSetRequest, GetFlashcardSetResponse](httpClient, baseURL+StudyServiceGetFlashcardSetProcedure, opts...),
		createFlashcardSet: connect.NewClient[CreateFlashcardSetRequest, CreateFlashcardSetResponse](httpClient, baseURL+StudyServiceCreateFlashcardSetProcedure, opts...),
		deleteFlashcardSet: connect.NewClient[DeleteFlashcardSetRequest, DeleteFlashcardSetResponse](httpClient, baseURL+StudyServiceDeleteFlashcardSetProcedure, opts...),
		listQuizSets:       connect.NewClient[ListQuizSetsRequest, ListQuizSetsResponse](httpClient, baseURL+StudyServiceListQuizSetsProcedure, opts...),
		getQuizSet:         connect.NewClient[GetQuizSetRequest, GetQuizSetResponse](httpClient, baseURL+StudyServiceGetQuizSetProcedure, opts...),
		createQuizSet:      connect.NewClient[CreateQuizSetRequest, CreateQuizSetResponse](httpClient, baseURL+StudyServiceCreateQuizSetProcedure, opts...),
		deleteQuizSet:      connect.NewClient[DeleteQuizSetRequest, DeleteQuizSetResponse](httpClient, baseURL+StudyServiceDeleteQuizSetProcedure, opts...),
		recordActivity:     connect.NewClient[RecordActivityRequest, RecordActivityResponse](httpClient, baseURL+StudyServiceRecordActivityProcedure, opts...),
		getStreak:          connect.NewClient[GetStreakRequest, GetStreakResponse](httpClient, baseURL+StudyServiceGetStreakProcedure, opts...),
		getDashboard:       connect.NewClient[GetDashboardRequest, GetDashboardResponse](httpClient, baseURL+StudyServiceGetDashboardProcedure, opts...),
	}
}

type studyServiceClient struct {
	listFlashcardSets  *connect.Client[ListFlashcardSetsRequest, ListFlashcardSetsResponse]
	getFlashcardSet    *connect.Client[GetFlashcardSetRequest, GetFlashcardSetResponse]
	createFlashcardSet *connect.Client[CreateFlashcardSetRequest, CreateFlashcardSetResponse]
	deleteFlashcardSet *connect.Client[DeleteFlashcardSetRequest, DeleteFlashcardSetResponse]
	listQuizSets       *connect.Client[ListQuizSetsRequest, ListQuizSetsResponse]
	getQuizSet         *connect.Client[GetQuizSetRequest, GetQuizSetResponse]
	createQuizSet      *connect.Client[CreateQuizSetRequest, CreateQuizSetResponse]
	deleteQuizSet      *connect.Client[DeleteQuizSetRequest, DeleteQuizSetResponse]
	recordActivity     *connect.Client[RecordActivityRequest, RecordActivityResponse]
	getStreak          *connect.Client[GetStreakRequest, GetStreakResponse]
	getDashboard       *connect.Client[GetDashboardRequest, GetDashboardResponse]
}

func (c *studyServiceClient) ListFlashcardSets(ctx context.Context, req *connect.Request[ListFlashcardSetsRequest]) (*connect.Response[ListFlashcardSetsResponse], error) {
	return c.listFlashcardSets.CallUnary(ctx, req)
}

func (c *studyServiceClient) GetFlashcardSet(ctx context.Context, req *connect.Request[GetFlashcardSetRequest]) (*connect.Response[GetFlashcardSetResponse], error) {
	return c.getFlashcardSet.CallUnary(ctx, req)
}

func (c *studyServiceClient) CreateFlashcardSet(ctx context.Context, req *connect.Request[CreateFlashcardSetRequest]) (*connect.Response[CreateFlashcardSetResponse], error) {
	return c.createFlashcardSet.CallUnary(ctx, req)
}

func (c *studyServiceClient) DeleteFlashcardSet(ctx context.Context, req *connect.Request[DeleteFlashcardSetRequest]) (*connect.Response[DeleteFlashcardSetResponse], error) {
	return c.deleteFlashcardSet.CallUnary(ctx, req)
}

func (c *studyServiceClient) ListQuizSets(ctx context.Context, req *connect.Request[ListQuizSetsRequest]) (*connect.Response[ListQuizSetsResponse], error) {
	return c.listQuizSets.CallUnary(ctx, req)
}

func (c *studyServiceClient) GetQuizSet(ctx context.Context, req *connect.Request[GetQuizSetRequest]) (*connect.Response[GetQuizSetResponse], error) {
	return c.getQuizSet.CallUnary(ctx, req)
}

func (c *studyServiceClient) CreateQuizSet(ctx context.Context, req *connect.Request[CreateQuizSetRequest]) (*connect.Response[CreateQuizSetResponse], error) {
	return c.createQuizSet.CallUnary(ctx, req)
}

func (c *studyServiceClient) DeleteQuizSet(ctx context.Context, req *connect.Request[DeleteQuizSetRequest]) (*connect.Response[DeleteQuizSetResponse], error) {
	return c.deleteQuizSet.CallUnary(ctx, req)
}

func (c *studyServiceClient) RecordActivity(ctx context.Context, req *connect.Request[RecordActivityRequest]) (*connect.Response[RecordActivityResponse], error) {
	return c.recordActivity.CallUnary(ctx, req)
}

func (c *studyServiceClient) GetStreak(ctx context.Context, req *connect.Request[GetStreakRequest]) (*connect.Response[GetStreakResponse], error) {
	return c.getStreak.CallUnary(ctx, req)
}

func (c *studyServiceClient) GetDashboard(ctx context.Context, req *connect.Request[GetDashboardRequest]) (*connect.Response[GetDashboardResponse], error) {
	return c.getDashboard.CallUnary(ctx, req)
}

// UnimplementedStudyServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedStudyServiceHandler struct{}

func (UnimplementedStudyServiceHandler) ListFlashcardSets(context.Context, *connect.Request[ListFlashcardSetsRequest]) (*connect.Response[ListFlashcardSetsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("briefly.v1.StudyService.ListFlashcardSets is not implemented"))
}

func (UnimplementedStudyServiceHandler) GetFlashcardSet(context.Context, *connect.Request[GetFlashcardSetRequest]) (*connect.Response[GetFlashcardSetResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("briefly.v1.StudyService.GetFlashcardSet is not implemented"))
}

func (UnimplementedStudyServiceHandler) CreateFlashcardSet(context.Context, *connect.Request[CreateFlashcardSetRequest]) (*connect.Response[CreateFlashcardSetResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("briefly.v1.StudyService.CreateFlashcardSet is not implemented"))
}

func (UnimplementedStudyServiceHandler) DeleteFlashcardSet(context.Context, *connect.Request[DeleteFlashcardSetRequest]) (*connect.Response[DeleteFlashcardSetResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("briefly.v1.StudyService.DeleteFlashcardSet is not implemented"))
}

func (UnimplementedStudyServiceHandler) ListQuizSets(context.Context, *connect.Request[ListQuizSetsRequest]) (*connect.Response[ListQuizSetsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("briefly.v1.StudyService.ListQuizSets is not implemented"))
}

func (UnimplementedStudyServiceHandler) GetQuizSet(context.Context, *connect.Request[GetQuizSetRequest]) (*connect.Response[GetQuizSetResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("briefly.v1.StudyService.GetQuizSet is not implemented"))
}

func (UnimplementedStudyServiceHandler) CreateQuizSet(context.Context, *connect.Request[CreateQuizSetRequest]) (*connect.Response[CreateQuizSetResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("briefly.v1.StudyService.CreateQuizSet is not implemented"))
}

func (UnimplementedStudyServiceHandler) DeleteQuizSet(context.Context, *connect.Request[DeleteQuizSetRequest]) (*connect.Response[DeleteQuizSetResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("briefly.v1.StudyService.DeleteQuizSet is not implemented"))
}

func (UnimplementedStudyServiceHandler) RecordActivity(context.Context, *connect.Request[RecordActivityRequest]) (*connect.Response[RecordActivityResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("briefly.v1.StudyService.RecordActivity is not implemented"))
}

func (UnimplementedStudyServiceHandler) GetStreak(context.Context, *connect.Request[GetStreakRequest]) (*connect.Response[GetStreakResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("briefly.v1.StudyService.GetStreak is not implemented"))
}

func (UnimplementedStudyServiceHandler) GetDashboard(context.Context, *connect.Request[GetDashboardRequest]) (*connect.Response[GetDashboardResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("briefly.v1.StudyService.GetDashboard is not implemented"))
}
