// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/RAloysia/course-recommendation-app/internal/adapters/repository"
	"github.com/RAloysia/course-recommendation-app/internal/domain/model"
	"github.com/RAloysia/course-recommendation-app/internal/domain/ranking"
	"github.com/RAloysia/course-recommendation-app/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Recommend runs one ranked query against the catalog.
	Recommend(ctx context.Context, q model.Query) ([]types.Recommendation, error)

	// Course returns one catalog entry by ID.
	Course(ctx context.Context, id int) (types.CourseView, error)

	// SubmitFeedback hands a feedback message to the sink.
	// Returns false on backpressure or duplicate.
	SubmitFeedback(ctx context.Context, message string) bool

	// MaxResults exposes the configured per-query result cap.
	MaxResults() int
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	recommendHandler *RecommendHandler
	courseHandler    *CourseHandler
	feedbackHandler  *FeedbackHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		recommendHandler: NewRecommendHandler(deps, deps.MaxResults()),
		courseHandler:    NewCourseHandler(deps),
		feedbackHandler:  NewFeedbackHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/recommend", MetricsMiddleware(s.recommendHandler.HandleRecommend, "recommend"))
	mux.HandleFunc("/courses/", MetricsMiddleware(s.courseHandler.HandleGetCourse, "courses"))
	mux.HandleFunc("/feedback", MetricsMiddleware(s.feedbackHandler.HandlePostFeedback, "feedback"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeDomainError maps domain sentinel errors to HTTP responses.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ranking.ErrInvalidQuery):
		writeError(w, http.StatusBadRequest, "invalid_query", err)
	case errors.Is(err, ranking.ErrInvalidFilter):
		writeError(w, http.StatusBadRequest, "invalid_filter", err)
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
