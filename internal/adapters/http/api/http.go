// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okian/gigmatch/internal/adapters/repository"
	service "github.com/okian/gigmatch/internal/app"
	"github.com/okian/gigmatch/internal/domain/model"
	"github.com/okian/gigmatch/internal/domain/recommend"
)

const maxBodyBytes = 1 << 20

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	Search(ctx context.Context, req service.SearchRequest) (service.SearchResult, error)
	ListProjects(ctx context.Context, f repository.Filter) ([]model.ProjectListing, error)
	Recommend(score int) (recommend.Recommendation, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	searchHandler    *SearchHandler
	projectsHandler  *ProjectsHandler
	recommendHandler *RecommendationHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		searchHandler:    NewSearchHandler(deps),
		projectsHandler:  NewProjectsHandler(deps),
		recommendHandler: NewRecommendationHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/search", MetricsMiddleware(s.searchHandler.HandleSearch, "search"))
	mux.HandleFunc("/projects", MetricsMiddleware(s.projectsHandler.HandleListProjects, "projects"))
	mux.HandleFunc("/recommendations", MetricsMiddleware(s.recommendHandler.HandleRecommend, "recommendations"))
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

// writeServiceError maps service failures onto status codes and stable codes.
func writeServiceError(w http.ResponseWriter, err error) {
	switch kind := service.ErrorKind(err); kind {
	case "invalid_profile", "invalid_threshold":
		writeError(w, http.StatusBadRequest, kind, err)
	case "invalid_filter":
		writeError(w, http.StatusBadRequest, "bad_request", err)
	case "no_profile":
		writeError(w, http.StatusUnprocessableEntity, kind, err)
	default:
		if errors.Is(err, context.Canceled) {
			// Client went away; nobody reads the response.
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
