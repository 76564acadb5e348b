package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/okian/gigmatch/internal/adapters/repository"
	"github.com/okian/gigmatch/internal/domain/model"
)

// ProjectsHandler handles listing pool requests.
type ProjectsHandler struct {
	deps Dependencies
}

// NewProjectsHandler creates a new projects handler.
func NewProjectsHandler(deps Dependencies) *ProjectsHandler {
	return &ProjectsHandler{deps: deps}
}

// HandleListProjects handles GET /projects?text=&min_budget=&max_budget= requests.
func (h *ProjectsHandler) HandleListProjects(w http.ResponseWriter, r *http.Request) {
	const op = "api.list_projects"
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		return
	}
	q := r.URL.Query()
	f := repository.Filter{Text: q.Get("text")}
	var err error
	if f.MinBudget, err = parseBound(q.Get("min_budget")); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", wrapKind(op, ErrBadRequest, err))
		return
	}
	if f.MaxBudget, err = parseBound(q.Get("max_budget")); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", wrapKind(op, ErrBadRequest, err))
		return
	}

	listings, err := h.deps.ListProjects(r.Context(), f)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if listings == nil {
		listings = []model.ProjectListing{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"projects": listings, "count": len(listings)})
}

func parseBound(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("budget bound %q: %w", s, err)
	}
	return &v, nil
}
