package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	service "github.com/okian/gigmatch/internal/app"
	"github.com/okian/gigmatch/internal/domain/model"
)

var validate = validator.New()

// searchRequest mirrors the OpenAPI schema for POST /search.
type searchRequest struct {
	Profile *model.FreelancerProfile `json:"profile,omitempty"`
	Query   searchQuery              `json:"query"`
}

type searchQuery struct {
	Text      string   `json:"text" validate:"max=256"`
	MinBudget *float64 `json:"min_budget" validate:"omitempty,gte=0"`
	MaxBudget *float64 `json:"max_budget" validate:"omitempty,gte=0"`
	MinScore  *int     `json:"min_score"`
}

type searchResponse struct {
	RequestID string                `json:"request_id"`
	Results   []model.ScoredListing `json:"results"`
	Count     int                   `json:"count"`
	Matched   int                   `json:"matched"`
	Truncated bool                  `json:"truncated"`
}

// SearchHandler handles search requests.
type SearchHandler struct {
	deps Dependencies
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(deps Dependencies) *SearchHandler {
	return &SearchHandler{deps: deps}
}

// HandleSearch handles POST /search requests. Results are written in the
// order the service returns them.
func (h *SearchHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	const op = "api.search"
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		return
	}

	var req searchRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", wrapKind(op, ErrBadRequest, err))
		return
	}
	if err := validate.Struct(req.Query); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", wrapKind(op, ErrBadRequest, err))
		return
	}

	res, err := h.deps.Search(r.Context(), service.SearchRequest{
		Profile:   req.Profile,
		Text:      req.Query.Text,
		MinBudget: req.Query.MinBudget,
		MaxBudget: req.Query.MaxBudget,
		MinScore:  req.Query.MinScore,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	results := res.Results
	if results == nil {
		results = []model.ScoredListing{}
	}
	writeJSON(w, http.StatusOK, searchResponse{
		RequestID: res.RequestID,
		Results:   results,
		Count:     len(results),
		Matched:   res.Matched,
		Truncated: res.Truncated,
	})
}
