package api

import (
	"net/http"
	"strconv"

	"github.com/okian/gigmatch/internal/domain/model"
)

type recommendationResponse struct {
	Score   int        `json:"score"`
	Tier    model.Tier `json:"tier"`
	Message string     `json:"message"`
}

// RecommendationHandler exposes the tier table.
type RecommendationHandler struct {
	deps Dependencies
}

// NewRecommendationHandler creates a new recommendation handler.
func NewRecommendationHandler(deps Dependencies) *RecommendationHandler {
	return &RecommendationHandler{deps: deps}
}

// HandleRecommend handles GET /recommendations?score=N requests.
func (h *RecommendationHandler) HandleRecommend(w http.ResponseWriter, r *http.Request) {
	const op = "api.recommend"
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		return
	}
	score, err := strconv.Atoi(r.URL.Query().Get("score"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", newKind(op, ErrBadRequest))
		return
	}
	rec, err := h.deps.Recommend(score)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_score", err)
		return
	}
	writeJSON(w, http.StatusOK, recommendationResponse{Score: score, Tier: rec.Tier, Message: rec.Message})
}
