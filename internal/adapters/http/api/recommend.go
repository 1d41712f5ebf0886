// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/RAloysia/course-recommendation-app/internal/domain/model"
	"github.com/RAloysia/course-recommendation-app/internal/domain/ranking"
	"github.com/RAloysia/course-recommendation-app/internal/domain/types"
	"github.com/RAloysia/course-recommendation-app/pkg/metrics"
)

// RecommendDependencies defines the interface for recommendation queries.
type RecommendDependencies interface {
	Recommend(ctx context.Context, q model.Query) ([]types.Recommendation, error)
}

// RecommendHandler handles recommendation requests.
type RecommendHandler struct {
	deps     RecommendDependencies
	maxLimit int
}

// NewRecommendHandler creates a new recommendation handler.
func NewRecommendHandler(deps RecommendDependencies, maxLimit int) *RecommendHandler {
	return &RecommendHandler{
		deps:     deps,
		maxLimit: maxLimit,
	}
}

// HandleRecommend handles GET /recommend?q=...&difficulty=...&min_rating=...&limit=N.
// No match is a valid outcome: the handler returns 200 with an empty array,
// never an error.
func (h *RecommendHandler) HandleRecommend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	q, err := h.parseQuery(r)
	if err != nil {
		metrics.RecordInvalidFilter()
		writeError(w, http.StatusBadRequest, "invalid_filter", err)
		return
	}

	recs, err := h.deps.Recommend(r.Context(), q)
	if err != nil {
		switch {
		case isInvalidQuery(err):
			metrics.RecordInvalidQuery()
		case isInvalidFilter(err):
			metrics.RecordInvalidFilter()
		}
		writeDomainError(w, err)
		return
	}

	if recs == nil {
		recs = []types.Recommendation{}
	}
	writeJSON(w, http.StatusOK, recs)
}

// parseQuery builds a model.Query from request parameters. Filter values
// that do not even parse are rejected here; semantic validation stays in
// the ranker.
func (h *RecommendHandler) parseQuery(r *http.Request) (model.Query, error) {
	params := r.URL.Query()
	q := model.Query{Text: params.Get("q")}

	if raw := params.Get("difficulty"); raw != "" {
		difficulty, ok := model.ParseDifficulty(raw)
		if !ok {
			return model.Query{}, fmt.Errorf("%w: unknown difficulty %q", ranking.ErrInvalidFilter, raw)
		}
		q.Difficulty = &difficulty
	}

	if raw := params.Get("min_rating"); raw != "" {
		minRating, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return model.Query{}, fmt.Errorf("%w: min_rating must be numeric", ranking.ErrInvalidFilter)
		}
		q.MinRating = &minRating
	}

	if raw := params.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return model.Query{}, fmt.Errorf("%w: limit must be a positive integer", ranking.ErrInvalidFilter)
		}
		if limit > h.maxLimit {
			return model.Query{}, fmt.Errorf("%w: limit %d exceeds maximum %d", ranking.ErrInvalidFilter, limit, h.maxLimit)
		}
		q.TopK = limit
	}

	return q, nil
}
