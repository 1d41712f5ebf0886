// Package ranking turns a fitted catalog and a query into an ordered
// top-K list of recommendations.
package ranking

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/RAloysia/course-recommendation-app/internal/domain/model"
	"github.com/RAloysia/course-recommendation-app/internal/domain/vectorize"
)

// Default ranking configuration constants.
const (
	defaultTopK = 5
)

// Recommendation pairs a course with its similarity score for one query.
type Recommendation struct {
	Course model.Course
	Score  float64
}

// Encoder abstracts the query-side text encoding. The catalog side is
// encoded once and handed to the ranker as a frozen matrix.
type Encoder interface {
	Transform(input string) (vectorize.Vector, error)
}

// Ranker scores the catalog against a query. Immutable after construction,
// safe for concurrent use.
type Ranker struct {
	courses  []model.Course
	matrix   []vectorize.Vector
	encoder  Encoder
	topK     int
	minScore float64
}

// New builds a Ranker over courses and their precomputed feature vectors.
// The two slices must be index-aligned.
func New(courses []model.Course, matrix []vectorize.Vector, encoder Encoder, opts ...Option) (*Ranker, error) {
	if len(courses) != len(matrix) {
		return nil, fmt.Errorf("%w: %d courses, %d vectors", ErrMatrixMismatch, len(courses), len(matrix))
	}
	if encoder == nil {
		return nil, ErrNilEncoder
	}

	r := &Ranker{
		courses: courses,
		matrix:  matrix,
		encoder: encoder,
		topK:    defaultTopK,
	}

	// Apply all options
	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// Recommend validates q, scores every catalog entry by cosine similarity,
// applies the difficulty and min-rating filters as hard predicates, and
// returns the top-K matches ordered by score descending with rating and
// catalog order as tie-breaks.
//
// An empty result is a valid outcome, not an error. The operation is a pure
// function of the catalog and the query.
func (r *Ranker) Recommend(ctx context.Context, q model.Query) ([]Recommendation, error) {
	if err := r.validate(q); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("recommend cancelled: %w", err)
	}

	queryVec, err := r.encoder.Transform(q.Text)
	if err != nil {
		return nil, fmt.Errorf("encode query: %w", err)
	}

	topK := q.TopK
	if topK == 0 {
		topK = r.topK
	}

	candidates := make([]Recommendation, 0, len(r.courses))
	for i, course := range r.courses {
		if q.Difficulty != nil && course.Difficulty != *q.Difficulty {
			continue
		}
		if q.MinRating != nil && course.Rating < *q.MinRating {
			continue
		}
		score := vectorize.Cosine(queryVec, r.matrix[i])
		if score < r.minScore {
			continue
		}
		candidates = append(candidates, Recommendation{Course: course, Score: score})
	}

	// Score desc, then rating desc; SliceStable preserves catalog order for
	// full ties, which keeps identical queries fully deterministic.
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].Course.Rating > candidates[j].Course.Rating
	})

	if len(candidates) > topK {
		candidates = candidates[:topK]
	}
	return candidates, nil
}

// validate checks query text and filters against the ranker contract.
func (r *Ranker) validate(q model.Query) error {
	if strings.TrimSpace(q.Text) == "" {
		return ErrInvalidQuery
	}
	if q.MinRating != nil && (*q.MinRating < model.MinRating || *q.MinRating > model.MaxRating) {
		return fmt.Errorf("%w: min_rating %.2f outside [%.0f, %.0f]",
			ErrInvalidFilter, *q.MinRating, model.MinRating, model.MaxRating)
	}
	if q.Difficulty != nil {
		if _, ok := model.ParseDifficulty(string(*q.Difficulty)); !ok {
			return fmt.Errorf("%w: unknown difficulty %q", ErrInvalidFilter, *q.Difficulty)
		}
	}
	// TopK zero means "use the configured default"; only negative values
	// are invalid.
	if q.TopK < 0 {
		return fmt.Errorf("%w: top_k must not be negative", ErrInvalidFilter)
	}
	return nil
}

// Size returns the number of catalog entries the ranker scores.
func (r *Ranker) Size() int {
	return len(r.courses)
}
