package probe

import (
	"context"
	"crypto/rand"
	"math/big"
	"strconv"

	"github.com/google/uuid"

	"github.com/RAloysia/course-recommendation-app/pkg/logger"
)

// Constants for random number generation.
const (
	randomFloatDivisor = 1000000
	queryShapeDivisor  = 6
)

// Constants for query shape cases.
const (
	casePlainQuery      = 0
	caseDifficultyOnly  = 1
	caseMinRatingOnly   = 2
	caseBothFilters     = 3
	caseMultiTermQuery  = 4
	caseStrictMinRating = 5
)

// Minimum rating thresholds the generator picks from.
const (
	relaxedMinRating = 3.0
	strictMinRating  = 4.5
	ratingSpread     = 1.5
)

// queryTopics are text fragments combined into query strings. They lean on
// vocabulary common in course catalogs so most queries hit the corpus.
var queryTopics = []string{
	"python programming",
	"machine learning",
	"data science",
	"web development",
	"deep learning",
	"statistics",
	"cloud computing",
	"javascript",
	"sql databases",
	"project management",
	"business analytics",
	"natural language processing",
}

var difficulties = []string{"Beginner", "Intermediate", "Advanced"}

// getRandomFloat returns a random float64 between 0.0 and 1.0 using crypto/rand.
func getRandomFloat() float64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(randomFloatDivisor))
	return float64(n.Int64()) / float64(randomFloatDivisor)
}

// pickFrom returns a random element of the given slice.
func pickFrom(items []string) string {
	n, _ := rand.Int(rand.Reader, big.NewInt(int64(len(items))))
	return items[n.Int64()]
}

// generateQueries creates the specified number of queries with varied shapes.
func generateQueries(ctx context.Context, config *Config, stats *Stats) ([]Query, error) {
	logger.Get().Info(ctx, "generating queries", logger.Int("numQueries", config.NumQueries))

	queries := make([]Query, config.NumQueries)
	for i := range queries {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
			queries[i] = generateSingleQuery(config.TopK)
		}
	}

	stats.QueriesGenerated = len(queries)
	logger.Get().Info(ctx, "generated queries successfully", logger.Int("count", len(queries)))

	return queries, nil
}

// generateSingleQuery creates one query with a randomly chosen shape so the
// probe exercises plain text, single-filter, and combined-filter requests.
func generateSingleQuery(topK int) Query {
	q := Query{
		QueryID: uuid.New().String(),
		Text:    pickFrom(queryTopics),
		Limit:   topK,
	}

	shape, _ := rand.Int(rand.Reader, big.NewInt(queryShapeDivisor))
	switch shape.Int64() {
	case casePlainQuery:
		// Text only
	case caseDifficultyOnly:
		q.Difficulty = pickFrom(difficulties)
	case caseMinRatingOnly:
		q.MinRating = relaxedMinRating + getRandomFloat()*ratingSpread
	case caseBothFilters:
		q.Difficulty = pickFrom(difficulties)
		q.MinRating = relaxedMinRating + getRandomFloat()*ratingSpread
	case caseMultiTermQuery:
		q.Text = pickFrom(queryTopics) + " " + pickFrom(queryTopics)
	case caseStrictMinRating:
		// Strict thresholds often yield empty result sets, which the
		// service must treat as valid responses.
		q.MinRating = strictMinRating
	}

	// Round min_rating to one decimal so queries serialize stably.
	if q.MinRating > 0 {
		rounded, err := strconv.ParseFloat(strconv.FormatFloat(q.MinRating, 'f', 1, 64), 64)
		if err == nil {
			q.MinRating = rounded
		}
	}

	return q
}
