package probe

import "time"

// Config holds configuration for the recommendation probe
type Config struct {
	BaseURL    string        // Base URL of the service
	NumQueries int           // Number of queries to generate
	TopK       int           // Result limit requested per query
	Workers    int           // Number of concurrent workers
	Timeout    time.Duration // HTTP request timeout
	Repeats    int           // Repeats per query for the determinism pass
	OutputFile string        // Output file for generated queries
	LogFile    string        // Log file for probe output
	Verbose    bool          // Enable verbose logging
}

// Query represents a single generated recommendation request
type Query struct {
	QueryID    string  `json:"query_id"`
	Text       string  `json:"text"`
	Difficulty string  `json:"difficulty,omitempty"`
	MinRating  float64 `json:"min_rating,omitempty"`
	Limit      int     `json:"limit"`
}

// Recommendation mirrors one entry of the /recommend response
type Recommendation struct {
	Rank       int     `json:"rank"`
	Title      string  `json:"title"`
	Difficulty string  `json:"difficulty"`
	Rating     float64 `json:"rating"`
	Score      float64 `json:"score"`
}

// Stats holds probe statistics
type Stats struct {
	QueriesGenerated      int
	QueriesSubmitted      int
	QueriesSuccessful     int
	QueriesEmpty          int
	QueriesFailed         int
	ResultsReturned       int
	OrderingViolations    int
	FilterViolations      int
	DeterminismViolations int
	StartTime             time.Time
	EndTime               time.Time
	Duration              time.Duration
}
