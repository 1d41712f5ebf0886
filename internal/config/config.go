// Package config defines service configuration structures and loading hooks.
//
// Conventions:
//   - Provide New() to build a Config with defaults, Load(ctx) to layer
//     file and environment sources on top.
//   - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// CatalogPath points at the course dataset CSV.
	CatalogPath string `koanf:"catalog_path"`

	// FeedbackPath is the CSV file user feedback is appended to.
	FeedbackPath string `koanf:"feedback_path"`

	// FeedbackBufferSize bounds the in-memory feedback buffer.
	FeedbackBufferSize int `koanf:"feedback_buffer_size"`

	// MaxResults caps GET /recommend?limit.
	MaxResults int `koanf:"max_results"`

	// DefaultTopK is the result bound applied when a query omits limit.
	DefaultTopK int `koanf:"default_top_k"`

	// MinScore drops candidates scoring below the threshold. Zero keeps all.
	MinScore float64 `koanf:"min_score"`

	// MinDocFreq drops vocabulary terms appearing in fewer documents.
	MinDocFreq int `koanf:"min_doc_freq"`
}

// New creates a Config populated with defaults.
func New() *Config {
	c := &Config{
		LogLevel:           "info",
		Addr:               ":9080",
		CatalogPath:        "cleaned_courses.csv",
		FeedbackPath:       "feedback.csv",
		FeedbackBufferSize: 1024,
		MaxResults:         100,
		DefaultTopK:        5,
		MinScore:           0,
		MinDocFreq:         1,
	}
	return c
}
