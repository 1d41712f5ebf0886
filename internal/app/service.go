// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/RAloysia/course-recommendation-app/internal/adapters/feedback"
	repository "github.com/RAloysia/course-recommendation-app/internal/adapters/repository"
	"github.com/RAloysia/course-recommendation-app/internal/catalog"
	"github.com/RAloysia/course-recommendation-app/internal/domain/model"
	"github.com/RAloysia/course-recommendation-app/internal/domain/ranking"
	"github.com/RAloysia/course-recommendation-app/internal/domain/types"
	"github.com/RAloysia/course-recommendation-app/internal/domain/vectorize"
	"github.com/RAloysia/course-recommendation-app/pkg/logger"
	"github.com/RAloysia/course-recommendation-app/pkg/metrics"
)

// Service implements the API dependencies for the recommendation system.
type Service struct {
	mu sync.RWMutex

	// Core components
	store      repository.Store
	vectorizer *vectorize.Vectorizer
	ranker     *ranking.Ranker
	sink       *feedback.Sink

	// Configuration
	catalogPath        string
	feedbackPath       string
	feedbackBufferSize int
	maxResults         int
	defaultTopK        int
	minScore           float64
	minDocFreq         int

	// State
	started     bool
	droppedRows int
	queries     uint64

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithCatalogPath sets the course dataset location.
func WithCatalogPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.catalogPath = path
		}
	}
}

// WithFeedbackPath sets the feedback CSV location.
func WithFeedbackPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.feedbackPath = path
		}
	}
}

// WithFeedbackBufferSize bounds the in-memory feedback buffer.
func WithFeedbackBufferSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.feedbackBufferSize = size
		}
	}
}

// WithMaxResults caps the per-query result limit.
func WithMaxResults(limit int) Option {
	return func(s *Service) {
		if limit > 0 {
			s.maxResults = limit
		}
	}
}

// WithDefaultTopK sets the result bound applied when a query omits a limit.
func WithDefaultTopK(k int) Option {
	return func(s *Service) {
		if k > 0 {
			s.defaultTopK = k
		}
	}
}

// WithMinScore drops candidates scoring below the threshold.
func WithMinScore(score float64) Option {
	return func(s *Service) {
		if score > 0 {
			s.minScore = score
		}
	}
}

// WithMinDocFreq sets the vocabulary document-frequency cutoff.
func WithMinDocFreq(minDF int) Option {
	return func(s *Service) {
		if minDF > 0 {
			s.minDocFreq = minDF
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.logger = log
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		catalogPath:        "cleaned_courses.csv",
		feedbackPath:       "feedback.csv",
		feedbackBufferSize: 1024,
		maxResults:         100,
		defaultTopK:        5,
		minScore:           0,
		minDocFreq:         1,
		logger:             nil, // Will be replaced when service starts
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start loads the catalog, fits the vectorizer, and wires the ranker and
// feedback sink. Load failures are fatal and returned to the caller.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting recommendation service...",
		logger.String("catalog", s.catalogPath))

	loadStart := time.Now()
	cat, err := catalog.Load(ctx, s.catalogPath)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	metrics.UpdateCatalogLoadDuration(float64(time.Since(loadStart).Milliseconds()))
	metrics.UpdateCatalogDroppedRows(cat.DroppedRows)
	s.droppedRows = cat.DroppedRows

	store, err := repository.NewCatalogStore(ctx, cat.Courses)
	if err != nil {
		return fmt.Errorf("build catalog store: %w", err)
	}
	s.store = store

	corpus := make([]string, len(cat.Courses))
	for i, c := range cat.Courses {
		corpus[i] = c.CombinedFeatures()
	}

	fitStart := time.Now()
	s.vectorizer = vectorize.New(vectorize.WithMinDocFreq(s.minDocFreq))
	if err := s.vectorizer.Fit(corpus); err != nil {
		return fmt.Errorf("fit vectorizer: %w", err)
	}
	matrix, err := s.vectorizer.TransformAll(corpus)
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	metrics.UpdateVectorizerFitDuration(float64(time.Since(fitStart).Milliseconds()))
	metrics.UpdateVocabularyTerms(s.vectorizer.VocabularySize())

	s.ranker, err = ranking.New(cat.Courses, matrix, s.vectorizer,
		ranking.WithTopK(s.defaultTopK),
		ranking.WithMinScore(s.minScore),
	)
	if err != nil {
		return fmt.Errorf("build ranker: %w", err)
	}

	s.sink, err = feedback.NewSink(ctx, s.feedbackPath,
		feedback.WithBufferSize(s.feedbackBufferSize),
		feedback.WithLogger(s.logger),
	)
	if err != nil {
		return fmt.Errorf("open feedback sink: %w", err)
	}

	s.started = true
	s.logger.Info(ctx, "recommendation service started",
		logger.Int("courses", len(cat.Courses)),
		logger.Int("droppedRows", cat.DroppedRows),
		logger.Int("vocabulary", s.vectorizer.VocabularySize()),
	)

	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.logger.Info(context.Background(), "stopping recommendation service...")

	if s.sink != nil {
		if err := s.sink.Close(); err != nil {
			s.logger.Error(context.Background(), "feedback sink close failed", logger.Error(err))
		}
	}

	s.started = false
	s.logger.Info(context.Background(), "recommendation service stopped")
}

// Recommend runs one ranked query against the catalog.
func (s *Service) Recommend(ctx context.Context, q model.Query) ([]types.Recommendation, error) {
	start := time.Now()

	if q.TopK == 0 {
		q.TopK = s.defaultTopK
	}
	if q.TopK > s.maxResults {
		return nil, fmt.Errorf("%w: limit %d exceeds maximum %d", ranking.ErrInvalidFilter, q.TopK, s.maxResults)
	}

	recs, err := s.ranker.Recommend(ctx, q)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.queries++
	s.mu.Unlock()

	metrics.RecordQueryServed()
	metrics.RecordQueryLatency(float64(time.Since(start).Milliseconds()))
	metrics.RecordResultsReturned(len(recs))
	if len(recs) == 0 {
		metrics.RecordEmptyResult()
	} else {
		metrics.RecordTopSimilarityScore(recs[0].Score)
	}

	out := make([]types.Recommendation, len(recs))
	for i, rec := range recs {
		out[i] = types.Recommendation{
			Rank:         i + 1,
			Title:        rec.Course.Title,
			Organization: rec.Course.Organization,
			Skills:       rec.Course.Skills,
			Difficulty:   string(rec.Course.Difficulty),
			Rating:       rec.Course.Rating,
			CourseType:   rec.Course.CourseType,
			Duration:     rec.Course.Duration,
			URL:          rec.Course.URL,
			Score:        rec.Score,
		}
	}
	return out, nil
}

// Course returns one catalog entry by ID.
func (s *Service) Course(ctx context.Context, id int) (types.CourseView, error) {
	c, err := s.store.Get(ctx, id)
	if err != nil {
		return types.CourseView{}, err
	}
	return types.CourseView{
		ID:           c.ID,
		Title:        c.Title,
		Organization: c.Organization,
		Skills:       c.Skills,
		Difficulty:   string(c.Difficulty),
		Rating:       c.Rating,
		CourseType:   c.CourseType,
		Duration:     c.Duration,
		URL:          c.URL,
	}, nil
}

// SubmitFeedback hands a feedback message to the sink.
// Returns false on backpressure or duplicate.
func (s *Service) SubmitFeedback(ctx context.Context, message string) bool {
	return s.sink.Submit(ctx, message)
}

// MaxResults exposes the configured per-query result cap.
func (s *Service) MaxResults() int {
	return s.maxResults
}

// GetStats returns current service statistics.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	queries := s.queries
	s.mu.RUnlock()

	stats := map[string]interface{}{
		"queriesServed":   queries,
		"defaultTopK":     s.defaultTopK,
		"maxResults":      s.maxResults,
		"catalogDropped":  s.droppedRows,
		"feedbackBuffer":  0,
		"catalogCourses":  0,
		"vocabularyTerms": 0,
	}

	if s.store != nil {
		stats["catalogCourses"] = s.store.Count(context.Background())
	}
	if s.vectorizer != nil {
		stats["vocabularyTerms"] = s.vectorizer.VocabularySize()
	}
	if s.sink != nil {
		stats["feedbackBuffer"] = s.sink.Len()
	}

	return stats
}
