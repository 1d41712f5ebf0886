package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/RAloysia/course-recommendation-app/pkg/logger"
)

// File permission constants.
const (
	directoryPermission = 0750
)

// Run executes the complete probe.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{
		StartTime: time.Now(),
	}

	logger.Get().Info(ctx, "starting recommendation probe",
		logger.String("baseURL", config.BaseURL),
		logger.Int("queries", config.NumQueries),
		logger.Int("workers", config.Workers),
		logger.String("timeout", config.Timeout.String()),
		logger.Int("topK", config.TopK),
		logger.Int("repeats", config.Repeats),
		logger.String("logFile", config.LogFile),
		logger.Any("verbose", config.Verbose))

	// Step 1: Check service health
	if err := checkServiceHealth(ctx, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	// Step 2: Generate queries
	queries, err := generateQueries(ctx, config, stats)
	if err != nil {
		return fmt.Errorf("query generation failed: %w", err)
	}

	// Step 3: Submit queries concurrently
	results, err := submitQueries(ctx, config, queries, stats)
	if err != nil {
		return fmt.Errorf("query submission failed: %w", err)
	}

	// Step 4: Verify ordering and filter conformance
	if err := verifyResults(ctx, config, results, stats); err != nil {
		return fmt.Errorf("result verification failed: %w", err)
	}

	// Step 5: Verify determinism on a sample of queries
	if err := verifyDeterminism(ctx, config, results, stats); err != nil {
		return fmt.Errorf("determinism verification failed: %w", err)
	}

	// Step 6: Save queries to file
	if err := saveQueriesToFile(ctx, config, queries); err != nil {
		logger.Get().Warn(ctx, "failed to save queries to file", logger.Error(err))
	}

	// Final statistics
	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	displayFinalStats(stats)

	logger.Get().Info(ctx, "probe completed successfully")
	return nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, config *Config) error {
	logger.Get().Info(ctx, "checking service health")

	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/healthz"

	resp, err := client.Get(ctx, url)
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Get().Error(context.Background(), "failed to close response body", logger.Error(err))
		}
	}()

	// Accept any 200 response as healthy (the endpoint serves Prometheus metrics)
	if resp.StatusCode != StatusOK {
		return fmt.Errorf("service health check failed with status: %d", resp.StatusCode)
	}

	logger.Get().Info(ctx, "service is healthy")
	return nil
}

// saveQueriesToFile saves the generated queries to a JSON file.
func saveQueriesToFile(ctx context.Context, config *Config, queries []Query) error {
	if len(queries) == 0 {
		return fmt.Errorf("no queries to save")
	}

	filename := config.OutputFile
	if filename == "" {
		timestamp := time.Now().Format("20060102_150405")
		filename = "generated_queries_" + timestamp + ".json"
	}

	dir := filepath.Dir(filename)
	if dir != "." {
		if err := os.MkdirAll(dir, directoryPermission); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.Get().Error(context.Background(), "failed to close file", logger.Error(err))
		}
	}()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(queries); err != nil {
		return fmt.Errorf("failed to encode queries: %w", err)
	}

	logger.Get().Info(ctx, "queries saved to file", logger.String("filename", filename))
	return nil
}

// displayFinalStats prints the final probe statistics.
func displayFinalStats(stats *Stats) {
	var successRate, queriesPerSecond float64

	if stats.QueriesSubmitted > 0 {
		successRate = float64(stats.QueriesSuccessful) / float64(stats.QueriesSubmitted) * PercentageMultiplier
	}

	if stats.Duration > 0 {
		queriesPerSecond = float64(stats.QueriesSubmitted) / stats.Duration.Seconds()
	}

	logger.Get().Info(context.Background(), "final statistics",
		logger.Int("queriesGenerated", stats.QueriesGenerated),
		logger.Int("queriesSubmitted", stats.QueriesSubmitted),
		logger.Int("queriesSuccessful", stats.QueriesSuccessful),
		logger.Int("queriesEmpty", stats.QueriesEmpty),
		logger.Int("queriesFailed", stats.QueriesFailed),
		logger.Int("resultsReturned", stats.ResultsReturned),
		logger.Int("orderingViolations", stats.OrderingViolations),
		logger.Int("filterViolations", stats.FilterViolations),
		logger.Int("determinismViolations", stats.DeterminismViolations),
		logger.String("duration", stats.Duration.String()),
		logger.Float64("successRate", successRate),
		logger.Float64("queriesPerSecond", queriesPerSecond))
}
