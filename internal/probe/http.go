package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"sync/atomic"
	"time"
)

// HTTPClient wraps http.Client with timeout
type HTTPClient struct {
	client  *http.Client
	timeout time.Duration
}

// newHTTPClient creates a new HTTP client with timeout
func newHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		timeout: timeout,
	}
}

// Get performs a GET request bound to the given context
func (c *HTTPClient) Get(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return c.client.Do(req)
}

// readResponseBody reads and closes the response body
func readResponseBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

// recommendURL builds the /recommend request URL for a query.
func recommendURL(baseURL string, q Query) string {
	params := url.Values{}
	params.Set("q", q.Text)
	if q.Difficulty != "" {
		params.Set("difficulty", q.Difficulty)
	}
	if q.MinRating > 0 {
		params.Set("min_rating", strconv.FormatFloat(q.MinRating, 'f', 1, 64))
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	return baseURL + "/recommend?" + params.Encode()
}

// queryResult pairs a query with the recommendations it produced.
type queryResult struct {
	query   Query
	results []Recommendation
	status  string
}

// submitQueries fires queries concurrently using a worker pool and returns
// the per-query results for verification.
func submitQueries(ctx context.Context, config *Config, queries []Query, stats *Stats) ([]queryResult, error) {
	log.Printf("Submitting %d queries with %d workers...", len(queries), config.Workers)

	client := newHTTPClient(config.Timeout)

	// Counters for statistics
	var (
		successful int64
		empty      int64
		failed     int64
		submitted  int64
		returned   int64
	)

	// Progress reporting
	var lastReport time.Time
	reportInterval := 1 * time.Second

	// Create worker pool
	queryChan := make(chan int, config.Workers*WorkerChannelMultiplier)
	results := make([]queryResult, len(queries))
	var wg sync.WaitGroup

	// Start workers
	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range queryChan {
				select {
				case <-ctx.Done():
					return
				default:
					result := submitSingleQuery(ctx, client, config.BaseURL, queries[idx])
					results[idx] = result

					atomic.AddInt64(&submitted, 1)
					switch result.status {
					case "success":
						atomic.AddInt64(&successful, 1)
						atomic.AddInt64(&returned, int64(len(result.results)))
						if len(result.results) == 0 {
							atomic.AddInt64(&empty, 1)
						}
					case "failed":
						atomic.AddInt64(&failed, 1)
					}

					if time.Since(lastReport) >= reportInterval {
						lastReport = time.Now()
						total := atomic.LoadInt64(&submitted)
						succ := atomic.LoadInt64(&successful)
						fail := atomic.LoadInt64(&failed)

						if config.Verbose {
							log.Printf("Progress: %d/%d submitted (success: %d, failed: %d)",
								total, len(queries), succ, fail)
						} else {
							fmt.Printf("\rSubmitted: %d/%d (success: %d, failed: %d)",
								total, len(queries), succ, fail)
						}
					}
				}
			}
		}()
	}

	// Send query indexes to workers
	go func() {
		defer close(queryChan)
		for i := range queries {
			select {
			case <-ctx.Done():
				return
			case queryChan <- i:
			}
		}
	}()

	// Wait for all workers to complete
	wg.Wait()

	if !config.Verbose {
		fmt.Println() // New line after progress indicator
	}

	stats.QueriesSubmitted = int(atomic.LoadInt64(&submitted))
	stats.QueriesSuccessful = int(atomic.LoadInt64(&successful))
	stats.QueriesEmpty = int(atomic.LoadInt64(&empty))
	stats.QueriesFailed = int(atomic.LoadInt64(&failed))
	stats.ResultsReturned = int(atomic.LoadInt64(&returned))

	log.Printf(`Query submission completed:
   Successful: %d
   Empty: %d
   Failed: %d
`, stats.QueriesSuccessful, stats.QueriesEmpty, stats.QueriesFailed)

	return results, nil
}

// submitSingleQuery issues one /recommend request and parses the response.
func submitSingleQuery(ctx context.Context, client *HTTPClient, baseURL string, q Query) queryResult {
	resp, err := client.Get(ctx, recommendURL(baseURL, q))
	if err != nil {
		return queryResult{query: q, status: "failed"}
	}

	body, err := readResponseBody(resp)
	if err != nil {
		return queryResult{query: q, status: "failed"}
	}

	if resp.StatusCode != StatusOK {
		return queryResult{query: q, status: "failed"}
	}

	var recs []Recommendation
	if err := json.Unmarshal(body, &recs); err != nil {
		return queryResult{query: q, status: "failed"}
	}

	return queryResult{query: q, results: recs, status: "success"}
}
