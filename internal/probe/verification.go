package probe

import (
	"context"
	"fmt"
	"log"
	"strings"
)

// verifyResults checks every successful response for ranking and filter
// invariants and accumulates violation counts.
func verifyResults(ctx context.Context, config *Config, results []queryResult, stats *Stats) error {
	log.Println("Verifying results...")

	for _, r := range results {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if r.status != "success" {
			continue
		}

		if err := verifyOrdering(r); err != nil {
			stats.OrderingViolations++
			log.Printf("Ordering violation for query %s: %v", r.query.QueryID, err)
		}
		if err := verifyFilterConformance(r); err != nil {
			stats.FilterViolations++
			log.Printf("Filter violation for query %s: %v", r.query.QueryID, err)
		}
	}

	if stats.OrderingViolations > 0 || stats.FilterViolations > 0 {
		return fmt.Errorf("verification found %d ordering and %d filter violations",
			stats.OrderingViolations, stats.FilterViolations)
	}

	log.Println("Result verification completed")
	return nil
}

// verifyOrdering checks ranks are sequential from 1, scores are
// non-increasing, scores stay within [0,1], and the limit is honored.
func verifyOrdering(r queryResult) error {
	if r.query.Limit > 0 && len(r.results) > r.query.Limit {
		return fmt.Errorf("got %d results for limit %d", len(r.results), r.query.Limit)
	}

	for i, rec := range r.results {
		if rec.Rank != i+1 {
			return fmt.Errorf("entry %d has rank %d", i, rec.Rank)
		}
		if rec.Score < 0 || rec.Score > 1 {
			return fmt.Errorf("entry %d has score %.6f outside [0,1]", i, rec.Score)
		}
		if i > 0 && rec.Score > r.results[i-1].Score {
			return fmt.Errorf("entry %d has higher score than entry %d", i, i-1)
		}
	}
	return nil
}

// verifyFilterConformance checks every returned course satisfies the
// difficulty and minimum-rating filters the query carried.
func verifyFilterConformance(r queryResult) error {
	for i, rec := range r.results {
		if r.query.Difficulty != "" && !strings.EqualFold(rec.Difficulty, r.query.Difficulty) {
			return fmt.Errorf("entry %d has difficulty %q, want %q", i, rec.Difficulty, r.query.Difficulty)
		}
		if r.query.MinRating > 0 && rec.Rating < r.query.MinRating {
			return fmt.Errorf("entry %d has rating %.2f below threshold %.2f", i, rec.Rating, r.query.MinRating)
		}
	}
	return nil
}

// verifyDeterminism re-submits a sample of queries several times and checks
// every repeat returns byte-for-byte identical result lists.
func verifyDeterminism(ctx context.Context, config *Config, results []queryResult, stats *Stats) error {
	log.Println("Verifying determinism...")

	sample := sampleSuccessful(results, determinismSampleSize)
	if len(sample) == 0 {
		log.Println("No successful queries to re-submit, skipping determinism pass")
		return nil
	}

	client := newHTTPClient(config.Timeout)
	for _, base := range sample {
		want := fingerprint(base.results)
		for rep := 0; rep < config.Repeats; rep++ {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			repeat := submitSingleQuery(ctx, client, config.BaseURL, base.query)
			if repeat.status != "success" {
				stats.DeterminismViolations++
				log.Printf("Determinism repeat failed for query %s", base.query.QueryID)
				continue
			}
			if fingerprint(repeat.results) != want {
				stats.DeterminismViolations++
				log.Printf("Determinism violation for query %s on repeat %d", base.query.QueryID, rep+1)
			}
		}
	}

	if stats.DeterminismViolations > 0 {
		return fmt.Errorf("determinism pass found %d violations", stats.DeterminismViolations)
	}

	log.Println("Determinism verification completed")
	return nil
}

const determinismSampleSize = 25

// sampleSuccessful picks up to n successful results, spread across the run.
func sampleSuccessful(results []queryResult, n int) []queryResult {
	var ok []queryResult
	for _, r := range results {
		if r.status == "success" {
			ok = append(ok, r)
		}
	}
	if len(ok) <= n {
		return ok
	}
	step := len(ok) / n
	sampled := make([]queryResult, 0, n)
	for i := 0; i < len(ok) && len(sampled) < n; i += step {
		sampled = append(sampled, ok[i])
	}
	return sampled
}

// fingerprint reduces a result list to a comparable string.
func fingerprint(recs []Recommendation) string {
	var b strings.Builder
	for _, rec := range recs {
		fmt.Fprintf(&b, "%d|%s|%.9f;", rec.Rank, rec.Title, rec.Score)
	}
	return b.String()
}
