package ranking

// Option applies a configuration option to the Ranker.
type Option func(*Ranker)

// WithTopK sets the default result bound used when the query omits one.
func WithTopK(k int) Option {
	return func(r *Ranker) {
		if k > 0 {
			r.topK = k
		}
	}
}

// WithMinScore drops candidates scoring below the threshold before ranking.
// The default of 0 keeps every candidate, matching the contract that a
// no-overlap query still ranks (at score 0) rather than erroring.
func WithMinScore(score float64) Option {
	return func(r *Ranker) {
		if score > 0 {
			r.minScore = score
		}
	}
}
