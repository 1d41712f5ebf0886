package vectorize

// Option applies a configuration option to the Vectorizer.
type Option func(*Vectorizer)

// WithTokenizer replaces the default tokenizer.
func WithTokenizer(tokenize Tokenizer) Option {
	return func(v *Vectorizer) {
		if tokenize != nil {
			v.tokenize = tokenize
		}
	}
}

// WithMinDocFreq drops terms appearing in fewer than minDF documents from
// the vocabulary.
func WithMinDocFreq(minDF int) Option {
	return func(v *Vectorizer) {
		if minDF > 0 {
			v.minDocFreq = minDF
		}
	}
}
