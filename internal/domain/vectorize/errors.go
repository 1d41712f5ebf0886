package vectorize

import "errors"

// Sentinel kinds for vectorizer errors.
var (
	ErrNotFitted       = errors.New("vectorizer not fitted")
	ErrEmptyVocabulary = errors.New("corpus produced an empty vocabulary")
)
