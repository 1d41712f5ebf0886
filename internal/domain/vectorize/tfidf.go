// Package vectorize encodes text into a shared TF-IDF feature space.
//
// A Vectorizer is fitted once over the catalog corpus and then transforms
// both catalog documents and incoming queries into the same fixed vocabulary,
// so that cosine similarity between the two sides is well defined.
package vectorize

import (
	"math"
	"sort"

	"github.com/RAloysia/course-recommendation-app/internal/domain/text"
)

// Tokenizer splits raw text into terms.
type Tokenizer func(string) []string

// Vectorizer holds a fitted vocabulary and per-term inverse document
// frequencies. Safe for concurrent use after Fit returns.
type Vectorizer struct {
	tokenize   Tokenizer
	minDocFreq int

	vocab map[string]int // term -> column index
	idf   []float64      // column index -> idf weight
	docs  int            // number of fitted documents
}

// New creates an unfitted Vectorizer with configuration options.
func New(opts ...Option) *Vectorizer {
	v := &Vectorizer{
		tokenize:   text.Tokenize,
		minDocFreq: 1,
	}

	// Apply all options
	for _, opt := range opts {
		opt(v)
	}

	return v
}

// Fit builds the vocabulary and IDF weights from the corpus. Returns
// ErrEmptyVocabulary when no document yields a single usable term.
// Column indices are assigned in sorted term order so the feature space is
// deterministic for a given corpus.
func (v *Vectorizer) Fit(corpus []string) error {
	docFreq := make(map[string]int)
	for _, doc := range corpus {
		seen := make(map[string]bool)
		for _, term := range v.tokenize(doc) {
			if !seen[term] {
				seen[term] = true
				docFreq[term]++
			}
		}
	}

	terms := make([]string, 0, len(docFreq))
	for term, df := range docFreq {
		if df >= v.minDocFreq {
			terms = append(terms, term)
		}
	}
	if len(terms) == 0 {
		return ErrEmptyVocabulary
	}
	sort.Strings(terms)

	v.docs = len(corpus)
	v.vocab = make(map[string]int, len(terms))
	v.idf = make([]float64, len(terms))
	for i, term := range terms {
		v.vocab[term] = i
		// Smoothed IDF: ln((1+n)/(1+df)) + 1 keeps every fitted term at a
		// positive weight even when it appears in all documents.
		v.idf[i] = math.Log(float64(1+v.docs)/float64(1+docFreq[term])) + 1
	}
	return nil
}

// Transform encodes any text in the fitted feature space. Terms outside the
// vocabulary are ignored; a text sharing no terms with the vocabulary yields
// a zero vector. The result is L2-normalized.
func (v *Vectorizer) Transform(input string) (Vector, error) {
	if v.vocab == nil {
		return nil, ErrNotFitted
	}

	counts := make(map[int]int)
	for _, term := range v.tokenize(input) {
		if col, ok := v.vocab[term]; ok {
			counts[col]++
		}
	}

	vec := make(Vector, len(counts))
	for col, tf := range counts {
		vec[col] = float64(tf) * v.idf[col]
	}
	return normalize(vec), nil
}

// TransformAll encodes a batch of documents.
func (v *Vectorizer) TransformAll(inputs []string) ([]Vector, error) {
	vectors := make([]Vector, len(inputs))
	for i, input := range inputs {
		vec, err := v.Transform(input)
		if err != nil {
			return nil, err
		}
		vectors[i] = vec
	}
	return vectors, nil
}

// VocabularySize returns the number of fitted terms.
func (v *Vectorizer) VocabularySize() int {
	return len(v.vocab)
}
