// Package model contains domain models passed between layers.
package model

import "strings"

// Difficulty is the enumerated course difficulty level.
type Difficulty string

// Canonical difficulty levels.
const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// ParseDifficulty normalizes a difficulty string to one of the canonical
// levels. Matching is case-insensitive. Returns false for unknown values.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "beginner":
		return DifficultyBeginner, true
	case "intermediate":
		return DifficultyIntermediate, true
	case "advanced":
		return DifficultyAdvanced, true
	}
	return "", false
}

// Rating bounds for course ratings and the min_rating filter.
const (
	MinRating = 0.0
	MaxRating = 5.0
)

// Course represents a single catalog entry. Courses are created once at
// catalog load and never mutated afterwards.
type Course struct {
	ID           int        // position in the loaded catalog, stable for the process lifetime
	Title        string     // course title
	Organization string     // offering organization
	Skills       string     // free-text skills/description field, feeds the vectorizer
	Difficulty   Difficulty // one of the canonical levels
	Rating       float64    // numeric rating in [0, 5]
	CourseType   string     // course/specialization/etc., as published by the provider
	Duration     string     // advertised duration, e.g. "20 hours"
	URL          string     // enrollment link
}

// CombinedFeatures returns the text the feature vectors are built from.
func (c Course) CombinedFeatures() string {
	return c.Title + " " + c.Skills
}

// Query carries one recommendation request. Difficulty and MinRating are
// optional filters; nil means "no constraint".
type Query struct {
	Text       string
	Difficulty *Difficulty
	MinRating  *float64
	TopK       int
}

// Feedback is a single user feedback submission.
type Feedback struct {
	ID      string
	Message string
}
