// Package types contains common types used across the application
package types

// Recommendation represents one ranked recommendation result
type Recommendation struct {
	Rank         int     `json:"rank"`
	Title        string  `json:"title"`
	Organization string  `json:"organization"`
	Skills       string  `json:"skills"`
	Difficulty   string  `json:"difficulty"`
	Rating       float64 `json:"rating"`
	CourseType   string  `json:"type"`
	Duration     string  `json:"duration"`
	URL          string  `json:"url"`
	Score        float64 `json:"score"`
}

// CourseView represents a single catalog entry as returned by the API
type CourseView struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Organization string  `json:"organization"`
	Skills       string  `json:"skills"`
	Difficulty   string  `json:"difficulty"`
	Rating       float64 `json:"rating"`
	CourseType   string  `json:"type"`
	Duration     string  `json:"duration"`
	URL          string  `json:"url"`
}
