package api

import (
	"errors"

	"github.com/RAloysia/course-recommendation-app/internal/domain/ranking"
)

// Sentinel kinds for API errors.
var (
	ErrBadRequest   = errors.New("bad request")
	ErrBackpressure = errors.New("feedback buffer full")
)

// isInvalidQuery reports whether err is a query-text validation failure.
func isInvalidQuery(err error) bool {
	return errors.Is(err, ranking.ErrInvalidQuery)
}

// isInvalidFilter reports whether err is a filter validation failure.
func isInvalidFilter(err error) bool {
	return errors.Is(err, ranking.ErrInvalidFilter)
}
