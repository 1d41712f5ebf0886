// Package repository defines the catalog store interface and errors.
package repository

import (
	"context"

	"github.com/RAloysia/course-recommendation-app/internal/domain/model"
)

// Store provides read access to the loaded course catalog.
// The catalog never mutates after load, so implementations are expected to
// be safe for concurrent reads without locking.
type Store interface {
	// Get returns the course with the given catalog ID.
	// Returns ErrNotFound if the ID is unknown.
	Get(ctx context.Context, id int) (model.Course, error)

	// All returns every course in original catalog order.
	All(ctx context.Context) []model.Course

	// Count returns the number of courses in the catalog.
	Count(ctx context.Context) int
}
