package repository

import (
	"context"
	"fmt"

	"github.com/RAloysia/course-recommendation-app/internal/domain/model"
	"github.com/RAloysia/course-recommendation-app/pkg/metrics"
)

// CatalogStore implements Store over a frozen slice of courses.
// All state is written once in the constructor; reads need no locking.
type CatalogStore struct {
	courses []model.Course
	byID    map[int]int // catalog ID -> slice index
}

// NewCatalogStore builds an immutable store from loaded courses.
func NewCatalogStore(_ context.Context, courses []model.Course) (*CatalogStore, error) {
	if len(courses) == 0 {
		return nil, ErrEmptyCatalog
	}

	s := &CatalogStore{
		courses: make([]model.Course, len(courses)),
		byID:    make(map[int]int, len(courses)),
	}
	copy(s.courses, courses)
	for i, c := range s.courses {
		if _, dup := s.byID[c.ID]; dup {
			return nil, fmt.Errorf("duplicate course id %d", c.ID)
		}
		s.byID[c.ID] = i
	}

	metrics.UpdateCatalogCourses(len(s.courses))
	return s, nil
}

// Get returns the course with the given catalog ID.
func (s *CatalogStore) Get(_ context.Context, id int) (model.Course, error) {
	i, ok := s.byID[id]
	if !ok {
		return model.Course{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return s.courses[i], nil
}

// All returns every course in original catalog order. The returned slice is
// a copy; callers cannot mutate the store through it.
func (s *CatalogStore) All(_ context.Context) []model.Course {
	out := make([]model.Course, len(s.courses))
	copy(out, s.courses)
	return out
}

// Count returns the number of courses in the catalog.
func (s *CatalogStore) Count(_ context.Context) int {
	return len(s.courses)
}
