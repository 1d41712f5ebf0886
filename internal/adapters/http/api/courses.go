// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/RAloysia/course-recommendation-app/internal/domain/types"
)

// CourseDependencies defines the interface for course detail lookups.
type CourseDependencies interface {
	Course(ctx context.Context, id int) (types.CourseView, error)
}

// CourseHandler handles course detail requests.
type CourseHandler struct {
	deps CourseDependencies
}

// NewCourseHandler creates a new course handler.
func NewCourseHandler(deps CourseDependencies) *CourseHandler {
	return &CourseHandler{deps: deps}
}

// HandleGetCourse handles GET /courses/{id} requests.
func (h *CourseHandler) HandleGetCourse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	// Extract path parameter after /courses/
	path := strings.TrimPrefix(r.URL.Path, "/courses/")
	if path == "" || strings.Contains(path, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	id, err := strconv.Atoi(path)
	if err != nil || id < 0 {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}

	course, err := h.deps.Course(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, course)
}
