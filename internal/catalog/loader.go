// Package catalog loads the static course dataset into memory.
//
// The dataset is a CSV export with one row per course. Loading happens once
// at startup; a load failure is fatal to the process and surfaced to the
// caller immediately. Malformed rows are dropped, not fatal, but a dataset
// with zero usable rows is.
package catalog

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/RAloysia/course-recommendation-app/internal/domain/model"
)

// Required dataset columns, matched case-insensitively against the header.
const (
	colTitle        = "title"
	colOrganization = "organization"
	colSkills       = "skills"
	colRatings      = "ratings"
	colDifficulty   = "difficulty"
	colType         = "type"
	colDuration     = "duration"
	colURL          = "course_url"
)

var requiredColumns = []string{
	colTitle, colOrganization, colSkills, colRatings,
	colDifficulty, colType, colDuration, colURL,
}

// Catalog is the immutable load result: the usable courses in file order
// plus bookkeeping about what was dropped.
type Catalog struct {
	Courses     []model.Course
	DroppedRows int
}

// Load reads the CSV at path and produces a Catalog.
// Returns ErrDataFormat when the file cannot be read or required columns are
// missing, and ErrEmptyCatalog when no usable rows survive.
func Load(ctx context.Context, path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrDataFormat, path, err)
	}
	defer f.Close()

	return load(ctx, f)
}

func load(ctx context.Context, r io.Reader) (*Catalog, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // row length validated against the header below

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: missing header: %v", ErrDataFormat, err)
	}

	cols, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	cat := &Catalog{}
	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("catalog load cancelled: %w", err)
		}

		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Structurally broken row; drop and continue
			cat.DroppedRows++
			continue
		}

		course, ok := parseRow(row, cols)
		if !ok {
			cat.DroppedRows++
			continue
		}
		course.ID = len(cat.Courses)
		cat.Courses = append(cat.Courses, course)
	}

	if len(cat.Courses) == 0 {
		return nil, ErrEmptyCatalog
	}
	return cat, nil
}

// mapColumns resolves header names to indices, failing when any required
// column is absent.
func mapColumns(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing columns: %s", ErrDataFormat, strings.Join(missing, ", "))
	}
	return cols, nil
}

// parseRow converts one CSV row into a Course. Returns false for rows that
// cannot produce a usable record.
func parseRow(row []string, cols map[string]int) (model.Course, bool) {
	field := func(name string) string {
		i := cols[name]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	title := field(colTitle)
	skills := field(colSkills)
	if title == "" || skills == "" {
		return model.Course{}, false
	}

	rating, err := strconv.ParseFloat(field(colRatings), 64)
	if err != nil || rating < model.MinRating || rating > model.MaxRating {
		return model.Course{}, false
	}

	difficulty, ok := model.ParseDifficulty(field(colDifficulty))
	if !ok {
		return model.Course{}, false
	}

	return model.Course{
		Title:        title,
		Organization: field(colOrganization),
		Skills:       skills,
		Difficulty:   difficulty,
		Rating:       rating,
		CourseType:   field(colType),
		Duration:     field(colDuration),
		URL:          field(colURL),
	}, true
}
