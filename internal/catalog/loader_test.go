package catalog_test

import (
	"context"
	"path/filepath"
	"testing"

	catalog "github.com/RAloysia/course-recommendation-app/internal/catalog"
	model "github.com/RAloysia/course-recommendation-app/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLoad(t *testing.T) {
	Convey("Given the sample dataset", t, func() {
		ctx := context.Background()

		Convey("When loading a valid CSV", func() {
			cat, err := catalog.Load(ctx, filepath.Join("testdata", "courses.csv"))

			Convey("Then usable rows are loaded and malformed rows dropped", func() {
				So(err, ShouldBeNil)
				So(len(cat.Courses), ShouldEqual, 5)
				So(cat.DroppedRows, ShouldEqual, 4)
			})

			Convey("And courses keep file order with sequential IDs", func() {
				So(err, ShouldBeNil)
				So(cat.Courses[0].Title, ShouldEqual, "Intro to Python Programming")
				So(cat.Courses[1].Title, ShouldEqual, "Advanced Python for Data Science")
				for i, c := range cat.Courses {
					So(c.ID, ShouldEqual, i)
				}
			})

			Convey("And parsed fields are populated", func() {
				So(err, ShouldBeNil)
				c := cat.Courses[1]
				So(c.Organization, ShouldEqual, "DeepLearn")
				So(c.Difficulty, ShouldEqual, model.DifficultyAdvanced)
				So(c.Rating, ShouldEqual, 4.8)
				So(c.CourseType, ShouldEqual, "Specialization")
				So(c.Duration, ShouldEqual, "40 hours")
				So(c.URL, ShouldEqual, "https://example.com/python-ds")
			})
		})

		Convey("When required columns are missing", func() {
			_, err := catalog.Load(ctx, filepath.Join("testdata", "missing_columns.csv"))

			Convey("Then it should fail with ErrDataFormat naming the columns", func() {
				So(err, ShouldWrap, catalog.ErrDataFormat)
				So(err.Error(), ShouldContainSubstring, "skills")
				So(err.Error(), ShouldContainSubstring, "course_url")
			})
		})

		Convey("When no rows survive parsing", func() {
			_, err := catalog.Load(ctx, filepath.Join("testdata", "no_usable_rows.csv"))

			Convey("Then it should fail with ErrEmptyCatalog", func() {
				So(err, ShouldEqual, catalog.ErrEmptyCatalog)
			})
		})

		Convey("When the file does not exist", func() {
			_, err := catalog.Load(ctx, filepath.Join("testdata", "nope.csv"))

			Convey("Then it should fail with ErrDataFormat", func() {
				So(err, ShouldWrap, catalog.ErrDataFormat)
			})
		})
	})
}
