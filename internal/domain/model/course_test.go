package model_test

import (
	"testing"

	model "github.com/RAloysia/course-recommendation-app/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParseDifficulty(t *testing.T) {
	Convey("Given difficulty strings", t, func() {
		Convey("When parsing canonical values", func() {
			for _, tc := range []struct {
				in   string
				want model.Difficulty
			}{
				{"Beginner", model.DifficultyBeginner},
				{"Intermediate", model.DifficultyIntermediate},
				{"Advanced", model.DifficultyAdvanced},
			} {
				d, ok := model.ParseDifficulty(tc.in)
				So(ok, ShouldBeTrue)
				So(d, ShouldEqual, tc.want)
			}
		})

		Convey("When parsing is case-insensitive with surrounding whitespace", func() {
			d, ok := model.ParseDifficulty("  aDvAnCeD ")
			So(ok, ShouldBeTrue)
			So(d, ShouldEqual, model.DifficultyAdvanced)
		})

		Convey("When parsing unknown values", func() {
			_, ok := model.ParseDifficulty("expert")
			So(ok, ShouldBeFalse)

			_, ok = model.ParseDifficulty("")
			So(ok, ShouldBeFalse)
		})
	})
}

func TestCourseCombinedFeatures(t *testing.T) {
	Convey("Given a course", t, func() {
		course := model.Course{
			ID:           3,
			Title:        "Intro to Python Programming",
			Organization: "Coursera",
			Skills:       "python basics loops",
			Difficulty:   model.DifficultyBeginner,
			Rating:       4.5,
		}

		Convey("When building combined features", func() {
			text := course.CombinedFeatures()

			Convey("Then it should contain title and skills", func() {
				So(text, ShouldEqual, "Intro to Python Programming python basics loops")
			})
		})
	})
}
